package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResults returns the patient's result documents, newest first.
// Results are created by the booking workflow and are read-only here.
func (h *Handler) ListResults(c *gin.Context) {
	docs, err := h.Appointments.ListResults(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve results"})
		return
	}
	c.JSON(http.StatusOK, docs)
}
