package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListFavorites returns the ids of the doctors the patient has favorited.
func (h *Handler) ListFavorites(c *gin.Context) {
	ids, err := h.Favorites.ListDoctorIDs(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorIds": ids})
}

// ToggleFavorite flips the favorite state for a doctor and reports the new
// state, so the client can reconcile its optimistic update.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	doctorID := c.Param("doctorId")
	if doctorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Doctor id required"})
		return
	}

	favorite, err := h.Favorites.Toggle(c.Request.Context(), currentUserID(c), doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}
