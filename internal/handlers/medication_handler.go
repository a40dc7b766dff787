package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/albx0502/crm-api/internal/services"
	"github.com/albx0502/crm-api/internal/store"
)

// ListMedications returns the patient's own medication list.
func (h *Handler) ListMedications(c *gin.Context) {
	docs, err := h.Medications.ListForPatient(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medications"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ListAvailableMedications returns the medication catalog.
func (h *Handler) ListAvailableMedications(c *gin.Context) {
	docs, err := h.Medications.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve available medications"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

type AddMedicationRequest struct {
	AvailableMedicationID string `json:"availableMedicationId" binding:"required"`
}

// AddMedication copies a catalog entry onto the patient's list.
func (h *Handler) AddMedication(c *gin.Context) {
	var req AddMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Medications.Add(c.Request.Context(), currentUserID(c), req.AvailableMedicationID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"id": id})
	case errors.Is(err, services.ErrDuplicateMedication):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already added this medication"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add medication"})
	}
}

// RemoveMedication deletes one of the patient's medications.
func (h *Handler) RemoveMedication(c *gin.Context) {
	err := h.Medications.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove medication"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medication removed successfully"})
}
