package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/albx0502/crm-api/internal/models"
	"github.com/albx0502/crm-api/internal/services"
	"github.com/albx0502/crm-api/internal/store"
)

// ListDoctors returns all doctors, optionally filtered by specialty, with
// each doctor's specialty name resolved for display.
func (h *Handler) ListDoctors(c *gin.Context) {
	filter := map[string]string{}
	if specialtyID := c.Query("specialtyId"); specialtyID != "" {
		filter["specialtyId"] = specialtyID
	}

	docs, err := h.Store.Query(c.Request.Context(), store.Doctors, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}

	resolver := services.NewResolver(h.Store)
	for _, doc := range docs {
		resolver.Resolve(c.Request.Context(), doc, services.SpecialtyNameRef)
	}

	c.JSON(http.StatusOK, docs)
}

// ListSpecialties returns every specialty.
func (h *Handler) ListSpecialties(c *gin.Context) {
	docs, err := h.Store.Query(c.Request.Context(), store.Specialties, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve specialties"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

type CreateDoctorRequest struct {
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	SpecialtyID string `json:"specialtyId"`
}

// CreateDoctor registers a doctor. Admin only.
func (h *Handler) CreateDoctor(c *gin.Context) {
	if currentUserRole(c) != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := store.ToDoc(models.Doctor{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		SpecialtyID: req.SpecialtyID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}
	id, err := h.Store.Create(c.Request.Context(), store.Doctors, doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type CreateSpecialtyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateSpecialty registers a specialty. Admin only.
func (h *Handler) CreateSpecialty(c *gin.Context) {
	if currentUserRole(c) != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	var req CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := store.ToDoc(models.Specialty{Name: req.Name, Description: req.Description})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create specialty"})
		return
	}
	id, err := h.Store.Create(c.Request.Context(), store.Specialties, doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create specialty"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
