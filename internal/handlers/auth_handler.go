package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/albx0502/crm-api/internal/models"
	"github.com/albx0502/crm-api/internal/store"
	"github.com/albx0502/crm-api/internal/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Sex      string `json:"sex" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates the auth account and its patient profile document.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Store.Query(c.Request.Context(), store.Patients, map[string]string{"email": req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing accounts"})
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	doc, err := store.ToDoc(models.Patient{
		Name:     req.Name,
		Surname:  req.Surname,
		Phone:    req.Phone,
		Sex:      req.Sex,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     "patient",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	id, err := h.Store.Create(c.Request.Context(), store.Patients, doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Login checks credentials and hands out a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	docs, err := h.Store.Query(c.Request.Context(), store.Patients, map[string]string{"email": req.Email})
	if err != nil || len(docs) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	var patient models.Patient
	if err := store.Decode(docs[0], &patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read account"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, patient.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(patient.ID, patient.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	patient.Password = ""
	c.JSON(http.StatusOK, gin.H{"token": token, "user": patient})
}

// GetProfile returns the authenticated patient's profile document.
func (h *Handler) GetProfile(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdateProfile lets a patient edit their own contact details.
func (h *Handler) UpdateProfile(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	var req struct {
		Name    string `json:"name"`
		Surname string `json:"surname"`
		Phone   string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	changed := false
	if req.Name != "" {
		patient.Name = req.Name
		changed = true
	}
	if req.Surname != "" {
		patient.Surname = req.Surname
		changed = true
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
		changed = true
	}
	if !changed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	doc, err := store.ToDoc(patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	if err := h.Store.Set(c.Request.Context(), store.Patients, patient.ID, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// currentPatient loads the authenticated patient, writing the error
// response itself when that fails.
func (h *Handler) currentPatient(c *gin.Context) (models.Patient, bool) {
	var patient models.Patient
	doc, err := h.Store.Get(c.Request.Context(), store.Patients, currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return patient, false
	}
	if err := store.Decode(doc, &patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read account"})
		return patient, false
	}
	return patient, true
}

// currentUserID reads the user id the auth middleware stored in the context.
func currentUserID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

func currentUserRole(c *gin.Context) string {
	role, _ := c.Get("userRole")
	s, _ := role.(string)
	return s
}
