package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/albx0502/crm-api/internal/services"
	"github.com/albx0502/crm-api/internal/store"
)

type BookAppointmentRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	SpecialtyID string `json:"specialtyId" binding:"required"`
	DoctorID    string `json:"doctorId" binding:"required"`
}

// BookAppointment books an appointment for the authenticated patient.
func (h *Handler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Bookings.Book(c.Request.Context(), services.BookingRequest{
		Date:        req.Date,
		Time:        req.Time,
		SpecialtyID: req.SpecialtyID,
		DoctorID:    req.DoctorID,
		PatientID:   currentUserID(c),
	})

	var partial *services.PartialBookingError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"appointmentId": id})
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &partial):
		// The appointment exists; tell the client so it can still show it.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":         partial.Error(),
			"appointmentId": partial.AppointmentID,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
	}
}

// ListAppointments returns the patient's appointments split into upcoming
// and past, doctor names included.
func (h *Handler) ListAppointments(c *gin.Context) {
	upcoming, past, err := h.Appointments.ListForPatient(c.Request.Context(), currentUserID(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

// GetAppointment returns one of the patient's appointments with doctor and
// specialty names resolved.
func (h *Handler) GetAppointment(c *gin.Context) {
	doc, err := h.Appointments.GetForPatient(c.Request.Context(), currentUserID(c), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
		return
	}
	c.JSON(http.StatusOK, doc)
}
