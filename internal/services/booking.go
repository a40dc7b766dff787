package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/albx0502/crm-api/internal/models"
	"github.com/albx0502/crm-api/internal/store"
)

// Validation errors reported before anything is written.
var (
	ErrMissingFields = errors.New("date, time, specialty, doctor and patient are all required")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime   = errors.New("time must be in HH:MM format")
)

// Placeholder content for the result document generated alongside every
// appointment. The real document is filled in after the visit.
const (
	resultPlaceholderText = "Automatically generated result for the appointment."
	resultPlaceholderPDF  = "https://storage.googleapis.com/crm-results/generic_result.pdf"
)

// PartialBookingError reports that the appointment was created but the
// companion result document was not. The appointment is left in place;
// callers decide whether to present the booking as successful.
type PartialBookingError struct {
	AppointmentID string
	Err           error
}

func (e *PartialBookingError) Error() string {
	return fmt.Sprintf("appointment created, but result generation failed: %v", e.Err)
}

func (e *PartialBookingError) Unwrap() error { return e.Err }

type BookingRequest struct {
	Date        string
	Time        string
	SpecialtyID string
	DoctorID    string
	PatientID   string
}

// BookingService creates appointments together with their companion result
// documents.
type BookingService struct {
	store store.Store
}

func NewBookingService(s store.Store) *BookingService {
	return &BookingService{store: s}
}

// Book creates an appointment and a companion result placeholder, in that
// order, with no transaction across the two writes. If the appointment
// write fails nothing is stored. If only the result write fails the
// appointment stays in place and a *PartialBookingError carrying its id is
// returned. No retries are attempted.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (string, error) {
	if req.Date == "" || req.Time == "" || req.SpecialtyID == "" || req.DoctorID == "" || req.PatientID == "" {
		return "", ErrMissingFields
	}
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return "", ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, req.Time); err != nil {
		return "", ErrInvalidTime
	}

	appointment, err := store.ToDoc(models.Appointment{
		Date:        req.Date,
		Time:        req.Time,
		SpecialtyID: req.SpecialtyID,
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
	})
	if err != nil {
		return "", err
	}
	appointmentID, err := s.store.Create(ctx, store.Appointments, appointment)
	if err != nil {
		return "", fmt.Errorf("create appointment: %w", err)
	}

	result, err := store.ToDoc(models.Result{
		Date:          req.Date,
		Description:   resultPlaceholderText,
		AppointmentID: appointmentID,
		PatientID:     req.PatientID,
		PDFURL:        resultPlaceholderPDF,
	})
	if err != nil {
		return appointmentID, &PartialBookingError{AppointmentID: appointmentID, Err: err}
	}
	if _, err := s.store.Create(ctx, store.Results, result); err != nil {
		return appointmentID, &PartialBookingError{AppointmentID: appointmentID, Err: err}
	}
	return appointmentID, nil
}
