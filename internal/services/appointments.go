package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/albx0502/crm-api/internal/store"
)

// AppointmentService serves the patient-facing appointment and result
// views. Every read is scoped to the owning patient id.
type AppointmentService struct {
	store store.Store
}

func NewAppointmentService(s store.Store) *AppointmentService {
	return &AppointmentService{store: s}
}

// ListForPatient returns the patient's appointments split into upcoming and
// past, with doctor names resolved for display. "today" is evaluated once
// for the whole call.
func (s *AppointmentService) ListForPatient(ctx context.Context, patientID string, today time.Time) (upcoming, past []bson.M, err error) {
	docs, err := s.store.Query(ctx, store.Appointments, map[string]string{"patientId": patientID})
	if err != nil {
		return nil, nil, fmt.Errorf("query appointments: %w", err)
	}

	resolver := NewResolver(s.store)
	for _, doc := range docs {
		resolver.Resolve(ctx, doc, DoctorNameRef)
	}

	upcoming, past = PartitionAppointments(docs, today)
	return upcoming, past, nil
}

// GetForPatient returns one appointment with doctor and specialty names
// resolved. An appointment owned by another patient is reported as not
// found rather than forbidden.
func (s *AppointmentService) GetForPatient(ctx context.Context, patientID, appointmentID string) (bson.M, error) {
	doc, err := s.store.Get(ctx, store.Appointments, appointmentID)
	if err != nil {
		return nil, err
	}
	if owner, _ := doc["patientId"].(string); owner != patientID {
		return nil, store.ErrNotFound
	}

	resolver := NewResolver(s.store)
	resolver.Resolve(ctx, doc, DoctorNameRef)
	resolver.Resolve(ctx, doc, SpecialtyNameRef)
	return doc, nil
}

// ListResults returns the patient's result documents, newest first. Stored
// dates are written by the booking workflow and always parse; anything
// older sorts last.
func (s *AppointmentService) ListResults(ctx context.Context, patientID string) ([]bson.M, error) {
	docs, err := s.store.Query(ctx, store.Results, map[string]string{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return resultDate(docs[i]).After(resultDate(docs[j]))
	})
	return docs, nil
}

func resultDate(doc bson.M) time.Time {
	raw, _ := doc["date"].(string)
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return date
}
