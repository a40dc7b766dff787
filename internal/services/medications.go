package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/albx0502/crm-api/internal/models"
	"github.com/albx0502/crm-api/internal/store"
)

// ErrDuplicateMedication is returned when a patient adds a medication whose
// name is already on their list.
var ErrDuplicateMedication = errors.New("medication already added")

// MedicationsService manages the medication catalog and each patient's own
// medication list. Patients copy catalog entries into their list; the
// catalog itself is read-only here.
type MedicationsService struct {
	store store.Store
}

func NewMedicationsService(s store.Store) *MedicationsService {
	return &MedicationsService{store: s}
}

// ListAvailable returns the whole medication catalog.
func (s *MedicationsService) ListAvailable(ctx context.Context) ([]bson.M, error) {
	docs, err := s.store.Query(ctx, store.AvailableMedications, nil)
	if err != nil {
		return nil, fmt.Errorf("query available medications: %w", err)
	}
	return docs, nil
}

// ListForPatient returns the medications the patient has added.
func (s *MedicationsService) ListForPatient(ctx context.Context, patientID string) ([]bson.M, error) {
	docs, err := s.store.Query(ctx, store.Medications, map[string]string{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("query medications: %w", err)
	}
	return docs, nil
}

// Add copies a catalog entry into the patient's list. A medication whose
// name is already on the list is rejected with ErrDuplicateMedication, the
// same guard the add button applies.
func (s *MedicationsService) Add(ctx context.Context, patientID, availableID string) (string, error) {
	catalogDoc, err := s.store.Get(ctx, store.AvailableMedications, availableID)
	if err != nil {
		return "", err
	}
	var entry models.AvailableMedication
	if err := store.Decode(catalogDoc, &entry); err != nil {
		return "", err
	}

	owned, err := s.ListForPatient(ctx, patientID)
	if err != nil {
		return "", err
	}
	for _, doc := range owned {
		if name, _ := doc["name"].(string); name == entry.Name {
			return "", ErrDuplicateMedication
		}
	}

	doc, err := store.ToDoc(models.Medication{
		Name:        entry.Name,
		Description: entry.Description,
		Indications: entry.Indications,
		PatientID:   patientID,
	})
	if err != nil {
		return "", err
	}
	id, err := s.store.Create(ctx, store.Medications, doc)
	if err != nil {
		return "", fmt.Errorf("add medication: %w", err)
	}
	return id, nil
}

// Remove deletes one of the patient's medications. A medication owned by
// another patient reads as not found.
func (s *MedicationsService) Remove(ctx context.Context, patientID, medicationID string) error {
	doc, err := s.store.Get(ctx, store.Medications, medicationID)
	if err != nil {
		return err
	}
	if owner, _ := doc["patientId"].(string); owner != patientID {
		return store.ErrNotFound
	}
	return s.store.Delete(ctx, store.Medications, medicationID)
}
