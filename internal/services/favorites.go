package services

import (
	"context"
	"fmt"

	"github.com/albx0502/crm-api/internal/models"
	"github.com/albx0502/crm-api/internal/store"
)

// FavoritesService maintains the (patient, doctor) favorites relation as
// join documents in the favorites collection.
type FavoritesService struct {
	store store.Store
}

func NewFavoritesService(s store.Store) *FavoritesService {
	return &FavoritesService{store: s}
}

// FavoriteKey is the deterministic document id for a (patient, doctor)
// pair. Keying the join document this way makes Add an idempotent upsert:
// a pair can never produce duplicate documents.
func FavoriteKey(patientID, doctorID string) string {
	return patientID + ":" + doctorID
}

// IsFavorite reports whether the patient has favorited the doctor. The
// existence of a matching join document is the sole source of truth.
func (s *FavoritesService) IsFavorite(ctx context.Context, patientID, doctorID string) (bool, error) {
	docs, err := s.store.Query(ctx, store.Favorites, map[string]string{
		"patientId": patientID,
		"doctorId":  doctorID,
	})
	if err != nil {
		return false, fmt.Errorf("query favorites: %w", err)
	}
	return len(docs) > 0, nil
}

// Add marks the doctor as a favorite of the patient. Adding an existing
// favorite is a no-op.
func (s *FavoritesService) Add(ctx context.Context, patientID, doctorID string) error {
	doc, err := store.ToDoc(models.Favorite{PatientID: patientID, DoctorID: doctorID})
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, store.Favorites, FavoriteKey(patientID, doctorID), doc); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove deletes every join document for the pair. Older clients created
// favorites with store-generated ids and could duplicate a pair, so removal
// matches on the fields rather than the composite key. Removing a
// non-favorite is a no-op.
func (s *FavoritesService) Remove(ctx context.Context, patientID, doctorID string) error {
	_, err := s.store.DeleteMatching(ctx, store.Favorites, map[string]string{
		"patientId": patientID,
		"doctorId":  doctorID,
	})
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// Toggle flips the favorite state for the pair and reports the new state.
func (s *FavoritesService) Toggle(ctx context.Context, patientID, doctorID string) (bool, error) {
	favorite, err := s.IsFavorite(ctx, patientID, doctorID)
	if err != nil {
		return false, err
	}
	if favorite {
		return false, s.Remove(ctx, patientID, doctorID)
	}
	return true, s.Add(ctx, patientID, doctorID)
}

// ListDoctorIDs returns the ids of every doctor the patient has favorited,
// for loading the in-memory favorites set at screen entry.
func (s *FavoritesService) ListDoctorIDs(ctx context.Context, patientID string) ([]string, error) {
	docs, err := s.store.Query(ctx, store.Favorites, map[string]string{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	ids := make([]string, 0, len(docs))
	seen := make(map[string]bool)
	for _, doc := range docs {
		id, _ := doc["doctorId"].(string)
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}
