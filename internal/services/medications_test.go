package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/albx0502/crm-api/internal/store"
)

func seedCatalog(t *testing.T, st *store.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	st.Set(ctx, store.AvailableMedications, "med1", bson.M{
		"name": "Ibuprofen", "description": "Anti-inflammatory", "indications": "Take with food",
	})
	st.Set(ctx, store.AvailableMedications, "med2", bson.M{
		"name": "Paracetamol", "description": "Analgesic", "indications": "Every 8 hours",
	})
}

func TestMedicationsListAvailable(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seedCatalog(t, st)
	svc := NewMedicationsService(st)

	docs, err := svc.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected the whole catalog, got %d entries", len(docs))
	}
}

func TestMedicationsAddCopiesCatalogEntry(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seedCatalog(t, st)
	svc := NewMedicationsService(st)

	id, err := svc.Add(ctx, "pat1", "med1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	doc, err := st.Get(ctx, store.Medications, id)
	if err != nil {
		t.Fatalf("stored medication: %v", err)
	}
	for field, want := range map[string]string{
		"name":        "Ibuprofen",
		"description": "Anti-inflammatory",
		"indications": "Take with food",
		"patientId":   "pat1",
	} {
		if doc[field] != want {
			t.Fatalf("medication field %s = %v, want %q", field, doc[field], want)
		}
	}

	// The catalog entry itself is untouched.
	catalog, _ := st.Get(ctx, store.AvailableMedications, "med1")
	if _, has := catalog["patientId"]; has {
		t.Fatalf("catalog entry must stay patient-free: %v", catalog)
	}
}

func TestMedicationsAddRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seedCatalog(t, st)
	svc := NewMedicationsService(st)

	if _, err := svc.Add(ctx, "pat1", "med1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(ctx, "pat1", "med1"); !errors.Is(err, ErrDuplicateMedication) {
		t.Fatalf("expected ErrDuplicateMedication, got %v", err)
	}

	// The guard is per patient, not global.
	if _, err := svc.Add(ctx, "pat2", "med1"); err != nil {
		t.Fatalf("another patient must be able to add the same entry: %v", err)
	}

	docs, _ := svc.ListForPatient(ctx, "pat1")
	if len(docs) != 1 {
		t.Fatalf("duplicate add must not write, got %d medications", len(docs))
	}
}

func TestMedicationsAddMissingCatalogEntry(t *testing.T) {
	ctx := context.Background()
	svc := NewMedicationsService(store.NewMemoryStore())

	if _, err := svc.Add(ctx, "pat1", "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMedicationsListForPatientIsScoped(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seedCatalog(t, st)
	svc := NewMedicationsService(st)

	svc.Add(ctx, "pat1", "med1")
	svc.Add(ctx, "pat1", "med2")
	svc.Add(ctx, "pat2", "med1")

	docs, err := svc.ListForPatient(ctx, "pat1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected pat1's 2 medications, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc["patientId"] != "pat1" {
			t.Fatalf("foreign medication leaked: %v", doc)
		}
	}
}

func TestMedicationsRemove(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seedCatalog(t, st)
	svc := NewMedicationsService(st)

	id, _ := svc.Add(ctx, "pat1", "med1")

	if err := svc.Remove(ctx, "pat2", id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("another patient's medication must read as not found, got %v", err)
	}
	if err := svc.Remove(ctx, "pat1", id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, "pat1", id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}

	// Removing frees the name for re-adding.
	if _, err := svc.Add(ctx, "pat1", "med1"); err != nil {
		t.Fatalf("re-add after removal: %v", err)
	}
}
