package handlers

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/albx0502/crm-api/internal/store"
)

func TestAddMedicationEndpoint(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	st.Set(ctx, store.AvailableMedications, "med1", bson.M{
		"name": "Ibuprofen", "description": "Anti-inflammatory", "indications": "Take with food",
	})
	r := newTestRouter(NewHandler(st), "pat1", "patient")

	w, body := doJSON(t, r, http.MethodPost, "/api/medications", `{"availableMedicationId":"med1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if id, _ := body["id"].(string); id == "" {
		t.Fatalf("response must carry the new medication id: %v", body)
	}

	// Adding the same catalog entry again trips the duplicate guard.
	w, _ = doJSON(t, r, http.MethodPost, "/api/medications", `{"availableMedicationId":"med1"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a duplicate, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/medications", `{"availableMedicationId":"ghost"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing catalog entry, got %d", w.Code)
	}
}

func TestRemoveMedicationEndpointIsPatientScoped(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	st.Set(ctx, store.AvailableMedications, "med1", bson.M{"name": "Ibuprofen"})
	h := NewHandler(st)

	id, err := h.Medications.Add(ctx, "pat1", "med1")
	if err != nil {
		t.Fatalf("seed medication: %v", err)
	}

	other := newTestRouter(h, "pat2", "patient")
	w, _ := doJSON(t, other, http.MethodDelete, "/api/medications/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("another patient must not delete the medication, got %d", w.Code)
	}

	owner := newTestRouter(h, "pat1", "patient")
	w, _ = doJSON(t, owner, http.MethodDelete, "/api/medications/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	docs, _ := st.Query(ctx, store.Medications, nil)
	if len(docs) != 0 {
		t.Fatalf("medication must be gone, got %v", docs)
	}
}
