package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/albx0502/crm-api/internal/store"
)

func TestResolveMergesDisplayName(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	st.Set(ctx, store.Doctors, "doc1", bson.M{"name": "Laura", "surname": "Gil"})

	doc := bson.M{"doctorId": "doc1", "date": "2025-03-01"}
	NewResolver(st).Resolve(ctx, doc, DoctorNameRef)

	if doc["doctor_name"] != "Laura" {
		t.Fatalf("expected resolved doctor name, got %v", doc["doctor_name"])
	}
}

func TestResolveEmptyForeignKeySkipsLookup(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	for _, doc := range []bson.M{
		{"date": "2025-03-01"},                  // field absent
		{"doctorId": "", "date": "2025-03-01"},  // field empty
		{"doctorId": nil, "date": "2025-03-01"}, // field null
	} {
		NewResolver(st).Resolve(ctx, doc, DoctorNameRef)
		if doc["doctor_name"] != FallbackDisplayName {
			t.Fatalf("expected fallback for %v, got %v", doc, doc["doctor_name"])
		}
	}
	if st.GetCalls() != 0 {
		t.Fatalf("empty foreign keys must not hit the store, saw %d lookups", st.GetCalls())
	}
}

func TestResolveMissingTargetFallsBack(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	doc := bson.M{"doctorId": "ghost"}
	NewResolver(st).Resolve(ctx, doc, DoctorNameRef)

	if doc["doctor_name"] != FallbackDisplayName {
		t.Fatalf("a dangling reference must degrade to the fallback, got %v", doc["doctor_name"])
	}
}

func TestResolveTargetWithoutDisplayFieldFallsBack(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	st.Set(ctx, store.Doctors, "doc1", bson.M{"surname": "Gil"})

	doc := bson.M{"doctorId": "doc1"}
	NewResolver(st).Resolve(ctx, doc, DoctorNameRef)

	if doc["doctor_name"] != FallbackDisplayName {
		t.Fatalf("a target without the display field must fall back, got %v", doc["doctor_name"])
	}
}

func TestResolveCachesLookupsPerResolver(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	st.Set(ctx, store.Doctors, "doc1", bson.M{"name": "Laura"})

	resolver := NewResolver(st)
	for i := 0; i < 5; i++ {
		resolver.Resolve(ctx, bson.M{"doctorId": "doc1"}, DoctorNameRef)
	}
	if st.GetCalls() != 1 {
		t.Fatalf("repeated references must be served from the cache, saw %d lookups", st.GetCalls())
	}

	// Negative results are cached too.
	for i := 0; i < 3; i++ {
		resolver.Resolve(ctx, bson.M{"doctorId": "ghost"}, DoctorNameRef)
	}
	if st.GetCalls() != 2 {
		t.Fatalf("missing references must be cached as well, saw %d lookups", st.GetCalls())
	}
}
