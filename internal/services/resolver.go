package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/albx0502/crm-api/internal/store"
)

// FallbackDisplayName is merged into a record when a reference cannot be
// resolved. A missing reference (doctor not yet assigned) is a normal
// state, not an error.
const FallbackDisplayName = "Not assigned"

// Ref describes a foreign-key field on a record and how to turn it into a
// display value.
type Ref struct {
	Field        string // field on the record holding the foreign id
	Collection   string // collection the id points into
	DisplayField string // field copied out of the target document
	TargetKey    string // key the display value is merged under
	Fallback     string
}

var (
	DoctorNameRef = Ref{
		Field:        "doctorId",
		Collection:   store.Doctors,
		DisplayField: "name",
		TargetKey:    "doctor_name",
		Fallback:     FallbackDisplayName,
	}
	SpecialtyNameRef = Ref{
		Field:        "specialtyId",
		Collection:   store.Specialties,
		DisplayField: "name",
		TargetKey:    "specialty_name",
		Fallback:     FallbackDisplayName,
	}
)

// Resolver merges display fields from referenced documents into records.
// Lookups are cached for the lifetime of the Resolver, so one instance per
// request avoids duplicate fetches while rendering a list.
type Resolver struct {
	store store.Store
	cache map[string]bson.M // "collection/id" -> document, nil when absent
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{store: s, cache: make(map[string]bson.M)}
}

// Resolve merges the referenced display value into doc under ref.TargetKey,
// falling back when the foreign id is empty or the target is missing. It
// never returns an error: an unresolvable reference degrades to the
// fallback value.
func (r *Resolver) Resolve(ctx context.Context, doc bson.M, ref Ref) bson.M {
	id, _ := doc[ref.Field].(string)
	if id == "" {
		doc[ref.TargetKey] = ref.Fallback
		return doc
	}

	target := r.lookup(ctx, ref.Collection, id)
	if target == nil {
		doc[ref.TargetKey] = ref.Fallback
		return doc
	}

	if display, ok := target[ref.DisplayField].(string); ok && display != "" {
		doc[ref.TargetKey] = display
	} else {
		doc[ref.TargetKey] = ref.Fallback
	}
	return doc
}

func (r *Resolver) lookup(ctx context.Context, collection, id string) bson.M {
	key := collection + "/" + id
	if doc, seen := r.cache[key]; seen {
		return doc
	}
	doc, err := r.store.Get(ctx, collection, id)
	if err != nil {
		doc = nil // not found and transport errors both degrade to the fallback
	}
	r.cache[key] = doc
	return doc
}
