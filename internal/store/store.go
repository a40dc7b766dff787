package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names used by the API.
const (
	Patients             = "patients"
	Doctors              = "doctors"
	Specialties          = "specialties"
	Appointments         = "appointments"
	Results              = "results"
	Favorites            = "favorites"
	Medications          = "medications"
	AvailableMedications = "available_medications"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the document-database boundary. Documents are schemaless bson
// maps in named collections, queried by field equality only.
type Store interface {
	// Get fetches a single document by id.
	Get(ctx context.Context, collection, id string) (bson.M, error)

	// Query returns every document matching all of the given equality
	// filters. An empty filter returns the whole collection.
	Query(ctx context.Context, collection string, filter map[string]string) ([]bson.M, error)

	// Create stores a new document under a generated id and returns it.
	Create(ctx context.Context, collection string, doc bson.M) (string, error)

	// Set writes a document under a caller-chosen id, replacing any
	// existing document with that id.
	Set(ctx context.Context, collection, id string, doc bson.M) error

	// Delete removes a single document by id.
	Delete(ctx context.Context, collection, id string) error

	// DeleteMatching removes every document matching the equality filters
	// and reports how many were deleted.
	DeleteMatching(ctx context.Context, collection string, filter map[string]string) (int64, error)
}

// Decode copies a raw document into a bson-tagged struct.
func Decode(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// ToDoc converts a bson-tagged struct into a raw document.
func ToDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
