package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore keeps documents in-process. It is used by the test suite and
// for running the API locally without a MongoDB instance.
type MemoryStore struct {
	mu    sync.RWMutex
	colls map[string]map[string]bson.M
	order map[string][]string

	getCalls   int
	failCreate map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		colls:      make(map[string]map[string]bson.M),
		order:      make(map[string][]string),
		failCreate: make(map[string]error),
	}
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	doc, ok := m.colls[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(doc), nil
}

func (m *MemoryStore) Query(ctx context.Context, collection string, filter map[string]string) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := make([]bson.M, 0)
	for _, id := range m.order[collection] {
		doc, ok := m.colls[collection][id]
		if ok && matches(doc, filter) {
			docs = append(docs, clone(doc))
		}
	}
	return docs, nil
}

func (m *MemoryStore) Create(ctx context.Context, collection string, doc bson.M) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failCreate[collection]; err != nil {
		return "", err
	}
	id := uuid.NewString()
	m.put(collection, id, doc)
	return id, nil
}

func (m *MemoryStore) Set(ctx context.Context, collection, id string, doc bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(collection, id, doc)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.colls[collection][id]; !ok {
		return ErrNotFound
	}
	m.remove(collection, id)
	return nil
}

func (m *MemoryStore) DeleteMatching(ctx context.Context, collection string, filter map[string]string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	ids := append([]string(nil), m.order[collection]...)
	for _, id := range ids {
		doc, ok := m.colls[collection][id]
		if ok && matches(doc, filter) {
			m.remove(collection, id)
			deleted++
		}
	}
	return deleted, nil
}

// FailCreates makes every subsequent Create in the collection return err.
// Passing a nil error clears the injection.
func (m *MemoryStore) FailCreates(collection string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failCreate, collection)
		return
	}
	m.failCreate[collection] = err
}

// GetCalls reports how many Get lookups the store has served.
func (m *MemoryStore) GetCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getCalls
}

// put stores a copy of doc under id, tracking insertion order. Caller holds
// the write lock.
func (m *MemoryStore) put(collection, id string, doc bson.M) {
	if m.colls[collection] == nil {
		m.colls[collection] = make(map[string]bson.M)
	}
	if _, exists := m.colls[collection][id]; !exists {
		m.order[collection] = append(m.order[collection], id)
	}
	stored := clone(doc)
	stored["_id"] = id
	m.colls[collection][id] = stored
}

func (m *MemoryStore) remove(collection, id string) {
	delete(m.colls[collection], id)
	kept := m.order[collection][:0]
	for _, existing := range m.order[collection] {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	m.order[collection] = kept
}

func matches(doc bson.M, filter map[string]string) bool {
	for field, want := range filter {
		value, ok := doc[field]
		if !ok || fmt.Sprint(value) != want {
			return false
		}
	}
	return true
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
