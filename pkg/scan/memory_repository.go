package scan

import (
	"Agri-Assist-Backend/domain"
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryEntry struct {
	id   string
	data domain.Document
}

// MemoryRepository keeps documents in process memory. Collections keep
// insertion order.
type MemoryRepository struct {
	mu          sync.RWMutex
	collections map[string][]memoryEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{collections: make(map[string][]memoryEntry)}
}

func (r *MemoryRepository) AppendToSubcollection(_ context.Context, collection, docID, subcollection string, data domain.Document) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exists(collection, docID) {
		r.collections[collection] = append(r.collections[collection], memoryEntry{id: docID, data: domain.Document{}})
	}

	id := uuid.New().String()
	path := SubcollectionPath(collection, docID, subcollection)
	r.collections[path] = append(r.collections[path], memoryEntry{id: id, data: copyDocument(data)})
	return id, nil
}

func (r *MemoryRepository) ListTopLevel(_ context.Context, collection string) ([]domain.Document, error) {
	return r.Documents(collection), nil
}

// Documents returns a snapshot of any collection path, including child
// collections such as "farmers/f1/scans".
func (r *MemoryRepository) Documents(collection string) []domain.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.collections[collection]
	return toDocuments(len(entries), func(i int) (string, map[string]interface{}) {
		return entries[i].id, entries[i].data
	})
}

// Put stores a top-level document with the given fields, replacing any
// previous one.
func (r *MemoryRepository) Put(collection, docID string, data domain.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.collections[collection]
	for i := range entries {
		if entries[i].id == docID {
			entries[i].data = copyDocument(data)
			return
		}
	}
	r.collections[collection] = append(entries, memoryEntry{id: docID, data: copyDocument(data)})
}

func (r *MemoryRepository) exists(collection, docID string) bool {
	for _, e := range r.collections[collection] {
		if e.id == docID {
			return true
		}
	}
	return false
}

func copyDocument(data domain.Document) domain.Document {
	out := make(domain.Document, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
