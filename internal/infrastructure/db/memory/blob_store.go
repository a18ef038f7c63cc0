package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// blob holds one uploaded object.
type blob struct {
	ContentType string
	Data        []byte
}

// BlobStore is the in-memory fallback for ports.BlobStore. URLs it returns
// are synthetic and not actually servable.
type BlobStore struct {
	mu     sync.RWMutex
	blobs  map[string]blob
	nextID int
}

func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string]blob), nextID: 1}
}

func (s *BlobStore) Upload(_ context.Context, name, contentType string, data []byte) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := "blob-" + strconv.Itoa(s.nextID)
	s.nextID++

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[id] = blob{ContentType: contentType, Data: stored}

	return id, fmt.Sprintf("memory://blobs/%s/%s", id, name), nil
}

func (s *BlobStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, id)
	return nil
}

// Len reports the number of stored blobs. Used by tests.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
