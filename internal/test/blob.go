package test

import (
	"context"
	"sync"
)

// BlobStoreStub keeps the blob in memory and can inject failures.
type BlobStoreStub struct {
	mu     sync.Mutex
	Data   []byte
	Exists bool
	GetErr error
	PutErr error
	Puts   int
}

// Get returns the stored blob or the configured error.
func (s *BlobStoreStub) Get(context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	return s.Data, s.Exists, nil
}

// Put stores the blob or fails with the configured error. Attempts are
// counted either way.
func (s *BlobStoreStub) Put(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Puts++
	if s.PutErr != nil {
		return s.PutErr
	}
	s.Data = append([]byte(nil), data...)
	s.Exists = true
	return nil
}

// Stored returns a copy of the current blob contents.
func (s *BlobStoreStub) Stored() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.Data...)
}
