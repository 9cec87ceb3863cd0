package store

import (
	"context"
	"sync"
)

// MemoryCredentialStore keeps the credential for the lifetime of the process.
// The zero value is ready to use.
type MemoryCredentialStore struct {
	mu         sync.RWMutex
	credential string
}

// NewMemoryCredentialStore returns an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (m *MemoryCredentialStore) Set(_ context.Context, credential string) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	return nil
}

func (m *MemoryCredentialStore) Get(_ context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.credential, m.credential != "", nil
}

func (m *MemoryCredentialStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	return nil
}
