package otp

import (
	"sync"
	"time"
)

// MemoryStore 是 Store 的内存实现，用于测试与无 Redis 的本地开发。
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	pending   PendingSignup
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(email string, pending PendingSignup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = memoryEntry{pending: pending, expiresAt: time.Now().Add(Expiry)}
	return nil
}

func (s *MemoryStore) Get(email string) (PendingSignup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, email)
		return PendingSignup{}, ErrPendingNotFound
	}
	return entry.pending, nil
}

func (s *MemoryStore) Delete(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}
