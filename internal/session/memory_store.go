package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used in tests and for degraded boots
// without Redis. Records are held as encoded payloads so that reads go
// through the same decoding and shape validation as the Redis store.
type MemoryStore struct {
	mu    sync.RWMutex
	staff map[string][]byte
	kiosk map[string][]byte
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		staff: make(map[string][]byte),
		kiosk: make(map[string][]byte),
	}
}

func (s *MemoryStore) ReadStaff(_ context.Context, sessionID string) (*StaffSession, error) {
	s.mu.RLock()
	payload, ok := s.staff[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeStaff(payload)
}

func (s *MemoryStore) WriteStaff(_ context.Context, sessionID string, rec *StaffSession) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode staff session: %w", err)
	}
	s.mu.Lock()
	s.staff[sessionID] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteStaff(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.staff, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ReadKiosk(_ context.Context, sessionID string) (*KioskSession, error) {
	s.mu.RLock()
	payload, ok := s.kiosk[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeKiosk(payload)
}

func (s *MemoryStore) WriteKiosk(_ context.Context, sessionID string, rec *KioskSession) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode kiosk session: %w", err)
	}
	s.mu.Lock()
	s.kiosk[sessionID] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteKiosk(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.kiosk, sessionID)
	s.mu.Unlock()
	return nil
}

// SeedRaw injects an arbitrary payload for a session kind. Tests use it to
// exercise malformed-record handling.
func (s *MemoryStore) SeedRaw(kind Kind, sessionID string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case KindStaff:
		s.staff[sessionID] = payload
	case KindKiosk:
		s.kiosk[sessionID] = payload
	}
}
