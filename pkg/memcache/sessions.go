// pkg/memcache/sessions.go
package memcache

import (
	"sync"
	"time"

	"safarsathi/internal/models/session_models"
)

type SessionStore interface {
	// Get returns the record for sessionID if present and not expired, and
	// pushes its expiry a full TTL forward.
	Get(sessionID string) (session_models.TripRecord, bool)

	// Put replaces the whole record and refreshes the expiry.
	Put(sessionID string, record session_models.TripRecord)

	Delete(sessionID string)

	// Sweep drops expired sessions and returns how many were removed.
	Sweep() int
}

type entry struct {
	record    session_models.TripRecord
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *Sessions) Get(sessionID string) (session_models.TripRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.data[sessionID]
	if !ok || now.After(e.expiresAt) {
		return session_models.TripRecord{}, false
	}
	e.expiresAt = now.Add(s.ttl)
	s.data[sessionID] = e
	return e.record, true
}

func (s *Sessions) Put(sessionID string, record session_models.TripRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = entry{
		record:    record,
		expiresAt: s.now().Add(s.ttl),
	}
}

func (s *Sessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// Len counts stored sessions, expired ones included.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// MinJanitorInterval bounds how often the janitor may sweep.
const MinJanitorInterval = time.Second

// JanitorInterval is a quarter of ttl, never below MinJanitorInterval.
func JanitorInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, MinJanitorInterval)
}

// RunJanitor sweeps every interval until stop is closed. Non-positive
// intervals fall back to MinJanitorInterval.
func (s *Sessions) RunJanitor(interval time.Duration, stop <-chan struct{}, onSweep func(removed int)) {
	if interval <= 0 {
		interval = MinJanitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		case <-stop:
			return
		}
	}
}
