package usecase

import (
	"sync"
	"time"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
)

// Session owns the single-entry view cache and the active store identifier.
// There is never more than one cached entry; any mutating usecase invalidates
// it synchronously before the next read. The mutex only guards against
// concurrent HTTP handlers, the semantics stay single-writer.
type Session struct {
	mu       sync.Mutex
	storeID  string
	views    []entity.CustomerView
	cachedAt time.Time
	valid    bool
}

// NewSession creates a session bound to one backing store.
func NewSession(storeID string) *Session {
	return &Session{storeID: storeID}
}

// StoreID returns the active backend identifier.
func (s *Session) StoreID() string { return s.storeID }

// Cached returns the memoized views, if still valid.
func (s *Session) Cached() ([]entity.CustomerView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.valid {
		return nil, false
	}
	return s.views, true
}

// Put replaces the cache entry.
func (s *Session) Put(views []entity.CustomerView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = views
	s.cachedAt = time.Now()
	s.valid = true
}

// Invalidate drops the entry unconditionally.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = nil
	s.valid = false
}
