package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store is the tab-scoped key/value store behind the dashboard: one
// isolated value map per browser tab, string keys and values, no change
// notification. Consumers read at request time only.
type Store interface {
	// Create opens a new tab session and returns its ID.
	Create() string
	// Get returns the value for key in the given session. A missing key
	// or unknown session yields ("", false); callers must treat that as
	// "context not established", never as a hard failure.
	Get(sessionID, key string) (string, bool)
	// Set writes key=value into the session, creating the session's map
	// lazily if needed (a tab always has storage).
	Set(sessionID, key, value string)
	// Values returns a copy of every key/value pair in the session.
	Values(sessionID string) map[string]string
	// Close stops the idle sweeper.
	Close()
}

type tab struct {
	values   map[string]string
	lastSeen time.Time
}

type memoryStore struct {
	mu   sync.RWMutex
	tabs map[string]*tab
	ttl  time.Duration
	stop chan struct{}
	once sync.Once
}

// NewMemoryStore builds an in-memory Store whose sessions expire after
// sitting idle for ttl. Browser tabs never report closing, so sweeping
// is the only way entries die.
func NewMemoryStore(ttl time.Duration) Store {
	s := &memoryStore{
		tabs: make(map[string]*tab),
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep()
	}
	return s
}

func (s *memoryStore) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.tabs[id] = &tab{values: make(map[string]string), lastSeen: time.Now()}
	s.mu.Unlock()
	log.Debug().Str("session_id", id).Msg("Tab session created")
	return id
}

func (s *memoryStore) Get(sessionID, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tabs[sessionID]
	if !ok {
		return "", false
	}
	v, ok := t.values[key]
	return v, ok
}

func (s *memoryStore) Set(sessionID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tabs[sessionID]
	if !ok {
		t = &tab{values: make(map[string]string)}
		s.tabs[sessionID] = t
	}
	t.values[key] = value
	t.lastSeen = time.Now()
}

func (s *memoryStore) Values(sessionID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string)
	if t, ok := s.tabs[sessionID]; ok {
		for k, v := range t.values {
			out[k] = v
		}
	}
	return out
}

func (s *memoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *memoryStore) sweep() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, t := range s.tabs {
				if now.Sub(t.lastSeen) > s.ttl {
					delete(s.tabs, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
