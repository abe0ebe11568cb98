package builder

import "sync"

// Registry keeps at most one active builder per tab session. Starting a
// new exam replaces whatever the tab was drafting.
type Registry struct {
	mu       sync.Mutex
	builders map[string]*Builder
}

func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]*Builder)}
}

func (r *Registry) Start(sessionID, examType string, meta Meta) (*Builder, error) {
	b, err := New(examType, meta)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.builders[sessionID] = b
	r.mu.Unlock()
	return b, nil
}

func (r *Registry) Get(sessionID string) (*Builder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.builders[sessionID]
	return b, ok
}

// Clear drops the tab's builder, e.g. after a successful submission.
func (r *Registry) Clear(sessionID string) {
	r.mu.Lock()
	delete(r.builders, sessionID)
	r.mu.Unlock()
}
