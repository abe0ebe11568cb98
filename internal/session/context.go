package session

import "errors"

// ErrNoToken is raised before any upstream call is attempted when the
// session has no authorization token.
var ErrNoToken = errors.New("no authorization token in session context")

// IncompleteError reports a required navigation key that was never
// written, e.g. a detail screen opened without a selected subject.
type IncompleteError struct {
	Key string
}

func (e IncompleteError) Error() string {
	return "session context incomplete: missing " + e.Key
}

// Context is the typed view over one tab's stored values. It validates
// on read instead of handing out empty strings.
type Context struct {
	store Store
	id    string
}

func NewContext(store Store, sessionID string) Context {
	return Context{store: store, id: sessionID}
}

func (c Context) ID() string { return c.id }

// Token returns the auth token or ErrNoToken.
func (c Context) Token() (string, error) {
	v, ok := c.store.Get(c.id, KeyToken)
	if !ok || v == "" {
		return "", ErrNoToken
	}
	return v, nil
}

// Require returns the value for a required navigation key, or an
// IncompleteError naming it.
func (c Context) Require(key string) (string, error) {
	v, ok := c.store.Get(c.id, key)
	if !ok || v == "" {
		return "", IncompleteError{Key: key}
	}
	return v, nil
}

// Lookup is the non-failing read for optional keys.
func (c Context) Lookup(key string) (string, bool) {
	return c.store.Get(c.id, key)
}

func (c Context) Set(key, value string) {
	c.store.Set(c.id, key, value)
}

// Snapshot copies the whole context for the layout chrome.
func (c Context) Snapshot() map[string]string {
	return c.store.Values(c.id)
}
