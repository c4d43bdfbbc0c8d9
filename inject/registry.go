package inject

import "sync"

// ── Provider entries ─────────────────────────────────────────────────────────

// entry is one registered provider slot.
//
// Lifecycle: created unresolved at registration; "resolving" is the window in
// which invokeMu is held and done is still false; done flips to true exactly
// once, when the provider returns successfully. A failed invocation leaves the
// entry unresolved so a later resolution can retry.
type entry struct {
	key      Key
	provider func(Injector) (any, error)

	// invokeMu serializes provider invocation for this key.
	// See (*Container).resolve for the locking discipline.
	invokeMu sync.Mutex
	done     bool
	value    any
}

// ── Registry ─────────────────────────────────────────────────────────────────

// registry stores provider entries keyed by (type identity, name) and
// remembers registration order for introspection.
type registry struct {
	mu      sync.RWMutex
	entries map[Key]*entry
	order   []Key
}

func newRegistry() *registry {
	return &registry{entries: make(map[Key]*entry)}
}

// register inserts a new unresolved entry. The provider function is NOT
// invoked here. Registration is lazy, so registration order never matters.
func (r *registry) register(key Key, provider func(Injector) (any, error)) error {
	if provider == nil {
		return ErrNilProvider
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return DuplicateKeyError{Key: key}
	}
	r.entries[key] = &entry{key: key, provider: provider}
	r.order = append(r.order, key)
	return nil
}

// lookup returns the entry for key, without invoking anything.
func (r *registry) lookup(key Key) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// allKeys returns every registered key, in registration order.
func (r *registry) allKeys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Key, len(r.order))
	copy(out, r.order)
	return out
}
