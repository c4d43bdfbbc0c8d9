package inject

import "sync"

// ── Injector ─────────────────────────────────────────────────────────────────

// Injector is the resolution handle accepted by Invoke and friends.
//
// It is implemented by *Container itself and by the per-chain scope handed to
// provider functions while they run. Providers MUST resolve their own
// dependencies through the Injector they receive: that value carries the set
// of keys currently being resolved on the call path, which is what allows
// circular dependencies to be detected without flagging legitimate concurrent
// resolution from other goroutines.
type Injector interface {
	// ListProvidedServices returns all registered keys in registration order.
	ListProvidedServices() []Key

	// ListInvokedServices returns the keys successfully resolved so far,
	// in first-resolution order.
	ListInvokedServices() []Key

	// HasProvider reports whether a provider is registered for key.
	HasProvider(key Key) bool

	root() *Container
	chain() []Key
}

// ── Container ────────────────────────────────────────────────────────────────

// Container owns provider registrations and their memoized instances.
//
// A Container is safe for concurrent use: registration and resolution may
// happen from multiple goroutines, and a provider is invoked at most once per
// key for the lifetime of the container. Construct one per application (or
// per test) and pass it explicitly; there is no package-level instance.
type Container struct {
	reg *registry

	// invoked records keys in the order they were first successfully
	// resolved, for introspection.
	invokedMu sync.RWMutex
	invoked   []Key
}

// New creates an empty container.
func New() *Container {
	return &Container{reg: newRegistry()}
}

// ListProvidedServices returns all registered keys in registration order.
func (c *Container) ListProvidedServices() []Key {
	return c.reg.allKeys()
}

// ListInvokedServices returns the keys successfully resolved so far, in
// first-resolution order.
func (c *Container) ListInvokedServices() []Key {
	c.invokedMu.RLock()
	defer c.invokedMu.RUnlock()
	out := make([]Key, len(c.invoked))
	copy(out, c.invoked)
	return out
}

// HasProvider reports whether a provider is registered for key.
func (c *Container) HasProvider(key Key) bool {
	_, ok := c.reg.lookup(key)
	return ok
}

func (c *Container) root() *Container { return c }
func (c *Container) chain() []Key     { return nil }

// ── Resolution chain scope ───────────────────────────────────────────────────

// chainScope is the Injector a provider sees while it runs. It carries the
// ordered set of keys currently being resolved on this call path.
type chainScope struct {
	c    *Container
	keys []Key
}

func (s *chainScope) ListProvidedServices() []Key { return s.c.ListProvidedServices() }
func (s *chainScope) ListInvokedServices() []Key  { return s.c.ListInvokedServices() }
func (s *chainScope) HasProvider(key Key) bool    { return s.c.HasProvider(key) }
func (s *chainScope) root() *Container            { return s.c }
func (s *chainScope) chain() []Key                { return s.keys }

// ── Resolution engine ────────────────────────────────────────────────────────

// resolve obtains the value for key, invoking its provider if not memoized.
// chain is the set of keys already being resolved on this call path.
func (c *Container) resolve(key Key, chain []Key) (any, error) {
	e, ok := c.reg.lookup(key)
	if !ok {
		return nil, NotRegisteredError{Key: key}
	}

	// Re-entering a key on the same chain is a cycle. This must be checked
	// before taking the entry's invocation mutex: the outer frame of the
	// cycle still holds it.
	for _, k := range chain {
		if k == key {
			return nil, CircularDependencyError{Key: key, Chain: appendKey(chain, key)}
		}
	}

	// Serializes invocation per key. A resolver on a *different* chain
	// parks here while the provider is in flight, then picks up the
	// memoized value below, never a spurious cycle error.
	e.invokeMu.Lock()
	defer e.invokeMu.Unlock()

	if e.done {
		return e.value, nil
	}

	v, err := e.provider(&chainScope{c: c, keys: appendKey(chain, key)})
	if err != nil {
		// Entry stays unresolved so a later invocation can retry,
		// e.g. after the environment the provider reads is fixed.
		return nil, ProviderFailedError{Key: key, Err: err}
	}

	e.value = v
	e.done = true
	c.markInvoked(key)
	return v, nil
}

func (c *Container) markInvoked(key Key) {
	c.invokedMu.Lock()
	c.invoked = append(c.invoked, key)
	c.invokedMu.Unlock()
}

// appendKey copies chain and appends key, so nested scopes never share
// backing arrays.
func appendKey(chain []Key, key Key) []Key {
	out := make([]Key, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, key)
}
