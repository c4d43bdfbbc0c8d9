package inject

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilProvider is returned when a provider function is registered as nil.
var ErrNilProvider = errors.New("inject: nil provider function")

// DuplicateKeyError is returned at registration time when a provider is
// already registered for the same (type, name) key.
type DuplicateKeyError struct{ Key Key }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: inject: provider already registered for *config.Config
	return fmt.Sprintf("inject: provider already registered for %s", e.Key)
}

// NotRegisteredError is returned at resolution time when no provider exists
// for the requested key.
type NotRegisteredError struct{ Key Key }

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	return fmt.Sprintf("inject: no provider registered for %s", e.Key)
}

// CircularDependencyError is returned when a provider transitively depends on
// itself within a single resolution chain.
//
// Chain holds every key on the failing resolution path, outermost first, with
// the re-entered key repeated at the end.
type CircularDependencyError struct {
	Key   Key
	Chain []Key
}

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	// Example: inject: circular dependency on *A (*A -> *B -> *A)
	parts := make([]string, len(e.Chain))
	for i, k := range e.Chain {
		parts[i] = k.String()
	}
	return fmt.Sprintf("inject: circular dependency on %s (%s)", e.Key, strings.Join(parts, " -> "))
}

// ProviderFailedError wraps a failure returned by a provider function, adding
// the key being resolved for context. The original error is reachable with
// errors.Is / errors.As through Unwrap.
type ProviderFailedError struct {
	Key Key
	Err error
}

// Error implements the error interface.
func (e ProviderFailedError) Error() string {
	return fmt.Sprintf("inject: provider for %s failed: %v", e.Key, e.Err)
}

// Unwrap exposes the provider's original error.
func (e ProviderFailedError) Unwrap() error { return e.Err }
