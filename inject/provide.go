package inject

// ── Registration ─────────────────────────────────────────────────────────────

// Provider builds one value of type T.
//
// A provider receives an Injector and may resolve its own dependencies from
// it. That recursion is how the dependency graph is discovered, one
// resolution at a time. Resolve through the Injector argument, never through
// a Container captured from an outer scope: the argument carries the
// resolution chain used for cycle detection.
type Provider[T any] func(Injector) (T, error)

// Provide registers fn under the unnamed slot for T.
//
// Registration is lazy: fn is not invoked until the first Invoke[T].
// It fails with DuplicateKeyError if the slot is already occupied.
//
//	inject.Provide(c, func(i inject.Injector) (*Mailer, error) {
//	    cfg, err := inject.Invoke[*config.Config](i)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewMailer(cfg), nil
//	})
func Provide[T any](c *Container, fn Provider[T]) error {
	return ProvideNamed(c, "", fn)
}

// ProvideNamed registers fn under the (T, name) slot, so multiple providers
// of the same type can coexist.
func ProvideNamed[T any](c *Container, name string, fn Provider[T]) error {
	if fn == nil {
		return ErrNilProvider
	}
	return c.reg.register(keyOf[T](name), func(i Injector) (any, error) {
		return fn(i)
	})
}

// ProvideValue registers an already-built value under the unnamed slot for T.
func ProvideValue[T any](c *Container, v T) error {
	return ProvideNamedValue(c, "", v)
}

// ProvideNamedValue registers an already-built value under the (T, name) slot.
func ProvideNamedValue[T any](c *Container, name string, v T) error {
	return ProvideNamed(c, name, func(Injector) (T, error) {
		return v, nil
	})
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Invoke resolves the unnamed slot for T, invoking its provider on first use
// and returning the memoized value afterwards.
//
// Errors: NotRegisteredError, CircularDependencyError, ProviderFailedError.
func Invoke[T any](i Injector) (T, error) {
	return InvokeNamed[T](i, "")
}

// InvokeNamed resolves the (T, name) slot.
func InvokeNamed[T any](i Injector, name string) (T, error) {
	v, err := i.root().resolve(keyOf[T](name), i.chain())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// MustInvoke is Invoke for startup wiring: any resolution error is a
// programming or configuration defect, so it panics with the typed error.
func MustInvoke[T any](i Injector) T {
	v, err := Invoke[T](i)
	if err != nil {
		panic(err)
	}
	return v
}

// MustInvokeNamed is the named variant of MustInvoke.
func MustInvokeNamed[T any](i Injector, name string) T {
	v, err := InvokeNamed[T](i, name)
	if err != nil {
		panic(err)
	}
	return v
}
