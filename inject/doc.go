// Package inject provides a minimal, non-reflective dependency injection
// container built on generics.
//
// # Overview
//
// A Container maps (type, optional name) slots to provider functions. Nothing
// runs at registration time: a provider is invoked on the first Invoke of its
// slot, the result is memoized for the lifetime of the container, and the
// dependency graph is discovered implicitly as providers resolve their own
// dependencies. There is no reflection and no code generation: the type half
// of every slot key comes from the generic type parameter at the call site.
//
// # Registering and resolving
//
//	c := inject.New()
//
//	inject.Provide(c, func(i inject.Injector) (*config.Config, error) {
//	    return config.Load(), nil
//	})
//
//	inject.Provide(c, func(i inject.Injector) (*Mailer, error) {
//	    cfg, err := inject.Invoke[*config.Config](i)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewMailer(cfg), nil
//	})
//
//	mailer, err := inject.Invoke[*Mailer](c)   // builds config, then mailer
//	mailer = inject.MustInvoke[*Mailer](c)     // startup wiring: panic on error
//
// Named slots let several providers of one type coexist:
//
//	inject.ProvideNamed(c, "primary", newPrimaryPool)
//	inject.ProvideNamed(c, "replica", newReplicaPool)
//	pool, err := inject.InvokeNamed[*Pool](c, "replica")
//
// # Contracts
//
//   - A provider runs at most once per container; later invocations return
//     the memoized value.
//   - Registering a second provider for an occupied slot fails with
//     DuplicateKeyError; slots are never overwritten.
//   - A provider that returns an error leaves its slot unresolved, so the
//     same slot can be invoked again after the underlying condition is fixed.
//   - A provider whose resolution chain re-enters its own slot fails with
//     CircularDependencyError. Detection is scoped to the chain, so two
//     goroutines resolving the same slot concurrently never see a false
//     cycle; the second simply waits for the memoized value.
//
// Providers must resolve dependencies through the Injector they receive, not
// through a Container captured elsewhere; the argument carries the resolution
// chain that makes cycle detection work.
//
// # Introspection
//
//	c.ListProvidedServices()  // every registered slot, registration order
//	c.ListInvokedServices()   // slots resolved so far, first-resolution order
//
// # Service providers
//
// For larger applications, ServiceProvider groups registrations with a boot
// phase that runs after everything is registered:
//
//	registry := inject.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
package inject
