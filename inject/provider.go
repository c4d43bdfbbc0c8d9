package inject

// ── ServiceProvider interface ────────────────────────────────────────────────

// ServiceProvider groups related registrations and their post-registration
// setup into one unit.
//
// Register binds slots into the container and must not resolve anything;
// other providers may not be registered yet. Boot runs after ALL providers
// have been registered, so it is safe to resolve any slot there.
//
//	type AppServiceProvider struct{ inject.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *inject.Container) error {
//	    return inject.Provide(app, func(i inject.Injector) (*Mailer, error) {
//	        cfg, err := inject.Invoke[*config.Config](i)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return NewMailer(cfg), nil
//	    })
//	}
type ServiceProvider interface {
	// Register binds slots into the container.
	// Do NOT resolve other slots here; use Boot() for that.
	Register(app *Container) error

	// Boot is called after all providers are registered.
	// Safe to resolve and use any slot here.
	Boot(app *Container) error
}

// ── BaseProvider ─────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot().
// Embed it in providers that only need Register().
type BaseProvider struct{}

func (BaseProvider) Boot(_ *Container) error { return nil }

// ── ProviderRegistry ─────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders.
//
// It is a startup-time helper, driven from a single goroutine; concurrent
// resolution may begin once Boot has returned.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method. Registering the
// same provider instance twice is a no-op.
//
// If the registry has already booted, the provider is booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}

	if err := provider.Register(r.app); err != nil {
		return err
	}
	r.registered[provider] = true
	r.providers = append(r.providers, provider)

	if r.booted {
		return provider.Boot(r.app)
	}
	return nil
}

// Boot calls Boot() on all registered providers, in registration order.
// Must be called after ALL providers have been registered. A second call is
// a no-op.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, provider := range r.providers {
		if err := provider.Boot(r.app); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
