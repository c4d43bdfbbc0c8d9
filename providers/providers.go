// Package providers contains the framework-level service providers the
// application kernel registers on every container it builds.
package providers

import (
	"net/http"

	"github.com/km-arc/go-inject/config"
	gohttp "github.com/km-arc/go-inject/http"
	"github.com/km-arc/go-inject/inject"
	"github.com/km-arc/go-inject/routing"
)

// ── ConfigServiceProvider ────────────────────────────────────────────────────

// ConfigServiceProvider binds the application configuration.
//
// Bound slots:
//   - *config.Config (unnamed)
//
// The .env files are read lazily, on first resolution of the config slot.
type ConfigServiceProvider struct {
	inject.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *inject.Container) error {
	envFiles := p.EnvFiles
	return inject.Provide(app, func(inject.Injector) (*config.Config, error) {
		return config.Load(envFiles...), nil
	})
}

// ── RoutingServiceProvider ───────────────────────────────────────────────────

// RoutingServiceProvider binds the HTTP router and, at boot time, mounts the
// container diagnostics endpoints:
//
//	GET /_container/services   registered slots, registration order
//	GET /_container/resolved   slots resolved so far, first-resolution order
//
// Bound slots:
//   - *routing.Router (unnamed)
type RoutingServiceProvider struct {
	inject.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *inject.Container) error {
	return inject.Provide(app, func(inject.Injector) (*routing.Router, error) {
		return routing.New(), nil
	})
}

func (p *RoutingServiceProvider) Boot(app *inject.Container) error {
	router, err := inject.Invoke[*routing.Router](app)
	if err != nil {
		return err
	}

	router.Prefix("/_container", func(r *routing.Router) {
		r.Get("/services", func(w http.ResponseWriter, _ *http.Request) {
			gohttp.NewResponse(w).Success(keyStrings(app.ListProvidedServices()))
		})
		r.Get("/resolved", func(w http.ResponseWriter, _ *http.Request) {
			gohttp.NewResponse(w).Success(keyStrings(app.ListInvokedServices()))
		})
	})
	return nil
}

func keyStrings(keys []inject.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
