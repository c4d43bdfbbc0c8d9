// Package app provides the application kernel: one explicitly constructed
// container, a provider registry, and an HTTP entry point.
package app

import (
	"fmt"
	"net/http"

	"github.com/km-arc/go-inject/config"
	"github.com/km-arc/go-inject/inject"
	"github.com/km-arc/go-inject/providers"
	"github.com/km-arc/go-inject/routing"
)

// Application is the top-level application object.
//
// It embeds the container, so user code can pass an *Application anywhere an
// inject.Injector or *inject.Container is expected. Each Application owns its
// own container; there is no process-wide instance, so several applications
// (e.g. one per test) coexist without interference.
type Application struct {
	*inject.Container
	Providers *inject.ProviderRegistry
}

// New creates an application with the framework core providers registered:
// configuration (from the given .env files) and routing with container
// diagnostics. Core registration runs against a fresh container; a failure
// there is a wiring defect, so New panics on it.
func New(envFiles ...string) *Application {
	c := inject.New()
	registry := inject.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	core := []inject.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.RoutingServiceProvider{},
	}
	for _, p := range core {
		if err := registry.Register(p); err != nil {
			panic(err)
		}
	}
	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider inject.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return inject.MustInvoke[*config.Config](a.Container)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return inject.MustInvoke[*routing.Router](a.Container)
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	cfg := a.Config()
	addr := ":" + cfg.App.Port
	fmt.Printf("%s listening on http://localhost%s  [%s]\n",
		cfg.App.Name, addr, cfg.App.Env)
	return http.ListenAndServe(addr, a.Router())
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
