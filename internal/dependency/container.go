// Package dependency wires core geonet services using go.uber.org/dig.
package dependency

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/geonet-ai/geonet/internal/config"
	"github.com/geonet-ai/geonet/internal/geocode"
	"github.com/geonet-ai/geonet/internal/providers"
	"github.com/geonet-ai/geonet/internal/schema"
	"github.com/geonet-ai/geonet/internal/session"
	"github.com/geonet-ai/geonet/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	provider schema.LLMProvider
	geocoder geocode.Geocoder
	registry *tools.Registry
	session  *session.Session
}

func (c *Container) Provider() schema.LLMProvider { return c.provider }
func (c *Container) Geocoder() geocode.Geocoder   { return c.geocoder }
func (c *Container) Registry() *tools.Registry    { return c.registry }
func (c *Container) Session() *session.Session    { return c.session }

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	constructors := []any{
		func() *config.Config { return cfg },
		newProvider,
		newGeocoder,
		newRegistry,
		newSession,
	}
	for _, ctor := range constructors {
		if err := d.Provide(ctor); err != nil {
			return nil, err
		}
	}

	var result *Container
	err := d.Invoke(func(
		provider schema.LLMProvider,
		geocoder geocode.Geocoder,
		registry *tools.Registry,
		sess *session.Session,
	) {
		result = &Container{
			provider: provider,
			geocoder: geocoder,
			registry: registry,
			session:  sess,
		}
	})
	return result, err
}

func newProvider(cfg *config.Config) (schema.LLMProvider, error) {
	if cfg.Provider.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for model %q (edit %s)",
			cfg.Agent.Model, config.ConfigPath())
	}
	return providers.New(providers.Params{
		APIKey:       cfg.Provider.APIKey,
		APIBase:      cfg.Provider.APIBase,
		DefaultModel: cfg.Agent.Model,
		ExtraHeaders: cfg.Provider.ExtraHeaders,
	}), nil
}

func newGeocoder(cfg *config.Config) geocode.Geocoder {
	return geocode.NewClient(geocode.Options{
		BaseURL:     cfg.Geocoder.BaseURL,
		UserAgent:   cfg.Geocoder.UserAgent,
		Timeout:     cfg.Geocoder.Timeout.Std(),
		MinInterval: cfg.Geocoder.MinInterval.Std(),
	})
}

func newRegistry(geo geocode.Geocoder) (*tools.Registry, error) {
	return tools.NewGeoRegistry(geo)
}

func newSession(cfg *config.Config, provider schema.LLMProvider, registry *tools.Registry) *session.Session {
	return session.New(provider, registry, cfg.SystemPrompt(), session.Settings{
		Model:        cfg.Agent.Model,
		MaxTokens:    cfg.Agent.MaxTokens,
		Temperature:  cfg.Agent.Temperature,
		MaxToolIter:  cfg.Agent.MaxToolIterations,
		MemoryWindow: cfg.Agent.MemoryWindow,
	})
}
