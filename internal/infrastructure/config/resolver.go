package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/ports"
)

// ErrNoCredential is returned when every resolution source comes up empty.
var ErrNoCredential = errors.New("no API key configured")

// Resolver produces the immutable provider configuration for one run.
//
// Priority order: explicit CLI overrides, the persisted config file,
// environment variables (one per supported provider), and finally an
// interactive prompt whose result is persisted back to the config file.
type Resolver struct {
	Loader   *FileLoader
	Prompter ports.SetupPrompter
	Logger   ports.Logger
}

// NewResolver builds a resolver around the given loader and prompter.
func NewResolver(loader *FileLoader, prompter ports.SetupPrompter, log ports.Logger) *Resolver {
	return &Resolver{Loader: loader, Prompter: prompter, Logger: log}
}

// Resolve implements ports.ConfigResolver.
func (r *Resolver) Resolve(ctx context.Context, overrides domain.Overrides) (domain.Config, error) {
	if overrides.Provider != "" && overrides.APIKey != "" {
		return domain.Config{
			Provider: domain.NormalizeProvider(overrides.Provider),
			APIKey:   overrides.APIKey,
		}, nil
	}

	persisted, err := r.Loader.Load()
	if err != nil {
		r.Logger.Warn("config file unreadable", map[string]interface{}{
			"path": r.Loader.Path(), "error": err.Error(),
		})
		persisted = domain.Config{}
	}

	// A provider-only override still pins the provider; the key comes from
	// the remaining sources.
	if overrides.Provider != "" {
		provider := domain.NormalizeProvider(overrides.Provider)
		return r.resolveKeyFor(provider, persisted)
	}

	// A key-only override applies to the persisted provider, defaulting to
	// the first supported one.
	if overrides.APIKey != "" {
		provider := domain.SupportedProviders[0]
		if persisted.Provider != "" {
			provider = domain.NormalizeProvider(string(persisted.Provider))
		}
		return domain.Config{Provider: provider, APIKey: overrides.APIKey}, nil
	}

	if persisted.Provider != "" && persisted.APIKey != "" {
		persisted.Provider = domain.NormalizeProvider(string(persisted.Provider))
		return persisted, nil
	}

	for _, provider := range domain.SupportedProviders {
		if key := os.Getenv(provider.EnvVar()); key != "" {
			return domain.Config{Provider: provider, APIKey: key}, nil
		}
	}

	return r.resolveInteractive()
}

// resolveKeyFor finds a credential for an already-chosen provider, trying the
// config file, the provider's environment variable, then the prompt.
func (r *Resolver) resolveKeyFor(provider domain.ProviderName, persisted domain.Config) (domain.Config, error) {
	if persisted.APIKey != "" && domain.NormalizeProvider(string(persisted.Provider)) == provider {
		return domain.Config{Provider: provider, APIKey: persisted.APIKey, Model: persisted.Model}, nil
	}
	if key := os.Getenv(provider.EnvVar()); key != "" {
		return domain.Config{Provider: provider, APIKey: key}, nil
	}
	if r.Prompter == nil || !r.Prompter.Enabled() {
		return domain.Config{}, fmt.Errorf("%w for provider %s", ErrNoCredential, provider)
	}
	key, err := r.Prompter.APIKey(provider)
	if err != nil || key == "" {
		return domain.Config{}, fmt.Errorf("%w for provider %s", ErrNoCredential, provider)
	}
	cfg := domain.Config{Provider: provider, APIKey: key}
	r.persist(cfg)
	return cfg, nil
}

func (r *Resolver) resolveInteractive() (domain.Config, error) {
	if r.Prompter == nil || !r.Prompter.Enabled() {
		return domain.Config{}, ErrNoCredential
	}

	provider, err := r.Prompter.SelectProvider()
	if err != nil {
		return domain.Config{}, ErrNoCredential
	}
	key, err := r.Prompter.APIKey(provider)
	if err != nil || key == "" {
		return domain.Config{}, fmt.Errorf("%w for provider %s", ErrNoCredential, provider)
	}

	cfg := domain.Config{Provider: provider, APIKey: key}
	r.persist(cfg)
	return cfg, nil
}

func (r *Resolver) persist(cfg domain.Config) {
	if err := r.Loader.Save(cfg); err != nil {
		r.Logger.Warn("persist config failed", map[string]interface{}{
			"path": r.Loader.Path(), "error": err.Error(),
		})
	}
}

var _ ports.ConfigResolver = (*Resolver)(nil)
