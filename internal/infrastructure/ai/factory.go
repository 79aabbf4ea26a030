// Package ai implements the provider adapters, their factory, and the local
// fallback classifier.
//
// Each adapter wraps one remote chat/completion API behind the same
// Analyze(context) -> AnalysisResult contract, so the orchestrator stays
// backend-agnostic. New backends are added as new variants here, not by
// editing dispatch sites.
package ai

import (
	"fmt"
	"net/http"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/ports"
)

// Factory creates provider adapters from resolved configuration.
// It maintains a single HTTP client shared across all adapters.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a provider factory with a configured HTTP client.
func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

// ForProvider builds the adapter selected by cfg. Unrecognized provider names
// fall back to the first supported provider; a missing credential is a
// configuration error.
func (f *Factory) ForProvider(cfg domain.Config) (ports.Provider, error) {
	provider := domain.NormalizeProvider(string(cfg.Provider))
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no %s API key found", provider)
	}

	switch provider {
	case domain.ProviderGemini:
		return newGeminiProvider(cfg.APIKey, cfg.Model, f.httpClient), nil
	case domain.ProviderGroq:
		return newGroqProvider(cfg.APIKey, cfg.Model, f.httpClient), nil
	default:
		return newOpenAIProvider(cfg.APIKey, cfg.Model, f.httpClient), nil
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
