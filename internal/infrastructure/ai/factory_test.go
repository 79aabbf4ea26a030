package ai

import (
	"testing"

	"github.com/watchit-dev/watchit/internal/domain"
)

func TestFactoryRejectsMissingCredential(t *testing.T) {
	f := NewFactory()
	if _, err := f.ForProvider(domain.Config{Provider: domain.ProviderOpenAI}); err == nil {
		t.Fatal("expected configuration error for missing API key")
	}
}

func TestFactorySelectsRequestedProvider(t *testing.T) {
	f := NewFactory()
	cases := []struct {
		provider domain.ProviderName
	}{
		{domain.ProviderOpenAI},
		{domain.ProviderGemini},
		{domain.ProviderGroq},
	}
	for _, tc := range cases {
		p, err := f.ForProvider(domain.Config{Provider: tc.provider, APIKey: "test-key"})
		if err != nil {
			t.Fatalf("ForProvider(%s) error = %v", tc.provider, err)
		}
		if p.Name() != tc.provider {
			t.Fatalf("ForProvider(%s).Name() = %s", tc.provider, p.Name())
		}
	}
}

func TestFactoryDefaultsUnknownProvider(t *testing.T) {
	f := NewFactory()
	p, err := f.ForProvider(domain.Config{Provider: "mystery", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("ForProvider error = %v", err)
	}
	if p.Name() != domain.ProviderOpenAI {
		t.Fatalf("unknown provider resolved to %s, want %s", p.Name(), domain.ProviderOpenAI)
	}
}
