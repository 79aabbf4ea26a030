package domain

// ProviderName enumerates supported AI backends.
type ProviderName string

const (
	ProviderOpenAI ProviderName = "openai"
	ProviderGemini ProviderName = "gemini"
	ProviderGroq   ProviderName = "groq"
)

// SupportedProviders lists backends in resolution priority order. The first
// entry doubles as the default when a requested name is unrecognized.
var SupportedProviders = []ProviderName{ProviderOpenAI, ProviderGemini, ProviderGroq}

// EnvVar returns the environment variable holding the provider's API key.
func (p ProviderName) EnvVar() string {
	switch p {
	case ProviderGemini:
		return "GOOGLE_API_KEY"
	case ProviderGroq:
		return "GROQ_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// DefaultModel returns the pinned model identifier for the provider.
func (p ProviderName) DefaultModel() string {
	switch p {
	case ProviderGemini:
		return "gemini-pro"
	case ProviderGroq:
		return "mixtral-8x7b-32768"
	default:
		return "gpt-3.5-turbo"
	}
}

// NormalizeProvider maps a user-supplied name onto a supported provider.
// Unrecognized names fall back to the first supported provider.
func NormalizeProvider(name string) ProviderName {
	switch ProviderName(name) {
	case ProviderOpenAI, ProviderGemini, ProviderGroq:
		return ProviderName(name)
	default:
		return SupportedProviders[0]
	}
}

// Config mirrors ~/.watchit/config.yaml. It is resolved once at startup and
// read-only for the remainder of the run.
type Config struct {
	Provider ProviderName `yaml:"provider"`
	APIKey   string       `yaml:"api_key"`
	// Model optionally overrides the provider's pinned default model.
	Model string `yaml:"model,omitempty"`
}

// Overrides carries explicit CLI flag values into config resolution. They
// take priority over the config file, environment, and interactive prompt.
type Overrides struct {
	Provider string
	APIKey   string
}
