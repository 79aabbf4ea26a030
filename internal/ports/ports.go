// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// These interfaces form the contract between the monitor application core and
// external adapters (infrastructure). The core depends on the abstractions
// defined here, never on concrete implementations like HTTP clients, SQLite
// stores, or the CLI framework.
package ports

import (
	"context"

	"github.com/watchit-dev/watchit/internal/domain"
)

// ConfigResolver produces the immutable provider configuration for one run.
// Resolution order: explicit overrides, persisted config file, environment
// variables, interactive prompt. It runs once, before any command execution.
type ConfigResolver interface {
	Resolve(ctx context.Context, overrides domain.Overrides) (domain.Config, error)
}

// PatternMatcher scans raw process output for known error signatures.
type PatternMatcher interface {
	Detect(raw string) bool
	ExtractMessage(raw string) string
}

// Provider defines the analysis capability of one remote AI backend.
// Implementations never panic: on failure they return a zero-confidence
// result together with a non-nil error describing the failure.
type Provider interface {
	Name() domain.ProviderName
	Analyze(context.Context, domain.ErrorContext) (domain.AnalysisResult, error)
}

// ProviderFactory builds the provider adapter selected by configuration.
// It fails when no credential is resolvable for the requested provider.
type ProviderFactory interface {
	ForProvider(cfg domain.Config) (Provider, error)
}

// FallbackClassifier is the deterministic offline analysis path. Classify is
// total: it returns a result for any input and never fails.
type FallbackClassifier interface {
	Classify(domain.ErrorContext) domain.AnalysisResult
}

// CommandRunner executes a shell command, streaming its merged output to the
// terminal while buffering it for post-hoc inspection.
type CommandRunner interface {
	Run(ctx context.Context, command string) (domain.CommandOutput, error)
}

// ConfirmationPrompter asks the user whether to analyze a detected error.
type ConfirmationPrompter interface {
	Confirm(message string) (bool, error)
	Enabled() bool
}

// SetupPrompter collects provider selection and credentials interactively
// when no other configuration source resolves.
type SetupPrompter interface {
	SelectProvider() (domain.ProviderName, error)
	APIKey(provider domain.ProviderName) (string, error)
	Enabled() bool
}

// StatusReporter surfaces progress feedback during the long-latency provider
// call. Implementations may animate a spinner or stay silent.
type StatusReporter interface {
	Start(message string)
	Stop()
}

// HistoryRepository persists analyzed incidents. Storage failures are best
// effort and must never affect the run outcome.
type HistoryRepository interface {
	Save(record domain.IncidentRecord) error
	Records(limit int, search string) ([]domain.IncidentRecord, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
