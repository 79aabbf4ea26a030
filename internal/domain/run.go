package domain

import (
	"context"
	"time"
)

// RunRequest captures one monitored command invocation originating from the CLI.
type RunRequest struct {
	Context context.Context
	// Command is the shell-interpreted command line to execute.
	Command string
	// AssumeYes skips the analysis confirmation prompt.
	AssumeYes bool
	// SkipAnalysis disables the analysis pipeline entirely.
	SkipAnalysis bool
	Overrides    Overrides
}

// RunResponse is the canonical response propagated back to the CLI. ExitCode
// always equals the wrapped subprocess's exit code, independent of whether
// analysis ran, succeeded, or fell back.
type RunResponse struct {
	ExitCode      int
	ErrorDetected bool
	Declined      bool
	Provider      ProviderName
	Result        *AnalysisResult
	FromFallback  bool
	// SpawnError is set when the subprocess could not be started.
	SpawnError error
	// ConfigError is set when no provider credential was resolvable; the
	// analysis then comes from the fallback classifier.
	ConfigError error
}

// CommandOutput wraps what the command runner captured from one subprocess.
type CommandOutput struct {
	// Combined holds the merged stdout/stderr stream.
	Combined string
	ExitCode int
	// Started is false when the subprocess could not be spawned at all.
	Started  bool
	Duration time.Duration
}

// IncidentRecord captures one analyzed error for the history store.
type IncidentRecord struct {
	Timestamp    time.Time    `json:"timestamp"`
	Command      string       `json:"command"`
	ExitCode     int          `json:"exit_code"`
	ErrorMessage string       `json:"error_message"`
	Provider     ProviderName `json:"provider"`
	Confidence   float64      `json:"confidence"`
	Fallback     bool         `json:"fallback"`
	DurationMS   int64        `json:"duration_ms"`
}
