// Package monitor orchestrates the run -> detect -> analyze pipeline.
package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/ports"
)

const confirmQuestion = "Detected an error. Would you like me to analyze it and suggest a fix?"

// Service ties the command runner, pattern matcher, provider adapters, and
// fallback classifier together for one monitored invocation.
//
// The reported exit code always equals the wrapped subprocess's exit code;
// analysis never changes it. At most one analysis result is produced per
// invocation, and only after user confirmation.
type Service struct {
	ConfigResolver ports.ConfigResolver
	Runner         ports.CommandRunner
	Matcher        ports.PatternMatcher
	Factory        ports.ProviderFactory
	Fallback       ports.FallbackClassifier
	Prompter       ports.ConfirmationPrompter
	Status         ports.StatusReporter
	History        ports.HistoryRepository
	Logger         ports.Logger
}

// Run processes a single monitored command.
func (s *Service) Run(req domain.RunRequest) (domain.RunResponse, error) {
	if s.ConfigResolver == nil || s.Runner == nil || s.Matcher == nil ||
		s.Factory == nil || s.Fallback == nil || s.Logger == nil {
		return domain.RunResponse{}, errors.New("monitor.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	// Configuration is resolved once, before the command runs; the result is
	// immutable for the rest of the invocation. A missing credential only
	// disables the provider path, never the command itself.
	cfg, cfgErr := s.ConfigResolver.Resolve(ctx, req.Overrides)
	if cfgErr != nil {
		s.Logger.Warn("provider configuration unresolved", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}

	output, runErr := s.Runner.Run(ctx, req.Command)
	resp := domain.RunResponse{ExitCode: output.ExitCode}
	if runErr != nil {
		if !output.Started {
			resp.SpawnError = runErr
			return resp, nil
		}
		s.Logger.Warn("command run degraded", map[string]interface{}{"error": runErr.Error()})
	}

	if !s.Matcher.Detect(output.Combined) {
		return resp, nil
	}
	resp.ErrorDetected = true

	if req.SkipAnalysis {
		return resp, nil
	}

	if !req.AssumeYes {
		if s.Prompter == nil || !s.Prompter.Enabled() {
			resp.Declined = true
			return resp, nil
		}
		ok, err := s.Prompter.Confirm(confirmQuestion)
		if err != nil || !ok {
			resp.Declined = true
			return resp, nil
		}
	}

	ectx := domain.ErrorContext{
		Message: s.Matcher.ExtractMessage(output.Combined),
		Raw:     output.Combined,
	}

	result, provider, fromFallback := s.analyze(ctx, cfg, cfgErr, ectx)
	resp.Result = &result
	resp.Provider = provider
	resp.FromFallback = fromFallback
	resp.ConfigError = cfgErr

	s.record(req.Command, output, result, provider, fromFallback)
	return resp, nil
}

// analyze dispatches to the configured provider and falls back to the local
// classifier when the provider is unconfigured, errs, or returns a
// zero-confidence result. Exactly one result comes back on every path.
func (s *Service) analyze(
	ctx context.Context,
	cfg domain.Config,
	cfgErr error,
	ectx domain.ErrorContext,
) (domain.AnalysisResult, domain.ProviderName, bool) {
	if cfgErr != nil {
		return s.Fallback.Classify(ectx), "", true
	}

	provider, err := s.Factory.ForProvider(cfg)
	if err != nil {
		s.Logger.Warn("provider init failed", map[string]interface{}{"error": err.Error()})
		return s.Fallback.Classify(ectx), "", true
	}

	s.Logger.Info("calling provider", map[string]interface{}{
		"provider": provider.Name(),
		"model":    cfg.Model,
	})

	if s.Status != nil {
		s.Status.Start("Consulting AI for solutions...")
	}
	result, err := provider.Analyze(ctx, ectx)
	if s.Status != nil {
		s.Status.Stop()
	}

	if err != nil || result.Failed() {
		s.Logger.Warn("provider analysis failed", map[string]interface{}{
			"provider": provider.Name(),
			"error":    errString(err),
		})
		return s.Fallback.Classify(ectx), provider.Name(), true
	}
	return result, provider.Name(), false
}

// record persists the incident, best effort.
func (s *Service) record(
	command string,
	output domain.CommandOutput,
	result domain.AnalysisResult,
	provider domain.ProviderName,
	fromFallback bool,
) {
	if s.History == nil {
		return
	}
	err := s.History.Save(domain.IncidentRecord{
		Timestamp:    time.Now(),
		Command:      command,
		ExitCode:     output.ExitCode,
		ErrorMessage: result.Error,
		Provider:     provider,
		Confidence:   result.Confidence,
		Fallback:     fromFallback,
		DurationMS:   output.Duration.Milliseconds(),
	})
	if err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
