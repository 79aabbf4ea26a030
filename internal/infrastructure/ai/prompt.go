package ai

import (
	"fmt"
	"strings"

	"github.com/watchit-dev/watchit/internal/domain"
)

const systemPrompt = "You are a helpful AI programming assistant."

// buildAnalysisPrompt renders the fixed instructional prompt sent to every
// backend: the extracted message, the full captured output, and a request for
// a causal explanation plus a fix.
func buildAnalysisPrompt(ectx domain.ErrorContext) string {
	var builder strings.Builder
	builder.WriteString("You are a programming assistant. Help debug the following error:\n\n")
	builder.WriteString(fmt.Sprintf("Error message: %s\n\n", messageOrUnknown(ectx)))
	builder.WriteString("Full error:\n")
	builder.WriteString(ectx.Raw)
	builder.WriteString("\n\nPlease provide:\n")
	builder.WriteString("1. A brief explanation of what caused the error\n")
	builder.WriteString("2. A solution to fix the error\n")
	return builder.String()
}

func messageOrUnknown(ectx domain.ErrorContext) string {
	if ectx.Message == "" {
		return "Unknown error"
	}
	return ectx.Message
}

// successResult wraps a model reply into the canonical analysis shape. The
// solution field carries the sentinel because the fix is embedded in the
// free-text explanation.
func successResult(ectx domain.ErrorContext, explanation string) domain.AnalysisResult {
	return domain.AnalysisResult{
		Error:       messageOrUnknown(ectx),
		Explanation: explanation,
		Solution:    domain.SolutionInExplanation,
		Confidence:  domain.ProviderConfidence,
	}
}

// failureResult converts a provider failure into a terminal zero-confidence
// result. The orchestrator treats zero confidence as "provider failed, fall
// back".
func failureResult(ectx domain.ErrorContext, provider domain.ProviderName, err error) domain.AnalysisResult {
	return domain.AnalysisResult{
		Error:       messageOrUnknown(ectx),
		Explanation: fmt.Sprintf("Error analyzing with %s: %v", provider, err),
		Solution:    "Could not generate a solution due to API error.",
		Confidence:  0,
	}
}
