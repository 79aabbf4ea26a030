// Package domain defines core business entities and value objects for WatchIt.
//
// The domain layer is independent of infrastructure concerns and represents
// pure data structures shared between the monitor pipeline and its adapters.
package domain

// ErrorContext captures a single detected error event. It is created once per
// detected error and is immutable after creation.
type ErrorContext struct {
	// Message is a best-effort one-line summary extracted by the pattern matcher.
	Message string
	// Raw is the full captured command output the message was extracted from.
	Raw string
}

// AnalysisResult is the outcome of one analysis attempt, produced by either a
// remote provider adapter or the local fallback classifier.
type AnalysisResult struct {
	Error       string  `json:"error"`
	Explanation string  `json:"explanation"`
	Solution    string  `json:"solution"`
	Confidence  float64 `json:"confidence"`
}

// SolutionInExplanation is the sentinel solution text used by provider
// adapters: remote models return one free-text reply, so the fix lives inside
// the explanation rather than in a separate field.
const SolutionInExplanation = "See explanation above for the solution."

// Confidence constants attached to analysis results. These are heuristic
// scores, not calibrated probabilities.
const (
	// ProviderConfidence is assigned when a remote provider call succeeds.
	ProviderConfidence = 0.9
	// FallbackConfidence is assigned when a fallback rule matches the error.
	FallbackConfidence = 0.95
	// GenericConfidence is assigned when no fallback rule matches.
	GenericConfidence = 0.6
)

// Failed reports whether the result signals a provider failure. Adapters set
// Confidence to zero when the remote call could not produce an analysis.
func (r AnalysisResult) Failed() bool {
	return r.Confidence == 0
}
