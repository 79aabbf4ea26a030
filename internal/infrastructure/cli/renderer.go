package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/watchit-dev/watchit/internal/domain"
)

// RenderResponse prints the outcome of one monitored run. Command output has
// already been streamed live, so only the analysis verdict is rendered here.
func RenderResponse(out io.Writer, resp domain.RunResponse) {
	if resp.SpawnError != nil {
		color.New(color.FgRed, color.Bold).Fprintf(out, "Error executing command: %v\n", resp.SpawnError)
		return
	}

	if !resp.ErrorDetected || resp.Declined || resp.Result == nil {
		return
	}

	if resp.ConfigError != nil {
		color.New(color.FgYellow).Fprintf(out, "No AI provider configured (%v).\n", resp.ConfigError)
	}
	if resp.FromFallback {
		color.New(color.FgYellow).Fprintln(out, "Providing local analysis instead...")
	}

	renderResult(out, *resp.Result)
}

func renderResult(out io.Writer, result domain.AnalysisResult) {
	fmt.Fprintln(out)
	color.New(color.FgRed, color.Bold).Fprintf(out, "Error: %s\n", result.Error)

	color.New(color.FgCyan, color.Bold).Fprintln(out, "\nExplanation:")
	fmt.Fprintln(out, result.Explanation)

	// The sentinel means the fix is embedded in the explanation.
	if result.Solution != domain.SolutionInExplanation {
		color.New(color.FgCyan, color.Bold).Fprintln(out, "\nSolution:")
		fmt.Fprintln(out, result.Solution)
	}

	confidenceColor(result.Confidence).Fprintf(out, "\nConfidence: %.0f%%\n", result.Confidence*100)
}

func confidenceColor(confidence float64) *color.Color {
	switch {
	case confidence > 0.7:
		return color.New(color.FgGreen)
	case confidence > 0.4:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
