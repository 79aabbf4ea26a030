package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchit-dev/watchit/internal/app"
	"github.com/watchit-dev/watchit/internal/domain"
)

func newRunCommand(container *app.Container, exitCode *int) *cobra.Command {
	var (
		provider  string
		apiKey    string
		assumeYes bool
		noAnalyze bool
	)

	cmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run a command with error monitoring",
		Long:  "Execute a shell command, stream its output, and offer an AI analysis when the output contains a known error signature. The exit code always equals the wrapped command's exit code.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			PrintBanner(out)

			resp, err := container.MonitorService.Run(domain.RunRequest{
				Context:      cmd.Context(),
				Command:      strings.Join(args, " "),
				AssumeYes:    assumeYes,
				SkipAnalysis: noAnalyze,
				Overrides:    domain.Overrides{Provider: provider, APIKey: apiKey},
			})
			if err != nil {
				return err
			}

			RenderResponse(out, resp)
			*exitCode = resp.ExitCode
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "AI provider to use (openai, gemini, groq)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for the selected provider")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Analyze detected errors without asking")
	cmd.Flags().BoolVar(&noAnalyze, "no-analyze", false, "Disable error analysis entirely")
	// Everything after the first positional argument belongs to the wrapped
	// command, flags included.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
