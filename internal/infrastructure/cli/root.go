// Package cli wires the cobra command surface and terminal I/O adapters.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchit-dev/watchit/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// Run builds and executes the root command, returning the process exit code.
// The exit code equals the wrapped command's exit code; CLI-level failures
// report 1.
func Run(ctx context.Context, opts Options) int {
	root, exitCode, err := NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return *exitCode
}

// NewRootCmd wires the cobra root command. The returned int pointer receives
// the wrapped command's exit code after execution.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *int, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}
	container.MonitorService.Prompter = NewPrompter(nil, nil)
	container.MonitorService.Status = NewSpinnerReporter(os.Stderr)
	container.ConfigResolver.Prompter = NewSetupPrompter(nil, nil)

	exitCode := new(int)
	runCmd := newRunCommand(container, exitCode)

	root := &cobra.Command{
		Use:   "watchit [command...]",
		Short: "WatchIt - AI-powered terminal error monitor",
		Long:  "WatchIt runs your command, watches its output for errors, and asks an AI provider to explain and fix whatever went wrong.",
		// Bare arguments are forwarded to the run subcommand.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			runCmd.SetArgs(args)
			return runCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().SetInterspersed(false)
	root.AddCommand(runCmd)
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newVersionCommand())
	return root, exitCode, nil
}
