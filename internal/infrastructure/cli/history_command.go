package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchit-dev/watchit/internal/app"
	"github.com/watchit-dev/watchit/internal/domain"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
		clear  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List analyzed errors from previous runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if clear {
				if err := container.History.Clear(); err != nil {
					return fmt.Errorf("clear history: %w", err)
				}
				fmt.Fprintln(out, "History cleared.")
				return nil
			}

			records, err := container.History.Records(limit, search)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No analyzed errors recorded yet.")
				return nil
			}

			for _, rec := range records {
				source := string(rec.Provider)
				if rec.Fallback {
					source = "local fallback"
				}
				fmt.Fprintf(out, "%s  exit=%d  %s\n", rec.Timestamp.Format("2006-01-02 15:04:05"), rec.ExitCode, rec.Command)
				fmt.Fprintf(out, "    %s (%s, confidence %.0f%%)\n", rec.ErrorMessage, source, rec.Confidence*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", domain.DefaultHistoryLimit, "Maximum number of records to show")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter records by command or error text")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all recorded incidents")

	return cmd
}
