package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/watchit-dev/watchit/internal/ports"
)

// SpinnerReporter animates a spinner during the provider call.
type SpinnerReporter struct {
	s *spinner.Spinner
}

// NewSpinnerReporter builds a reporter writing to w (normally stderr, so the
// animation never mixes into captured stdout).
func NewSpinnerReporter(w io.Writer) *SpinnerReporter {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	s.Color("green")
	return &SpinnerReporter{s: s}
}

func (r *SpinnerReporter) Start(message string) {
	r.s.Suffix = " " + message
	r.s.Start()
}

func (r *SpinnerReporter) Stop() {
	r.s.Stop()
}

var _ ports.StatusReporter = (*SpinnerReporter)(nil)
