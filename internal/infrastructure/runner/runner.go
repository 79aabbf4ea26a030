// Package runner executes monitored shell commands.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/ports"
)

// LocalRunner launches commands through the host shell, merging stdout and
// stderr into one stream. Each line is echoed to the configured writer as it
// arrives while being accumulated for post-execution analysis.
type LocalRunner struct {
	shell string
	out   io.Writer
}

// NewLocalRunner builds a runner; shell defaults to $SHELL then /bin/sh, and
// out defaults to os.Stdout.
func NewLocalRunner(shell string, out io.Writer) *LocalRunner {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	if out == nil {
		out = os.Stdout
	}
	return &LocalRunner{shell: shell, out: out}
}

// Run implements ports.CommandRunner. It blocks until the subprocess
// terminates and returns its exit code alongside the buffered output. Spawn
// failures report exit code 1 with a non-nil error. Context cancellation
// kills the subprocess, so an interrupt never leaves orphans behind.
func (r *LocalRunner) Run(ctx context.Context, command string) (domain.CommandOutput, error) {
	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Stdin = os.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return domain.CommandOutput{ExitCode: 1}, fmt.Errorf("open output pipe: %w", err)
	}
	// Share the stdout pipe so both streams arrive interleaved in write order.
	cmd.Stderr = cmd.Stdout

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return domain.CommandOutput{ExitCode: 1}, fmt.Errorf("spawn %q: %w", command, err)
	}

	// Lines are read without a length cap: stopping mid-stream would leave
	// the child blocked on a full pipe and Wait blocked on the child.
	var captured strings.Builder
	reader := bufio.NewReader(stdout)
	var readErr error
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			fmt.Fprint(r.out, line)
			captured.WriteString(line)
		}
		if err != nil {
			if err != io.EOF {
				readErr = err
			}
			break
		}
	}

	waitErr := cmd.Wait()
	output := domain.CommandOutput{
		Combined: captured.String(),
		Started:  true,
		Duration: time.Since(start),
	}

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		output.ExitCode = 1
		return output, fmt.Errorf("wait for %q: %w", command, waitErr)
	}
	if readErr != nil {
		output.ExitCode = cmd.ProcessState.ExitCode()
		return output, fmt.Errorf("read output: %w", readErr)
	}

	output.ExitCode = 0
	return output, nil
}

var _ ports.CommandRunner = (*LocalRunner)(nil)
