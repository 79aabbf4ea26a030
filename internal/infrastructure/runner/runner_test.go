package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/watchit-dev/watchit/internal/domain"
)

func TestRunStreamsAndBuffersOutput(t *testing.T) {
	var echoed bytes.Buffer
	r := NewLocalRunner("/bin/sh", &echoed)

	output, err := r.Run(context.Background(), "echo hello; echo world 1>&2")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if output.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", output.ExitCode)
	}
	if !output.Started {
		t.Fatal("Started = false for a spawned process")
	}
	for _, want := range []string{"hello", "world"} {
		if !strings.Contains(output.Combined, want) {
			t.Fatalf("buffer missing %q: %q", want, output.Combined)
		}
		if !strings.Contains(echoed.String(), want) {
			t.Fatalf("echo missing %q: %q", want, echoed.String())
		}
	}
}

func TestRunReturnsSubprocessExitCode(t *testing.T) {
	var out bytes.Buffer
	r := NewLocalRunner("/bin/sh", &out)

	output, err := r.Run(context.Background(), "exit 3")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if output.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", output.ExitCode)
	}
}

func TestRunNoOutputCleanExit(t *testing.T) {
	var out bytes.Buffer
	r := NewLocalRunner("/bin/sh", &out)

	output, err := r.Run(context.Background(), "exit 0")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if output.ExitCode != 0 || output.Combined != "" {
		t.Fatalf("output = %+v, want clean empty run", output)
	}
}

func TestRunOversizedLineCompletes(t *testing.T) {
	var out bytes.Buffer
	r := NewLocalRunner("/bin/sh", &out)

	// A single 2 MiB line with no newline until EOF.
	var output domain.CommandOutput
	var err error
	done := make(chan struct{})
	go func() {
		output, err = r.Run(context.Background(), "head -c 2097152 /dev/zero | tr '\\0' 'a'")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("Run did not return for an oversized output line")
	}
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if output.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", output.ExitCode)
	}
	if len(output.Combined) < 2*1024*1024 {
		t.Fatalf("captured %d bytes, want the full line", len(output.Combined))
	}
}

func TestRunSpawnFailure(t *testing.T) {
	var out bytes.Buffer
	r := NewLocalRunner("/nonexistent/shell", &out)

	output, err := r.Run(context.Background(), "echo hi")
	if err == nil {
		t.Fatal("expected spawn error")
	}
	if output.Started {
		t.Fatal("Started = true for failed spawn")
	}
	if output.ExitCode != 1 {
		t.Fatalf("ExitCode = %d, want 1", output.ExitCode)
	}
}

func TestRunCancelledContext(t *testing.T) {
	var out bytes.Buffer
	r := NewLocalRunner("/bin/sh", &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	output, _ := r.Run(ctx, "sleep 10")
	if output.ExitCode == 0 {
		t.Fatal("cancelled run reported success")
	}
}
