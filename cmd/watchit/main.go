package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/watchit-dev/watchit/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.Run(ctx, cli.Options{Verbose: isVerbose()})
	stop()
	os.Exit(code)
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("WATCHIT_DEBUG"), "1") || strings.EqualFold(os.Getenv("WATCHIT_DEBUG"), "true")
}
