// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/watchit-dev/watchit/internal/application/monitor"
	"github.com/watchit-dev/watchit/internal/infrastructure/ai"
	"github.com/watchit-dev/watchit/internal/infrastructure/config"
	"github.com/watchit-dev/watchit/internal/infrastructure/detect"
	"github.com/watchit-dev/watchit/internal/infrastructure/history"
	"github.com/watchit-dev/watchit/internal/infrastructure/runner"
	"github.com/watchit-dev/watchit/internal/pkg/logger"
	"github.com/watchit-dev/watchit/internal/ports"
)

// Container wires up application services with infrastructure adapters.
// Interactive adapters (prompters, spinner) are attached by the CLI layer
// after construction.
type Container struct {
	MonitorService *monitor.Service
	ConfigResolver *config.Resolver
	ConfigLoader   *config.FileLoader
	History        ports.HistoryRepository
}

// BuildContainer constructs the dependency graph.
func BuildContainer(_ context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)
	cfgLoader := config.NewFileLoader("")
	resolver := config.NewResolver(cfgLoader, nil, log)
	historyStore := history.NewSQLiteStore()

	monitorService := &monitor.Service{
		ConfigResolver: resolver,
		Runner:         runner.NewLocalRunner("", nil),
		Matcher:        detect.NewMatcher(),
		Factory:        ai.NewFactory(),
		Fallback:       ai.NewFallbackClassifier(),
		History:        historyStore,
		Logger:         log,
	}

	return &Container{
		MonitorService: monitorService,
		ConfigResolver: resolver,
		ConfigLoader:   cfgLoader,
		History:        historyStore,
	}, nil
}
