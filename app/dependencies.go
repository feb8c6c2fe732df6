package app

import (
	"github.com/rcet-nz/rteqc-api/config"
	"github.com/rcet-nz/rteqc-api/services/results"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Domain
	Layout  results.Layout
	Scanner *results.Scanner
	Results *results.Service
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	layout := results.NewLayout(cfg.Results.BaseDir)
	scanner := results.NewScanner(layout, cfg.Results.StrictDiscovery, logger)
	svc := results.NewService(layout, scanner, logger)

	logger.Info("dependencies initialized",
		zap.String("base_dir", cfg.Results.BaseDir),
		zap.Bool("strict_discovery", cfg.Results.StrictDiscovery))

	return &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Layout:  layout,
		Scanner: scanner,
		Results: svc,
	}
}
