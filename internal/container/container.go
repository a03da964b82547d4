package container

import (
	"fmt"
	"path/filepath"

	"claimstats/adapters/excel"
	"claimstats/adapters/figure"
	"claimstats/adapters/report"
	"claimstats/app"
	"claimstats/internal"
	"claimstats/internal/config"
	"claimstats/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Adapters
	Loader   ports.TableLoader
	Writer   ports.ReportWriter
	Renderer *figure.Renderer

	// Services
	ReportService *app.ReportService
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.NewNopLogger()
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Loader:   excel.NewLoader(excel.SourceConfigFrom(cfg), logger),
		Writer:   report.NewFileSystemWriter(cfg.Paths.FiguresDir, cfg.Paths.OutputDir, logger),
		Renderer: figure.NewRenderer(cfg.Render.DPI),
	}
	c.ReportService = app.NewReportService(c.Loader, c.Writer, c.Renderer, logger, figureLinkDir(cfg.Paths))

	return c, nil
}

// figureLinkDir is the figures directory as seen from the output directory
func figureLinkDir(paths config.PathConfig) string {
	outAbs, err1 := filepath.Abs(paths.OutputDir)
	figAbs, err2 := filepath.Abs(paths.FiguresDir)
	if err1 != nil || err2 != nil {
		return filepath.ToSlash(paths.FiguresDir)
	}
	rel, err := filepath.Rel(outAbs, figAbs)
	if err != nil {
		return filepath.ToSlash(figAbs)
	}
	return filepath.ToSlash(rel)
}
