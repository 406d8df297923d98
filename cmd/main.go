package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/wgomg/analyseur/internal/config"
	"github.com/wgomg/analyseur/internal/utils"
)

var CLI struct {
	File string `arg:"" optional:"" help:"Text file to analyze, relative to ANALYSEUR_BASE_DIR. Prompted for when omitted."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("analyseur"),
		kong.Description("Count word frequencies in a text file and write a ranked report."),
	)

	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error")
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		log := utils.NewLogger("error")
		log.Fatal("Invalid configuration:", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel).With("run", uuid.NewString())
	logger.Debug("Environment: %s", cfg.App.Env)
	logger.Debug("Base directory: %s", cfg.Analyzer.BaseDir)
	logger.Debug("Report path: %s", cfg.Analyzer.ReportPath)

	if err := run(afero.NewOsFs(), cfg, logger, CLI.File, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("Analysis failed:", err)
	}
}
