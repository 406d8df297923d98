package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

const defaultReportName = "rapport.txt"

type AppConfig struct {
	Env      Environment
	LogLevel string
}

type AnalyzerConfig struct {
	// BaseDir is where requested filenames are looked up.
	BaseDir    string
	ReportPath string
}

type Config struct {
	App      AppConfig
	Analyzer AnalyzerConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	baseDir := getEnv("ANALYSEUR_BASE_DIR", ".")

	return &Config{
		App: AppConfig{
			Env:      env,
			LogLevel: getLogLevel(env),
		},
		Analyzer: AnalyzerConfig{
			BaseDir:    baseDir,
			ReportPath: getEnv("ANALYSEUR_REPORT_PATH", filepath.Join(baseDir, defaultReportName)),
		},
	}, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Analyzer.BaseDir) == "" {
		return fmt.Errorf("ANALYSEUR_BASE_DIR must not be empty")
	}
	if strings.TrimSpace(c.Analyzer.ReportPath) == "" {
		return fmt.Errorf("ANALYSEUR_REPORT_PATH must not be empty")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
