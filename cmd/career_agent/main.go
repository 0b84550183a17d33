// Package main provides the career_agent CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/logging"
)

var (
	configPath  string
	catalogPath string
	logLevel    string
	logFormat   string
	verbose     bool

	// settings and appCatalog are resolved before every command runs
	settings   config.Config
	appCatalog *catalog.Catalog
)

var rootCmd = &cobra.Command{
	Use:               "career_agent",
	Short:             "Career guidance engine",
	Long:              "career_agent analyzes skill gaps, suggests related skills, matches mentors and builds learning roadmaps, from the command line or over a REST API.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a JSON config file")
	flags.StringVar(&catalogPath, "catalog", "", "Path to a catalog YAML replacing the built-in tables (env CATALOG_PATH)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.StringVar(&logFormat, "log-format", "", "Log format: json or pretty (env LOG_FORMAT)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print a human-readable summary to stderr")
}

func setup(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	settings = s

	logging.Init(logging.Config{Level: s.LogLevel, Format: s.LogFormat})

	cat, err := catalog.Load(s.Catalog)
	if err != nil {
		return err
	}
	appCatalog = cat
	logging.Debug().
		Str("source", catalogSource(s.Catalog)).
		Int("mentors", len(cat.Mentors)).
		Int("jobs", len(cat.JobTemplates)).
		Msg("catalog loaded")
	return nil
}

// loadSettings layers flags over environment over the config file
func loadSettings() (config.Config, error) {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	lower := envCfg.MergeWithDefaults(fileCfg)

	flagCfg := config.Config{
		Catalog:   catalogPath,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
	merged := flagCfg.MergeWithDefaults(lower)
	merged.Verbose = verbose || fileCfg.Verbose

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func catalogSource(path string) string {
	if path == "" {
		return catalog.EmbeddedSource
	}
	return path
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
