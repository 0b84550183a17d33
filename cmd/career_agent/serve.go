package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/server"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the analysis engines as JSON endpoints.
Guide storage needs DATABASE_URL; sessions need SESSION_SECRET.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (env PORT, default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := settings.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	var sessionCfg *config.SessionConfig
	if os.Getenv("SESSION_SECRET") != "" {
		cfg, err := config.NewSessionConfig()
		if err != nil {
			return err
		}
		sessionCfg = cfg
	} else {
		logging.Warn().Msg("SESSION_SECRET not set; session endpoints are disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, server.Config{
		Port:         port,
		DatabaseURL:  settings.DatabaseURL,
		Catalog:      appCatalog,
		TemplatePath: settings.Template,
		Session:      sessionCfg,
		RateLimit:    ratelimit.LoadConfig(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(ctx)
}
