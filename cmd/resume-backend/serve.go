package main

import (
	"log"

	"github.com/spf13/cobra"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if app.DB != nil {
			app.DB.Close()
		}
	}()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)
	return app.Router.Run(addr)
}
