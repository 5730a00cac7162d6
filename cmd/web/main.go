package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/unsaid-tools/tone-atlas/pkg/server"
	"github.com/unsaid-tools/tone-atlas/pkg/services/config"
	"github.com/unsaid-tools/tone-atlas/pkg/services/insights"
	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Tone Atlas insights API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "tone-atlas.yaml",
		"Path to the tone-atlas config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.StorePath})
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer db.Close()

	registry, err := insights.NewRegistry(db, nil)
	if err != nil {
		return fmt.Errorf("failed to create insights registry: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Registry: registry,
		},
	})

	logger.Info().Msgf("Record store at `%s`, profile `%s`.", cfg.StorePath, cfg.Profile)
	return api.Start()
}
