package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkinnnnn/givemejobs-match/internal/cache"
	"github.com/vkinnnnn/givemejobs-match/internal/db"
	"github.com/vkinnnnn/givemejobs-match/internal/engine"
	"github.com/vkinnnnn/givemejobs-match/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes match scoring, catalog ranking, and profile/job upsert endpoints.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
	serveLLMExtract bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveLLMExtract, "llm-extract", false, "Extract requirements with the LLM instead of the skill dictionary")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(serveConfigFile)
	if err != nil {
		return err
	}
	if cfg.Port != 0 && servePort == 8080 {
		servePort = cfg.Port
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return err
	}

	extractor, cleanupExtractor, err := buildExtractor(ctx, cfg, serveLLMExtract)
	if err != nil {
		database.Close()
		return err
	}

	provider, adapter, cleanupSemantic, err := buildSemanticStack(ctx, cfg)
	if err != nil {
		cleanupExtractor()
		database.Close()
		return err
	}

	opts := engine.Options{
		Cache:    cache.NewMemoryCache(),
		CacheTTL: cfg.CacheTTL(),
		Adapter:  adapter,
		Config:   scoringConfig(cfg),
	}
	if provider != nil {
		opts.Indexer = provider
	}
	eng := engine.New(database, database, extractor, opts)

	srv := server.New(server.Config{Port: servePort}, eng)
	srv.OnShutdown(cleanupSemantic)
	srv.OnShutdown(cleanupExtractor)
	srv.OnShutdown(database.Close)

	return srv.Start()
}
