package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vkinnnnn/givemejobs-match/internal/db"
	"github.com/vkinnnnn/givemejobs-match/internal/ingestion"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load profiles and job postings into the database",
	Long:  "Upsert candidate profiles and job postings from JSON files, or ingest a job posting from a saved HTML page.",
	RunE:  runSeed,
}

var (
	seedProfileFiles []string
	seedJobFiles     []string
	seedJobHTMLFile  string
	seedJobTitle     string
	seedJobCompany   string
	seedConfigFile   string
)

func init() {
	seedCmd.Flags().StringArrayVar(&seedProfileFiles, "profile", nil, "Profile JSON file to upsert (repeatable)")
	seedCmd.Flags().StringArrayVar(&seedJobFiles, "job", nil, "Job posting JSON file to upsert (repeatable)")
	seedCmd.Flags().StringVar(&seedJobHTMLFile, "job-html", "", "Saved job posting HTML page to ingest")
	seedCmd.Flags().StringVar(&seedJobTitle, "title", "", "Job title for --job-html ingestion")
	seedCmd.Flags().StringVar(&seedJobCompany, "company", "", "Company name for --job-html ingestion")
	seedCmd.Flags().StringVar(&seedConfigFile, "config", "", "Path to a JSON config file")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	if len(seedProfileFiles) == 0 && len(seedJobFiles) == 0 && seedJobHTMLFile == "" {
		return fmt.Errorf("nothing to seed: provide --profile, --job, or --job-html")
	}
	if seedJobHTMLFile != "" && seedJobTitle == "" {
		return fmt.Errorf("--title is required with --job-html")
	}

	cfg, err := loadEngineConfig(seedConfigFile)
	if err != nil {
		return err
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	for _, path := range seedProfileFiles {
		profile, err := ingestion.LoadProfileFile(path)
		if err != nil {
			return err
		}
		if err := database.UpsertProfile(ctx, profile); err != nil {
			return err
		}
		fmt.Printf("profile %s <- %s\n", profile.ID, path)
	}

	for _, path := range seedJobFiles {
		job, err := ingestion.LoadJobFile(path)
		if err != nil {
			return err
		}
		if err := database.UpsertJob(ctx, job); err != nil {
			return err
		}
		fmt.Printf("job %s <- %s\n", job.ID, path)
	}

	if seedJobHTMLFile != "" {
		html, err := os.ReadFile(seedJobHTMLFile)
		if err != nil {
			return fmt.Errorf("failed to read HTML file: %w", err)
		}
		job, err := ingestion.JobFromHTML(uuid.Nil, seedJobTitle, seedJobCompany, string(html))
		if err != nil {
			return err
		}
		if err := database.UpsertJob(ctx, job); err != nil {
			return err
		}
		fmt.Printf("job %s <- %s\n", job.ID, seedJobHTMLFile)
	}

	return nil
}
