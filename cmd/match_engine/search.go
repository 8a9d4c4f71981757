package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkinnnnn/givemejobs-match/internal/db"
	"github.com/vkinnnnn/givemejobs-match/internal/observability"
	"github.com/vkinnnnn/givemejobs-match/internal/ranking"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Rank the job catalog for a candidate profile",
	Long:  "Score a profile against every stored job posting and print the catalog ranked by blended score. Semantic similarity is used when an API key is configured; otherwise ranking falls back to traditional scores.",
	RunE:  runSearch,
}

var (
	searchProfileID  string
	searchTopK       int
	searchConfigFile string
	searchLLMExtract bool
	searchVerbose    bool
)

func init() {
	searchCmd.Flags().StringVar(&searchProfileID, "profile-id", "", "Profile UUID to rank jobs for (required)")
	searchCmd.Flags().IntVar(&searchTopK, "top-k", 10, "Number of top matches to return")
	searchCmd.Flags().StringVar(&searchConfigFile, "config", "", "Path to a JSON config file")
	searchCmd.Flags().BoolVar(&searchLLMExtract, "llm-extract", false, "Extract requirements with the LLM instead of the skill dictionary")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print a formatted ranking summary to stderr")
	_ = searchCmd.MarkFlagRequired("profile-id")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(searchConfigFile)
	if err != nil {
		return err
	}

	profileID, err := parseID(searchProfileID)
	if err != nil {
		return fmt.Errorf("invalid --profile-id: %w", err)
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

	profile, err := database.GetProfile(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile not found: %s", profileID)
	}

	jobs, err := database.ListJobs(ctx)
	if err != nil {
		return err
	}

	extractor, cleanupExtractor, err := buildExtractor(ctx, cfg, searchLLMExtract)
	if err != nil {
		return err
	}
	defer cleanupExtractor()

	provider, adapter, cleanupSemantic, err := buildSemanticStack(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanupSemantic()

	// The in-memory index starts empty each run, so populate it from the
	// catalog before ranking. Index failures degrade to traditional scores.
	if provider != nil {
		for _, job := range jobs {
			metadata := map[string]string{}
			if job.Industry != "" {
				metadata["industry"] = job.Industry
			}
			if err := provider.IndexText(ctx, job.ID, ranking.JobText(job), metadata); err != nil {
				log.Printf("warning: failed to index job %s: %v", job.ID, err)
			}
		}
	}

	ranker := ranking.NewRanker(extractor, adapter, scoringConfig(cfg))
	ranked, err := ranker.RankJobs(ctx, profile, jobs, searchTopK)
	if err != nil {
		return err
	}

	if searchVerbose {
		observability.NewPrinter(os.Stderr).PrintRankedJobs(ranked)
	}

	out, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranking: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
