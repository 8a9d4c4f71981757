package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkinnnnn/givemejobs-match/internal/db"
	"github.com/vkinnnnn/givemejobs-match/internal/ingestion"
	"github.com/vkinnnnn/givemejobs-match/internal/observability"
	"github.com/vkinnnnn/givemejobs-match/internal/scoring"
	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate profile against one job posting",
	Long:  "Compute the full match score (overall, per-factor breakdown, matched and missing skills, recommendations) for a profile and a job, from JSON files or from the database.",
	RunE:  runScore,
}

var (
	scoreProfileFile string
	scoreJobFile     string
	scoreProfileID   string
	scoreJobID       string
	scoreConfigFile  string
	scoreLLMExtract  bool
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreProfileFile, "profile", "", "Path to a profile JSON file")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to a job posting JSON file")
	scoreCmd.Flags().StringVar(&scoreProfileID, "profile-id", "", "Profile UUID to load from the database")
	scoreCmd.Flags().StringVar(&scoreJobID, "job-id", "", "Job UUID to load from the database")
	scoreCmd.Flags().StringVar(&scoreConfigFile, "config", "", "Path to a JSON config file")
	scoreCmd.Flags().BoolVar(&scoreLLMExtract, "llm-extract", false, "Extract requirements with the LLM instead of the skill dictionary")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score summary to stderr")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	useFiles := scoreProfileFile != "" || scoreJobFile != ""
	useDatabase := scoreProfileID != "" || scoreJobID != ""

	if useFiles && useDatabase {
		return fmt.Errorf("cannot mix --profile/--job files with --profile-id/--job-id")
	}
	if !useFiles && !useDatabase {
		return fmt.Errorf("must provide either --profile/--job files or --profile-id/--job-id")
	}

	cfg, err := loadEngineConfig(scoreConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var profile *types.Profile
	var job *types.JobPosting

	if useFiles {
		if scoreProfileFile == "" || scoreJobFile == "" {
			return fmt.Errorf("both --profile and --job are required in file mode")
		}
		profile, err = ingestion.LoadProfileFile(scoreProfileFile)
		if err != nil {
			return err
		}
		job, err = ingestion.LoadJobFile(scoreJobFile)
		if err != nil {
			return err
		}
	} else {
		if scoreProfileID == "" || scoreJobID == "" {
			return fmt.Errorf("both --profile-id and --job-id are required in database mode")
		}
		profile, job, err = loadPairFromDB(ctx, cfg.DatabaseURL, scoreProfileID, scoreJobID)
		if err != nil {
			return err
		}
	}

	extractor, cleanup, err := buildExtractor(ctx, cfg, scoreLLMExtract)
	if err != nil {
		return err
	}
	defer cleanup()

	requirements, err := extractor.Extract(ctx, job)
	if err != nil {
		return fmt.Errorf("failed to extract requirements: %w", err)
	}

	score := scoring.Compute(profile, job, requirements, scoringConfig(cfg))

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintMatchScore(score)
	}

	out, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func loadPairFromDB(ctx context.Context, databaseURL, profileID, jobID string) (*types.Profile, *types.JobPosting, error) {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required in database mode")
	}

	pid, err := parseID(profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --profile-id: %w", err)
	}
	jid, err := parseID(jobID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --job-id: %w", err)
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	defer database.Close()

	profile, err := database.GetProfile(ctx, pid)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, fmt.Errorf("profile not found: %s", pid)
	}

	job, err := database.GetJob(ctx, jid)
	if err != nil {
		return nil, nil, err
	}
	if job == nil {
		return nil, nil, fmt.Errorf("job not found: %s", jid)
	}

	return profile, job, nil
}
