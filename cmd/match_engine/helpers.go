package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/vkinnnnn/givemejobs-match/internal/config"
	"github.com/vkinnnnn/givemejobs-match/internal/llm"
	"github.com/vkinnnnn/givemejobs-match/internal/scoring"
	"github.com/vkinnnnn/givemejobs-match/internal/skills"
	"github.com/vkinnnnn/givemejobs-match/internal/vector"
)

// parseID parses a UUID string argument.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", raw, err)
	}
	return id, nil
}

// loadEngineConfig loads the optional JSON config file and validates it.
// An empty path yields an empty config.
func loadEngineConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// scoringConfig maps config file weight overrides onto the built-in scoring
// defaults. Overrides apply only when every weight is set, so the weights
// always sum to a full configuration.
func scoringConfig(cfg *config.Config) *scoring.Config {
	sc := scoring.DefaultConfig()
	if cfg.SemanticBlend > 0 {
		sc.SemanticBlend = cfg.SemanticBlend
	}
	if cfg.SkillWeight > 0 && cfg.ExperienceWeight > 0 && cfg.LocationWeight > 0 &&
		cfg.SalaryWeight > 0 && cfg.CultureWeight > 0 {
		sc.Weights = scoring.Weights{
			Skill:      cfg.SkillWeight,
			Experience: cfg.ExperienceWeight,
			Location:   cfg.LocationWeight,
			Salary:     cfg.SalaryWeight,
			Culture:    cfg.CultureWeight,
		}
	}
	return sc
}

// buildExtractor returns the requirement extractor: dictionary-based by
// default, LLM-based when requested and an API key is available.
func buildExtractor(ctx context.Context, cfg *config.Config, useLLM bool) (skills.Extractor, func(), error) {
	noop := func() {}

	if useLLM {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, noop, fmt.Errorf("LLM extraction requires an API key (set GEMINI_API_KEY or api_key in config)")
		}
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
		}
		return skills.NewLLMExtractor(client), func() { _ = client.Close() }, nil
	}

	if cfg.DictionaryPath != "" {
		dict, err := skills.LoadDictionary(cfg.DictionaryPath)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to load skill dictionary: %w", err)
		}
		return skills.NewDictionaryExtractor(dict), noop, nil
	}
	return skills.NewDictionaryExtractor(nil), noop, nil
}

// buildSemanticStack creates the embedding provider and adapter when an API
// key is available. Returns nils when it is not; matching then runs on
// traditional scores alone.
func buildSemanticStack(ctx context.Context, cfg *config.Config) (*vector.EmbeddingProvider, *vector.Adapter, func(), error) {
	noop := func() {}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, noop, nil
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
	}

	provider := vector.NewEmbeddingProvider(client, vector.NewInMemoryIndex())
	adapter := vector.NewAdapter(provider, cfg.SemanticTimeout())
	return provider, adapter, func() { _ = client.Close() }, nil
}
