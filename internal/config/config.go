// Package config provides configuration loading and validation for the
// matching engine CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Infrastructure
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for embeddings and LLM extraction
	Port        int    `json:"port,omitempty"`         // HTTP server port

	// Matching
	DictionaryPath    string  `json:"dictionary_path,omitempty"`     // Path to a skill dictionary JSON file
	SemanticTimeoutMS int     `json:"semantic_timeout_ms,omitempty"` // Similarity lookup timeout in milliseconds
	SemanticBlend     float64 `json:"semantic_blend,omitempty"`      // Semantic share of the ranking score (0.0-1.0)
	CacheTTLMinutes   int     `json:"cache_ttl_minutes,omitempty"`   // Score cache freshness window

	// Scoring weights; zero values fall back to the built-in weights.
	SkillWeight      float64 `json:"skill_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	LocationWeight   float64 `json:"location_weight,omitempty"`
	SalaryWeight     float64 `json:"salary_weight,omitempty"`
	CultureWeight    float64 `json:"culture_weight,omitempty"`

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SemanticTimeoutMS < 0 {
		return fmt.Errorf("config error: 'semantic_timeout_ms' must be non-negative")
	}
	if c.SemanticBlend < 0 || c.SemanticBlend > 1 {
		return fmt.Errorf("config error: 'semantic_blend' must be between 0.0 and 1.0")
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}

	for name, w := range map[string]float64{
		"skill_weight":      c.SkillWeight,
		"experience_weight": c.ExperienceWeight,
		"location_weight":   c.LocationWeight,
		"salary_weight":     c.SalaryWeight,
		"culture_weight":    c.CultureWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: '%s' must be between 0.0 and 1.0", name)
		}
	}

	if c.DictionaryPath != "" {
		if _, err := os.Stat(c.DictionaryPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: dictionary file not found: %s", c.DictionaryPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DictionaryPath == "" {
		result.DictionaryPath = defaults.DictionaryPath
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SemanticTimeoutMS == 0 {
		result.SemanticTimeoutMS = defaults.SemanticTimeoutMS
	}
	if result.SemanticBlend == 0 {
		result.SemanticBlend = defaults.SemanticBlend
	}
	if result.CacheTTLMinutes == 0 {
		result.CacheTTLMinutes = defaults.CacheTTLMinutes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// SemanticTimeout returns the configured similarity timeout as a duration,
// or zero when unset.
func (c *Config) SemanticTimeout() time.Duration {
	return time.Duration(c.SemanticTimeoutMS) * time.Millisecond
}

// CacheTTL returns the configured cache freshness window as a duration, or
// zero when unset.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
