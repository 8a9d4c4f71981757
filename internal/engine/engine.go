// Package engine orchestrates profile and job storage, requirement
// extraction, score computation, caching, and catalog ranking behind one
// facade.
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vkinnnnn/givemejobs-match/internal/cache"
	"github.com/vkinnnnn/givemejobs-match/internal/ranking"
	"github.com/vkinnnnn/givemejobs-match/internal/scoring"
	"github.com/vkinnnnn/givemejobs-match/internal/skills"
	"github.com/vkinnnnn/givemejobs-match/internal/types"
	"github.com/vkinnnnn/givemejobs-match/internal/vector"
)

// DefaultCacheTTL is how long a computed match score stays fresh. Profile or
// job updates invalidate affected entries immediately regardless of TTL.
const DefaultCacheTTL = 15 * time.Minute

// ProfileStore is the persistence contract for candidate profiles.
// Get returns (nil, nil) when the profile does not exist.
type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error)
	UpsertProfile(ctx context.Context, profile *types.Profile) error
}

// JobStore is the persistence contract for job postings.
// Get returns (nil, nil) when the job does not exist.
type JobStore interface {
	GetJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	ListJobs(ctx context.Context) ([]*types.JobPosting, error)
	UpsertJob(ctx context.Context, job *types.JobPosting) error
}

// Indexer maintains the semantic job index. Indexing is best effort; a
// failure never blocks the underlying write.
type Indexer interface {
	IndexText(ctx context.Context, id uuid.UUID, text string, metadata map[string]string) error
	Remove(id uuid.UUID)
}

// Options carries the optional collaborators for an Engine.
type Options struct {
	Cache    cache.Cache
	CacheTTL time.Duration
	Adapter  *vector.Adapter
	Indexer  Indexer
	Config   *scoring.Config
}

// Engine computes and ranks match scores over stored profiles and jobs.
type Engine struct {
	profiles  ProfileStore
	jobs      JobStore
	extractor skills.Extractor
	ranker    *ranking.Ranker
	cache     cache.Cache
	cacheTTL  time.Duration
	indexer   Indexer
	cfg       *scoring.Config
	validate  *validator.Validate
}

// New creates an engine over the given stores and extractor. Every field in
// opts may be zero; a nil cache disables memoization and a nil adapter
// disables semantic ranking.
func New(profiles ProfileStore, jobs JobStore, extractor skills.Extractor, opts Options) *Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = scoring.DefaultConfig()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Engine{
		profiles:  profiles,
		jobs:      jobs,
		extractor: extractor,
		ranker:    ranking.NewRanker(extractor, opts.Adapter, cfg),
		cache:     opts.Cache,
		cacheTTL:  ttl,
		indexer:   opts.Indexer,
		cfg:       cfg,
		validate:  validator.New(),
	}
}

// Match computes (or returns the cached) match score for one profile and one
// job.
func (e *Engine) Match(ctx context.Context, profileID, jobID uuid.UUID) (*types.MatchScore, error) {
	key := cache.Key(profileID, jobID)
	if e.cache != nil {
		if score, ok := e.cache.Get(key); ok {
			return score, nil
		}
	}

	profile, err := e.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	job, err := e.loadJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	requirements, err := e.extractor.Extract(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to extract requirements for job %s: %w", jobID, err)
	}

	score := scoring.Compute(profile, job, requirements, e.cfg)
	if e.cache != nil {
		e.cache.Set(key, score, e.cacheTTL)
	}
	return score, nil
}

// TopMatches ranks the full job catalog for one profile and returns the top
// topK entries. topK <= 0 returns the whole catalog.
func (e *Engine) TopMatches(ctx context.Context, profileID uuid.UUID, topK int) ([]ranking.RankedJob, error) {
	profile, err := e.loadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	jobs, err := e.jobs.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return e.ranker.RankJobs(ctx, profile, jobs, topK)
}

// UpsertProfile validates and stores a profile, then evicts every cached
// score involving it.
func (e *Engine) UpsertProfile(ctx context.Context, profile *types.Profile) error {
	if profile == nil {
		return &ValidationError{Resource: "profile", Detail: "profile is required"}
	}
	if err := e.validate.Struct(profile); err != nil {
		return &ValidationError{Resource: "profile", Detail: err.Error()}
	}
	if err := e.profiles.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to store profile %s: %w", profile.ID, err)
	}
	if e.cache != nil {
		e.cache.Invalidate(profile.ID.String())
	}
	return nil
}

// UpsertJob validates and stores a job posting, evicts every cached score
// involving it, and refreshes its entry in the semantic index.
func (e *Engine) UpsertJob(ctx context.Context, job *types.JobPosting) error {
	if job == nil {
		return &ValidationError{Resource: "job", Detail: "job is required"}
	}
	if err := e.validate.Struct(job); err != nil {
		return &ValidationError{Resource: "job", Detail: err.Error()}
	}
	if err := e.jobs.UpsertJob(ctx, job); err != nil {
		return fmt.Errorf("failed to store job %s: %w", job.ID, err)
	}
	if e.cache != nil {
		e.cache.Invalidate(job.ID.String())
	}
	if e.indexer != nil {
		metadata := map[string]string{}
		if job.Industry != "" {
			metadata["industry"] = job.Industry
		}
		if err := e.indexer.IndexText(ctx, job.ID, ranking.JobText(job), metadata); err != nil {
			log.Printf("warning: failed to index job %s: %v", job.ID, err)
		}
	}
	return nil
}

func (e *Engine) loadProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	profile, err := e.profiles.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", id, err)
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "profile", ID: id}
	}
	return profile, nil
}

func (e *Engine) loadJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	job, err := e.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", id, err)
	}
	if job == nil {
		return nil, &NotFoundError{Resource: "job", ID: id}
	}
	return job, nil
}
