// Package ranking orders a job catalog by compatibility with one candidate
// profile, blending traditional scores with semantic similarity when the
// vector service is reachable.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vkinnnnn/givemejobs-match/internal/scoring"
	"github.com/vkinnnnn/givemejobs-match/internal/skills"
	"github.com/vkinnnnn/givemejobs-match/internal/types"
	"github.com/vkinnnnn/givemejobs-match/internal/vector"
)

// scoreConcurrency bounds how many jobs are scored in parallel during a
// catalog ranking pass.
const scoreConcurrency = 8

// RankedJob is one catalog entry ordered by ranking score.
type RankedJob struct {
	JobID              uuid.UUID         `json:"job_id"`
	RankingScore       float64           `json:"ranking_score"`
	SemanticSimilarity *float64          `json:"semantic_similarity,omitempty"`
	Match              *types.MatchScore `json:"match"`
}

// Ranker scores a profile against many jobs and orders the results.
type Ranker struct {
	extractor skills.Extractor
	adapter   *vector.Adapter
	cfg       *scoring.Config
}

// NewRanker creates a ranker. The adapter may be nil, in which case ranking
// uses traditional scores only.
func NewRanker(extractor skills.Extractor, adapter *vector.Adapter, cfg *scoring.Config) *Ranker {
	if cfg == nil {
		cfg = scoring.DefaultConfig()
	}
	return &Ranker{extractor: extractor, adapter: adapter, cfg: cfg}
}

// RankJobs scores the profile against every job and returns the catalog
// ordered by ranking score, truncated to topK when topK > 0. Semantic
// similarity, when available, contributes the configured blend share; its
// absence silently degrades to the traditional composite alone.
func (r *Ranker) RankJobs(ctx context.Context, profile *types.Profile, jobs []*types.JobPosting, topK int) ([]RankedJob, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}

	similarities := r.lookupSimilarities(ctx, profile, len(jobs))
	now := time.Now()

	ranked := make([]RankedJob, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			requirements, err := r.extractor.Extract(ctx, job)
			if err != nil {
				return fmt.Errorf("failed to extract requirements for job %s: %w", job.ID, err)
			}
			match := scoring.ComputeAt(profile, job, requirements, r.cfg, now)

			entry := RankedJob{JobID: job.ID, Match: match}
			traditional := match.OverallScore / 100
			if sim, ok := similarities[job.ID]; ok {
				blend := r.cfg.SemanticBlend
				entry.RankingScore = blend*sim + (1-blend)*traditional
				entry.SemanticSimilarity = &sim
			} else {
				entry.RankingScore = traditional
			}
			ranked[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RankingScore != ranked[j].RankingScore {
			return ranked[i].RankingScore > ranked[j].RankingScore
		}
		return ranked[i].JobID.String() < ranked[j].JobID.String()
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked, nil
}

// lookupSimilarities queries the semantic adapter once per ranking pass.
// An unavailable adapter yields an empty map.
func (r *Ranker) lookupSimilarities(ctx context.Context, profile *types.Profile, catalogSize int) map[uuid.UUID]float64 {
	if r.adapter == nil || catalogSize == 0 {
		return nil
	}

	result := r.adapter.Similar(ctx, ProfileText(profile), catalogSize, nil)
	if !result.Available {
		return nil
	}

	similarities := make(map[uuid.UUID]float64, len(result.Matches))
	for _, m := range result.Matches {
		similarities[m.JobID] = m.Similarity
	}
	return similarities
}
