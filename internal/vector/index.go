package vector

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryIndex is a thread-safe cosine-similarity index over embedded job
// texts. It backs local development and tests; a production vector database
// can replace it behind the Provider boundary.
type InMemoryIndex struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]indexEntry
}

type indexEntry struct {
	vec      []float32
	metadata map[string]string
}

// NewInMemoryIndex creates an empty index.
func NewInMemoryIndex() *InMemoryIndex {
	return &InMemoryIndex{entries: make(map[uuid.UUID]indexEntry)}
}

// Upsert stores or replaces the vector and metadata for a job.
func (idx *InMemoryIndex) Upsert(jobID uuid.UUID, vec []float32, metadata map[string]string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries[jobID] = indexEntry{vec: vec, metadata: metadata}
}

// Delete removes a job from the index.
func (idx *InMemoryIndex) Delete(jobID uuid.UUID) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.entries, jobID)
}

// Len returns the number of indexed jobs.
func (idx *InMemoryIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Query returns the topK most similar jobs, optionally restricted to entries
// whose metadata contains every filter pair. Cosine similarity is mapped from
// [-1,1] into [0,1].
func (idx *InMemoryIndex) Query(_ context.Context, vec []float32, topK int, filter map[string]string) ([]Match, error) {
	if len(vec) == 0 {
		return nil, fmt.Errorf("empty query vector")
	}
	if topK <= 0 {
		topK = 10
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	matches := make([]Match, 0, len(idx.entries))
	for id, entry := range idx.entries {
		if !metadataMatches(entry.metadata, filter) {
			continue
		}
		cos, err := cosine(vec, entry.vec)
		if err != nil {
			continue
		}
		matches = append(matches, Match{
			JobID:      id,
			Similarity: (1 + cos) / 2,
			Metadata:   entry.metadata,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		// Stable order for equal similarities.
		return matches[i].JobID.String() < matches[j].JobID.String()
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func metadataMatches(metadata, filter map[string]string) bool {
	for k, v := range filter {
		if metadata[k] != v {
			return false
		}
	}
	return true
}

// cosine computes the cosine similarity of two vectors of equal dimension.
func cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, fmt.Errorf("dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("zero-magnitude vector")
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
