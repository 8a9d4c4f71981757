package skills

import (
	"context"
	"strings"

	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// Extractor derives a canonical required-skill set from a job posting's free
// text. Implementations must be deterministic for unchanged input.
type Extractor interface {
	Extract(ctx context.Context, job *types.JobPosting) ([]string, error)
}

// DictionaryExtractor matches dictionary entries against the posting's
// description and requirement lines via case-insensitive containment.
type DictionaryExtractor struct {
	dict *Dictionary
}

// NewDictionaryExtractor creates an extractor over the given dictionary,
// falling back to the built-in dictionary when nil.
func NewDictionaryExtractor(dict *Dictionary) *DictionaryExtractor {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &DictionaryExtractor{dict: dict}
}

// Extract returns the canonical skills mentioned in the posting text, in
// dictionary order. An empty result means the posting has no extractable
// requirements.
func (e *DictionaryExtractor) Extract(_ context.Context, job *types.JobPosting) ([]string, error) {
	text := job.RequirementText()
	if text == "" {
		return nil, nil
	}

	var found []string
	for _, entry := range e.dict.Entries {
		if containsTerm(text, entry.Name) {
			found = append(found, entry.Name)
			continue
		}
		for _, alias := range entry.Aliases {
			if containsTerm(text, alias) {
				found = append(found, entry.Name)
				break
			}
		}
	}
	return found, nil
}

// containsTerm reports whether term occurs in text with non-alphanumeric
// boundaries on both sides, so short names like "go" do not match inside
// unrelated words. Both inputs must already be lower-cased.
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], term)
		if idx < 0 {
			return false
		}
		idx += from
		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(term)) {
			return true
		}
		from = idx + 1
	}
	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	return !isAlphanumeric(text[idx-1])
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	return !isAlphanumeric(text[idx])
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
