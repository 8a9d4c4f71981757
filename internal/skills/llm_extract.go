package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vkinnnnn/givemejobs-match/internal/llm"
	"github.com/vkinnnnn/givemejobs-match/internal/parsing"
	"github.com/vkinnnnn/givemejobs-match/internal/types"
)

// LLMExtractor derives the required-skill set from posting text using an LLM.
// It satisfies the same Extractor boundary as DictionaryExtractor so the two
// can be swapped without touching scorer logic.
type LLMExtractor struct {
	client llm.Client
}

// NewLLMExtractor creates an LLM-backed extractor.
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// Extract asks the LLM for the skills required by the posting and returns
// them in canonical form.
func (e *LLMExtractor) Extract(ctx context.Context, job *types.JobPosting) ([]string, error) {
	text := strings.TrimSpace(job.RequirementText())
	if text == "" {
		return nil, nil
	}

	prompt := fmt.Sprintf(
		"Extract the technical and professional skills required by this job posting. "+
			"Respond with only a JSON array of short skill name strings.\n\n%s", text)

	raw, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to extract skills: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("failed to parse skill list: %w", err)
	}

	return parsing.CanonicalSkillSet(names), nil
}
