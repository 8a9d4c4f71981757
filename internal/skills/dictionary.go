// Package skills provides the skill dictionary and requirement extraction from
// free-text job postings.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vkinnnnn/givemejobs-match/internal/parsing"
)

// dictionarySchema validates externally supplied dictionary files so the
// dictionary can be updated without redeploying scorer logic.
const dictionarySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "aliases": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// Entry is a canonical skill name plus the alias spellings that map to it.
type Entry struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

// Dictionary holds the canonical skill vocabulary used by the extractor.
type Dictionary struct {
	Entries []Entry `json:"skills"`
}

// DefaultDictionary returns the built-in skill vocabulary used when no
// dictionary file is configured.
func DefaultDictionary() *Dictionary {
	return &Dictionary{Entries: []Entry{
		{Name: "javascript", Aliases: []string{"js"}},
		{Name: "typescript", Aliases: []string{"ts"}},
		{Name: "python"},
		{Name: "java"},
		{Name: "go", Aliases: []string{"golang"}},
		{Name: "c#", Aliases: []string{"c sharp", ".net"}},
		{Name: "c++"},
		{Name: "ruby"},
		{Name: "php"},
		{Name: "rust"},
		{Name: "kotlin"},
		{Name: "swift"},
		{Name: "react", Aliases: []string{"react.js", "reactjs"}},
		{Name: "angular"},
		{Name: "vue", Aliases: []string{"vue.js", "vuejs"}},
		{Name: "node.js", Aliases: []string{"nodejs", "node"}},
		{Name: "django"},
		{Name: "flask"},
		{Name: "spring"},
		{Name: "express"},
		{Name: "sql"},
		{Name: "postgresql", Aliases: []string{"postgres"}},
		{Name: "mysql"},
		{Name: "mongodb", Aliases: []string{"mongo"}},
		{Name: "redis"},
		{Name: "elasticsearch"},
		{Name: "kafka"},
		{Name: "aws", Aliases: []string{"amazon web services"}},
		{Name: "azure"},
		{Name: "gcp", Aliases: []string{"google cloud"}},
		{Name: "docker"},
		{Name: "kubernetes", Aliases: []string{"k8s"}},
		{Name: "terraform"},
		{Name: "git"},
		{Name: "ci/cd", Aliases: []string{"continuous integration"}},
		{Name: "linux"},
		{Name: "graphql"},
		{Name: "rest", Aliases: []string{"restful"}},
		{Name: "grpc"},
		{Name: "machine learning", Aliases: []string{"ml"}},
		{Name: "data analysis", Aliases: []string{"data analytics"}},
		{Name: "agile", Aliases: []string{"scrum"}},
		{Name: "leadership"},
		{Name: "communication"},
	}}
}

// LoadDictionary reads a dictionary from a JSON file, validating it against
// the dictionary schema before use.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(dictionarySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate dictionary %s: %w", path, err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return nil, fmt.Errorf("invalid dictionary %s: %s", path, errs[0].String())
		}
		return nil, fmt.Errorf("invalid dictionary %s", path)
	}

	var dict Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}

	dict.normalize()
	return &dict, nil
}

// normalize canonicalizes entry names and lower-cases alias spellings in
// place. Alias spellings are kept verbatim (only lower-cased) because they are
// matched against raw posting text, not against canonical sets.
func (d *Dictionary) normalize() {
	entries := make([]Entry, 0, len(d.Entries))
	seen := make(map[string]bool, len(d.Entries))
	for _, entry := range d.Entries {
		name := parsing.CanonicalSkillName(entry.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		aliases := make([]string, 0, len(entry.Aliases))
		for _, alias := range entry.Aliases {
			if a := strings.ToLower(strings.TrimSpace(alias)); a != "" && a != name {
				aliases = append(aliases, a)
			}
		}
		entries = append(entries, Entry{Name: name, Aliases: aliases})
	}
	d.Entries = entries
}
