// Package parsing provides canonicalization of skill names and profile features.
package parsing

import "strings"

// skillAliases maps common skill name variants to canonical names.
// Canonical names are always lower-case so they can be compared as set members.
var skillAliases = map[string]string{
	"golang":     "go",
	"go lang":    "go",
	"js":         "javascript",
	"ecmascript": "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"nodejs":     "node.js",
	"node":       "node.js",
	"postgres":   "postgresql",
	"py":         "python",
	"c sharp":    "c#",
	"ml":         "machine learning",
}

// CanonicalSkillName normalizes a skill name to its canonical lower-cased form.
// Returns the empty string for blank input.
func CanonicalSkillName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// CanonicalSkillSet normalizes a list of skill names, dropping blanks and
// duplicates while preserving first-seen order.
func CanonicalSkillSet(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		canonical := CanonicalSkillName(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}

// ContainsSkill reports whether a canonical skill name is present in a
// canonical skill set.
func ContainsSkill(set []string, name string) bool {
	canonical := CanonicalSkillName(name)
	for _, s := range set {
		if s == canonical {
			return true
		}
	}
	return false
}
