package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalSkillName_Aliases(t *testing.T) {
	assert.Equal(t, "go", CanonicalSkillName("Golang"))
	assert.Equal(t, "javascript", CanonicalSkillName("JS"))
	assert.Equal(t, "node.js", CanonicalSkillName("NodeJS"))
	assert.Equal(t, "kubernetes", CanonicalSkillName("k8s"))
}

func TestCanonicalSkillName_LowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "python", CanonicalSkillName("  Python  "))
	assert.Equal(t, "react", CanonicalSkillName("React"))
}

func TestCanonicalSkillName_Empty(t *testing.T) {
	assert.Equal(t, "", CanonicalSkillName(""))
	assert.Equal(t, "", CanonicalSkillName("   "))
}

func TestCanonicalSkillSet_Deduplicates(t *testing.T) {
	set := CanonicalSkillSet([]string{"Go", "golang", "JavaScript", "js", "React"})
	assert.Equal(t, []string{"go", "javascript", "react"}, set)
}

func TestCanonicalSkillSet_DropsBlanks(t *testing.T) {
	set := CanonicalSkillSet([]string{"", "  ", "Python"})
	assert.Equal(t, []string{"python"}, set)
}

func TestCanonicalSkillSet_Empty(t *testing.T) {
	assert.Nil(t, CanonicalSkillSet(nil))
}

func TestContainsSkill(t *testing.T) {
	set := []string{"go", "javascript"}
	assert.True(t, ContainsSkill(set, "Golang"))
	assert.True(t, ContainsSkill(set, "JS"))
	assert.False(t, ContainsSkill(set, "Rust"))
}
