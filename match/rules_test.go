package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExclusionRules(t *testing.T) {
	data := []byte(`
name: custom
local_part_tokens:
  - noreply
domains:
  - example.com
`)
	rules, err := LoadExclusionRules(data)
	require.NoError(t, err)

	assert.Equal(t, "custom", rules.Name)
	assert.Equal(t, []string{"noreply"}, rules.LocalPartTokens)
	assert.Equal(t, []string{"example.com"}, rules.Domains)
}

func TestLoadExclusionRulesInvalid(t *testing.T) {
	_, err := LoadExclusionRules([]byte("local_part_tokens: {bad"))
	assert.Error(t, err)
}

func TestEmbeddedDefaultRules(t *testing.T) {
	require.NotNil(t, defaultRules)
	assert.NotEmpty(t, defaultRules.LocalPartTokens)
	assert.NotEmpty(t, defaultRules.Domains)
	assert.Contains(t, defaultRules.Domains, "elsevier.com")
}
