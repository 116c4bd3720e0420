package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePrefs(t *testing.T, raw string) Preferences {
	t.Helper()
	var p Preferences
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestPreferencesDecodeDefaultsMinMatchScore(t *testing.T) {
	assert.Equal(t, DefaultMinMatchScore, decodePrefs(t, `{"skills":"react"}`).MinMatchScore)
	assert.Equal(t, DefaultMinMatchScore, decodePrefs(t, `{"minMatchScore":null}`).MinMatchScore)
	assert.Equal(t, DefaultMinMatchScore, decodePrefs(t, `{"minMatchScore":"high"}`).MinMatchScore)
}

func TestPreferencesDecodeKeepsExplicitValues(t *testing.T) {
	assert.Equal(t, 0, decodePrefs(t, `{"minMatchScore":0}`).MinMatchScore)
	assert.Equal(t, 72, decodePrefs(t, `{"minMatchScore":72}`).MinMatchScore)

	// Out-of-range survives decode; Normalize clamps it.
	p := decodePrefs(t, `{"minMatchScore":150}`)
	assert.Equal(t, 150, p.MinMatchScore)
	assert.Equal(t, 100, p.Normalize().MinMatchScore)
}

func TestPreferencesDecodeOtherFields(t *testing.T) {
	p := decodePrefs(t, `{"roleKeywords":"react","preferredMode":["Remote"],"skills":"sql"}`)
	assert.Equal(t, "react", p.RoleKeywords)
	assert.Equal(t, []string{"Remote"}, p.PreferredMode)
	assert.Equal(t, "sql", p.Skills)
}

func TestNormalizeConstrainsModes(t *testing.T) {
	p := Preferences{PreferredMode: []string{"Remote", "WFH", " Hybrid ", "Onsite"}}
	assert.Equal(t, []string{"Remote", "Hybrid", "Onsite"}, p.Normalize().PreferredMode)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 100, ClampScore(180))
	assert.Equal(t, 40, ClampScore(40))
}
