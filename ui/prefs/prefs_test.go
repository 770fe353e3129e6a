package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "preferences.json")

	p := LoadFrom(path)
	assert.Equal(t, "ear", p.String(KeyAnatomyType, "ear"))

	p.SetString(KeyAnatomyType, "dental")
	p.SetBool(KeyShowRegions, true)
	p.SetFloat("zoom", 1.5)
	require.NoError(t, p.Save())

	q := LoadFrom(path)
	assert.Equal(t, "dental", q.String(KeyAnatomyType, "ear"))
	assert.True(t, q.Bool(KeyShowRegions, false))
	assert.Equal(t, 1.5, q.Float("zoom", 1.0))
	assert.Equal(t, "none", q.String("missing", "none"))
}
