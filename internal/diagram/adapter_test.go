package diagram

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anatomy-mapper/internal/anatomy"
)

func buildEarIndex(t *testing.T) *Index {
	t.Helper()
	doc, err := Parse([]byte(earSVG))
	require.NoError(t, err)
	return BuildIndex(doc, anatomy.Get(anatomy.Ear), zerolog.Nop())
}

type captured struct {
	key     anatomy.PartKey
	info    *anatomy.PartInfo
	guessed bool
	calls   int
}

func (c *captured) fn(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool) {
	c.key, c.info, c.guessed = key, info, guessed
	c.calls++
}

func newTestAdapter(t *testing.T, ix *Index, typ anatomy.Type) (*Adapter, *captured) {
	t.Helper()
	cap := &captured{}
	ad := NewAdapter(cap.fn, zerolog.Nop())
	ad.SetDiagram(ix, typ)
	cap.calls = 0
	return ad, cap
}

// click presses and releases at the same point well inside the gesture
// thresholds.
func click(ad *Adapter, x, y float64) {
	at := time.Now()
	ad.PressAt(x, y, at)
	ad.ReleaseAt(x, y, at.Add(50*time.Millisecond))
}

func TestIndexMatchesLabels(t *testing.T) {
	ix := buildEarIndex(t)
	assert.True(t, ix.FromLabels())

	keys := map[anatomy.PartKey]bool{}
	for _, r := range ix.Regions() {
		keys[r.Key] = true
	}
	// "Cochlea (inner ear)" and "Pinna" match; the split "Tympanic" and
	// "membrane" runs match nothing and are skipped
	assert.True(t, keys["Cochlea"])
	assert.True(t, keys["Outer_Ear"])
	assert.Len(t, keys, 2)
}

func TestMatchLabelSubstringPrefersLongestKey(t *testing.T) {
	cat := anatomy.Get(anatomy.Ear)
	// contains both "tympanic membrane" and "ear canal"; the longer
	// table key wins
	assert.Equal(t, anatomy.PartKey("Eardrum"),
		matchLabel("Tympanic membrane near ear canal", cat))
	assert.Equal(t, anatomy.PartKey("Ear_Canal"),
		matchLabel("External ear canal", cat))
	assert.Equal(t, anatomy.PartKey(""), matchLabel("Scale bar", cat))
}

func TestIndexAt(t *testing.T) {
	ix := buildEarIndex(t)

	// inside the padded Cochlea label box
	r := ix.At(50, 55)
	require.NotNil(t, r)
	assert.Equal(t, anatomy.PartKey("Cochlea"), r.Key)

	assert.Nil(t, ix.At(5, 290))
}

func TestFallbackRegionsWhenNoLabelsMatch(t *testing.T) {
	// a label-less diagram: only decoration paths, nothing to match
	doc, err := Parse([]byte(`<svg viewBox="0 0 100 100"><path d="M0 0 L100 100"/></svg>`))
	require.NoError(t, err)

	ix := BuildIndex(doc, anatomy.Get(anatomy.Kidney), zerolog.Nop())
	assert.False(t, ix.FromLabels())
	assert.Len(t, ix.Regions(), 6)

	r := ix.At(45, 55)
	require.NotNil(t, r)
	assert.Equal(t, anatomy.PartKey("Ureter"), r.Key)
	assert.Equal(t, "", r.Label)
}

func TestOverlapResolvesToSmallestRegion(t *testing.T) {
	doc, err := Parse([]byte(`<svg viewBox="0 0 100 100"></svg>`))
	require.NoError(t, err)
	ix := BuildIndex(doc, anatomy.Get(anatomy.Kidney), zerolog.Nop())

	// (44,30) sits in both the Kidney and the smaller Renal_Pelvis box
	r := ix.At(44, 30)
	require.NotNil(t, r)
	assert.Equal(t, anatomy.PartKey("Renal_Pelvis"), r.Key)
}

func TestClickSelectsAndReportsPart(t *testing.T) {
	ad, cap := newTestAdapter(t, buildEarIndex(t), anatomy.Ear)

	click(ad, 50, 55)

	assert.Equal(t, 1, cap.calls)
	assert.Equal(t, anatomy.PartKey("Cochlea"), cap.key)
	require.NotNil(t, cap.info)
	assert.Equal(t, "Cochlea", cap.info.Name)
	assert.False(t, cap.guessed, "labeled regions are never guesses")
	assert.NotEmpty(t, ad.SelectedRegions())
}

func TestClickToggleReturnsToIdle(t *testing.T) {
	ad, cap := newTestAdapter(t, buildEarIndex(t), anatomy.Ear)

	click(ad, 50, 55)
	click(ad, 50, 55)

	assert.Equal(t, 2, cap.calls)
	assert.Equal(t, anatomy.PartKey(""), cap.key)
	assert.Nil(t, cap.info)
	assert.True(t, ad.State().IsIdle())
	assert.Empty(t, ad.SelectedRegions())
}

func TestClickEmptySpaceClears(t *testing.T) {
	ad, cap := newTestAdapter(t, buildEarIndex(t), anatomy.Ear)

	click(ad, 50, 55)
	click(ad, 5, 290)

	assert.Nil(t, cap.info)
	assert.True(t, ad.State().IsIdle())
}

func TestDragIsNotAClick(t *testing.T) {
	ad, cap := newTestAdapter(t, buildEarIndex(t), anatomy.Ear)

	at := time.Now()
	ad.PressAt(50, 55, at)
	ad.ReleaseAt(90, 55, at.Add(50*time.Millisecond))

	assert.Equal(t, 0, cap.calls)
	assert.True(t, ad.State().IsIdle())
}

func TestHoverAndSuppressionOnSelected(t *testing.T) {
	ad, _ := newTestAdapter(t, buildEarIndex(t), anatomy.Ear)

	ad.HoverAt(50, 55)
	assert.Equal(t, anatomy.PartKey("Cochlea"), ad.State().Hovered)
	assert.NotEmpty(t, ad.HoveredRegions())

	click(ad, 50, 55)
	ad.HoverAt(50, 55)
	assert.Equal(t, anatomy.PartKey(""), ad.State().Hovered)
	assert.Empty(t, ad.HoveredRegions())
}

func TestFallbackClickFiresCallback(t *testing.T) {
	doc, err := Parse([]byte(`<svg viewBox="0 0 100 100"></svg>`))
	require.NoError(t, err)
	ix := BuildIndex(doc, anatomy.Get(anatomy.Kidney), zerolog.Nop())
	ad, cap := newTestAdapter(t, ix, anatomy.Kidney)

	click(ad, 45, 55)

	assert.Equal(t, anatomy.PartKey("Ureter"), cap.key)
	require.NotNil(t, cap.info)
	assert.Equal(t, "Ureter", cap.info.Name)
}

func TestNilDiagramTolerated(t *testing.T) {
	ad, cap := newTestAdapter(t, nil, anatomy.Ear)

	ad.HoverAt(10, 10)
	click(ad, 10, 10)

	assert.Equal(t, 0, cap.calls)
	assert.True(t, ad.State().IsIdle())
}
