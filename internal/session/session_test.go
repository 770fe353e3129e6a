package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/diagram"
)

type memorySink struct {
	records []AnnotationRecord
	fail    error
}

func (m *memorySink) SaveAnnotation(rec AnnotationRecord) error {
	if m.fail != nil {
		return m.fail
	}
	m.records = append(m.records, rec)
	return nil
}

func newEarSession(t *testing.T) *Session {
	t.Helper()
	return New(anatomy.Ear, zerolog.Nop())
}

func selectPart(t *testing.T, s *Session, key anatomy.PartKey) {
	t.Helper()
	info, ok := anatomy.Get(anatomy.Ear).Info(key)
	require.True(t, ok)
	s.SetSelection(key, &info)
}

func TestFlushSkipsUnchangedRecord(t *testing.T) {
	s := newEarSession(t)
	sink := &memorySink{}

	selectPart(t, s, "Cochlea")
	require.NoError(t, s.FlushTo(sink))
	require.Len(t, sink.records, 1)
	assert.False(t, s.Dirty())

	// touching without changing content stays clean
	s.SetNotes(s.Record().Notes)
	require.NoError(t, s.FlushTo(sink))
	assert.Len(t, sink.records, 1)

	s.SetNotes("effusion visible")
	require.NoError(t, s.FlushTo(sink))
	assert.Len(t, sink.records, 2)
	assert.Equal(t, "effusion visible", sink.records[1].Notes)
}

func TestFlushFailureStaysDirty(t *testing.T) {
	s := newEarSession(t)
	sink := &memorySink{fail: errors.New("backend down")}

	selectPart(t, s, "Eardrum")
	err := s.FlushTo(sink)
	require.Error(t, err)
	assert.True(t, s.Dirty())

	sink.fail = nil
	require.NoError(t, s.FlushTo(sink))
	assert.Len(t, sink.records, 1)
	assert.False(t, s.Dirty())
}

func TestSelectionChangeResetsCondition(t *testing.T) {
	s := newEarSession(t)

	selectPart(t, s, "Eardrum")
	s.SetCondition("ear-infection")
	assert.Equal(t, "ear-infection", s.Record().SelectedConditionID)

	selectPart(t, s, "Cochlea")
	assert.Equal(t, "", s.Record().SelectedConditionID)

	s.SetCondition("hearing-loss")
	s.SetSelection("", nil)
	rec := s.Record()
	assert.Equal(t, anatomy.PartKey(""), rec.SelectedPartKey)
	assert.Equal(t, "", rec.SelectedConditionID)
	assert.Equal(t, anatomy.PartInfo{}, rec.PartInfo)
}

func TestPrescribedItemsDeduplicate(t *testing.T) {
	s := newEarSession(t)

	s.AddPrescribedItem("Amoxicillin 500mg")
	s.AddPrescribedItem("Paracetamol")
	s.AddPrescribedItem("Amoxicillin 500mg")

	assert.Equal(t, []string{"Amoxicillin 500mg", "Paracetamol"}, s.Record().PrescribedItems)
}

func TestContentHashIgnoresTimestamps(t *testing.T) {
	s := newEarSession(t)
	selectPart(t, s, "Cochlea")

	before := s.Record().ContentHash()
	s.SetNotes(s.Record().Notes)
	assert.Equal(t, before, s.Record().ContentHash())

	s.SetDiagnosisTags([]string{"otitis"})
	assert.NotEqual(t, before, s.Record().ContentHash())
}

func TestWriteSnapshotSVG(t *testing.T) {
	doc, err := diagram.Parse([]byte(`<svg viewBox="0 0 200 150">
		<text x="30" y="40" font-size="12">Cochlea</text>
		<text x="120" y="90" font-size="12">Eardrum</text>
	</svg>`))
	require.NoError(t, err)
	ix := diagram.BuildIndex(doc, anatomy.Get(anatomy.Ear), zerolog.Nop())

	s := newEarSession(t)
	selectPart(t, s, "Cochlea")
	s.SetCondition("hearing-loss")

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshotSVG(&buf, ix, s.Record()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "Cochlea")
	assert.Contains(t, out, "stroke:#00b4d8")
	assert.Contains(t, out, "hearing-loss")

	err = WriteSnapshotSVG(&buf, nil, s.Record())
	assert.Error(t, err)
}
