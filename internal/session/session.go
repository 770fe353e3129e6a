package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"anatomy-mapper/internal/anatomy"
)

// Sink receives flushed annotation records. Implementations persist
// them to the clinical record backend.
type Sink interface {
	SaveAnnotation(rec AnnotationRecord) error
}

// Session tracks one encounter's annotation. Mutations stamp
// UpdatedAt; FlushTo only hands the record on when its content hash
// moved since the last successful flush.
type Session struct {
	rec       AnnotationRecord
	lastFlush string
	now       func() time.Time
	log       zerolog.Logger
}

// New starts a session for an anatomy type with a fresh record.
func New(typ anatomy.Type, log zerolog.Logger) *Session {
	s := &Session{
		now: time.Now,
		log: log.With().Str("component", "session").Logger(),
	}
	created := s.now()
	s.rec = AnnotationRecord{
		ID:          uuid.New(),
		AnatomyType: typ,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	return s
}

// Record returns a copy of the current record.
func (s *Session) Record() AnnotationRecord {
	return s.rec
}

// Dirty reports whether the record changed since the last flush.
func (s *Session) Dirty() bool {
	return s.rec.ContentHash() != s.lastFlush
}

// SetSelection records the selected part. A cleared selection (empty
// key, nil info) wipes the part fields and the condition, which only
// makes sense relative to a part.
func (s *Session) SetSelection(key anatomy.PartKey, info *anatomy.PartInfo) {
	if key == "" || info == nil {
		s.rec.SelectedPartKey = ""
		s.rec.PartInfo = anatomy.PartInfo{}
		s.rec.SelectedConditionID = ""
	} else {
		if s.rec.SelectedPartKey != key {
			s.rec.SelectedConditionID = ""
		}
		s.rec.SelectedPartKey = key
		s.rec.PartInfo = *info
	}
	s.touch()
}

// SetCondition records the picked condition for the selected part.
func (s *Session) SetCondition(conditionID string) {
	s.rec.SelectedConditionID = conditionID
	s.touch()
}

// SetPrescribedItems replaces the prescription list.
func (s *Session) SetPrescribedItems(items []string) {
	s.rec.PrescribedItems = append([]string(nil), items...)
	s.touch()
}

// AddPrescribedItem appends one prescription entry, skipping exact
// duplicates.
func (s *Session) AddPrescribedItem(item string) {
	for _, existing := range s.rec.PrescribedItems {
		if existing == item {
			return
		}
	}
	s.rec.PrescribedItems = append(s.rec.PrescribedItems, item)
	s.touch()
}

// SetNotes replaces the free-text notes.
func (s *Session) SetNotes(notes string) {
	s.rec.Notes = notes
	s.touch()
}

// SetDiagnosisTags replaces the diagnosis tag list.
func (s *Session) SetDiagnosisTags(tags []string) {
	s.rec.DiagnosisTags = append([]string(nil), tags...)
	s.touch()
}

func (s *Session) touch() {
	s.rec.UpdatedAt = s.now()
}

// FlushTo hands the record to the sink if its content moved since the
// last successful flush. A clean record is a no-op; a sink failure
// leaves the session dirty so the next flush retries.
func (s *Session) FlushTo(sink Sink) error {
	hash := s.rec.ContentHash()
	if hash == s.lastFlush {
		return nil
	}
	if err := sink.SaveAnnotation(s.rec); err != nil {
		return fmt.Errorf("flush annotation %s: %w", s.rec.ID, err)
	}
	s.lastFlush = hash
	s.log.Debug().
		Str("record", s.rec.ID.String()).
		Str("part", string(s.rec.SelectedPartKey)).
		Msg("annotation flushed")
	return nil
}
