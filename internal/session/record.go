// Package session aggregates the active selection and the clinician's
// edits into an annotation record for the encounter, with content-hash
// dirty tracking so sinks only see real changes.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"anatomy-mapper/internal/anatomy"
)

// AnnotationRecord is one annotated finding: which part of which
// anatomy model was selected and what the clinician attached to it.
type AnnotationRecord struct {
	ID                  uuid.UUID        `json:"id"`
	AnatomyType         anatomy.Type     `json:"anatomy_type"`
	SelectedPartKey     anatomy.PartKey  `json:"selected_part_key"`
	PartInfo            anatomy.PartInfo `json:"part_info"`
	SelectedConditionID string           `json:"selected_condition_id"`
	PrescribedItems     []string         `json:"prescribed_items"`
	Notes               string           `json:"notes"`
	DiagnosisTags       []string         `json:"diagnosis_tags"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// hashView is the canonical content of a record. Timestamps stay out
// so touching a record without changing it does not dirty it.
type hashView struct {
	ID                  uuid.UUID        `json:"id"`
	AnatomyType         anatomy.Type     `json:"anatomy_type"`
	SelectedPartKey     anatomy.PartKey  `json:"selected_part_key"`
	PartInfo            anatomy.PartInfo `json:"part_info"`
	SelectedConditionID string           `json:"selected_condition_id"`
	PrescribedItems     []string         `json:"prescribed_items"`
	Notes               string           `json:"notes"`
	DiagnosisTags       []string         `json:"diagnosis_tags"`
}

// ContentHash returns the SHA-256 of the record's canonical JSON,
// excluding timestamps.
func (r AnnotationRecord) ContentHash() string {
	view := hashView{
		ID:                  r.ID,
		AnatomyType:         r.AnatomyType,
		SelectedPartKey:     r.SelectedPartKey,
		PartInfo:            r.PartInfo,
		SelectedConditionID: r.SelectedConditionID,
		PrescribedItems:     r.PrescribedItems,
		Notes:               r.Notes,
		DiagnosisTags:       r.DiagnosisTags,
	}
	// struct marshaling has a fixed field order, so this is canonical
	data, err := json.Marshal(view)
	if err != nil {
		// only reachable with unmarshalable field types, which the
		// record does not have
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
