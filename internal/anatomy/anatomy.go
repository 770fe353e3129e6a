// Package anatomy provides the anatomical part catalogues and the
// vocabulary the resolver and adapters work against.
package anatomy

import "fmt"

// Type identifies the active anatomical model.
type Type int

const (
	Ear Type = iota
	Nose
	Throat
	Dental
	Lungs
	Kidney
	Skeleton
)

func (t Type) String() string {
	switch t {
	case Ear:
		return "ear"
	case Nose:
		return "nose"
	case Throat:
		return "throat"
	case Dental:
		return "dental"
	case Lungs:
		return "lungs"
	case Kidney:
		return "kidney"
	case Skeleton:
		return "skeleton"
	default:
		return "unknown"
	}
}

// AllTypes lists every supported anatomy type in display order.
func AllTypes() []Type {
	return []Type{Ear, Nose, Throat, Dental, Lungs, Kidney, Skeleton}
}

// ParseType parses a type name as produced by Type.String.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown anatomy type %q", s)
}

// PartKey is the canonical identifier for an anatomical structure within
// one anatomy type's catalogue. The empty string means "no part".
type PartKey string

// PartNA marks geometry that is part of the asset but not clinically
// meaningful (lights, camera rigs, backdrop planes). It is never
// displayable and never selectable.
const PartNA PartKey = "NA"

// PartInfo is the displayable subset of a catalogue part record.
type PartInfo struct {
	Key         PartKey `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// Condition is a clinical condition associated with a part, together with
// the medicines commonly prescribed for it.
type Condition struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Medicines []string `json:"medicines,omitempty"`
}

// Part is a full catalogue record for one anatomical structure.
type Part struct {
	Key         PartKey     `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Conditions  []Condition `json:"conditions,omitempty"`
}

// Info returns the displayable subset of the part record.
func (p *Part) Info() PartInfo {
	return PartInfo{Key: p.Key, Name: p.Name, Description: p.Description}
}
