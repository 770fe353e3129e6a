package anatomy

// noseCatalogue builds the catalogue for the nasal model.
func noseCatalogue() *Catalogue {
	return &Catalogue{
		Type: Nose,

		Parts: map[PartKey]*Part{
			"Nasal_Cavity": {
				Key:         "Nasal_Cavity",
				Name:        "Nasal Cavity",
				Description: "The air-filled space behind the nostrils that warms, humidifies and filters inhaled air.",
				Conditions: []Condition{
					{ID: "nose-rhinitis", Name: "Allergic Rhinitis", Medicines: []string{"Loratadine", "Fluticasone spray"}},
					{ID: "nose-polyps", Name: "Nasal Polyps", Medicines: []string{"Mometasone spray", "Prednisolone"}},
				},
			},
			"Nostrils": {
				Key:         "Nostrils",
				Name:        "Nostrils",
				Description: "The external nares, the paired openings into the nasal cavity.",
				Conditions: []Condition{
					{ID: "nose-vestibulitis", Name: "Nasal Vestibulitis", Medicines: []string{"Mupirocin ointment"}},
				},
			},
			"Septum": {
				Key:         "Septum",
				Name:        "Nasal Septum",
				Description: "The cartilage and bone wall dividing the left and right nasal passages.",
				Conditions: []Condition{
					{ID: "nose-deviated-septum", Name: "Deviated Septum", Medicines: []string{"Oxymetazoline spray"}},
					{ID: "nose-epistaxis", Name: "Epistaxis", Medicines: []string{"Tranexamic acid"}},
				},
			},
			"Sinuses": {
				Key:         "Sinuses",
				Name:        "Paranasal Sinuses",
				Description: "The frontal, maxillary, ethmoid and sphenoid air cavities draining into the nose.",
				Conditions: []Condition{
					{ID: "nose-sinusitis", Name: "Sinusitis", Medicines: []string{"Amoxicillin", "Saline irrigation"}},
				},
			},
			"Nasal_Bone": {
				Key:         "Nasal_Bone",
				Name:        "Nasal Bone",
				Description: "The paired bones forming the bridge of the nose.",
				Conditions: []Condition{
					{ID: "nose-fracture", Name: "Nasal Fracture", Medicines: []string{"Paracetamol"}},
				},
			},
			"Turbinates": {
				Key:         "Turbinates",
				Name:        "Turbinates",
				Description: "The curved conchae on the lateral nasal walls that regulate airflow.",
				Conditions: []Condition{
					{ID: "nose-turbinate-hypertrophy", Name: "Turbinate Hypertrophy", Medicines: []string{"Azelastine spray"}},
				},
			},
			"Olfactory_Bulb": {
				Key:         "Olfactory_Bulb",
				Name:        "Olfactory Bulb",
				Description: "The neural structure above the nasal cavity that processes smell.",
				Conditions: []Condition{
					{ID: "nose-anosmia", Name: "Anosmia", Medicines: []string{"Olfactory training"}},
				},
			},
		},

		Synonyms: map[string]PartKey{
			"Nares":           "Nostrils",
			"Nostril":         "Nostrils",
			"Nasal_Septum":    "Septum",
			"Septal_Cartilage": "Septum",
			"Frontal_Sinus":   "Sinuses",
			"Maxillary_Sinus": "Sinuses",
			"Ethmoid_Sinus":   "Sinuses",
			"Sphenoid_Sinus":  "Sinuses",
			"Conchae":         "Turbinates",
			"Inferior_Concha": "Turbinates",
			"Middle_Concha":   "Turbinates",
			"Olfactory_Nerve": "Olfactory_Bulb",
			"Camera":          PartNA,
			"Light":           PartNA,
			"Backdrop":        PartNA,
		},

		Ordinals: map[int]PartKey{
			1: "Nostrils",
			2: "Nasal_Cavity",
			3: "Septum",
			4: "Sinuses",
			5: "Nasal_Bone",
			6: "Turbinates",
			7: "Olfactory_Bulb",
			8: "Sinuses",
		},

		// Ordered: the nasal-bone rule must run before the generic nasal
		// rules, or every bone-bridge mesh resolves as the cavity.
		Patterns: []PatternRule{
			{Expr: `nasal_?bone|bridge`, Key: "Nasal_Bone"},
			{Expr: `sinus`, Key: "Sinuses"},
			{Expr: `septum|septal`, Key: "Septum"},
			{Expr: `turbinate|concha`, Key: "Turbinates"},
			{Expr: `olfactory`, Key: "Olfactory_Bulb"},
			{Expr: `nostril|nares|naris`, Key: "Nostrils"},
			{Expr: `nasal|nose|cavity`, Key: "Nasal_Cavity"},
		},

		AncestorPatterns: []PatternRule{
			{Expr: `sinus`, Key: "Sinuses"},
			{Expr: `septum`, Key: "Septum"},
			{Expr: `nasal|nose`, Key: "Nasal_Cavity"},
		},

		DiagramLabels: map[string]PartKey{
			"nasal cavity":   "Nasal_Cavity",
			"nostrils":       "Nostrils",
			"nostril":        "Nostrils",
			"septum":         "Septum",
			"nasal septum":   "Septum",
			"sinuses":        "Sinuses",
			"frontal sinus":  "Sinuses",
			"nasal bone":     "Nasal_Bone",
			"turbinates":     "Turbinates",
			"olfactory bulb": "Olfactory_Bulb",
		},

		FallbackRegions: []PercentRegion{
			{Key: "Nasal_Bone", X: 0.35, Y: 0.10, Width: 0.30, Height: 0.18},
			{Key: "Sinuses", X: 0.15, Y: 0.12, Width: 0.18, Height: 0.25},
			{Key: "Nasal_Cavity", X: 0.30, Y: 0.32, Width: 0.40, Height: 0.28},
			{Key: "Septum", X: 0.45, Y: 0.30, Width: 0.10, Height: 0.35},
			{Key: "Turbinates", X: 0.25, Y: 0.40, Width: 0.18, Height: 0.22},
			{Key: "Nostrils", X: 0.38, Y: 0.70, Width: 0.24, Height: 0.15},
			{Key: "Olfactory_Bulb", X: 0.40, Y: 0.05, Width: 0.20, Height: 0.10},
		},
	}
}
