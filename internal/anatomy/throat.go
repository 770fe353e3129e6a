package anatomy

// throatCatalogue builds the catalogue for the throat model.
func throatCatalogue() *Catalogue {
	return &Catalogue{
		Type: Throat,

		Parts: map[PartKey]*Part{
			"Pharynx": {
				Key:         "Pharynx",
				Name:        "Pharynx",
				Description: "The muscular passage behind the mouth and nasal cavity shared by air and food.",
				Conditions: []Condition{
					{ID: "throat-pharyngitis", Name: "Pharyngitis", Medicines: []string{"Penicillin V", "Paracetamol"}},
				},
			},
			"Larynx": {
				Key:         "Larynx",
				Name:        "Larynx",
				Description: "The voice box housing the vocal cords at the top of the trachea.",
				Conditions: []Condition{
					{ID: "throat-laryngitis", Name: "Laryngitis", Medicines: []string{"Voice rest", "Ibuprofen"}},
				},
			},
			"Epiglottis": {
				Key:         "Epiglottis",
				Name:        "Epiglottis",
				Description: "The leaf-shaped cartilage flap that seals the airway during swallowing.",
				Conditions: []Condition{
					{ID: "throat-epiglottitis", Name: "Epiglottitis", Medicines: []string{"Ceftriaxone"}},
				},
			},
			"Vocal_Cords": {
				Key:         "Vocal_Cords",
				Name:        "Vocal Cords",
				Description: "The paired folds in the larynx that vibrate to produce voice.",
				Conditions: []Condition{
					{ID: "throat-nodules", Name: "Vocal Cord Nodules", Medicines: []string{"Voice therapy"}},
					{ID: "throat-polyp", Name: "Vocal Cord Polyp", Medicines: []string{"Omeprazole"}},
				},
			},
			"Trachea": {
				Key:         "Trachea",
				Name:        "Trachea",
				Description: "The cartilage-ringed windpipe carrying air from the larynx toward the lungs.",
				Conditions: []Condition{
					{ID: "throat-tracheitis", Name: "Tracheitis", Medicines: []string{"Amoxicillin-clavulanate"}},
				},
			},
			"Tonsils": {
				Key:         "Tonsils",
				Name:        "Tonsils",
				Description: "The paired lymphoid masses at the back of the throat.",
				Conditions: []Condition{
					{ID: "throat-tonsillitis", Name: "Tonsillitis", Medicines: []string{"Penicillin V", "Ibuprofen"}},
				},
			},
			"Esophagus": {
				Key:         "Esophagus",
				Name:        "Esophagus",
				Description: "The muscular tube carrying food from the pharynx to the stomach.",
				Conditions: []Condition{
					{ID: "throat-gerd", Name: "Gastroesophageal Reflux", Medicines: []string{"Omeprazole", "Ranitidine"}},
				},
			},
			"Uvula": {
				Key:         "Uvula",
				Name:        "Uvula",
				Description: "The soft tissue projection hanging from the back of the soft palate.",
				Conditions: []Condition{
					{ID: "throat-uvulitis", Name: "Uvulitis", Medicines: []string{"Cetirizine"}},
				},
			},
		},

		Synonyms: map[string]PartKey{
			"Voice_Box":       "Larynx",
			"Windpipe":        "Trachea",
			"Vocal_Folds":     "Vocal_Cords",
			"Glottis":         "Vocal_Cords",
			"Palatine_Tonsil": "Tonsils",
			"Adenoids":        "Tonsils",
			"Oropharynx":      "Pharynx",
			"Nasopharynx":     "Pharynx",
			"Laryngopharynx":  "Pharynx",
			"Gullet":          "Esophagus",
			"Oesophagus":      "Esophagus",
			"Camera":          PartNA,
			"Light":           PartNA,
			"Backdrop":        PartNA,
		},

		Ordinals: map[int]PartKey{
			1: "Pharynx",
			2: "Epiglottis",
			3: "Larynx",
			4: "Vocal_Cords",
			5: "Trachea",
			6: "Tonsils",
			7: "Esophagus",
			8: "Uvula",
		},

		// Ordered: epiglottis must run before the glottis/vocal rule, since
		// "epiglottis" contains "glottis" as a substring.
		Patterns: []PatternRule{
			{Expr: `epiglott`, Key: "Epiglottis"},
			{Expr: `vocal|glottis`, Key: "Vocal_Cords"},
			{Expr: `tonsil|adenoid`, Key: "Tonsils"},
			{Expr: `trachea|windpipe`, Key: "Trachea"},
			{Expr: `larynx|laryngeal|voice`, Key: "Larynx"},
			{Expr: `esophag|oesophag|gullet`, Key: "Esophagus"},
			{Expr: `uvula`, Key: "Uvula"},
			{Expr: `pharynx|pharyngeal|throat`, Key: "Pharynx"},
		},

		AncestorPatterns: []PatternRule{
			{Expr: `epiglott`, Key: "Epiglottis"},
			{Expr: `larynx`, Key: "Larynx"},
			{Expr: `trachea`, Key: "Trachea"},
			{Expr: `throat|pharynx`, Key: "Pharynx"},
		},

		DiagramLabels: map[string]PartKey{
			"pharynx":     "Pharynx",
			"larynx":      "Larynx",
			"voice box":   "Larynx",
			"epiglottis":  "Epiglottis",
			"vocal cords": "Vocal_Cords",
			"trachea":     "Trachea",
			"windpipe":    "Trachea",
			"tonsils":     "Tonsils",
			"esophagus":   "Esophagus",
			"uvula":       "Uvula",
		},

		FallbackRegions: []PercentRegion{
			{Key: "Uvula", X: 0.42, Y: 0.08, Width: 0.16, Height: 0.10},
			{Key: "Tonsils", X: 0.25, Y: 0.12, Width: 0.15, Height: 0.14},
			{Key: "Pharynx", X: 0.35, Y: 0.20, Width: 0.30, Height: 0.18},
			{Key: "Epiglottis", X: 0.40, Y: 0.38, Width: 0.20, Height: 0.08},
			{Key: "Larynx", X: 0.36, Y: 0.46, Width: 0.28, Height: 0.14},
			{Key: "Vocal_Cords", X: 0.42, Y: 0.52, Width: 0.16, Height: 0.06},
			{Key: "Trachea", X: 0.40, Y: 0.62, Width: 0.20, Height: 0.28},
			{Key: "Esophagus", X: 0.62, Y: 0.60, Width: 0.14, Height: 0.30},
		},
	}
}
