package anatomy

// lungsCatalogue builds the catalogue for the lungs model.
func lungsCatalogue() *Catalogue {
	return &Catalogue{
		Type: Lungs,

		Parts: map[PartKey]*Part{
			"Trachea": {
				Key:         "Trachea",
				Name:        "Trachea",
				Description: "The windpipe delivering air from the larynx to the main bronchi.",
				Conditions: []Condition{
					{ID: "lungs-tracheitis", Name: "Tracheitis", Medicines: []string{"Amoxicillin-clavulanate"}},
				},
			},
			"Bronchi": {
				Key:         "Bronchi",
				Name:        "Bronchi",
				Description: "The main airways branching from the trachea into each lung.",
				Conditions: []Condition{
					{ID: "lungs-bronchitis", Name: "Bronchitis", Medicines: []string{"Salbutamol", "Doxycycline"}},
				},
			},
			"Bronchioles": {
				Key:         "Bronchioles",
				Name:        "Bronchioles",
				Description: "The fine airway branches ending in the alveolar sacs.",
				Conditions: []Condition{
					{ID: "lungs-asthma", Name: "Asthma", Medicines: []string{"Salbutamol", "Budesonide"}},
					{ID: "lungs-bronchiolitis", Name: "Bronchiolitis", Medicines: []string{"Supportive care"}},
				},
			},
			"Alveoli": {
				Key:         "Alveoli",
				Name:        "Alveoli",
				Description: "The microscopic air sacs where gas exchange with the blood occurs.",
				Conditions: []Condition{
					{ID: "lungs-pneumonia", Name: "Pneumonia", Medicines: []string{"Amoxicillin", "Azithromycin"}},
					{ID: "lungs-emphysema", Name: "Emphysema", Medicines: []string{"Tiotropium"}},
				},
			},
			"Left_Lung": {
				Key:         "Left_Lung",
				Name:        "Left Lung",
				Description: "The two-lobed left lung, slightly smaller to accommodate the heart.",
				Conditions: []Condition{
					{ID: "lungs-copd", Name: "COPD", Medicines: []string{"Tiotropium", "Salbutamol"}},
				},
			},
			"Right_Lung": {
				Key:         "Right_Lung",
				Name:        "Right Lung",
				Description: "The three-lobed right lung.",
				Conditions: []Condition{
					{ID: "lungs-effusion", Name: "Pleural Effusion", Medicines: []string{"Furosemide"}},
				},
			},
			"Diaphragm": {
				Key:         "Diaphragm",
				Name:        "Diaphragm",
				Description: "The dome-shaped muscle below the lungs driving inhalation.",
				Conditions: []Condition{
					{ID: "lungs-hiccups", Name: "Chronic Hiccups", Medicines: []string{"Baclofen"}},
				},
			},
			"Pleura": {
				Key:         "Pleura",
				Name:        "Pleura",
				Description: "The double membrane lining the lungs and chest wall.",
				Conditions: []Condition{
					{ID: "lungs-pleurisy", Name: "Pleurisy", Medicines: []string{"Ibuprofen"}},
				},
			},
		},

		Synonyms: map[string]PartKey{
			"Windpipe":        "Trachea",
			"Main_Bronchus":   "Bronchi",
			"Left_Bronchus":   "Bronchi",
			"Right_Bronchus":  "Bronchi",
			"Alveolar_Sacs":   "Alveoli",
			"Air_Sacs":        "Alveoli",
			"Pleural_Membrane": "Pleura",
			"Camera":          PartNA,
			"Light":           PartNA,
			"Backdrop":        PartNA,
		},

		Ordinals: map[int]PartKey{
			1: "Trachea",
			2: "Bronchi",
			3: "Left_Lung",
			4: "Right_Lung",
			5: "Bronchioles",
			6: "Alveoli",
			7: "Diaphragm",
			8: "Pleura",
		},

		// Ordered: bronchiole before the broader bronch rule, since every
		// bronchiole name also contains "bronch".
		Patterns: []PatternRule{
			{Expr: `bronchiol`, Key: "Bronchioles"},
			{Expr: `bronch`, Key: "Bronchi"},
			{Expr: `alveol|air_?sac`, Key: "Alveoli"},
			{Expr: `trachea|windpipe`, Key: "Trachea"},
			{Expr: `diaphragm`, Key: "Diaphragm"},
			{Expr: `pleura|pleural`, Key: "Pleura"},
			{Expr: `left.*lung|lung.*left|lung_?l\b`, Key: "Left_Lung"},
			{Expr: `right.*lung|lung.*right|lung_?r\b`, Key: "Right_Lung"},
			{Expr: `lung`, Key: "Right_Lung"},
		},

		AncestorPatterns: []PatternRule{
			{Expr: `bronchiol`, Key: "Bronchioles"},
			{Expr: `bronch`, Key: "Bronchi"},
			{Expr: `trachea`, Key: "Trachea"},
			{Expr: `left.*lung`, Key: "Left_Lung"},
			{Expr: `lung`, Key: "Right_Lung"},
		},

		DiagramLabels: map[string]PartKey{
			"trachea":     "Trachea",
			"bronchi":     "Bronchi",
			"bronchus":    "Bronchi",
			"bronchioles": "Bronchioles",
			"alveoli":     "Alveoli",
			"left lung":   "Left_Lung",
			"right lung":  "Right_Lung",
			"diaphragm":   "Diaphragm",
			"pleura":      "Pleura",
		},

		FallbackRegions: []PercentRegion{
			{Key: "Trachea", X: 0.44, Y: 0.05, Width: 0.12, Height: 0.22},
			{Key: "Bronchi", X: 0.35, Y: 0.28, Width: 0.30, Height: 0.12},
			{Key: "Right_Lung", X: 0.08, Y: 0.25, Width: 0.30, Height: 0.50},
			{Key: "Left_Lung", X: 0.62, Y: 0.25, Width: 0.30, Height: 0.50},
			{Key: "Bronchioles", X: 0.20, Y: 0.45, Width: 0.15, Height: 0.15},
			{Key: "Alveoli", X: 0.68, Y: 0.50, Width: 0.15, Height: 0.15},
			{Key: "Diaphragm", X: 0.15, Y: 0.78, Width: 0.70, Height: 0.12},
		},
	}
}
