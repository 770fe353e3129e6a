package anatomy

// dentalCatalogue builds the catalogue for the dental model.
//
// Pattern order is load-bearing here: the wisdom-tooth rule must run
// before the generic tooth rule, and the maxilla rule before the generic
// jaw rule, or the specific structures resolve as their broad parents.
func dentalCatalogue() *Catalogue {
	return &Catalogue{
		Type: Dental,

		Parts: map[PartKey]*Part{
			"Teeth": {
				Key:         "Teeth",
				Name:        "Teeth",
				Description: "The full dentition: incisors, canines, premolars and molars.",
				Conditions: []Condition{
					{ID: "dental-caries", Name: "Dental Caries", Medicines: []string{"Fluoride varnish", "Amoxicillin"}},
					{ID: "dental-abscess", Name: "Dental Abscess", Medicines: []string{"Amoxicillin", "Metronidazole"}},
				},
			},
			"Wisdom_Teeth": {
				Key:         "Wisdom_Teeth",
				Name:        "Wisdom Teeth",
				Description: "The third molars erupting at the back of each quadrant, frequently impacted.",
				Conditions: []Condition{
					{ID: "dental-impaction", Name: "Impacted Wisdom Tooth", Medicines: []string{"Ibuprofen", "Amoxicillin"}},
					{ID: "dental-pericoronitis", Name: "Pericoronitis", Medicines: []string{"Chlorhexidine rinse", "Metronidazole"}},
				},
			},
			"Gums": {
				Key:         "Gums",
				Name:        "Gums",
				Description: "The gingival tissue surrounding and supporting the teeth.",
				Conditions: []Condition{
					{ID: "dental-gingivitis", Name: "Gingivitis", Medicines: []string{"Chlorhexidine rinse"}},
					{ID: "dental-periodontitis", Name: "Periodontitis", Medicines: []string{"Doxycycline"}},
				},
			},
			"Upper_Jaw": {
				Key:         "Upper_Jaw",
				Name:        "Upper Jaw",
				Description: "The maxilla carrying the upper dentition and forming the hard palate.",
				Conditions: []Condition{
					{ID: "dental-maxilla-fracture", Name: "Maxillary Fracture", Medicines: []string{"Paracetamol"}},
				},
			},
			"Lower_Jaw": {
				Key:         "Lower_Jaw",
				Name:        "Lower Jaw",
				Description: "The mandible, the movable bone carrying the lower dentition.",
				Conditions: []Condition{
					{ID: "dental-tmj", Name: "TMJ Disorder", Medicines: []string{"Naproxen"}},
				},
			},
			"Tongue": {
				Key:         "Tongue",
				Name:        "Tongue",
				Description: "The muscular organ of taste, speech and swallowing.",
				Conditions: []Condition{
					{ID: "dental-glossitis", Name: "Glossitis", Medicines: []string{"Vitamin B12"}},
				},
			},
			"Enamel": {
				Key:         "Enamel",
				Name:        "Enamel",
				Description: "The mineralised outer layer of the tooth crown, the hardest tissue in the body.",
				Conditions: []Condition{
					{ID: "dental-erosion", Name: "Enamel Erosion", Medicines: []string{"Fluoride toothpaste"}},
				},
			},
			"Tooth_Root": {
				Key:         "Tooth_Root",
				Name:        "Tooth Root",
				Description: "The portion of the tooth below the gum line, anchored in the jaw and carrying the pulp canal.",
				Conditions: []Condition{
					{ID: "dental-pulpitis", Name: "Pulpitis", Medicines: []string{"Ibuprofen", "Amoxicillin"}},
				},
			},
		},

		Synonyms: map[string]PartKey{
			"Maxilla":       "Upper_Jaw",
			"Mandible":      "Lower_Jaw",
			"Gingiva":       "Gums",
			"Third_Molar":   "Wisdom_Teeth",
			"Incisors":      "Teeth",
			"Canines":       "Teeth",
			"Premolars":     "Teeth",
			"Molars":        "Teeth",
			"Dentition":     "Teeth",
			"Root_Canal":    "Tooth_Root",
			"Camera":        PartNA,
			"Light":         PartNA,
			"Backdrop":      PartNA,
		},

		Ordinals: map[int]PartKey{
			1: "Upper_Jaw",
			2: "Lower_Jaw",
			3: "Teeth",
			4: "Wisdom_Teeth",
			5: "Gums",
			6: "Tongue",
			7: "Enamel",
			8: "Tooth_Root",
		},

		Patterns: []PatternRule{
			{Expr: `wisdom|third_?molar`, Key: "Wisdom_Teeth"},
			{Expr: `enamel`, Key: "Enamel"},
			{Expr: `root|pulp`, Key: "Tooth_Root"},
			{Expr: `gum|gingiv`, Key: "Gums"},
			{Expr: `tongue|lingual`, Key: "Tongue"},
			{Expr: `maxilla|upper_?jaw|palate`, Key: "Upper_Jaw"},
			{Expr: `mandible|lower_?jaw|jaw`, Key: "Lower_Jaw"},
			{Expr: `tooth|teeth|molar|incisor|canine|premolar`, Key: "Teeth"},
		},

		AncestorPatterns: []PatternRule{
			{Expr: `wisdom|third_?molar`, Key: "Wisdom_Teeth"},
			{Expr: `maxilla|upper_?jaw`, Key: "Upper_Jaw"},
			{Expr: `mandible|lower_?jaw`, Key: "Lower_Jaw"},
			{Expr: `tooth|teeth`, Key: "Teeth"},
		},

		DiagramLabels: map[string]PartKey{
			"teeth":        "Teeth",
			"wisdom teeth": "Wisdom_Teeth",
			"wisdom tooth": "Wisdom_Teeth",
			"third molar":  "Wisdom_Teeth",
			"gums":         "Gums",
			"gingiva":      "Gums",
			"upper jaw":    "Upper_Jaw",
			"maxilla":      "Upper_Jaw",
			"lower jaw":    "Lower_Jaw",
			"mandible":     "Lower_Jaw",
			"tongue":       "Tongue",
			"enamel":       "Enamel",
			"tooth root":   "Tooth_Root",
		},

		FallbackRegions: []PercentRegion{
			{Key: "Upper_Jaw", X: 0.20, Y: 0.08, Width: 0.60, Height: 0.18},
			{Key: "Teeth", X: 0.25, Y: 0.28, Width: 0.50, Height: 0.20},
			{Key: "Wisdom_Teeth", X: 0.08, Y: 0.30, Width: 0.14, Height: 0.14},
			{Key: "Gums", X: 0.25, Y: 0.50, Width: 0.50, Height: 0.12},
			{Key: "Tongue", X: 0.35, Y: 0.64, Width: 0.30, Height: 0.16},
			{Key: "Lower_Jaw", X: 0.20, Y: 0.80, Width: 0.60, Height: 0.16},
		},
	}
}
