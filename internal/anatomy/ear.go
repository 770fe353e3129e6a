package anatomy

// earCatalogue builds the catalogue for the ear model.
//
// The vendor asset mixes true anatomical names with numeric placeholders,
// and ships a handful of literal "Object N" names that predate the
// numbered export; both tables are kept.
func earCatalogue() *Catalogue {
	return &Catalogue{
		Type: Ear,

		Parts: map[PartKey]*Part{
			"Outer_Ear": {
				Key:         "Outer_Ear",
				Name:        "Outer Ear",
				Description: "The visible pinna and surrounding cartilage that funnels sound into the ear canal.",
				Conditions: []Condition{
					{ID: "ear-otitis-externa", Name: "Otitis Externa", Medicines: []string{"Ciprofloxacin drops", "Hydrocortisone"}},
					{ID: "ear-perichondritis", Name: "Perichondritis", Medicines: []string{"Ciprofloxacin"}},
				},
			},
			"Ear_Canal": {
				Key:         "Ear_Canal",
				Name:        "Ear Canal",
				Description: "The external auditory canal carrying sound from the pinna to the eardrum.",
				Conditions: []Condition{
					{ID: "ear-wax-impaction", Name: "Cerumen Impaction", Medicines: []string{"Carbamide peroxide drops"}},
					{ID: "ear-canal-infection", Name: "Swimmer's Ear", Medicines: []string{"Ofloxacin drops"}},
				},
			},
			"Eardrum": {
				Key:         "Eardrum",
				Name:        "Eardrum",
				Description: "The tympanic membrane separating the outer and middle ear; vibrates with incoming sound.",
				Conditions: []Condition{
					{ID: "ear-otitis-media", Name: "Otitis Media", Medicines: []string{"Amoxicillin", "Ibuprofen"}},
					{ID: "ear-perforation", Name: "Tympanic Perforation", Medicines: []string{"Amoxicillin-clavulanate"}},
				},
			},
			"Ossicles": {
				Key:         "Ossicles",
				Name:        "Ossicles",
				Description: "The malleus, incus and stapes; the chain of small bones conducting vibration to the inner ear.",
				Conditions: []Condition{
					{ID: "ear-otosclerosis", Name: "Otosclerosis", Medicines: []string{"Sodium fluoride"}},
				},
			},
			"Cochlea": {
				Key:         "Cochlea",
				Name:        "Cochlea",
				Description: "The spiral inner-ear organ converting vibration into nerve impulses.",
				Conditions: []Condition{
					{ID: "ear-snhl", Name: "Sensorineural Hearing Loss", Medicines: []string{"Prednisolone"}},
					{ID: "ear-tinnitus", Name: "Tinnitus", Medicines: []string{"Betahistine"}},
				},
			},
			"Semicircular_Canals": {
				Key:         "Semicircular_Canals",
				Name:        "Semicircular Canals",
				Description: "Three fluid-filled loops of the vestibular labyrinth sensing rotation and balance.",
				Conditions: []Condition{
					{ID: "ear-bppv", Name: "Benign Paroxysmal Positional Vertigo", Medicines: []string{"Meclizine"}},
					{ID: "ear-menieres", Name: "Meniere's Disease", Medicines: []string{"Betahistine", "Hydrochlorothiazide"}},
				},
			},
			"Eustachian_Tube": {
				Key:         "Eustachian_Tube",
				Name:        "Eustachian Tube",
				Description: "The tube linking the middle ear to the nasopharynx, equalising pressure across the eardrum.",
				Conditions: []Condition{
					{ID: "ear-etd", Name: "Eustachian Tube Dysfunction", Medicines: []string{"Pseudoephedrine", "Fluticasone spray"}},
				},
			},
			"Auditory_Nerve": {
				Key:         "Auditory_Nerve",
				Name:        "Auditory Nerve",
				Description: "The vestibulocochlear nerve carrying hearing and balance signals to the brainstem.",
				Conditions: []Condition{
					{ID: "ear-neuroma", Name: "Acoustic Neuroma", Medicines: []string{}},
				},
			},
		},

		Synonyms: map[string]PartKey{
			"Pinna":                   "Outer_Ear",
			"Auricle":                 "Outer_Ear",
			"Helix":                   "Outer_Ear",
			"Ear_Lobe":                "Outer_Ear",
			"External_Auditory_Canal": "Ear_Canal",
			"Auditory_Canal":          "Ear_Canal",
			"Tympanic_Membrane":       "Eardrum",
			"Tympanum":                "Eardrum",
			"Malleus":                 "Ossicles",
			"Incus":                   "Ossicles",
			"Stapes":                  "Ossicles",
			"Labyrinth":               "Semicircular_Canals",
			"Vestibular_System":       "Semicircular_Canals",
			"Auditory_Tube":           "Eustachian_Tube",
			"Cochlear_Nerve":          "Auditory_Nerve",
			"Vestibulocochlear_Nerve": "Auditory_Nerve",
			// Non-clinical rig geometry in the vendor export
			"Camera":      PartNA,
			"Light":       PartNA,
			"Backdrop":    PartNA,
			"GroundPlane": PartNA,
		},

		// Literal object names from the pre-numbering asset revision.
		ObjectNames: map[string]PartKey{
			"Object 1":  "Outer_Ear",
			"Object 2":  "Ear_Canal",
			"object_10": "Outer_Ear",
			"object_11": "Ear_Canal",
		},

		Ordinals: map[int]PartKey{
			1:  "Outer_Ear",
			2:  "Ear_Canal",
			3:  "Eardrum",
			4:  "Ossicles",
			5:  "Ossicles",
			6:  "Cochlea",
			7:  "Semicircular_Canals",
			8:  "Eustachian_Tube",
			9:  "Auditory_Nerve",
			10: "Outer_Ear",
			11: "Ear_Canal",
			12: "Eardrum",
		},

		// Ordered: semicircular/vestibular terms must run before the broad
		// "canal" rule, or the semicircular canals resolve as the ear canal.
		Patterns: []PatternRule{
			{Expr: `tympan|ear_?drum`, Key: "Eardrum"},
			{Expr: `malleus|incus|stapes|ossic|hammer|anvil|stirrup`, Key: "Ossicles"},
			{Expr: `cochlea`, Key: "Cochlea"},
			{Expr: `semicircular|vestibul|labyrinth`, Key: "Semicircular_Canals"},
			{Expr: `eustachian|auditory_?tube`, Key: "Eustachian_Tube"},
			{Expr: `auditory_?nerve|cochlear_?nerve`, Key: "Auditory_Nerve"},
			{Expr: `canal|meatus`, Key: "Ear_Canal"},
			{Expr: `pinna|auricle|helix|lobe|outer`, Key: "Outer_Ear"},
		},

		AncestorPatterns: []PatternRule{
			{Expr: `tympan|ear_?drum`, Key: "Eardrum"},
			{Expr: `ossic`, Key: "Ossicles"},
			{Expr: `cochlea`, Key: "Cochlea"},
			{Expr: `semicircular|vestibul`, Key: "Semicircular_Canals"},
			{Expr: `outer_?ear|pinna`, Key: "Outer_Ear"},
		},

		DiagramLabels: map[string]PartKey{
			"outer ear":           "Outer_Ear",
			"pinna":               "Outer_Ear",
			"ear canal":           "Ear_Canal",
			"eardrum":             "Eardrum",
			"tympanic membrane":   "Eardrum",
			"ossicles":            "Ossicles",
			"cochlea":             "Cochlea",
			"semicircular canals": "Semicircular_Canals",
			"eustachian tube":     "Eustachian_Tube",
			"auditory nerve":      "Auditory_Nerve",
		},

		FallbackRegions: []PercentRegion{
			{Key: "Outer_Ear", X: 0.05, Y: 0.20, Width: 0.25, Height: 0.55},
			{Key: "Ear_Canal", X: 0.32, Y: 0.40, Width: 0.16, Height: 0.18},
			{Key: "Eardrum", X: 0.50, Y: 0.38, Width: 0.08, Height: 0.20},
			{Key: "Ossicles", X: 0.58, Y: 0.28, Width: 0.12, Height: 0.18},
			{Key: "Cochlea", X: 0.72, Y: 0.45, Width: 0.16, Height: 0.20},
			{Key: "Semicircular_Canals", X: 0.70, Y: 0.18, Width: 0.18, Height: 0.22},
			{Key: "Eustachian_Tube", X: 0.55, Y: 0.62, Width: 0.20, Height: 0.15},
		},
	}
}
