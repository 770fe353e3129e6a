package anatomy

// skeletonCatalogue builds the catalogue for the skeleton model.
//
// The vendor skeleton meshes are not reliably named, so the skeleton
// resolver works from mesh numbers rather than the name cascade. The
// number table maps 20 mesh slots to 14 parts; several numbers alias to
// the same part because paired bones export as separate meshes.
func skeletonCatalogue() *Catalogue {
	return &Catalogue{
		Type: Skeleton,

		Parts: map[PartKey]*Part{
			"Skull": {
				Key:         "Skull",
				Name:        "Skull",
				Description: "The cranial vault and facial bones protecting the brain.",
				Conditions: []Condition{
					{ID: "skel-skull-fracture", Name: "Skull Fracture", Medicines: []string{"Paracetamol"}},
				},
			},
			"Mandible": {
				Key:         "Mandible",
				Name:        "Mandible",
				Description: "The lower jaw bone, the only movable bone of the skull.",
				Conditions: []Condition{
					{ID: "skel-mandible-fracture", Name: "Mandibular Fracture", Medicines: []string{"Ibuprofen", "Amoxicillin"}},
				},
			},
			"Clavicle": {
				Key:         "Clavicle",
				Name:        "Clavicle",
				Description: "The collarbone bracing the shoulder against the sternum.",
				Conditions: []Condition{
					{ID: "skel-clavicle-fracture", Name: "Clavicle Fracture", Medicines: []string{"Paracetamol"}},
				},
			},
			"Scapula": {
				Key:         "Scapula",
				Name:        "Scapula",
				Description: "The shoulder blade anchoring the rotator cuff muscles.",
				Conditions: []Condition{
					{ID: "skel-winged-scapula", Name: "Winged Scapula", Medicines: []string{"Physiotherapy"}},
				},
			},
			"Ribcage": {
				Key:         "Ribcage",
				Name:        "Ribcage",
				Description: "The ribs and sternum enclosing the heart and lungs.",
				Conditions: []Condition{
					{ID: "skel-rib-fracture", Name: "Rib Fracture", Medicines: []string{"Ibuprofen"}},
					{ID: "skel-costochondritis", Name: "Costochondritis", Medicines: []string{"Naproxen"}},
				},
			},
			"Spine": {
				Key:         "Spine",
				Name:        "Spine",
				Description: "The vertebral column from the cervical spine to the sacrum.",
				Conditions: []Condition{
					{ID: "skel-disc-herniation", Name: "Disc Herniation", Medicines: []string{"Naproxen", "Gabapentin"}},
					{ID: "skel-scoliosis", Name: "Scoliosis", Medicines: []string{"Bracing"}},
				},
			},
			"Humerus": {
				Key:         "Humerus",
				Name:        "Humerus",
				Description: "The upper arm bone between the shoulder and the elbow.",
				Conditions: []Condition{
					{ID: "skel-humerus-fracture", Name: "Humeral Fracture", Medicines: []string{"Paracetamol"}},
				},
			},
			"Radius_Ulna": {
				Key:         "Radius_Ulna",
				Name:        "Radius and Ulna",
				Description: "The paired forearm bones enabling wrist rotation.",
				Conditions: []Condition{
					{ID: "skel-colles", Name: "Colles Fracture", Medicines: []string{"Paracetamol"}},
				},
			},
			"Hand_Bones": {
				Key:         "Hand_Bones",
				Name:        "Hand Bones",
				Description: "The carpals, metacarpals and phalanges of the hand.",
				Conditions: []Condition{
					{ID: "skel-carpal-tunnel", Name: "Carpal Tunnel Syndrome", Medicines: []string{"Ibuprofen", "Splinting"}},
				},
			},
			"Pelvis": {
				Key:         "Pelvis",
				Name:        "Pelvis",
				Description: "The hip girdle linking the spine to the lower limbs.",
				Conditions: []Condition{
					{ID: "skel-hip-oa", Name: "Hip Osteoarthritis", Medicines: []string{"Naproxen"}},
				},
			},
			"Femur": {
				Key:         "Femur",
				Name:        "Femur",
				Description: "The thigh bone, the longest and strongest bone in the body.",
				Conditions: []Condition{
					{ID: "skel-femur-fracture", Name: "Femoral Fracture", Medicines: []string{"Morphine"}},
				},
			},
			"Patella": {
				Key:         "Patella",
				Name:        "Patella",
				Description: "The kneecap protecting the knee joint.",
				Conditions: []Condition{
					{ID: "skel-patellar-tendinitis", Name: "Patellar Tendinitis", Medicines: []string{"Ibuprofen"}},
				},
			},
			"Tibia_Fibula": {
				Key:         "Tibia_Fibula",
				Name:        "Tibia and Fibula",
				Description: "The paired lower leg bones between the knee and the ankle.",
				Conditions: []Condition{
					{ID: "skel-shin-splints", Name: "Shin Splints", Medicines: []string{"Ibuprofen"}},
				},
			},
			"Foot_Bones": {
				Key:         "Foot_Bones",
				Name:        "Foot Bones",
				Description: "The tarsals, metatarsals and phalanges of the foot.",
				Conditions: []Condition{
					{ID: "skel-plantar-fasciitis", Name: "Plantar Fasciitis", Medicines: []string{"Naproxen", "Orthotics"}},
				},
			},
		},

		SkeletonNumbers: map[int]PartKey{
			1:  "Skull",
			2:  "Mandible",
			3:  "Clavicle",
			4:  "Scapula",
			5:  "Ribcage",
			6:  "Spine",
			7:  "Humerus",
			8:  "Radius_Ulna",
			9:  "Radius_Ulna",
			10: "Hand_Bones",
			11: "Pelvis",
			12: "Femur",
			13: "Patella",
			14: "Tibia_Fibula",
			15: "Tibia_Fibula",
			16: "Foot_Bones",
			17: "Femur",
			18: "Spine",
			19: "Ribcage",
			20: "Foot_Bones",
		},

		DiagramLabels: map[string]PartKey{
			"skull":            "Skull",
			"mandible":         "Mandible",
			"clavicle":         "Clavicle",
			"scapula":          "Scapula",
			"ribcage":          "Ribcage",
			"ribs":             "Ribcage",
			"spine":            "Spine",
			"vertebral column": "Spine",
			"humerus":          "Humerus",
			"radius":           "Radius_Ulna",
			"ulna":             "Radius_Ulna",
			"hand":             "Hand_Bones",
			"pelvis":           "Pelvis",
			"femur":            "Femur",
			"patella":          "Patella",
			"tibia":            "Tibia_Fibula",
			"fibula":           "Tibia_Fibula",
			"foot":             "Foot_Bones",
		},

		FallbackRegions: []PercentRegion{
			{Key: "Skull", X: 0.40, Y: 0.02, Width: 0.20, Height: 0.10},
			{Key: "Ribcage", X: 0.32, Y: 0.16, Width: 0.36, Height: 0.20},
			{Key: "Spine", X: 0.45, Y: 0.12, Width: 0.10, Height: 0.40},
			{Key: "Humerus", X: 0.18, Y: 0.18, Width: 0.12, Height: 0.18},
			{Key: "Radius_Ulna", X: 0.12, Y: 0.38, Width: 0.12, Height: 0.16},
			{Key: "Hand_Bones", X: 0.06, Y: 0.54, Width: 0.12, Height: 0.10},
			{Key: "Pelvis", X: 0.35, Y: 0.48, Width: 0.30, Height: 0.12},
			{Key: "Femur", X: 0.36, Y: 0.60, Width: 0.12, Height: 0.18},
			{Key: "Patella", X: 0.37, Y: 0.76, Width: 0.08, Height: 0.05},
			{Key: "Tibia_Fibula", X: 0.36, Y: 0.80, Width: 0.12, Height: 0.14},
			{Key: "Foot_Bones", X: 0.34, Y: 0.94, Width: 0.16, Height: 0.05},
		},
	}
}
