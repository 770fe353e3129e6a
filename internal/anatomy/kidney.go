package anatomy

// kidneyCatalogue builds the catalogue for the kidney / urinary model.
func kidneyCatalogue() *Catalogue {
	return &Catalogue{
		Type: Kidney,

		Parts: map[PartKey]*Part{
			"Kidney": {
				Key:         "Kidney",
				Name:        "Kidney",
				Description: "The paired organ filtering blood and producing urine.",
				Conditions: []Condition{
					{ID: "kidney-stones", Name: "Kidney Stones", Medicines: []string{"Tamsulosin", "Diclofenac"}},
					{ID: "kidney-ckd", Name: "Chronic Kidney Disease", Medicines: []string{"Lisinopril"}},
				},
			},
			"Renal_Cortex": {
				Key:         "Renal_Cortex",
				Name:        "Renal Cortex",
				Description: "The outer kidney layer containing the filtering glomeruli.",
				Conditions: []Condition{
					{ID: "kidney-glomerulonephritis", Name: "Glomerulonephritis", Medicines: []string{"Prednisolone"}},
				},
			},
			"Renal_Medulla": {
				Key:         "Renal_Medulla",
				Name:        "Renal Medulla",
				Description: "The inner kidney region of pyramids concentrating the urine.",
				Conditions: []Condition{
					{ID: "kidney-papillary-necrosis", Name: "Papillary Necrosis", Medicines: []string{}},
				},
			},
			"Renal_Pelvis": {
				Key:         "Renal_Pelvis",
				Name:        "Renal Pelvis",
				Description: "The funnel collecting urine from the calyces into the ureter.",
				Conditions: []Condition{
					{ID: "kidney-pyelonephritis", Name: "Pyelonephritis", Medicines: []string{"Ciprofloxacin"}},
				},
			},
			"Ureter": {
				Key:         "Ureter",
				Name:        "Ureter",
				Description: "The muscular tube carrying urine from the kidney to the bladder.",
				Conditions: []Condition{
					{ID: "kidney-ureteric-stone", Name: "Ureteric Stone", Medicines: []string{"Tamsulosin", "Diclofenac"}},
				},
			},
			"Bladder": {
				Key:         "Bladder",
				Name:        "Bladder",
				Description: "The hollow organ storing urine before voiding.",
				Conditions: []Condition{
					{ID: "kidney-cystitis", Name: "Cystitis", Medicines: []string{"Nitrofurantoin"}},
					{ID: "kidney-oab", Name: "Overactive Bladder", Medicines: []string{"Oxybutynin"}},
				},
			},
			"Urethra": {
				Key:         "Urethra",
				Name:        "Urethra",
				Description: "The duct carrying urine from the bladder out of the body.",
				Conditions: []Condition{
					{ID: "kidney-urethritis", Name: "Urethritis", Medicines: []string{"Azithromycin"}},
				},
			},
			"Renal_Artery": {
				Key:         "Renal_Artery",
				Name:        "Renal Artery",
				Description: "The vessel supplying the kidney with blood to filter.",
				Conditions: []Condition{
					{ID: "kidney-ras", Name: "Renal Artery Stenosis", Medicines: []string{"Amlodipine"}},
				},
			},
			"Nephron": {
				Key:         "Nephron",
				Name:        "Nephron",
				Description: "The microscopic filtration unit of the kidney.",
				Conditions: []Condition{
					{ID: "kidney-nephrotic", Name: "Nephrotic Syndrome", Medicines: []string{"Prednisolone", "Furosemide"}},
				},
			},
		},

		Synonyms: map[string]PartKey{
			"Left_Kidney":     "Kidney",
			"Right_Kidney":    "Kidney",
			"Cortex":          "Renal_Cortex",
			"Medulla":         "Renal_Medulla",
			"Renal_Pyramid":   "Renal_Medulla",
			"Pelvis":          "Renal_Pelvis",
			"Calyx":           "Renal_Pelvis",
			"Urinary_Bladder": "Bladder",
			"Glomerulus":      "Nephron",
			"Camera":          PartNA,
			"Light":           PartNA,
			"Backdrop":        PartNA,
		},

		Ordinals: map[int]PartKey{
			1: "Kidney",
			2: "Renal_Cortex",
			3: "Renal_Medulla",
			4: "Renal_Pelvis",
			5: "Ureter",
			6: "Bladder",
			7: "Urethra",
			8: "Renal_Artery",
			9: "Nephron",
		},

		// Ordered: ureter/urethra are near-substrings of each other and of
		// "urinary"; the specific duct rules run before the kidney rule.
		Patterns: []PatternRule{
			{Expr: `ureter`, Key: "Ureter"},
			{Expr: `urethra`, Key: "Urethra"},
			{Expr: `cortex`, Key: "Renal_Cortex"},
			{Expr: `medulla|pyramid`, Key: "Renal_Medulla"},
			{Expr: `pelvis|calyx|calyces`, Key: "Renal_Pelvis"},
			{Expr: `bladder`, Key: "Bladder"},
			{Expr: `artery|vein|vessel`, Key: "Renal_Artery"},
			{Expr: `nephron|glomerul`, Key: "Nephron"},
			{Expr: `kidney|renal`, Key: "Kidney"},
		},

		AncestorPatterns: []PatternRule{
			{Expr: `ureter`, Key: "Ureter"},
			{Expr: `bladder`, Key: "Bladder"},
			{Expr: `kidney|renal`, Key: "Kidney"},
		},

		DiagramLabels: map[string]PartKey{
			"kidney":        "Kidney",
			"left kidney":   "Kidney",
			"right kidney":  "Kidney",
			"renal cortex":  "Renal_Cortex",
			"renal medulla": "Renal_Medulla",
			"renal pelvis":  "Renal_Pelvis",
			"ureter":        "Ureter",
			"bladder":       "Bladder",
			"urethra":       "Urethra",
			"renal artery":  "Renal_Artery",
			"nephron":       "Nephron",
		},

		FallbackRegions: []PercentRegion{
			{Key: "Kidney", X: 0.15, Y: 0.10, Width: 0.30, Height: 0.35},
			{Key: "Renal_Pelvis", X: 0.38, Y: 0.22, Width: 0.12, Height: 0.15},
			{Key: "Renal_Artery", X: 0.48, Y: 0.15, Width: 0.20, Height: 0.10},
			{Key: "Ureter", X: 0.42, Y: 0.42, Width: 0.10, Height: 0.30},
			{Key: "Bladder", X: 0.35, Y: 0.72, Width: 0.28, Height: 0.18},
			{Key: "Urethra", X: 0.45, Y: 0.90, Width: 0.08, Height: 0.08},
		},
	}
}
