package session

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"anatomy-mapper/internal/diagram"
)

const captionHeight = 28

// WriteSnapshotSVG renders the annotated diagram as an SVG for
// attachment to the clinical record: every hit region as a tinted box,
// the selected part's regions outlined, and a caption naming the part
// and condition.
func WriteSnapshotSVG(w io.Writer, ix *diagram.Index, rec AnnotationRecord) error {
	if ix == nil {
		return fmt.Errorf("snapshot: no diagram loaded")
	}
	width, height := ix.Size()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(int(width), int(height)+captionHeight)
	canvas.Rect(0, 0, int(width), int(height)+captionHeight, "fill:white")

	for i, region := range ix.Regions() {
		fill := diagram.DebugFill(i)
		style := fmt.Sprintf("fill:#%02x%02x%02x;fill-opacity:0.35", fill.R, fill.G, fill.B)
		if region.Key == rec.SelectedPartKey && rec.SelectedPartKey != "" {
			style += ";stroke:#00b4d8;stroke-width:3"
		}
		canvas.Rect(
			int(region.Rect.X), int(region.Rect.Y),
			int(region.Rect.Width), int(region.Rect.Height),
			style,
		)
		if region.Label != "" {
			canvas.Text(
				int(region.Rect.Center().X), int(region.Rect.Center().Y),
				region.Label, "font-size:10px;text-anchor:middle;fill:#333",
			)
		}
	}

	canvas.Text(8, int(height)+captionHeight-9, snapshotCaption(rec),
		"font-size:13px;fill:#111")
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

func snapshotCaption(rec AnnotationRecord) string {
	if rec.SelectedPartKey == "" {
		return fmt.Sprintf("%s: no part selected", rec.AnatomyType)
	}
	caption := fmt.Sprintf("%s: %s", rec.AnatomyType, rec.PartInfo.Name)
	if rec.SelectedConditionID != "" {
		caption += fmt.Sprintf(" (%s)", rec.SelectedConditionID)
	}
	return caption
}
