package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"anatomy-mapper/internal/diagram"
	"anatomy-mapper/pkg/colorutil"
	"anatomy-mapper/pkg/geometry"
)

var (
	diagramBackground = color.RGBA{0xFA, 0xFA, 0xF7, 0xFF}
	hoverOverlay      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	selectionOverlay  = color.RGBA{0x00, 0xB4, 0xD8, 0xFF}
)

// DiagramViewer displays a 2D diagram's hit regions and feeds pointer
// events into the diagram adapter. Regions render as tinted boxes;
// hover and selection get stronger overlays.
type DiagramViewer struct {
	widget.BaseWidget

	adapter *diagram.Adapter
	raster  *fynecanvas.Raster

	// ShowRegions paints every hit region, not only highlights
	ShowRegions bool

	lastW, lastH int
}

var (
	_ desktop.Hoverable = (*DiagramViewer)(nil)
	_ desktop.Mouseable = (*DiagramViewer)(nil)
)

// NewDiagramViewer creates a viewer over a diagram adapter.
func NewDiagramViewer(adapter *diagram.Adapter) *DiagramViewer {
	v := &DiagramViewer{adapter: adapter, ShowRegions: true}
	v.raster = fynecanvas.NewRaster(v.render)
	v.ExtendBaseWidget(v)
	return v
}

// scale returns pixels per diagram unit and the centering offsets for
// the current raster size.
func (v *DiagramViewer) scale() (s, offX, offY float64) {
	ix := v.adapter.Index()
	if ix == nil || v.lastW == 0 || v.lastH == 0 {
		return 1, 0, 0
	}
	dw, dh := ix.Size()
	sx := float64(v.lastW) / dw
	sy := float64(v.lastH) / dh
	if sx < sy {
		s = sx
	} else {
		s = sy
	}
	offX = (float64(v.lastW) - dw*s) / 2
	offY = (float64(v.lastH) - dh*s) / 2
	return s, offX, offY
}

func (v *DiagramViewer) render(w, h int) image.Image {
	v.lastW, v.lastH = w, h
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{diagramBackground}, image.Point{}, draw.Src)

	ix := v.adapter.Index()
	if ix == nil {
		return img
	}
	s, offX, offY := v.scale()

	if v.ShowRegions {
		for i, region := range ix.Regions() {
			fill := diagram.DebugFill(i)
			fillRect(img, region.Rect, s, offX, offY, colorutil.WithAlpha(fill, fill.A))
		}
	}
	for _, region := range v.adapter.HoveredRegions() {
		fillRect(img, region.Rect, s, offX, offY, colorutil.WithAlpha(hoverOverlay, 0x50))
	}
	for _, region := range v.adapter.SelectedRegions() {
		fillRect(img, region.Rect, s, offX, offY, colorutil.WithAlpha(selectionOverlay, 0x90))
	}
	return img
}

// fillRect alpha-blends a diagram-space rectangle onto the raster.
func fillRect(img *image.RGBA, r geometry.Rect, s, offX, offY float64, col color.NRGBA) {
	bounds := img.Bounds()
	x0 := clampInt(int(r.X*s+offX), bounds.Min.X, bounds.Max.X)
	y0 := clampInt(int(r.Y*s+offY), bounds.Min.Y, bounds.Max.Y)
	x1 := clampInt(int((r.X+r.Width)*s+offX), bounds.Min.X, bounds.Max.X)
	y1 := clampInt(int((r.Y+r.Height)*s+offY), bounds.Min.Y, bounds.Max.Y)

	overlay := image.NewUniform(col)
	draw.Draw(img, image.Rect(x0, y0, x1, y1), overlay, image.Point{}, draw.Over)
}

// CreateRenderer implements fyne.Widget.
func (v *DiagramViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize implements fyne.Widget.
func (v *DiagramViewer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// toDiagram maps a widget-local event position to diagram coordinates.
func (v *DiagramViewer) toDiagram(pos fyne.Position) (float64, float64) {
	size := v.Size()
	px, py := float64(pos.X), float64(pos.Y)
	if size.Width > 0 && size.Height > 0 && v.lastW > 0 && v.lastH > 0 {
		px *= float64(v.lastW) / float64(size.Width)
		py *= float64(v.lastH) / float64(size.Height)
	}
	s, offX, offY := v.scale()
	return (px - offX) / s, (py - offY) / s
}

// MouseIn implements desktop.Hoverable.
func (v *DiagramViewer) MouseIn(ev *desktop.MouseEvent) {
	v.MouseMoved(ev)
}

// MouseMoved routes hover to the adapter.
func (v *DiagramViewer) MouseMoved(ev *desktop.MouseEvent) {
	before := v.adapter.State()
	x, y := v.toDiagram(ev.Position)
	v.adapter.HoverAt(x, y)
	if v.adapter.State() != before {
		v.raster.Refresh()
	}
}

// MouseOut clears any hover highlight.
func (v *DiagramViewer) MouseOut() {
	before := v.adapter.State()
	v.adapter.HoverAt(-1e9, -1e9)
	if v.adapter.State() != before {
		v.raster.Refresh()
	}
}

// MouseDown implements desktop.Mouseable.
func (v *DiagramViewer) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := v.toDiagram(ev.Position)
	v.adapter.PressAt(x, y, time.Now())
}

// MouseUp completes the click gesture.
func (v *DiagramViewer) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := v.toDiagram(ev.Position)
	v.adapter.ReleaseAt(x, y, time.Now())
	v.raster.Refresh()
}

// Refresh repaints the diagram view.
func (v *DiagramViewer) Refresh() {
	v.raster.Refresh()
	v.BaseWidget.Refresh()
}
