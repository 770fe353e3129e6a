package viewer

import (
	"image"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"anatomy-mapper/internal/scene"
)

var viewerBackground = color.RGBA{0x1B, 0x1F, 0x24, 0xFF}

// ModelViewer displays the 3D anatomy model through the scene adapter
// and feeds pointer events into it.
type ModelViewer struct {
	widget.BaseWidget

	adapter *scene.Adapter
	raster  *fynecanvas.Raster

	// last raster pixel size, for event-to-pixel mapping on hidpi
	lastW, lastH int
}

var (
	_ desktop.Hoverable = (*ModelViewer)(nil)
	_ desktop.Mouseable = (*ModelViewer)(nil)
)

// NewModelViewer creates a viewer over a scene adapter.
func NewModelViewer(adapter *scene.Adapter) *ModelViewer {
	v := &ModelViewer{adapter: adapter}
	v.raster = fynecanvas.NewRaster(v.render)
	v.ExtendBaseWidget(v)
	return v
}

func (v *ModelViewer) render(w, h int) image.Image {
	v.lastW, v.lastH = w, h
	cam := v.adapter.Camera()
	if cam.Width != w || cam.Height != h {
		v.adapter.Viewport(w, h)
		cam = v.adapter.Camera()
	}
	return RenderArena(v.adapter.Arena(), cam, viewerBackground)
}

// CreateRenderer implements fyne.Widget.
func (v *ModelViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize implements fyne.Widget.
func (v *ModelViewer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// toPixels maps a widget-local event position to raster pixels.
func (v *ModelViewer) toPixels(pos fyne.Position) (float64, float64) {
	size := v.Size()
	if size.Width <= 0 || size.Height <= 0 || v.lastW == 0 || v.lastH == 0 {
		return float64(pos.X), float64(pos.Y)
	}
	return float64(pos.X) * float64(v.lastW) / float64(size.Width),
		float64(pos.Y) * float64(v.lastH) / float64(size.Height)
}

// MouseIn implements desktop.Hoverable.
func (v *ModelViewer) MouseIn(ev *desktop.MouseEvent) {
	v.MouseMoved(ev)
}

// MouseMoved routes hover to the adapter and repaints on tint changes.
func (v *ModelViewer) MouseMoved(ev *desktop.MouseEvent) {
	before := v.adapter.State()
	x, y := v.toPixels(ev.Position)
	v.adapter.HoverAt(x, y)
	if v.adapter.State() != before {
		v.raster.Refresh()
	}
}

// MouseOut clears any hover tint.
func (v *ModelViewer) MouseOut() {
	before := v.adapter.State()
	v.adapter.HoverAt(-1, -1)
	if v.adapter.State() != before {
		v.raster.Refresh()
	}
}

// MouseDown implements desktop.Mouseable.
func (v *ModelViewer) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := v.toPixels(ev.Position)
	v.adapter.PressAt(x, y, time.Now())
}

// MouseUp completes the click gesture.
func (v *ModelViewer) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := v.toPixels(ev.Position)
	v.adapter.ReleaseAt(x, y, time.Now())
	v.raster.Refresh()
}

// Refresh repaints the model view.
func (v *ModelViewer) Refresh() {
	v.raster.Refresh()
	v.BaseWidget.Refresh()
}
