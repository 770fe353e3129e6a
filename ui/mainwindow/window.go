// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/app"
	"anatomy-mapper/internal/diagram"
	"anatomy-mapper/internal/scene"
	"anatomy-mapper/internal/session"
	"anatomy-mapper/internal/version"
	"anatomy-mapper/ui/panels"
	"anatomy-mapper/ui/prefs"
	"anatomy-mapper/ui/viewer"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs
	log   zerolog.Logger

	sceneAdapter   *scene.Adapter
	diagramAdapter *diagram.Adapter
	modelView      *viewer.ModelViewer
	diagramView    *viewer.DiagramViewer
	viewStack      *fyne.Container

	sidePanel *panels.SidePanel
	statusBar *widget.Label

	watcher *app.Watcher
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs, log zerolog.Logger) *MainWindow {
	win := fyneApp.NewWindow("Anatomy Mapper")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
		log:    log.With().Str("component", "mainwindow").Logger(),
	}

	mw.sceneAdapter = scene.NewAdapter(state.RecordSelection, log)
	mw.diagramAdapter = diagram.NewAdapter(state.RecordSelection, log)

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreFromPrefs()

	win.SetOnClosed(mw.onClosed)
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.modelView = viewer.NewModelViewer(mw.sceneAdapter)
	mw.diagramView = viewer.NewDiagramViewer(mw.diagramAdapter)
	mw.diagramView.Hide()
	mw.viewStack = container.NewStack(mw.modelView, mw.diagramView)

	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.sidePanel.SetWindow(mw.Window)
	mw.sidePanel.OnClearSelection(func() {
		mw.sceneAdapter.ClearSelection()
		mw.diagramAdapter.ClearSelection()
		mw.refreshViews()
	})

	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(mw.sidePanel.Container(), mw.viewStack)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)
	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1100, 720))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Model...", mw.onOpenModel),
		fyne.NewMenuItem("Open Diagram...", mw.onOpenDiagram),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Annotation", mw.onSaveAnnotation),
		fyne.NewMenuItem("Export Snapshot...", mw.onExportSnapshot),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Demo Model", func() { mw.loadModel("") }),
	)

	var typeItems []*fyne.MenuItem
	for _, typ := range anatomy.AllTypes() {
		typ := typ
		typeItems = append(typeItems, fyne.NewMenuItem(typ.String(), func() {
			mw.state.SetAnatomyType(typ)
		}))
	}
	modelMenu := fyne.NewMenu("Anatomy", typeItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, modelMenu, helpMenu))
}

// setupEventHandlers subscribes to application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventAnatomyTypeChanged, func(data interface{}) {
		typ := data.(anatomy.Type)
		mw.prefs.SetString(prefs.KeyAnatomyType, typ.String())
		mw.diagramAdapter.SetDiagram(nil, typ)
		mw.loadModel("")
		mw.updateStatus(fmt.Sprintf("Switched to %s", typ))
	})

	mw.state.On(app.EventSelectionChanged, func(data interface{}) {
		ev := data.(app.SelectionEvent)
		switch {
		case ev.Info == nil:
			mw.updateStatus("Selection cleared")
		case ev.Guessed:
			mw.updateStatus("Selected: unidentified part")
		default:
			mw.updateStatus(fmt.Sprintf("Selected: %s", ev.Info.Name))
		}
		mw.refreshViews()
	})

	mw.state.On(app.EventStatus, func(data interface{}) {
		mw.updateStatus(data.(string))
	})

	mw.sidePanel.ModelPanel().OnViewMode = mw.onViewMode
	mw.sidePanel.ModelPanel().OnShowRegions = func(show bool) {
		mw.diagramView.ShowRegions = show
		mw.prefs.SetBool(prefs.KeyShowRegions, show)
		mw.diagramView.Refresh()
	}
}

// restoreFromPrefs applies the persisted anatomy type and assets.
func (mw *MainWindow) restoreFromPrefs() {
	if name := mw.prefs.String(prefs.KeyAnatomyType, ""); name != "" {
		if typ, err := anatomy.ParseType(name); err == nil {
			mw.state.SetAnatomyType(typ)
		}
	}

	assetDir := mw.prefs.String(prefs.KeyAssetDir, "")
	if assetDir != "" {
		mw.state.SetAssetDir(assetDir)
		if err := mw.state.ReloadCatalogues(); err != nil {
			mw.log.Warn().Err(err).Msg("catalogue overrides not applied")
		}
		mw.startWatcher(assetDir)
	}

	mw.loadModel(mw.prefs.String(prefs.KeyLastModel, ""))
	if path := mw.prefs.String(prefs.KeyLastDiagram, ""); path != "" {
		mw.loadDiagram(path)
	}
	mw.diagramView.ShowRegions = mw.prefs.Bool(prefs.KeyShowRegions, true)
}

// startWatcher begins re-ingesting changed assets under dir.
func (mw *MainWindow) startWatcher(dir string) {
	if mw.watcher != nil {
		mw.watcher.Stop()
	}
	w, err := app.NewWatcher(dir, mw.onAssetChanged, mw.log)
	if err != nil {
		mw.log.Warn().Err(err).Str("dir", dir).Msg("asset watcher unavailable")
		return
	}
	mw.watcher = w
}

// onAssetChanged reloads the asset that changed on disk. Called from
// the watcher goroutine; fyne widget refreshes are thread-safe.
func (mw *MainWindow) onAssetChanged(path string) {
	switch {
	case path == mw.state.ModelPath:
		mw.loadModel(path)
	case path == mw.state.DiagramPath:
		mw.loadDiagram(path)
	default:
		if err := mw.state.ReloadCatalogues(); err == nil {
			mw.updateStatus("Catalogue overrides reloaded")
		}
	}
}

// OpenModel loads a model from an explicit path, e.g. a command line
// argument, and remembers its directory as the asset directory.
func (mw *MainWindow) OpenModel(path string) {
	mw.rememberAssetDir(path)
	mw.loadModel(path)
}

// loadModel loads a scene asset (or the demo for "") into the 3D view.
func (mw *MainWindow) loadModel(path string) {
	arena, err := mw.state.LoadModel(path)
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.sceneAdapter.SetModel(arena, mw.state.Type())
	mw.prefs.SetString(prefs.KeyLastModel, path)
	mw.refreshViews()
	if path == "" {
		mw.updateStatus(fmt.Sprintf("Demo %s model loaded", mw.state.Type()))
	} else {
		mw.updateStatus(fmt.Sprintf("Loaded %s", filepath.Base(path)))
	}
}

// loadDiagram loads a 2D diagram into the diagram view.
func (mw *MainWindow) loadDiagram(path string) {
	index, err := mw.state.LoadDiagram(path)
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.diagramAdapter.SetDiagram(index, mw.state.Type())
	mw.prefs.SetString(prefs.KeyLastDiagram, path)
	mw.refreshViews()
	mw.updateStatus(fmt.Sprintf("Diagram %s loaded", filepath.Base(path)))
}

func (mw *MainWindow) onViewMode(mode panels.ViewMode) {
	if mode == panels.ViewDiagram {
		mw.modelView.Hide()
		mw.diagramView.Show()
	} else {
		mw.diagramView.Hide()
		mw.modelView.Show()
	}
	mw.refreshViews()
}

func (mw *MainWindow) onOpenModel() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		mw.rememberAssetDir(path)
		mw.loadModel(path)
	}, mw.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (mw *MainWindow) onOpenDiagram() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		mw.rememberAssetDir(path)
		mw.loadDiagram(path)
	}, mw.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".svg"}))
	d.Show()
}

// rememberAssetDir treats the opened file's directory as the asset
// directory for overrides and hot-reload.
func (mw *MainWindow) rememberAssetDir(path string) {
	dir := filepath.Dir(path)
	mw.prefs.SetString(prefs.KeyAssetDir, dir)
	mw.state.SetAssetDir(dir)
	if err := mw.state.ReloadCatalogues(); err != nil {
		mw.log.Warn().Err(err).Msg("catalogue overrides not applied")
	}
	mw.startWatcher(dir)
}

func (mw *MainWindow) onSaveAnnotation() {
	dir := mw.prefs.String(prefs.KeyAssetDir, "")
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "anatomy-mapper")
	}
	sink := session.FileSink{Dir: filepath.Join(dir, "annotations")}
	if err := mw.state.Flush(sink); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.updateStatus("Annotation saved")
}

func (mw *MainWindow) onExportSnapshot() {
	if mw.diagramAdapter.Index() == nil {
		dialog.ShowInformation("Export Snapshot", "Open a diagram first.", mw.Window)
		return
	}
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		rec := mw.state.Session.Record()
		if err := session.WriteSnapshotSVG(writer, mw.diagramAdapter.Index(), rec); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Snapshot exported")
	}, mw.Window)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Anatomy Mapper",
		"Anatomy Mapper "+version.String(), mw.Window)
}

func (mw *MainWindow) onClosed() {
	if mw.watcher != nil {
		mw.watcher.Stop()
	}
	if err := mw.prefs.Save(); err != nil {
		mw.log.Warn().Err(err).Msg("preferences not saved")
	}
}

func (mw *MainWindow) refreshViews() {
	mw.modelView.Refresh()
	mw.diagramView.Refresh()
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}
