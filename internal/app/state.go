// Package app provides application state, configuration, and events.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"anatomy-mapper/internal/anatomy"
	"anatomy-mapper/internal/diagram"
	"anatomy-mapper/internal/model"
	"anatomy-mapper/internal/scene"
	"anatomy-mapper/internal/session"
)

// State holds the application state: the active anatomy type, the
// loaded model and diagram, and the encounter's annotation session.
type State struct {
	mu sync.RWMutex

	// Active anatomy type; selects the catalogue, model, and diagram
	ActiveType anatomy.Type

	// Asset paths; empty means the built-in demo model / no diagram
	ModelPath   string
	DiagramPath string

	// Directory scanned for catalogue override files
	AssetDir string

	// Annotation session for the current encounter
	Session *session.Session

	// Event listeners
	listeners map[EventType][]EventListener

	log zerolog.Logger
}

// EventType identifies different application events.
type EventType int

const (
	EventAnatomyTypeChanged EventType = iota
	EventModelLoaded
	EventDiagramLoaded
	EventSelectionChanged
	EventAnnotationChanged
	EventCatalogueReloaded
	EventStatus
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// SelectionEvent is the payload of EventSelectionChanged. Info is nil
// when the selection was cleared. Guessed marks a skeleton part that
// was resolved positionally; the info panel shows no part details for
// a guessed selection even though the highlight keeps it.
type SelectionEvent struct {
	Key     anatomy.PartKey
	Info    *anatomy.PartInfo
	Guessed bool
}

// NewState creates a new application state starting on the ear model.
func NewState(log zerolog.Logger) *State {
	s := &State{
		ActiveType: anatomy.Ear,
		listeners:  make(map[EventType][]EventListener),
		log:        log.With().Str("component", "app").Logger(),
	}
	s.Session = session.New(s.ActiveType, log)
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Type returns the active anatomy type.
func (s *State) Type() anatomy.Type {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ActiveType
}

// SetAnatomyType switches the active anatomy type. The annotation
// session belongs to one model, so switching starts a fresh one.
func (s *State) SetAnatomyType(typ anatomy.Type) {
	s.mu.Lock()
	if s.ActiveType == typ {
		s.mu.Unlock()
		return
	}
	s.ActiveType = typ
	s.ModelPath = ""
	s.DiagramPath = ""
	s.Session = session.New(typ, s.log)
	s.mu.Unlock()

	s.Emit(EventAnatomyTypeChanged, typ)
}

// LoadModel loads a scene asset for the active type, or the built-in
// demo when path is empty. The returned arena is the loaded asset;
// viewers clone it through their adapter.
func (s *State) LoadModel(path string) (*scene.Arena, error) {
	typ := s.Type()

	var arena *scene.Arena
	if path == "" {
		arena = model.Demo(typ)
	} else {
		var err error
		arena, err = model.Load(path, s.log)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.ModelPath = path
	s.mu.Unlock()

	s.Emit(EventModelLoaded, arena)
	return arena, nil
}

// LoadDiagram parses a 2D diagram file and builds its region index
// against the active catalogue.
func (s *State) LoadDiagram(path string) (*diagram.Index, error) {
	typ := s.Type()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load diagram: %w", err)
	}
	doc, err := diagram.Parse(data)
	if err != nil {
		return nil, err
	}
	index := diagram.BuildIndex(doc, anatomy.Get(typ), s.log)

	s.mu.Lock()
	s.DiagramPath = path
	s.mu.Unlock()

	s.Emit(EventDiagramLoaded, index)
	return index, nil
}

// ReloadCatalogues merges any override files present in the asset
// directory into the registered catalogues. Missing files are fine;
// a malformed file is reported and the built-in tables stay intact.
func (s *State) ReloadCatalogues() error {
	dir := s.assetDir()
	if dir == "" {
		return nil
	}

	var firstErr error
	for _, typ := range anatomy.AllTypes() {
		path := anatomy.OverridePath(dir, typ)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := anatomy.LoadOverrides(typ, path); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("catalogue override rejected")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.log.Info().Str("path", path).Msg("catalogue override applied")
	}

	s.Emit(EventCatalogueReloaded, dir)
	return firstErr
}

// SetAssetDir sets the directory scanned for catalogue overrides.
func (s *State) SetAssetDir(dir string) {
	s.mu.Lock()
	s.AssetDir = dir
	s.mu.Unlock()
}

func (s *State) assetDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.AssetDir
}

// RecordSelection feeds an adapter selection change into the session
// and fans it out to listeners. It is the PartSelectFunc wired into
// both the 3D and the 2D adapter.
func (s *State) RecordSelection(key anatomy.PartKey, info *anatomy.PartInfo, guessed bool) {
	s.mu.RLock()
	sess := s.Session
	s.mu.RUnlock()

	sess.SetSelection(key, info)
	s.Emit(EventSelectionChanged, SelectionEvent{Key: key, Info: info, Guessed: guessed})
	s.Emit(EventAnnotationChanged, sess.Record())
}

// AnnotationChanged re-emits the session record after a clinician edit
// (condition, prescription, notes).
func (s *State) AnnotationChanged() {
	s.mu.RLock()
	sess := s.Session
	s.mu.RUnlock()
	s.Emit(EventAnnotationChanged, sess.Record())
}

// Flush persists the session record if it changed.
func (s *State) Flush(sink session.Sink) error {
	s.mu.RLock()
	sess := s.Session
	s.mu.RUnlock()
	return sess.FlushTo(sink)
}

// Status pushes a transient status-bar message.
func (s *State) Status(format string, args ...interface{}) {
	s.Emit(EventStatus, fmt.Sprintf(format, args...))
}
