package app

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounce window: exporters write assets in several bursts, so a
// change only fires after the file has been quiet for this long.
const watchSettle = 300 * time.Millisecond

// Watcher observes the asset directory for model, diagram, and
// catalogue override revisions and invokes a callback per settled
// change, so a vendor asset drop re-ingests without a restart.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(path string)
	stopCh   chan struct{}
	log      zerolog.Logger
}

// watchedExts are the asset kinds worth reacting to.
var watchedExts = map[string]bool{
	".json": true, // scene documents and catalogue overrides
	".svg":  true, // diagrams
}

// NewWatcher starts watching dir. onChange is called from a background
// goroutine; UI consumers must hop to the main thread themselves.
func NewWatcher(dir string, onChange func(path string), log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		log:      log.With().Str("component", "watcher").Logger(),
	}
	go w.loop()
	w.log.Info().Str("dir", dir).Msg("watching asset directory")
	return w, nil
}

// Stop ends the watch goroutine and releases the OS watch.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.fsw.Close()
}

func (w *Watcher) loop() {
	pending := map[string]struct{}{}
	var settle *time.Timer
	var settleC <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			ext := strings.ToLower(filepath.Ext(ev.Name))
			if !watchedExts[ext] {
				continue
			}
			pending[ev.Name] = struct{}{}
			if settle == nil {
				settle = time.NewTimer(watchSettle)
			} else {
				settle.Reset(watchSettle)
			}
			settleC = settle.C

		case <-settleC:
			settleC = nil
			for path := range pending {
				w.log.Debug().Str("path", path).Msg("asset changed")
				w.onChange(path)
			}
			pending = map[string]struct{}{}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}
