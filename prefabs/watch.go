package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem events on prefab directories so the game can
// hot-reload specs and autopilot scripts.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// debounceWindow collapses the burst of events editors emit per save into a
// single reload.
const debounceWindow = 100 * time.Millisecond

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < debounceWindow {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			default: // consumer behind, drop the event
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

// relevant keeps writes, creates, renames, and removes of prefab files;
// chmods and editor temp files fall through.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return isPrefabFile(event.Name)
}

// isPrefabFile matches the two prefab kinds the game hot-reloads: YAML specs
// and tengo autopilot scripts.
func isPrefabFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
