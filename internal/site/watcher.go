package site

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/mcp-matrix/internal/config"
)

// DefaultDebounce is how long the data files must stay quiet before a
// change is reported.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports batches of changed JSON data files.
type Watcher struct {
	Dirs     []string
	Debounce time.Duration
	Changes  <-chan []string // read-only external channel

	changes chan []string
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher over the given directories. fsnotify does
// not recurse, so every directory that holds data files must be listed.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan []string, 4)
	return &Watcher{
		Dirs:     dirs,
		Debounce: DefaultDebounce,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	for _, dir := range w.Dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.watcher.Close()
			return err
		}
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	pending := make(map[string]bool)
	var last time.Time
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	flush := func() {
		if len(pending) == 0 {
			return
		}
		files := make([]string, 0, len(pending))
		for f := range pending {
			files = append(files, f)
		}
		sort.Strings(files)
		w.changes <- files
		pending = make(map[string]bool)
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				flush()
				return
			}
			if !isDataFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = true
				last = time.Now()
			}

		case <-ticker.C:
			if len(pending) > 0 && time.Since(last) >= debounce {
				flush()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func isDataFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".json") && !strings.HasPrefix(base, ".")
}

// WatchDirs returns root plus the resource subdirectories of it that exist.
func WatchDirs(root string) []string {
	dirs := []string{root}
	for _, sub := range []string{
		config.ResourceDirs.IDEs,
		config.ResourceDirs.AIClients,
		config.ResourceDirs.Features,
		config.ResourceDirs.Transports,
	} {
		path := filepath.Join(root, sub)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			dirs = append(dirs, path)
		}
	}
	return dirs
}
