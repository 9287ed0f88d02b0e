package site

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/logging"
	"github.com/ziadkadry99/mcp-matrix/internal/matrix"
)

const apiTimeout = 10 * time.Second

// LoadFunc produces a fresh catalog state for a rebuild.
type LoadFunc func(ctx context.Context) (*catalog.State, error)

// Preview serves the generated site and rebuilds it on demand. Readers
// always see a complete state: each rebuild swaps the state pointer only
// after the new site has been written.
type Preview struct {
	Generator Generator
	Load      LoadFunc
	Logger    *slog.Logger

	hub     *Hub
	state   atomic.Pointer[catalog.State]
	buildMu sync.Mutex
}

// NewPreview creates a preview over the generator's output directory.
func NewPreview(gen Generator, load LoadFunc, logger *slog.Logger) *Preview {
	logger = logging.OrDiscard(logger)
	gen.LiveReload = true
	if gen.Logger == nil {
		gen.Logger = logger
	}
	return &Preview{
		Generator: gen,
		Load:      load,
		Logger:    logger,
		hub:       NewHub(logger),
	}
}

// State returns the state currently being served.
func (p *Preview) State() *catalog.State {
	return p.state.Load()
}

// Hub returns the live-reload hub.
func (p *Preview) Hub() *Hub { return p.hub }

// Rebuild loads the data, regenerates the site and tells open pages to
// reload. Concurrent calls run one at a time.
func (p *Preview) Rebuild(ctx context.Context) (Stats, error) {
	p.buildMu.Lock()
	defer p.buildMu.Unlock()

	state, err := p.Load(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "loading data")
	}

	gen := p.Generator
	gen.State = state
	gen.BuildID = uuid.NewString()
	stats, err := gen.Generate()
	if err != nil {
		return Stats{}, err
	}

	p.state.Store(state)
	p.hub.Broadcast(stats.BuildID)
	p.Logger.Info("site rebuilt", "build_id", stats.BuildID, "combinations", stats.Combinations)
	return stats, nil
}

// Mount registers the preview routes. The static file handler is a
// catch-all, so Mount should come after any other routes.
func (p *Preview) Mount(r chi.Router) {
	api := r.With(middleware.Timeout(apiTimeout))
	api.Get("/api/detail/{feature}/{combo}", p.handleDetail)
	api.Get("/api/combinations", p.handleCombinations)
	r.Get("/ws/reload", p.hub.ServeWS)
	r.Handle("/*", http.FileServer(http.Dir(p.Generator.OutputDir)))
}

// Watch rebuilds whenever a JSON file under dirs changes, until ctx is
// done.
func (p *Preview) Watch(ctx context.Context, dirs []string) error {
	w, err := NewWatcher(dirs...)
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	if err := w.Start(); err != nil {
		return errors.Wrap(err, "starting watcher")
	}
	go func() {
		<-ctx.Done()
		w.Stop()
	}()

	p.Logger.Info("watching data files", "dirs", dirs)
	for files := range w.Changes {
		p.Logger.Info("data changed", "files", len(files))
		if _, err := p.Rebuild(ctx); err != nil {
			p.Logger.Error("rebuild failed", "error", err)
		}
	}
	return nil
}

type apiError struct {
	Error string `json:"error"`
}

type combinationView struct {
	Key    catalog.ComboKey `json:"key"`
	IDE    string           `json:"ide"`
	Client string           `json:"client"`
	Label  string           `json:"label"`
}

func (p *Preview) handleDetail(w http.ResponseWriter, r *http.Request) {
	key, err := catalog.ParseComboKey(chi.URLParam(r, "combo"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	kind, ok := catalog.ParseKind(r.URL.Query().Get("kind"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "kind must be feature or transport"})
		return
	}
	d, ok := matrix.LookupKindDetail(p.State(), kind, chi.URLParam(r, "feature"), key)
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{Error: "unknown feature"})
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (p *Preview) handleCombinations(w http.ResponseWriter, r *http.Request) {
	ide := r.URL.Query().Get("ide")
	out := []combinationView{}
	for _, c := range matrix.BuildCombinations(p.State()) {
		if ide != "" && c.Key.IDE != ide {
			continue
		}
		out = append(out, combinationView{
			Key:    c.Key,
			IDE:    c.IDE.DisplayName(),
			Client: c.Client.DisplayName(),
			Label:  matrix.RowLabel(c),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// OpenBrowser opens url in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
