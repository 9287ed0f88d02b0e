// Package loader fetches the JSON data documents named by a manifest and
// assembles them into a catalog.State.
//
// Every document is fetched concurrently. A document that cannot be
// fetched, returns a non-success status or fails to decode is logged and
// treated as absent; it never stops the rest of the load.
package loader

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/logging"
)

// ProgressFunc is called each time a fetch settles, successful or not.
type ProgressFunc func(done, total int, path string)

// Loader loads a manifest's documents through a Fetcher.
type Loader struct {
	Fetcher    Fetcher
	Manifest   Manifest
	Logger     *slog.Logger
	OnProgress ProgressFunc
}

// New creates a Loader.
func New(fetcher Fetcher, manifest Manifest, logger *slog.Logger) *Loader {
	return &Loader{
		Fetcher:  fetcher,
		Manifest: manifest,
		Logger:   logging.OrDiscard(logger),
	}
}

// Failure records one resource that was treated as absent.
type Failure struct {
	Resource Resource
	Err      error
}

// IDMismatch records a document whose "id" differs from the identifier
// the manifest loaded it under. The manifest identifier wins.
type IDMismatch struct {
	Resource   Resource
	DeclaredID string
}

// Report summarizes a load.
type Report struct {
	Total      int
	Loaded     int
	Failures   []Failure
	Mismatches []IDMismatch
}

// Failed reports whether the given resource failed to load.
func (r *Report) Failed(kind Kind, id string) bool {
	for _, f := range r.Failures {
		if f.Resource.Kind == kind && f.Resource.ID == id {
			return true
		}
	}
	return false
}

// Load fetches and decodes every resource and returns once all fetches have
// settled. The returned state keeps manifest order regardless of which
// fetch finished first.
func (l *Loader) Load(ctx context.Context) (*catalog.State, *Report) {
	logger := logging.OrDiscard(l.Logger)
	resources := l.Manifest.Resources()
	total := len(resources)

	ides := make([]*catalog.DeveloperInterface, len(l.Manifest.IDEs))
	clients := make([]*catalog.AIClient, len(l.Manifest.Clients))
	features := make([]*catalog.Feature, len(l.Manifest.Features))
	transports := make([]*catalog.Feature, len(l.Manifest.Transports))
	var changelog []catalog.ChangelogEntry

	report := &Report{Total: total}
	var mu sync.Mutex
	var processed int64

	var wg sync.WaitGroup
	for _, res := range resources {
		wg.Add(1)
		go func(res Resource) {
			defer wg.Done()

			declared, err := l.loadOne(ctx, res, ides, clients, features, transports, &changelog, &mu)

			mu.Lock()
			if err != nil {
				report.Failures = append(report.Failures, Failure{Resource: res, Err: err})
				logger.Warn("resource unavailable", "kind", res.Kind, "id", res.ID, "path", res.Path, "error", err)
			} else {
				report.Loaded++
				logger.Debug("resource loaded", "kind", res.Kind, "id", res.ID)
				if declared != "" && declared != res.ID {
					report.Mismatches = append(report.Mismatches, IDMismatch{Resource: res, DeclaredID: declared})
					logger.Warn("document id differs from manifest id", "kind", res.Kind, "id", res.ID, "declared", declared)
				}
			}
			mu.Unlock()

			count := atomic.AddInt64(&processed, 1)
			if l.OnProgress != nil {
				l.OnProgress(int(count), total, res.Path)
			}
		}(res)
	}
	wg.Wait()
	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].Resource.Path < report.Mismatches[j].Resource.Path
	})

	state := catalog.NewState(ides, clients, features, transports, changelog)
	logger.Info("catalog loaded",
		"ides", len(state.IDEs),
		"ai_clients", len(state.Clients),
		"features", len(state.Features),
		"transports", len(state.Transports),
		"changelog", len(state.Changelog),
		"failed", len(report.Failures),
	)
	return state, report
}

// loadOne fetches and decodes a single resource into its slot, keyed by
// the manifest identifier. It returns the "id" the document declared. Each
// slot index is written by exactly one goroutine; only the changelog slice
// needs the mutex.
func (l *Loader) loadOne(
	ctx context.Context,
	res Resource,
	ides []*catalog.DeveloperInterface,
	clients []*catalog.AIClient,
	features, transports []*catalog.Feature,
	changelog *[]catalog.ChangelogEntry,
	mu *sync.Mutex,
) (string, error) {
	data, err := l.Fetcher.Fetch(ctx, res.Path)
	if err != nil {
		return "", err
	}

	var declared string

	switch res.Kind {
	case KindIDE:
		var d catalog.DeveloperInterface
		if err := decode(data, &d, res); err != nil {
			return "", err
		}
		declared, d.ID = d.ID, res.ID
		ides[res.Index] = &d
	case KindClient:
		var c catalog.AIClient
		if err := decode(data, &c, res); err != nil {
			return "", err
		}
		declared, c.ID = c.ID, res.ID
		clients[res.Index] = &c
	case KindFeature, KindTransport:
		var f catalog.Feature
		if err := decode(data, &f, res); err != nil {
			return "", err
		}
		declared, f.ID = f.ID, res.ID
		if res.Kind == KindFeature {
			features[res.Index] = &f
		} else {
			transports[res.Index] = &f
		}
	case KindChangelog:
		var doc catalog.Changelog
		if err := decode(data, &doc, res); err != nil {
			return "", err
		}
		mu.Lock()
		*changelog = doc.Entries
		mu.Unlock()
	default:
		return "", errors.Newf("unknown resource kind %q", res.Kind)
	}
	return declared, nil
}

func decode(data []byte, v any, res Resource) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decoding %s", res.Path)
	}
	return nil
}
