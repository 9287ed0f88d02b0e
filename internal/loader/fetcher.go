package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

// Fetcher retrieves one data document by its path relative to the data
// source root (for example "ides/vscode.json").
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// StatusError is returned by HTTPFetcher for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPFetcher reads documents relative to a base URL.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// Fetch performs a GET for p relative to the base URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, p string) ([]byte, error) {
	target, err := joinURL(f.BaseURL, p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", target)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", target)
	}
	return body, nil
}

func joinURL(base, p string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrapf(err, "parsing base url %q", base)
	}
	u.Path = path.Join("/", u.Path, p)
	return u.String(), nil
}

// FSFetcher reads documents from a file system, typically os.DirFS on the
// data directory.
type FSFetcher struct {
	FS fs.FS
}

// Fetch reads p from the file system.
func (f *FSFetcher) Fetch(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(f.FS, p)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", p)
	}
	return data, nil
}

// NewFetcher picks an HTTPFetcher for http(s) sources and an FSFetcher on a
// directory otherwise.
func NewFetcher(source string) Fetcher {
	if IsRemote(source) {
		return &HTTPFetcher{BaseURL: source}
	}
	return &FSFetcher{FS: os.DirFS(source)}
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
