package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/logging"
	"github.com/ziadkadry99/mcp-matrix/internal/matrix"
)

func newTestPreview(t *testing.T) (*Preview, *int32) {
	t.Helper()
	var loads int32
	state := testState(t)
	p := NewPreview(
		Generator{OutputDir: t.TempDir(), Title: "Preview"},
		func(ctx context.Context) (*catalog.State, error) {
			atomic.AddInt32(&loads, 1)
			return state, nil
		},
		logging.ForTest(t),
	)
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)
	return p, &loads
}

func serve(t *testing.T, p *Preview, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	p.Mount(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPreviewServesSite(t *testing.T) {
	p, _ := newTestPreview(t)

	w := serve(t, p, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-live-reload="true"`)

	w = serve(t, p, "/details.json")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPreviewDetail(t *testing.T) {
	p, _ := newTestPreview(t)

	w := serve(t, p, "/api/detail/tools/vscode+copilot")
	require.Equal(t, http.StatusOK, w.Code)
	var d matrix.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "Changelog 1.99", d.Evidence)
	assert.Equal(t, catalog.NewComboKey("vscode", "copilot"), d.ComboKey)

	assert.Equal(t, http.StatusNotFound, serve(t, p, "/api/detail/nope/vscode+copilot").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, p, "/api/detail/tools/vscode").Code)
}

func TestPreviewDetailKind(t *testing.T) {
	p, _ := newTestPreview(t)

	w := serve(t, p, "/api/detail/stdio/zed+native?kind=transport")
	require.Equal(t, http.StatusOK, w.Code)
	var d matrix.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, catalog.KindTransport, d.Kind)
	assert.Equal(t, catalog.SupportYes, d.Support.Code)

	assert.Equal(t, http.StatusNotFound, serve(t, p, "/api/detail/stdio/zed+native?kind=feature").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, p, "/api/detail/stdio/zed+native?kind=bogus").Code)
}

func TestPreviewCombinations(t *testing.T) {
	p, _ := newTestPreview(t)

	var all []combinationView
	w := serve(t, p, "/api/combinations")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 3)
	assert.Equal(t, "Zed Agent", all[2].Label)

	var zed []combinationView
	w = serve(t, p, "/api/combinations?ide=zed")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &zed))
	require.Len(t, zed, 1)
	assert.Equal(t, catalog.NewComboKey("zed", "native"), zed[0].Key)

	w = serve(t, p, "/api/combinations?ide=missing")
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestPreviewRebuildSwapsState(t *testing.T) {
	p, loads := newTestPreview(t)
	first := p.State()
	require.NotNil(t, first)

	replacement := catalog.NewState(nil, nil, nil, nil, nil)
	p.Load = func(ctx context.Context) (*catalog.State, error) { return replacement, nil }
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Same(t, replacement, p.State())
	assert.Equal(t, int32(1), atomic.LoadInt32(loads))
	assert.Contains(t, serve(t, p, "/").Body.String(), "No data available")
}

func TestPreviewRebuildBroadcasts(t *testing.T) {
	p, _ := newTestPreview(t)

	r := chi.NewRouter()
	p.Mount(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/reload"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// The current build is sent on connect.
	var hello reloadMessage
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "reload", hello.Type)
	assert.NotEmpty(t, hello.BuildID)

	stats, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	var msg reloadMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, stats.BuildID, msg.BuildID)
	assert.NotEqual(t, hello.BuildID, msg.BuildID)
}

func TestPreviewLoadError(t *testing.T) {
	p := NewPreview(Generator{OutputDir: t.TempDir()}, func(ctx context.Context) (*catalog.State, error) {
		return nil, context.Canceled
	}, nil)

	_, err := p.Rebuild(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, p.State())
}
