package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chartkit/pkg/pipeline"
)

const serveTestConfig = `
[data]
x = "x"

[[series]]
name = "value"
column = "y"

[[edges.bottom]]
kind = "ticks"
`

const serveTestData = "x,y\n0,1\n1,3\n2,2\n"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := New(io.Discard, LogInfo)
	srv := &server{runner: pipeline.NewRunner(nil, nil, c.Logger), cli: c}

	r := chi.NewRouter()
	r.Use(srv.requestID)
	r.Get("/healthz", srv.handleHealth)
	r.Post("/render", srv.handleRender)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServeRender(t *testing.T) {
	ts := newTestServer(t)

	payload, err := json.Marshal(renderRequest{
		Config: serveTestConfig,
		Data:   serveTestData,
		Width:  400,
		Height: 300,
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/render", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	svg, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<svg"), "body should be an SVG document")
	assert.Contains(t, string(svg), `viewBox="0 0 400.0 300.0"`)
}

func TestServeRenderBadRequest(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", "{not json"},
		{"missing config", `{"data":"x,y\n1,2\n"}`},
		{"config without series", `{"config":"[data]\nx = \"x\"\n","data":"x,y\n1,2\n"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/render", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestStatusForError(t *testing.T) {
	c := New(io.Discard, LogInfo)
	runner := pipeline.NewRunner(nil, nil, c.Logger)

	_, err := runner.Execute(context.Background(), pipeline.Options{
		ConfigPath: "does/not/exist.toml",
		DataCSV:    []byte(serveTestData),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusForError(err))
}
