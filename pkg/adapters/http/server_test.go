package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/orthology/pkg/adapters/memory"
	"github.com/aretw0/orthology/pkg/cache"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(opts ...Option) http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(append([]Option{WithLogger(logger)}, opts...)...)
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestClassify(t *testing.T) {
	h := newTestHandler()
	w := post(t, h, "/classify", Request{
		Newick:    "((man_a,man_b),rat_c);",
		Separator: "_",
		Targets:   []string{"rat_c"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ClassifyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Trees, 1)

	tree := resp.Trees[0]
	assert.Equal(t, []string{"man_a", "man_b", "rat_c"}, tree.Table.Taxa)
	rel, ok := tree.Table.Get("man_a", "man_b")
	require.True(t, ok)
	assert.Equal(t, domain.InParalogous, rel)
	assert.Equal(t, []domain.Record{
		{Target: "rat_c", Other: "man_a", Relationship: domain.Orthologous},
		{Target: "rat_c", Other: "man_b", Relationship: domain.Orthologous},
	}, tree.Records)
	assert.False(t, tree.Cached)
}

func TestClassify_MultipleTrees(t *testing.T) {
	w := post(t, newTestHandler(), "/classify", Request{
		Newick:    "(man_a,mouse_a);\n((man_a,man_b),rat_c);",
		Separator: "_",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ClassifyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Trees, 2)
	assert.Equal(t, 1, resp.Trees[1].Tree)
	assert.Len(t, resp.Trees[0].Records, 2)
	assert.Len(t, resp.Trees[1].Records, 6)
}

func TestClassify_StripsControlCharacters(t *testing.T) {
	w := post(t, newTestHandler(), "/classify", Request{
		Newick:    "(man_a,\x1bmouse_a);",
		Separator: "_",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ClassifyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"man_a", "mouse_a"}, resp.Trees[0].Table.Taxa)
}

func TestClassify_Cache(t *testing.T) {
	store := memory.NewStore()
	h := newTestHandler(WithCache(cache.NewManager(store)))
	req := Request{Newick: "(man_a,mouse_a);", Separator: "_"}

	var first, second ClassifyResponse
	require.NoError(t, json.NewDecoder(post(t, h, "/classify", req).Body).Decode(&first))
	require.NoError(t, json.NewDecoder(post(t, h, "/classify", req).Body).Decode(&second))

	assert.False(t, first.Trees[0].Cached)
	assert.True(t, second.Trees[0].Cached)
	assert.Equal(t, 1, store.Len())
}

func TestCompact(t *testing.T) {
	w := post(t, newTestHandler(), "/compact", Request{
		Newick:    "((man_a,man_b),rat_c);",
		Separator: "_",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp CompactResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Trees, 1)
	require.Len(t, resp.Trees[0].Statements, 2)
	assert.Equal(t, "ORTHOLOGOUS: man_a,man_b <=> rat_c", resp.Trees[0].Statements[1].String())
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"invalid json", "/classify", "{", http.StatusBadRequest},
		{"unknown field", "/classify", `{"newick": "(a_x,b_y);", "sep": "_"}`, http.StatusBadRequest},
		{"missing separator", "/classify", Request{Newick: "(man_a,mouse_a);"}, http.StatusBadRequest},
		{"separator absent from label", "/classify", Request{Newick: "(man_a,mouse_a);", Separator: "|"}, http.StatusBadRequest},
		{"malformed newick", "/classify", Request{Newick: "(man_a,mouse_a", Separator: "_"}, http.StatusBadRequest},
		{"unknown target", "/classify", Request{Newick: "(man_a,mouse_a);", Separator: "_", Targets: []string{"dog_a"}}, http.StatusBadRequest},
		{"polytomy in compact mode", "/compact", Request{Newick: "(man_a,mouse_a,rat_a);", Separator: "_"}, http.StatusUnprocessableEntity},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, h, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	h := newTestHandler(WithMaxBodyBytes(16))
	w := post(t, h, "/classify", Request{Newick: "((man_a,man_b),rat_c);", Separator: "_"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "orthology_up 1\n")
	})
	h := newTestHandler(WithMetrics(metrics))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "orthology_up 1\n", w.Body.String())

	w = httptest.NewRecorder()
	newTestHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	w := httptest.NewRecorder()
	newTestHandler().ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/classify", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&domain.MalformedInputError{Err: errors.New("x")}, http.StatusBadRequest},
		{&domain.ConfigurationError{Field: "separator"}, http.StatusBadRequest},
		{&domain.UnsupportedTopologyError{Children: 1}, http.StatusUnprocessableEntity},
		{context.Canceled, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}
