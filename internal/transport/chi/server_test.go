package chi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/docman/internal/repository/memory"
	documentuc "github.com/kailas-cloud/docman/internal/usecase/document"
	healthuc "github.com/kailas-cloud/docman/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docman/internal/usecase/search"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.New()
	docs := documentuc.New(store, nil).WithClock(func() time.Time { return fixedNow })
	server := NewServer(docs, searchuc.New(store, nil), healthuc.New(docs), nil)

	r := chi.NewRouter()
	server.Register(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeDoc(t *testing.T, rr *httptest.ResponseRecorder) Document {
	t.Helper()
	var d Document
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&d))
	return d
}

func searchTitles(t *testing.T, h http.Handler, body string) []string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/documents/search", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp SearchResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, len(resp.Items), resp.Total)

	titles := make([]string, 0, len(resp.Items))
	for _, d := range resp.Items {
		titles = append(titles, d.Title)
	}
	sort.Strings(titles)
	return titles
}

func TestCreateDocument_GeneratesID(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/documents",
		`{"title":"Report A","content":"quarterly results","author":{"id":"u1","name":"Ada"}}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	doc := decodeDoc(t, rr)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "/documents/"+doc.ID, rr.Header().Get("Location"))
	require.NotNil(t, doc.Created)
	assert.True(t, doc.Created.Equal(fixedNow))
	require.NotNil(t, doc.Author)
	assert.Equal(t, "u1", doc.Author.ID)
}

func TestCreateDocument_KeepsCreated(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/documents", `{"title":"t","content":"c","created":"2020-01-02T03:04:05Z"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	doc := decodeDoc(t, rr)
	require.NotNil(t, doc.Created)
	assert.Equal(t, "2020-01-02T03:04:05Z", doc.Created.Format(time.RFC3339))
}

func TestCreateDocument_WithIDUpserts(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/documents", `{"id":"doc-1","title":"t","content":"c"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	doc := decodeDoc(t, rr)
	assert.Equal(t, "doc-1", doc.ID)
	assert.Nil(t, doc.Created, "explicit-id path must not stamp created")
	assert.Empty(t, rr.Header().Get("Location"))
}

func TestUpsertDocument(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPut, "/documents/doc-1", `{"title":"first","content":"c"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodPut, "/documents/doc-1", `{"id":"doc-1","title":"second","content":"c"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/documents/doc-1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "second", decodeDoc(t, rr).Title)
}

func TestUpsertDocument_IDMismatch(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPut, "/documents/doc-1", `{"id":"doc-2","title":"t","content":"c"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, CodeValidationFailed, body.Code)
}

func TestGetDocument_NotFound(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/documents/never-saved", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, CodeDocumentNotFound, body.Code)
	assert.Equal(t, "document not found", body.Message)
}

func TestBadBodies(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name, method, path, body string
	}{
		{"malformed create", http.MethodPost, "/documents", `{"title":`},
		{"unknown field", http.MethodPost, "/documents/search", `{"titlePrefixes":["A"]}`},
		{"wrong type", http.MethodPost, "/documents/search", `{"title_prefixes":"A"}`},
		{"bad time", http.MethodPost, "/documents/search", `{"created_from":"yesterday"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestSearch_ReportScenario(t *testing.T) {
	h := newTestRouter(t)
	for _, body := range []string{
		`{"title":"Report A","content":"quarterly results","author":{"id":"u1"}}`,
		`{"title":"Report B","content":"annual summary","author":{"id":"u2"}}`,
	} {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/documents", body).Code)
	}

	assert.Equal(t, []string{"Report A"}, searchTitles(t, h, `{"author_ids":["u1"]}`))
	assert.Equal(t, []string{"Report B"}, searchTitles(t, h, `{"contains_contents":["annual"]}`))
	assert.Equal(t, []string{"Report A", "Report B"}, searchTitles(t, h, `{"title_prefixes":["Report"]}`))
}

func TestSearch_AbsentVersusEmpty(t *testing.T) {
	h := newTestRouter(t)
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		do(t, h, http.MethodPost, "/documents", `{"title":"`+title+`","content":"c","author":{"id":"u1"}}`)
	}

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, searchTitles(t, h, `{}`))
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, searchTitles(t, h, `{"title_prefixes":null}`))
	assert.Empty(t, searchTitles(t, h, `{"title_prefixes":[]}`))
	assert.Equal(t, []string{"Alpha", "Gamma"}, searchTitles(t, h, `{"title_prefixes":["Al","Ga"]}`))
}

func TestSearch_ExclusiveTimeBounds(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/documents", `{"title":"T","content":"c","created":"2024-06-01T12:00:00Z"}`)

	assert.Empty(t, searchTitles(t, h, `{"created_from":"2024-06-01T12:00:00Z"}`))
	assert.Empty(t, searchTitles(t, h, `{"created_to":"2024-06-01T12:00:00Z"}`))
	assert.Equal(t, []string{"T"}, searchTitles(t, h, `{"created_from":"2024-06-01T11:59:59Z"}`))
}

func TestSearch_IncompleteDocument(t *testing.T) {
	h := newTestRouter(t)
	// explicit id without author or created
	do(t, h, http.MethodPut, "/documents/bare", `{"title":"Bare","content":"c"}`)

	rr := do(t, h, http.MethodPost, "/documents/search", `{"author_ids":["u1"]}`)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, CodeIncompleteDocument, body.Code)

	rr = do(t, h, http.MethodPost, "/documents/search", `{"created_to":"2030-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/documents", `{"title":"t","content":"c"}`)

	rr := do(t, h, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 1, body.Documents)
}

func TestVersionAndMetrics(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"version"`)

	rr = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "go_goroutines"))
}

func TestMaxBodyBytes(t *testing.T) {
	store := memory.New()
	docs := documentuc.New(store, nil)
	server := NewServer(docs, searchuc.New(store, nil), healthuc.New(docs), nil).WithMaxBodyBytes(16)
	r := chi.NewRouter()
	server.Register(r)

	rr := do(t, r, http.MethodPost, "/documents", `{"title":"a very long title that overflows","content":"c"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, docs.Count())
}
