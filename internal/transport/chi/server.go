package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docman/internal/domain"
	logpkg "github.com/kailas-cloud/docman/internal/logger"
	"github.com/kailas-cloud/docman/internal/version"
	documentuc "github.com/kailas-cloud/docman/internal/usecase/document"
	healthuc "github.com/kailas-cloud/docman/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docman/internal/usecase/search"
)

const defaultMaxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the document API over HTTP.
type Server struct {
	documents     *documentuc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	maxBodyBytes  int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	documents *documentuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		documents:    documents,
		search:       search,
		health:       health,
		logger:       logger,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, CodeDocumentNotFound),
		sentinelHandler(domain.ErrIncompleteDocument, http.StatusUnprocessableEntity, CodeIncompleteDocument),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationFailed),
	}
	return s
}

// WithMaxBodyBytes limits the size of request bodies.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

// Register mounts the API routes on r.
func (s *Server) Register(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Post("/", s.CreateDocument)
		r.Post("/search", s.SearchDocuments)
		r.Get("/{id}", s.GetDocument)
		r.Put("/{id}", s.UpsertDocument)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/version", s.Version)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// CreateDocument handles POST /documents.
// Without an id the document gets a generated id and 201; with an id it is upserted (200).
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req SaveDocumentRequest
	if !s.decode(w, r, &req) {
		return
	}

	doc := documentFromSave(req.ID, &req)
	saved := s.documents.Save(doc)

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
		w.Header().Set("Location", "/documents/"+saved.ID())
	}
	writeJSON(w, status, documentToDTO(&saved))
}

// UpsertDocument handles PUT /documents/{id}.
func (s *Server) UpsertDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SaveDocumentRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ID != "" && req.ID != id {
		s.handleDomainError(w, r, fmt.Errorf("body id %q does not match path id %q: %w", req.ID, id, domain.ErrInvalidRequest))
		return
	}

	saved := s.documents.Save(documentFromSave(id, &req))
	writeJSON(w, http.StatusOK, documentToDTO(&saved))
}

// GetDocument handles GET /documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, ok := s.documents.FindByID(id)
	if !ok {
		s.handleDomainError(w, r, fmt.Errorf("get %q: %w", id, domain.ErrDocumentNotFound))
		return
	}
	writeJSON(w, http.StatusOK, documentToDTO(&doc))
}

// SearchDocuments handles POST /documents/search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !s.decode(w, r, &req) {
		return
	}

	searchReq := searchRequestFromDTO(&req)
	docs, err := s.search.Search(&searchReq)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]Document, len(docs))
	for i := range docs {
		items[i] = documentToDTO(&docs[i])
	}
	writeJSON(w, http.StatusOK, SearchResponse{Items: items, Total: len(items)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	report := s.health.Check()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    string(report.Status),
		Documents: report.Documents,
	})
}

// Version handles GET /version.
func (s *Server) Version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, version.Get())
}

// decode reads a JSON body into v, rejecting unknown fields. Writes a 400 and returns false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrDocumentNotFound,
		domain.ErrIncompleteDocument,
		domain.ErrInvalidRequest,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
