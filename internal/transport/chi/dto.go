package chi

import (
	"time"

	domdoc "github.com/kailas-cloud/docman/internal/domain/document"
	"github.com/kailas-cloud/docman/internal/domain/search/request"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeValidationFailed   ErrorCode = "validation_failed"
	CodeUnauthorized       ErrorCode = "unauthorized"
	CodeDocumentNotFound   ErrorCode = "document_not_found"
	CodeIncompleteDocument ErrorCode = "incomplete_document"
	CodeRateLimited        ErrorCode = "rate_limited"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Author is the JSON author representation.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the JSON document representation. Null author or created mean absent.
type Document struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  *Author    `json:"author"`
	Created *time.Time `json:"created"`
}

// SaveDocumentRequest is the body of POST /documents and PUT /documents/{id}.
type SaveDocumentRequest struct {
	ID      string     `json:"id,omitempty"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  *Author    `json:"author"`
	Created *time.Time `json:"created"`
}

// SearchRequest is the body of POST /documents/search.
// A missing or null field imposes no constraint; an empty array matches nothing.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"title_prefixes"`
	ContainsContents []string   `json:"contains_contents"`
	AuthorIDs        []string   `json:"author_ids"`
	CreatedFrom      *time.Time `json:"created_from"`
	CreatedTo        *time.Time `json:"created_to"`
}

// SearchResponse is the body returned by POST /documents/search.
type SearchResponse struct {
	Items []Document `json:"items"`
	Total int        `json:"total"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Documents int    `json:"documents"`
}

func documentToDTO(doc *domdoc.Document) Document {
	out := Document{
		ID:      doc.ID(),
		Title:   doc.Title(),
		Content: doc.Content(),
	}
	if a := doc.Author(); a != nil {
		out.Author = &Author{ID: a.ID(), Name: a.Name()}
	}
	if doc.HasCreated() {
		c := doc.Created()
		out.Created = &c
	}
	return out
}

func documentFromSave(id string, req *SaveDocumentRequest) domdoc.Document {
	var author *domdoc.Author
	if req.Author != nil {
		a := domdoc.NewAuthor(req.Author.ID, req.Author.Name)
		author = &a
	}
	return domdoc.New(id, req.Title, req.Content, author, req.Created)
}

func searchRequestFromDTO(req *SearchRequest) request.Request {
	return request.New(req.TitlePrefixes, req.ContainsContents, req.AuthorIDs, req.CreatedFrom, req.CreatedTo)
}
