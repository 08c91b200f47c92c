// Package docman is an in-memory document store with multi-criteria search.
//
// A Manager holds documents keyed by id. Save upserts, FindByID looks a
// document up, and Search filters the whole collection by title prefix,
// content substring, author id and an exclusive creation-time window.
package docman

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docman/internal/domain"
	domdoc "github.com/kailas-cloud/docman/internal/domain/document"
	"github.com/kailas-cloud/docman/internal/domain/search/request"
	"github.com/kailas-cloud/docman/internal/repository/memory"
	documentuc "github.com/kailas-cloud/docman/internal/usecase/document"
	searchuc "github.com/kailas-cloud/docman/internal/usecase/search"
)

// ErrIncompleteDocument is returned by Search when a stored document lacks
// the Author or Created field that an active filter needs.
var ErrIncompleteDocument = domain.ErrIncompleteDocument

// Manager is a document store instance. It is safe for concurrent use.
type Manager struct {
	docSvc    *documentuc.Service
	searchSvc *searchuc.Service
}

// New creates an empty Manager.
func New(opts ...Option) *Manager {
	cfg := &managerConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	store := memory.New()
	docSvc := documentuc.New(store, cfg.logger)
	if cfg.now != nil {
		docSvc = docSvc.WithClock(cfg.now)
	}
	if cfg.newID != nil {
		docSvc = docSvc.WithIDGenerator(idFunc(cfg.newID))
	}

	return &Manager{
		docSvc:    docSvc,
		searchSvc: searchuc.New(store, cfg.logger),
	}
}

// Save upserts doc and returns the stored document.
//
// With an empty ID a fresh id is generated and Created is stamped with the
// current time unless already set. With a non-empty ID the document is stored
// as given, replacing any previous one; Created is left untouched, even if nil.
func (m *Manager) Save(doc Document) Document {
	return fromDomain(m.docSvc.Save(toDomain(&doc)))
}

// Search returns all documents matching every active filter group, in no
// particular order. An all-nil request returns every stored document.
//
// If an author or time filter is active and some stored document lacks the
// corresponding field, Search fails with ErrIncompleteDocument and returns
// no results.
func (m *Manager) Search(req SearchRequest) ([]Document, error) {
	r := request.New(req.TitlePrefixes, req.ContainsContents, req.AuthorIDs, req.CreatedFrom, req.CreatedTo)
	docs, err := m.searchSvc.Search(&r)
	if err != nil {
		return nil, fmt.Errorf("docman: search: %w", err)
	}

	out := make([]Document, len(docs))
	for i := range docs {
		out[i] = fromDomain(docs[i])
	}
	return out, nil
}

// FindByID returns the document stored under id. ok is false if there is none.
func (m *Manager) FindByID(id string) (Document, bool) {
	doc, ok := m.docSvc.FindByID(id)
	if !ok {
		return Document{}, false
	}
	return fromDomain(doc), true
}

// Len returns the number of stored documents.
func (m *Manager) Len() int {
	return m.docSvc.Count()
}

// idFunc adapts a plain function to documentuc.IDGenerator.
type idFunc func() string

func (f idFunc) NewID() string { return f() }

func toDomain(doc *Document) domdoc.Document {
	var author *domdoc.Author
	if doc.Author != nil {
		a := domdoc.NewAuthor(doc.Author.ID, doc.Author.Name)
		author = &a
	}
	return domdoc.New(doc.ID, doc.Title, doc.Content, author, doc.Created)
}

func fromDomain(doc domdoc.Document) Document {
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
