package memory

import (
	"sync"

	domdoc "github.com/kailas-cloud/docman/internal/domain/document"
)

// Store is an in-memory document store keyed by document ID.
// Safe for concurrent use; iteration order of All is unspecified.
type Store struct {
	mu   sync.RWMutex
	docs map[string]domdoc.Document
}

// New creates an empty Store.
func New() *Store {
	return &Store{docs: make(map[string]domdoc.Document)}
}

// Put stores the document under its ID, replacing any previous entry.
func (s *Store) Put(doc domdoc.Document) {
	s.mu.Lock()
	s.docs[doc.ID()] = doc
	s.mu.Unlock()
}

// Get returns the document with the given ID.
func (s *Store) Get(id string) (domdoc.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// All returns a snapshot of every stored document.
func (s *Store) All() []domdoc.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domdoc.Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	return docs
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
