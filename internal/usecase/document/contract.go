package document

import domdoc "github.com/kailas-cloud/docman/internal/domain/document"

// Repository defines the storage contract for documents.
type Repository interface {
	Put(doc domdoc.Document)
	Get(id string) (domdoc.Document, bool)
	Len() int
}

// IDGenerator produces identifiers for documents saved without one.
type IDGenerator interface {
	NewID() string
}
