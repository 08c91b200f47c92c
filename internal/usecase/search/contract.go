package search

import domdoc "github.com/kailas-cloud/docman/internal/domain/document"

// Repository exposes the full document set for evaluation.
type Repository interface {
	All() []domdoc.Document
}
