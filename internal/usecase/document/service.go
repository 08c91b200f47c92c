package document

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docman/internal/domain/document"
	"github.com/kailas-cloud/docman/internal/metrics"
)

// UUIDGenerator generates random (version 4) UUID strings.
type UUIDGenerator struct{}

// NewID returns a new random UUID.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Service handles document upsert and lookup.
type Service struct {
	repo   Repository
	ids    IDGenerator
	now    func() time.Time
	logger *zap.Logger
}

// New creates a document service with UUID ids and the wall clock.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		ids:    UUIDGenerator{},
		now:    time.Now,
		logger: logger,
	}
}

// WithIDGenerator overrides the id generator.
func (s *Service) WithIDGenerator(ids IDGenerator) *Service {
	if ids != nil {
		s.ids = ids
	}
	return s
}

// WithClock overrides the clock used for missing creation timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Save upserts a document and returns the stored value.
//
// Without an id, a new id is generated and created is kept if set, otherwise stamped now.
// With an id, the document is stored verbatim and replaces any previous entry;
// created is not resolved on this path and may stay absent.
func (s *Service) Save(doc domdoc.Document) domdoc.Document {
	path := metrics.SavePathExplicit
	if doc.ID() == "" {
		created := doc.Created()
		if !doc.HasCreated() {
			created = s.now()
		}
		doc = doc.WithIdentity(s.ids.NewID(), created)
		path = metrics.SavePathGenerated
	}

	s.repo.Put(doc)

	metrics.DocumentsSavedTotal.WithLabelValues(path).Inc()
	metrics.DocumentsStored.Set(float64(s.repo.Len()))
	s.logger.Debug("document saved",
		zap.String("id", doc.ID()),
		zap.String("path", path),
		zap.Bool("has_created", doc.HasCreated()),
	)
	return doc
}

// FindByID returns the document with the given id. A miss is reported by ok=false.
func (s *Service) FindByID(id string) (domdoc.Document, bool) {
	return s.repo.Get(id)
}

// Count returns the number of stored documents.
func (s *Service) Count() int {
	return s.repo.Len()
}
