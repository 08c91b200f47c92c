package search

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docman/internal/domain"
	domdoc "github.com/kailas-cloud/docman/internal/domain/document"
	"github.com/kailas-cloud/docman/internal/domain/search/filter"
	"github.com/kailas-cloud/docman/internal/domain/search/request"
	"github.com/kailas-cloud/docman/internal/metrics"
)

// Service evaluates search requests against the store contents.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a search service.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Search returns every document satisfying all active filter groups, in no particular order.
// A document missing a field needed by an active filter aborts the search
// with domain.ErrIncompleteDocument.
func (s *Service) Search(req *request.Request) ([]domdoc.Document, error) {
	start := time.Now()
	defer func() { metrics.SearchDuration.Observe(time.Since(start).Seconds()) }()

	docs := s.repo.All()
	if req.IsEmpty() {
		metrics.SearchMatches.Observe(float64(len(docs)))
		s.logger.Debug("match-all search", zap.Int("matched", len(docs)))
		return docs, nil
	}

	expr := filter.FromRequest(req)

	matches := make([]domdoc.Document, 0, len(docs))
	for i := range docs {
		ok, err := expr.Match(&docs[i])
		if err != nil {
			if errors.Is(err, domain.ErrIncompleteDocument) {
				metrics.SearchFaultsTotal.Inc()
			}
			s.logger.Warn("search aborted", zap.Error(err))
			return nil, fmt.Errorf("evaluate filters: %w", err)
		}
		if ok {
			matches = append(matches, docs[i])
		}
	}

	metrics.SearchMatches.Observe(float64(len(matches)))
	s.logger.Debug("search evaluated",
		zap.Int("predicates", len(expr.Predicates())),
		zap.Int("scanned", len(docs)),
		zap.Int("matched", len(matches)),
	)
	return matches, nil
}
