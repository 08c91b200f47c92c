package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/docman/internal/domain"
	domdoc "github.com/kailas-cloud/docman/internal/domain/document"
	"github.com/kailas-cloud/docman/internal/domain/search/request"
)

// Predicate names.
const (
	TitlePrefix     = "title_prefix"
	ContentContains = "content_contains"
	AuthorID        = "author_id"
	CreatedFrom     = "created_from"
	CreatedTo       = "created_to"
)

// Predicate is a single filter group evaluated against one document.
type Predicate struct {
	name  string
	match func(doc *domdoc.Document) (bool, error)
}

// Name returns the predicate name.
func (p Predicate) Name() string { return p.name }

// Match reports whether the document satisfies the predicate.
func (p Predicate) Match(doc *domdoc.Document) (bool, error) {
	return p.match(doc)
}

// Expression is the conjunction of the active predicates of a request.
// An absent group contributes no predicate, so an empty Expression matches everything.
type Expression struct {
	predicates []Predicate
}

// FromRequest builds the Expression for a search request.
func FromRequest(req *request.Request) Expression {
	var preds []Predicate

	if prefixes := req.TitlePrefixes(); prefixes != nil {
		preds = append(preds, titlePrefix(prefixes))
	}
	if substrings := req.ContainsContents(); substrings != nil {
		preds = append(preds, contentContains(substrings))
	}
	if ids := req.AuthorIDs(); ids != nil {
		preds = append(preds, authorID(ids))
	}
	if from := req.CreatedFrom(); from != nil {
		preds = append(preds, createdFrom(*from))
	}
	if to := req.CreatedTo(); to != nil {
		preds = append(preds, createdTo(*to))
	}

	return Expression{predicates: preds}
}

// Predicates returns the active predicates in evaluation order.
func (e Expression) Predicates() []Predicate { return e.predicates }

// Match reports whether the document satisfies every predicate.
// Evaluation stops at the first predicate that fails or errors.
func (e Expression) Match(doc *domdoc.Document) (bool, error) {
	for _, p := range e.predicates {
		ok, err := p.Match(doc)
		if err != nil {
			return false, fmt.Errorf("%s on document %q: %w", p.name, doc.ID(), err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func titlePrefix(prefixes []string) Predicate {
	return Predicate{name: TitlePrefix, match: func(doc *domdoc.Document) (bool, error) {
		title := doc.Title()
		for _, p := range prefixes {
			if strings.HasPrefix(title, p) {
				return true, nil
			}
		}
		return false, nil
	}}
}

func contentContains(substrings []string) Predicate {
	return Predicate{name: ContentContains, match: func(doc *domdoc.Document) (bool, error) {
		content := doc.Content()
		for _, s := range substrings {
			if strings.Contains(content, s) {
				return true, nil
			}
		}
		return false, nil
	}}
}

func authorID(ids []string) Predicate {
	return Predicate{name: AuthorID, match: func(doc *domdoc.Document) (bool, error) {
		author := doc.Author()
		// The author is only required once there is a candidate to compare against.
		for _, id := range ids {
			if author == nil {
				return false, fmt.Errorf("author is absent: %w", domain.ErrIncompleteDocument)
			}
			if author.ID() == id {
				return true, nil
			}
		}
		return false, nil
	}}
}

// createdFrom is an exclusive lower bound: a document created exactly at from does not match.
func createdFrom(from time.Time) Predicate {
	return Predicate{name: CreatedFrom, match: func(doc *domdoc.Document) (bool, error) {
		if !doc.HasCreated() {
			return false, fmt.Errorf("created is absent: %w", domain.ErrIncompleteDocument)
		}
		return from.Before(doc.Created()), nil
	}}
}

// createdTo is an exclusive upper bound.
func createdTo(to time.Time) Predicate {
	return Predicate{name: CreatedTo, match: func(doc *domdoc.Document) (bool, error) {
		if !doc.HasCreated() {
			return false, fmt.Errorf("created is absent: %w", domain.ErrIncompleteDocument)
		}
		return to.After(doc.Created()), nil
	}}
}
