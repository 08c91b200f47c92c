package docman

import "time"

// Author identifies who wrote a document.
type Author struct {
	ID   string
	Name string
}

// Document is a stored text document.
//
// A nil Author or Created means the field is absent. Documents saved with an
// explicit ID may legitimately lack both.
type Document struct {
	ID      string
	Title   string
	Content string
	Author  *Author
	Created *time.Time
}

// SearchRequest selects documents by up to five independent filter groups.
//
// A nil slice or nil time imposes no constraint. A non-nil empty slice
// is an active filter that matches nothing. Within a slice, values are
// OR-ed; across groups, constraints are AND-ed. Time bounds are exclusive.
type SearchRequest struct {
	TitlePrefixes    []string
	ContainsContents []string
	AuthorIDs        []string
	CreatedFrom      *time.Time
	CreatedTo        *time.Time
}
