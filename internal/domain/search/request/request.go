package request

import "time"

// Request is a conjunction of independently optional filter groups.
//
// Each group has three states: absent (nil) imposes no constraint,
// present but empty matches nothing, non-empty matches any candidate.
type Request struct {
	titlePrefixes    []string
	containsContents []string
	authorIDs        []string
	createdFrom      *time.Time
	createdTo        *time.Time
}

// New creates a Request. Nil slices and nil times mark absent groups;
// cloning keeps a non-nil empty slice non-nil.
func New(titlePrefixes, containsContents, authorIDs []string, createdFrom, createdTo *time.Time) Request {
	return Request{
		titlePrefixes:    cloneStrings(titlePrefixes),
		containsContents: cloneStrings(containsContents),
		authorIDs:        cloneStrings(authorIDs),
		createdFrom:      cloneTime(createdFrom),
		createdTo:        cloneTime(createdTo),
	}
}

// TitlePrefixes returns the candidate title prefixes (nil when absent).
func (r *Request) TitlePrefixes() []string { return r.titlePrefixes }

// ContainsContents returns the candidate content substrings (nil when absent).
func (r *Request) ContainsContents() []string { return r.containsContents }

// AuthorIDs returns the candidate author identifiers (nil when absent).
func (r *Request) AuthorIDs() []string { return r.authorIDs }

// CreatedFrom returns the exclusive lower creation bound (nil when absent).
func (r *Request) CreatedFrom() *time.Time { return cloneTime(r.createdFrom) }

// CreatedTo returns the exclusive upper creation bound (nil when absent).
func (r *Request) CreatedTo() *time.Time { return cloneTime(r.createdTo) }

// IsEmpty reports whether no group is present, i.e. the request matches everything.
func (r *Request) IsEmpty() bool {
	return r.titlePrefixes == nil && r.containsContents == nil && r.authorIDs == nil &&
		r.createdFrom == nil && r.createdTo == nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
