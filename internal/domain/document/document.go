package document

import "time"

// Author is the embedded author value of a document.
type Author struct {
	id   string
	name string
}

// NewAuthor creates an Author.
func NewAuthor(id, name string) Author {
	return Author{id: id, name: name}
}

// ID returns the author identifier.
func (a Author) ID() string { return a.id }

// Name returns the author display name.
func (a Author) Name() string { return a.name }

// Document is the stored document (immutable value object).
type Document struct {
	id         string
	title      string
	content    string
	author     *Author
	created    time.Time
	hasCreated bool
}

// New creates a Document. author and created may be nil; any non-nil created,
// including the zero time, is kept as set.
// No validation: save accepts any input shape.
func New(id, title, content string, author *Author, created *time.Time) Document {
	d := Document{
		id:      id,
		title:   title,
		content: content,
		author:  cloneAuthor(author),
	}
	if created != nil {
		d.created = *created
		d.hasCreated = true
	}
	return d
}

// ID returns the document identifier (empty when not yet assigned).
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Content returns the document text content.
func (d *Document) Content() string { return d.content }

// Author returns the embedded author, or nil when absent.
func (d *Document) Author() *Author { return cloneAuthor(d.author) }

// Created returns the creation timestamp (zero when absent, see HasCreated).
func (d *Document) Created() time.Time { return d.created }

// HasCreated reports whether the creation timestamp is set.
func (d *Document) HasCreated() bool { return d.hasCreated }

// WithIdentity returns a copy carrying the given id and creation timestamp.
func (d *Document) WithIdentity(id string, created time.Time) Document {
	return Document{
		id: id, title: d.title, content: d.content,
		author: cloneAuthor(d.author), created: created, hasCreated: true,
	}
}

func cloneAuthor(a *Author) *Author {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
