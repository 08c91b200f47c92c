package domain

import "errors"

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrIncompleteDocument signals a stored document lacking a field an active filter needs.
	ErrIncompleteDocument = errors.New("incomplete document")
	// ErrInvalidRequest signals a malformed request payload.
	ErrInvalidRequest = errors.New("invalid request")
)
