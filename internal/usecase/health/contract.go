package health

// DocumentCounter reports the number of stored documents.
type DocumentCounter interface {
	Count() int
}
