package types

import "errors"

var (
	// ErrDocumentNotFound means the gateway reported non-success for a fetch.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNoIndexableText means the fetched document has no text to index.
	ErrNoIndexableText = errors.New("no text available for indexing")

	// ErrModelUnavailable means the embedding or generative model failed to
	// load or respond. Callers must not retry silently.
	ErrModelUnavailable = errors.New("model unavailable")
)
