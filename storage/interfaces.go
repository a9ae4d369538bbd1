package storage

import (
	"context"

	"github.com/calyptra/pdfscan/core"
)

// TextCache stores extracted document text keyed by content ID.
// Implementations must be thread-safe and support concurrent access.
type TextCache interface {
	// GetText retrieves the cached text for a content ID.
	// The second return value reports whether an entry was found;
	// a miss is not an error.
	GetText(ctx context.Context, id core.ID) (string, bool, error)

	// PutText stores extracted text under a content ID, overwriting
	// any existing entry.
	PutText(ctx context.Context, id core.ID, text string) error

	// Close closes the cache and releases resources.
	Close() error
}
