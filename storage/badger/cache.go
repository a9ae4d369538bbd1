package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/calyptra/pdfscan/core"
	"github.com/calyptra/pdfscan/storage"
)

// TextCache implements storage.TextCache on BadgerDB.
type TextCache struct {
	backend *Backend
}

var _ storage.TextCache = (*TextCache)(nil)

// NewTextCache creates a text cache on an open backend.
func NewTextCache(backend *Backend) (storage.TextCache, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &TextCache{backend: backend}, nil
}

// OpenTextCache opens a backend at dir and wraps it in a text cache.
// The returned cache owns the backend; Close releases both.
func OpenTextCache(dir string) (storage.TextCache, error) {
	backend, err := OpenBackend(dir, false)
	if err != nil {
		return nil, err
	}
	cache, err := NewTextCache(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &ownedCache{TextCache: cache.(*TextCache)}, nil
}

// ownedCache closes its backend together with the cache.
type ownedCache struct {
	*TextCache
}

func (c *ownedCache) Close() error {
	return c.backend.Close()
}

// GetText retrieves cached text for a content ID.
func (c *TextCache) GetText(ctx context.Context, id core.ID) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var text string
	found := false
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocTextKey(uint64(id)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			doc, err := storage.UnmarshalDocText(val)
			if err != nil {
				return err
			}
			text = doc.Text
			found = true
			return nil
		})
	}, false)
	if err != nil {
		return "", false, err
	}
	return text, found, nil
}

// PutText stores extracted text under a content ID.
func (c *TextCache) PutText(ctx context.Context, id core.ID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := &core.DocText{
		Text:        text,
		ExtractedAt: time.Now().UTC(),
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeDocTextKey(uint64(id)), storage.MarshalDocText(doc)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op for a cache on a borrowed backend; the backend owner
// closes it.
func (c *TextCache) Close() error {
	return nil
}
