package content

import (
	"encoding/json"
	"errors"

	"github.com/khizarrao/folio/storage"
)

const (
	collection = "content"

	// siteKey is the fixed document key for the content document — the site
	// has exactly one.
	siteKey = "site"
)

// ErrStorageNotConfigured is returned by Save when no repository was injected.
var ErrStorageNotConfigured = errors.New("database not configured")

// Store reads and writes the site content document. Reads never fail: any
// storage problem falls back to DefaultContent so the public page stays up.
// Write authorization is enforced by the HTTP layer in front of this store.
type Store struct {
	repo storage.Repository
}

// NewStore creates a content Store. repo may be nil, in which case Get serves
// the default document and Save fails with ErrStorageNotConfigured.
func NewStore(repo storage.Repository) *Store {
	return &Store{repo: repo}
}

// Get returns the stored content document, or the marshaled default when
// storage is unreachable or nothing has been saved yet.
func (s *Store) Get() json.RawMessage {
	if s.repo == nil {
		return defaultDocument()
	}
	doc, err := s.repo.Get(collection, siteKey)
	if err != nil {
		return defaultDocument()
	}
	return doc
}

// Save merges patch into the stored document: fields present in the patch
// overwrite, absent fields are preserved, nested objects merge recursively.
func (s *Store) Save(patch json.RawMessage) error {
	if s.repo == nil {
		return ErrStorageNotConfigured
	}
	return storage.Merge(s.repo, collection, siteKey, patch)
}

func defaultDocument() json.RawMessage {
	doc, err := json.Marshal(DefaultContent)
	if err != nil {
		// DefaultContent is a static value; marshaling it cannot fail.
		panic(err)
	}
	return doc
}
