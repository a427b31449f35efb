// Package memory provides a thread-safe in-memory implementation of storage.Repository.
package memory

import (
	"fmt"
	"sync"

	"github.com/khizarrao/folio/storage"
)

// Repository is a thread-safe in-memory implementation of storage.Repository.
// Suitable for testing, demos, and single-process use cases.
type Repository struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

var _ storage.Repository = (*Repository)(nil)

// NewRepository creates a new empty in-memory Repository.
func NewRepository() *Repository {
	return &Repository{data: make(map[string]map[string][]byte)}
}

func cloneDoc(doc []byte) []byte {
	if doc == nil {
		return nil
	}
	return append([]byte(nil), doc...)
}

func (r *Repository) Get(collection, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.data[collection][key]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", collection, key, storage.ErrNotFound)
	}
	return cloneDoc(doc), nil
}

func (r *Repository) Put(collection, key string, doc []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[collection]; !ok {
		r.data[collection] = make(map[string][]byte)
	}
	r.data[collection][key] = cloneDoc(doc)
	return nil
}

func (r *Repository) Update(collection, key string, fn func(current []byte) ([]byte, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var current []byte
	if doc, ok := r.data[collection][key]; ok {
		current = cloneDoc(doc)
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	if _, ok := r.data[collection]; !ok {
		r.data[collection] = make(map[string][]byte)
	}
	r.data[collection][key] = cloneDoc(next)
	return nil
}

func (r *Repository) Delete(collection, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[collection][key]; !ok {
		return fmt.Errorf("%s/%s: %w", collection, key, storage.ErrNotFound)
	}
	delete(r.data[collection], key)
	return nil
}

func (r *Repository) List(collection string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.data[collection]))
	for k := range r.data[collection] {
		keys = append(keys, k)
	}
	return keys, nil
}
