// Package storage provides the document storage abstraction for site records.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no document exists under a collection/key pair.
var ErrNotFound = errors.New("document not found")

// Repository defines the interface for JSON document storage addressed by
// collection and key. Documents are opaque JSON values; the repository does
// not enforce any TTL — expiry is the caller's responsibility.
type Repository interface {
	// Get returns the document stored under collection/key, or ErrNotFound.
	Get(collection, key string) ([]byte, error)
	// Put stores a document, overwriting any existing one.
	Put(collection, key string, doc []byte) error
	// Update applies fn to the current document (nil if absent) and stores
	// the result, all within a single atomic read-modify-write on the key.
	// An error from fn aborts the update and is returned unchanged.
	Update(collection, key string, fn func(current []byte) ([]byte, error)) error
	// Delete removes the document under collection/key. Deleting a missing
	// document returns ErrNotFound.
	Delete(collection, key string) error
	// List returns the keys present in a collection.
	List(collection string) ([]string, error)
}

// Merge performs a merge write: fields present in patch overwrite the stored
// document's fields, absent fields are preserved, and nested objects are
// merged recursively. Both patch and any existing document must be JSON
// objects. The merge runs inside a single atomic Update on the key.
func Merge(r Repository, collection, key string, patch []byte) error {
	var patchObj map[string]any
	if err := json.Unmarshal(patch, &patchObj); err != nil {
		return fmt.Errorf("merge patch must be a JSON object: %w", err)
	}
	return r.Update(collection, key, func(current []byte) ([]byte, error) {
		if current == nil {
			return json.Marshal(patchObj)
		}
		var base map[string]any
		if err := json.Unmarshal(current, &base); err != nil {
			// Stored document is not an object; the patch replaces it.
			return json.Marshal(patchObj)
		}
		return json.Marshal(mergeObjects(base, patchObj))
	})
}

func mergeObjects(base, patch map[string]any) map[string]any {
	for k, v := range patch {
		pv, pok := v.(map[string]any)
		bv, bok := base[k].(map[string]any)
		if pok && bok {
			base[k] = mergeObjects(bv, pv)
			continue
		}
		base[k] = v
	}
	return base
}
