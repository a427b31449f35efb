package bbolt

import (
	"errors"
	"os"
	"testing"

	"go.etcd.io/bbolt"

	"github.com/khizarrao/folio/storage"
)

func newTestDB(t *testing.T) (*bbolt.DB, func()) {
	t.Helper()
	f, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatalf("could not create temp file: %v", err)
	}
	path := f.Name()
	f.Close()

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		os.Remove(path)
		t.Fatalf("could not open db: %v", err)
	}
	return db, func() {
		db.Close()
		os.Remove(path)
	}
}

func TestBBoltStorage(t *testing.T) {
	db, cleanup := newTestDB(t)
	defer cleanup()

	s := NewRepository(db)
	doc := []byte(`{"createdAt":"2025-01-01T00:00:00Z"}`)

	t.Run("PutAndGet", func(t *testing.T) {
		if err := s.Put("sessions", "tok1", doc); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := s.Get("sessions", "tok1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != string(doc) {
			t.Errorf("Get returned wrong document: %s", got)
		}
	})

	t.Run("GetNotFound", func(t *testing.T) {
		if _, err := s.Get("sessions", "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := s.Get("nocollection", "tok1"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for missing bucket, got %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		err := s.Update("sessions", "tok1", func(current []byte) ([]byte, error) {
			if current == nil {
				t.Error("expected existing document in Update")
			}
			return []byte(`{"updated":true}`), nil
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		got, _ := s.Get("sessions", "tok1")
		if string(got) != `{"updated":true}` {
			t.Errorf("Update did not persist: %s", got)
		}
	})

	t.Run("UpdateErrorAborts", func(t *testing.T) {
		sentinel := errors.New("reject")
		err := s.Update("sessions", "tok1", func(current []byte) ([]byte, error) {
			return nil, sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected callback error, got %v", err)
		}
		got, _ := s.Get("sessions", "tok1")
		if string(got) != `{"updated":true}` {
			t.Errorf("aborted update mutated the document: %s", got)
		}
	})

	t.Run("DeleteAndList", func(t *testing.T) {
		s.Put("sessions", "tok2", doc)
		keys, err := s.List("sessions")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(keys) != 2 {
			t.Errorf("expected 2 keys, got %v", keys)
		}

		if err := s.Delete("sessions", "tok2"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := s.Delete("sessions", "tok2"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound deleting twice, got %v", err)
		}

		keys, _ = s.List("empty")
		if len(keys) != 0 {
			t.Errorf("expected no keys for missing bucket, got %v", keys)
		}
	})

	t.Run("SurvivesReopen", func(t *testing.T) {
		got, err := s.Get("sessions", "tok1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `{"updated":true}` {
			t.Errorf("unexpected document after reopen test setup: %s", got)
		}
	})
}
