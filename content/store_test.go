package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khizarrao/folio/content"
	"github.com/khizarrao/folio/storage/memory"
)

func decodeDoc(t *testing.T, doc json.RawMessage) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal(doc, &obj))
	return obj
}

func TestStoreGet(t *testing.T) {
	t.Run("DefaultWithoutStorage", func(t *testing.T) {
		store := content.NewStore(nil)
		got := decodeDoc(t, store.Get())
		hero := got["hero"].(map[string]any)
		assert.Equal(t, content.DefaultContent.Hero.Badge, hero["badge"])
	})

	t.Run("DefaultWhenEmpty", func(t *testing.T) {
		store := content.NewStore(memory.NewRepository())
		got := decodeDoc(t, store.Get())
		assert.Contains(t, got, "visibility")
	})

	t.Run("ReturnsStoredDocument", func(t *testing.T) {
		repo := memory.NewRepository()
		store := content.NewStore(repo)
		require.NoError(t, store.Save(json.RawMessage(`{"hero":{"badge":"Hello"}}`)))

		got := decodeDoc(t, store.Get())
		hero := got["hero"].(map[string]any)
		assert.Equal(t, "Hello", hero["badge"])
	})
}

func TestStoreSave(t *testing.T) {
	t.Run("MergePreservesOtherFields", func(t *testing.T) {
		store := content.NewStore(memory.NewRepository())
		require.NoError(t, store.Save(json.RawMessage(`{"hero":{"badge":"One","description":"Desc"}}`)))
		require.NoError(t, store.Save(json.RawMessage(`{"hero":{"badge":"Two"},"visibility":{"contact":false}}`)))

		got := decodeDoc(t, store.Get())
		hero := got["hero"].(map[string]any)
		assert.Equal(t, "Two", hero["badge"])
		assert.Equal(t, "Desc", hero["description"])
		visibility := got["visibility"].(map[string]any)
		assert.Equal(t, false, visibility["contact"])
	})

	t.Run("NotConfigured", func(t *testing.T) {
		store := content.NewStore(nil)
		err := store.Save(json.RawMessage(`{"a":1}`))
		require.ErrorIs(t, err, content.ErrStorageNotConfigured)
	})

	t.Run("RejectsNonObject", func(t *testing.T) {
		store := content.NewStore(memory.NewRepository())
		require.Error(t, store.Save(json.RawMessage(`[1,2,3]`)))
	})
}

func TestDefaultContentShape(t *testing.T) {
	// The fallback document must always render a complete page.
	assert.True(t, content.DefaultContent.Visibility.Hero)
	assert.NotEmpty(t, content.DefaultContent.Hero.Description)
	assert.NotEmpty(t, content.DefaultContent.Experience)
	assert.NotEmpty(t, content.DefaultContent.Skills)
	assert.NotEmpty(t, content.DefaultContent.Projects)
	assert.NotEmpty(t, content.DefaultContent.Education)
	assert.NotEmpty(t, content.DefaultContent.Contact.Email)
}
