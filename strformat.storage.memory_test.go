package strformat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_Contract(t *testing.T) {
	testStorageContract(t, func(t *testing.T) TemplateStorage {
		return NewMemoryStorage()
	})
}

func TestMemoryStorage_NewMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()
	require.NotNil(t, storage)
	assert.NotNil(t, storage.templates)
	assert.False(t, storage.closed)
}

func TestMemoryStorage_SaveDoesNotAliasInput(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	tmpl := &StoredTemplate{Name: "alias", Source: "{0}", Tags: []string{"a"}}
	require.NoError(t, storage.Save(ctx, tmpl))
	tmpl.Tags[0] = "changed"

	got, err := storage.Get(ctx, "alias")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestMemoryStorage_Close(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Close())
	assert.True(t, storage.closed)
	assert.Nil(t, storage.templates)

	_, err := storage.List(context.Background(), nil)
	assert.Error(t, err)
}

func TestMemoryStorage_OpenViaRegistry(t *testing.T) {
	storage, err := OpenStorage(StorageDriverNameMemory, "")
	require.NoError(t, err)
	defer storage.Close()

	_, ok := storage.(*MemoryStorage)
	assert.True(t, ok)
}
