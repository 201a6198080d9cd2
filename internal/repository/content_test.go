package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]ContentStore {
	t.Helper()
	return map[string]ContentStore{
		"fs":     NewFS(t.TempDir()),
		"memory": NewMemory(),
	}
}

func TestListMissingDirectoryIsEmpty(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			names, err := store.List(CategoryPosts)
			require.NoError(t, err)
			assert.Empty(t, names)
		})
	}
}

func TestWriteReadDelete(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Write(CategoryPosts, "hello.ko.mdx", []byte("hi")))
			assert.True(t, store.Exists(CategoryPosts, "hello.ko.mdx"))

			data, err := store.Read(CategoryPosts, "hello.ko.mdx")
			require.NoError(t, err)
			assert.Equal(t, []byte("hi"), data)

			names, err := store.List(CategoryPosts)
			require.NoError(t, err)
			assert.Equal(t, []string{"hello.ko.mdx"}, names)

			require.NoError(t, store.Delete(CategoryPosts, "hello.ko.mdx"))
			assert.False(t, store.Exists(CategoryPosts, "hello.ko.mdx"))
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Read(CategoryPosts, "nope.ko.mdx")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDeleteMissingFile(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Delete(CategoryPosts, "nope.en.mdx")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestCategoriesAreIsolated(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Write(CategoryPosts, "a.ko.mdx", []byte("post")))
			require.NoError(t, store.Write(CategoryAuthors, "a.ko.json", []byte("{}")))

			names, err := store.List(CategoryAuthors)
			require.NoError(t, err)
			assert.Equal(t, []string{"a.ko.json"}, names)
			assert.False(t, store.Exists(CategoryProducts, "a.ko.mdx"))
		})
	}
}

func TestListSorted(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Write(CategoryPosts, "b.ko.mdx", []byte("b")))
			require.NoError(t, store.Write(CategoryPosts, "a.en.mdx", []byte("a")))
			require.NoError(t, store.Write(CategoryPosts, "a.ko.mdx", []byte("a")))

			names, err := store.List(CategoryPosts)
			require.NoError(t, err)
			assert.Equal(t, []string{"a.en.mdx", "a.ko.mdx", "b.ko.mdx"}, names)
		})
	}
}
