package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

var (
	ErrNotFound = errors.New("content file not found")
)

// Content categories. Each maps to one directory under the content root.
const (
	CategoryPosts    = "posts"
	CategoryProducts = "products"
	CategoryAuthors  = "authors"
)

// ContentStore is the storage boundary of the content layer. The filesystem
// is the only database of this system, so the interface is deliberately a
// flat file API. Query and merge logic above it stays pure.
type ContentStore interface {
	// List returns the filenames in a category's directory. A missing
	// directory means "no content yet" and yields an empty list, not an
	// error.
	List(category string) ([]string, error)

	// Read returns the raw bytes of one file, or ErrNotFound.
	Read(category, name string) ([]byte, error)

	// Write creates or replaces one file. Last write wins, there is no
	// version check (single-operator admin surface).
	Write(category, name string, data []byte) error

	// Delete removes one file, or returns ErrNotFound.
	Delete(category, name string) error

	// Exists reports whether a file is present.
	Exists(category, name string) bool
}

type fsStore struct {
	root string
}

// NewFS returns a ContentStore over root, which holds the posts/, products/
// and authors/ directories.
func NewFS(root string) ContentStore {
	return &fsStore{root: root}
}

func (s *fsStore) path(category, name string) string {
	return filepath.Join(s.root, category, name)
}

func (s *fsStore) List(category string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, category))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", category, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *fsStore) Read(category, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(category, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s/%s: %w", category, name, err)
	}
	return data, nil
}

func (s *fsStore) Write(category, name string, data []byte) error {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", category, err)
	}
	if err := os.WriteFile(s.path(category, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s/%s: %w", category, name, err)
	}
	return nil
}

func (s *fsStore) Delete(category, name string) error {
	err := os.Remove(s.path(category, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %s/%s: %w", category, name, err)
	}
	return nil
}

func (s *fsStore) Exists(category, name string) bool {
	info, err := os.Stat(s.path(category, name))
	return err == nil && !info.IsDir()
}
