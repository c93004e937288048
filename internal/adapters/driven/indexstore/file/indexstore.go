// Package file provides an IndexStore adapter that persists each
// document's index artifacts as a pair of files on disk.
//
// Layout: <root>/<document-id>/vectors.bin and metadata.json. Both
// files are written to temporary names and renamed into place, so a
// reader never observes a partially written index.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

const (
	vectorsFile  = "vectors.bin"
	metadataFile = "metadata.json"
)

// Store persists index blobs under a root directory.
type Store struct {
	root string
}

// NewStore creates a file-backed index store rooted at dir. If dir is
// empty, defaults to ~/.legalchat/indices.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".legalchat", "indices")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}
	return &Store{root: dir}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Put atomically publishes both blobs for a document.
func (s *Store) Put(ctx context.Context, documentID string, indexBlob, metaBlob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if documentID == "" {
		return fmt.Errorf("empty document id: %w", domain.ErrInvalidInput)
	}

	dir := filepath.Join(s.root, documentID)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating document directory: %w", err)
	}

	if err := writeAtomic(filepath.Join(dir, vectorsFile), indexBlob); err != nil {
		return fmt.Errorf("writing vectors: %w", err)
	}
	if err := writeAtomic(filepath.Join(dir, metadataFile), metaBlob); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// Get returns the persisted blobs for a document.
func (s *Store) Get(ctx context.Context, documentID string) ([]byte, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	dir := filepath.Join(s.root, documentID)

	indexBlob, err := os.ReadFile(filepath.Join(dir, vectorsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("document %s: %w", documentID, domain.ErrIndexNotFound)
		}
		return nil, nil, fmt.Errorf("reading vectors: %w", err)
	}

	metaBlob, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("document %s: %w", documentID, domain.ErrIndexNotFound)
		}
		return nil, nil, fmt.Errorf("reading metadata: %w", err)
	}

	return indexBlob, metaBlob, nil
}

// Delete removes all persisted artifacts for a document. Deleting a
// document that has no index is a no-op.
func (s *Store) Delete(ctx context.Context, documentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if documentID == "" {
		return fmt.Errorf("empty document id: %w", domain.ErrInvalidInput)
	}
	if err := os.RemoveAll(filepath.Join(s.root, documentID)); err != nil {
		return fmt.Errorf("removing index: %w", err)
	}
	return nil
}

// List returns the document IDs that have a published index.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading index directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// Only count fully published indices.
		if _, err := os.Stat(filepath.Join(s.root, entry.Name(), vectorsFile)); err != nil {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.root, entry.Name(), metadataFile)); err != nil {
			continue
		}
		ids = append(ids, entry.Name())
	}
	return ids, nil
}

// writeAtomic writes data to a temporary file in the target directory
// and renames it over the destination.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
