package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"cinelog/internal/fsx"
)

// DocumentStore keeps the whole collection as one keyed document.
type DocumentStore struct {
	path  string
	codec Codec
}

func NewDocumentStore(path string, codec Codec) (*DocumentStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s := &DocumentStore{path: path, codec: codec}

	exists, err := fsx.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if !exists {
		if err := s.write(&Collection{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *DocumentStore) Path() string {
	return s.path
}

func (s *DocumentStore) List() (*Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrStorageUnavailable, s.path, err)
	}

	c, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s file %q: %w", ErrStorageCorrupt, s.codec.Name(), s.path, err)
	}
	return c, nil
}

func (s *DocumentStore) Add(r Record) error {
	return s.mutate(func(c *Collection) bool {
		c.Put(r)
		return true
	})
}

func (s *DocumentStore) Delete(title string) error {
	return s.mutate(func(c *Collection) bool {
		return c.Delete(title)
	})
}

func (s *DocumentStore) UpdateNotes(title, notes string) error {
	return s.mutate(func(c *Collection) bool {
		r, ok := c.Get(title)
		if !ok {
			return false
		}
		c.Put(r.WithNotes(notes))
		return true
	})
}

func (s *DocumentStore) mutate(fn func(c *Collection) bool) error {
	c, err := s.List()
	if err != nil {
		return err
	}
	if !fn(c) {
		return nil
	}
	return s.write(c)
}

func (s *DocumentStore) write(c *Collection) error {
	data, err := s.codec.Encode(c)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %w", ErrStorageUnavailable, s.codec.Name(), err)
	}
	if err := fsx.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrStorageUnavailable, s.path, err)
	}
	return nil
}
