package proptest

import (
	"bytes"
	"os"
	"testing"

	"cinelog/internal/catalog"
)

func TestStore_ReopenRoundTrip(t *testing.T) {
	RunWithStore(t, func(h *StoreHarness) {
		want := h.AddRecords(minMovies, maxMovies)

		c, err := h.Reopen().List()
		if err != nil {
			h.T.Fatalf("list after reopen failed: %v", err)
		}
		assertRecordsEqual(h.T, want, c.Records())
	})
}

func TestStore_FailedWriteLeavesFileIntact(t *testing.T) {
	RunWithStore(t, func(h *StoreHarness) {
		content := malformedContentGen(h.Kind).Draw(h.T, "content")
		if err := os.WriteFile(h.Path, []byte(content), 0o644); err != nil {
			h.T.Fatalf("failed to write file: %v", err)
		}

		r := h.GenRecord()
		var addErr error
		requireNoPanic(h.T, func() {
			addErr = h.Store.Add(r)
		})
		if addErr == nil {
			// The content happened to parse; nothing to check.
			return
		}
		assertStoreError(h.T, addErr, catalog.ErrStorageCorrupt)

		data, err := os.ReadFile(h.Path)
		if err != nil {
			h.T.Fatalf("failed to read file: %v", err)
		}
		if !bytes.Equal(data, []byte(content)) {
			h.T.Fatalf("rejected write modified the file")
		}
	})
}

func TestStore_MalformedContentNeverPanics(t *testing.T) {
	RunWithStore(t, func(h *StoreHarness) {
		content := malformedContentGen(h.Kind).Draw(h.T, "content")
		if err := os.WriteFile(h.Path, []byte(content), 0o644); err != nil {
			h.T.Fatalf("failed to write file: %v", err)
		}

		requireNoPanic(h.T, func() {
			_, err := h.Store.List()
			assertStoreError(h.T, err, catalog.ErrStorageCorrupt)

			err = h.Store.Delete("Heat")
			assertStoreError(h.T, err, catalog.ErrStorageCorrupt)

			err = h.Store.UpdateNotes("Heat", "notes")
			assertStoreError(h.T, err, catalog.ErrStorageCorrupt)
		})
	})
}

func TestStore_MissingFileIsUnavailable(t *testing.T) {
	RunWithStore(t, func(h *StoreHarness) {
		h.AddRecords(minMovies, typicalMaxMovies)
		if err := os.Remove(h.Path); err != nil {
			h.T.Fatalf("failed to remove file: %v", err)
		}

		_, err := h.Store.List()
		if err == nil {
			h.T.Fatalf("list of a removed file succeeded")
		}
		assertStoreError(h.T, err, catalog.ErrStorageUnavailable)
	})
}
