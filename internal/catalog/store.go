package catalog

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageCorrupt     = errors.New("storage corrupt")
	ErrNotFound           = errors.New("movie not found")
	ErrUnknownKind        = errors.New("unknown storage kind")
)

// Store persists a collection of records in a single file. Every mutation
// reads the whole collection, changes it in memory and writes it back.
// Deleting or updating an absent title is a silent no-op.
//
// Stores assume exclusive ownership of the file: there is no locking, so two
// processes writing the same file lose updates (last writer wins).
type Store interface {
	List() (*Collection, error)
	Add(r Record) error
	Delete(title string) error
	UpdateNotes(title, notes string) error
}
