package service

import (
	"context"
	"io"
)

// FileStore is the flat directory holding uploaded image binaries, keyed by
// stored filename.
type FileStore interface {
	Save(ctx context.Context, r io.Reader, filename string) (path string, size int64, err error)
	Remove(filename string) error
	// RemoveIfExists deletes best-effort: a missing file is not an error.
	RemoveIfExists(filename string) error
	Path(filename string) string
}
