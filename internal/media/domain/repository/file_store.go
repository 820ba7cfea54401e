package repository

import (
	"context"
	"io"
)

// FileStore abstracts where uploaded images end up. The only current
// implementation writes to local disk; an object-store adapter would
// satisfy the same port.
type FileStore interface {
	// Save persists the content under the given name and returns the
	// public path of the stored file.
	Save(ctx context.Context, name string, content io.Reader) (string, error)
}
