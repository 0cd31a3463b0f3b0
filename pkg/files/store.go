package files

import (
	"context"
)

// Provider is the filesystem seen by the chooser.
// Permission failures must match fs.ErrPermission and missing paths fs.ErrNotExist.
type Provider interface {
	ListDir(ctx context.Context, path string) ([]Item, error)
	IsReadable(path string) bool
	ExtensionOf(name string) string
	EnsureDir(ctx context.Context, path string) error
}
