package osfile

import (
	"context"
	"io/fs"
	"os"

	"github.com/datatug/filechooser/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osMkdirAll = os.MkdirAll

var _ files.Provider = (*Store)(nil)

// Store reads the local filesystem.
type Store struct {
	dirPerm fs.FileMode
}

func NewStore() *Store {
	return &Store{dirPerm: 0755}
}

func (s Store) ListDir(ctx context.Context, name string) ([]files.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := osReadDir(name)
	if err != nil {
		return nil, err
	}
	items := make([]files.Item, 0, len(entries))
	for _, entry := range entries {
		item := files.NewItem(name, entry)
		if !item.IsDir && entry.Type()&fs.ModeSymlink != 0 {
			item.IsDir = isSymlinkToDir(item.Path)
		}
		items = append(items, item)
	}
	return items, nil
}

func isSymlinkToDir(p string) bool {
	info, err := osStat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (s Store) IsReadable(p string) bool {
	return isReadable(p)
}

func (s Store) ExtensionOf(name string) string {
	return files.Extension(name)
}

// EnsureDir creates p and missing parents. Existing directories are left alone.
func (s Store) EnsureDir(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osMkdirAll(p, s.dirPerm)
}
