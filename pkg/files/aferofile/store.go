// Package aferofile serves the chooser from an afero filesystem.
package aferofile

import (
	"context"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/datatug/filechooser/pkg/files"
)

var _ files.Provider = (*Store)(nil)

type Store struct {
	fs afero.Fs
}

func NewStore(afs afero.Fs) *Store {
	return &Store{fs: afs}
}

// NewMemStore returns a Store backed by an empty in-memory filesystem.
func NewMemStore() *Store {
	return NewStore(afero.NewMemMapFs())
}

// NewBasePathStore confines all paths to rootPath on the OS filesystem.
func NewBasePathStore(rootPath string) *Store {
	return NewStore(afero.NewBasePathFs(afero.NewOsFs(), rootPath))
}

func (s *Store) Fs() afero.Fs {
	return s.fs
}

func (s *Store) ListDir(ctx context.Context, name string) ([]files.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(s.fs, name)
	if err != nil {
		return nil, err
	}
	items := make([]files.Item, 0, len(infos))
	for _, info := range infos {
		items = append(items, files.NewItem(name, fs.FileInfoToDirEntry(info)))
	}
	return items, nil
}

func (s *Store) IsReadable(p string) bool {
	f, err := s.fs.Open(p)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func (s *Store) ExtensionOf(name string) string {
	return files.Extension(name)
}

func (s *Store) EnsureDir(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.fs.MkdirAll(p, os.ModePerm)
}
