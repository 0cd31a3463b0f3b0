package files

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Item is a raw directory listing record.
type Item struct {
	Name  string
	Path  string
	IsDir bool
}

func (i Item) String() string {
	return i.Path
}

// NewItem builds an Item for a child of dir.
func NewItem(dir string, entry fs.DirEntry) Item {
	name := entry.Name()
	return Item{
		Name:  name,
		Path:  filepath.Join(dir, name),
		IsDir: entry.IsDir(),
	}
}

// Extension returns the part of name after the last dot, without the dot.
// ".bashrc" yields "bashrc" and "Makefile" yields "".
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
