package chooser

import "fmt"

// Mode tells whether the session picks a file or a folder.
type Mode int

const (
	FileMode Mode = iota
	FolderMode
)

func (m Mode) String() string {
	switch m {
	case FileMode:
		return "file"
	case FolderMode:
		return "folder"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool {
	return m == FileMode || m == FolderMode
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "file":
		return FileMode, nil
	case "folder", "dir", "directory":
		return FolderMode, nil
	default:
		return FileMode, fmt.Errorf("%w: unknown mode %q, expected file or folder", ErrInvalidConfig, s)
	}
}
