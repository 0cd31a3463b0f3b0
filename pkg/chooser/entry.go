package chooser

// ParentDirectoryLabel names the synthetic up-navigation entry.
const ParentDirectoryLabel = "Parent Directory"

// IconKind selects how an Entry is drawn.
type IconKind int

const (
	IconFile IconKind = iota
	IconFolder
	IconUp
)

// Entry is one row of a listing. Entries are values and never change after construction.
type Entry struct {
	Name     string
	Path     string
	IsFolder bool
	IsParent bool
}

func newEntry(name, path string, isFolder bool) Entry {
	return Entry{Name: name, Path: path, IsFolder: isFolder}
}

// newParentEntry keeps IsParent ⇒ IsFolder.
func newParentEntry(path string) Entry {
	return Entry{Name: ParentDirectoryLabel, Path: path, IsFolder: true, IsParent: true}
}

func (e Entry) Kind() IconKind {
	switch {
	case e.IsParent:
		return IconUp
	case e.IsFolder:
		return IconFolder
	default:
		return IconFile
	}
}

func (e Entry) String() string {
	return e.Path
}
