package chooser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/datatug/filechooser/pkg/files"
	"github.com/datatug/filechooser/pkg/fsutils"
)

var logErr = func(v ...any) {
	log.Println(v...)
}

// Browser holds the navigation state of one chooser session.
// Only the current directory changes after Initialize.
type Browser struct {
	provider files.Provider
	cfg      Config
	current  string
}

// Initialize creates the start directory if needed and validates the root.
// Relative paths in cfg are resolved against the working directory.
// On ErrPermissionDenied the returned Browser is usable once access is granted.
func Initialize(ctx context.Context, provider files.Provider, cfg Config) (*Browser, error) {
	cfg = cfg.normalized()
	if cfg.RootPath == "" {
		return nil, fmt.Errorf("%w: root path is empty", ErrInvalidConfig)
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: provider is nil", ErrInvalidConfig)
	}
	if !cfg.Mode.valid() {
		return nil, fmt.Errorf("%w: unsupported mode %v", ErrInvalidConfig, cfg.Mode)
	}
	cfg, err := cfg.absolute()
	if err != nil {
		return nil, err
	}
	if cfg.StrictRoot && !fsutils.IsWithin(cfg.RootPath, cfg.StartPath) {
		return nil, fmt.Errorf("%w: start path %s is outside of root %s", ErrInvalidConfig, cfg.StartPath, cfg.RootPath)
	}
	b := &Browser{
		provider: provider,
		cfg:      cfg,
		current:  cfg.StartPath,
	}
	if err := b.EnsureCurrentDir(ctx); err != nil {
		return b, err
	}
	if _, err := provider.ListDir(ctx, cfg.RootPath); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return b, fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
		return nil, fmt.Errorf("%w: root %s is not a readable directory: %w", ErrInvalidConfig, cfg.RootPath, err)
	}
	return b, nil
}

// EnsureCurrentDir asks the provider to create the current directory.
func (b *Browser) EnsureCurrentDir(ctx context.Context) error {
	if err := b.provider.EnsureDir(ctx, b.current); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
		return fmt.Errorf("failed to create %s: %w", b.current, err)
	}
	return nil
}

func (b *Browser) Config() Config {
	return b.cfg
}

func (b *Browser) CurrentDir() string {
	return b.current
}

func (b *Browser) RootDir() string {
	return b.cfg.RootPath
}

func (b *Browser) isAtRoot() bool {
	return b.current == b.cfg.RootPath
}

// ListEntries returns the rows for the current directory: the parent entry
// unless at the root, then folders and, in FileMode, files, each sorted by name.
// A failed listing yields no rows besides the parent entry; the error is informational.
func (b *Browser) ListEntries(ctx context.Context) ([]Entry, error) {
	children, err := b.listChildren(ctx)
	if b.isAtRoot() {
		return children, err
	}
	entries := make([]Entry, 0, len(children)+1)
	entries = append(entries, newParentEntry(b.parentOrRoot()))
	entries = append(entries, children...)
	return entries, err
}

func (b *Browser) listChildren(ctx context.Context) ([]Entry, error) {
	items, err := b.provider.ListDir(ctx, b.current)
	if err != nil {
		logErr("ListEntries: failed to list", b.current+":", err)
		if errors.Is(err, fs.ErrPermission) {
			return []Entry{}, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, b.current, err)
		}
		return []Entry{}, fmt.Errorf("%w: %s: %w", ErrListingFailed, b.current, err)
	}

	dirs := make([]Entry, 0, len(items))
	var fileEntries []Entry
	for _, item := range items {
		if !b.provider.IsReadable(item.Path) {
			continue
		}
		if !b.cfg.ShowHidden && strings.HasPrefix(item.Name, ".") {
			continue
		}
		switch {
		case item.IsDir:
			dirs = append(dirs, newEntry(item.Name, item.Path, true))
		case b.cfg.Extension == "" || b.provider.ExtensionOf(item.Name) == b.cfg.Extension:
			fileEntries = append(fileEntries, newEntry(item.Name, item.Path, false))
		}
	}

	sortByName(dirs)
	if b.cfg.Mode == FileMode {
		sortByName(fileEntries)
		dirs = append(dirs, fileEntries...)
	}
	return dirs, nil
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

func parentOf(p string) (string, bool) {
	parent := filepath.Dir(p)
	if parent == p {
		return "", false
	}
	return parent, true
}

func (b *Browser) parentOrRoot() string {
	if parent, ok := parentOf(b.current); ok {
		return parent
	}
	return b.cfg.RootPath
}

// Enter moves into a folder entry, including the parent entry.
func (b *Browser) Enter(entry Entry) error {
	if !entry.IsFolder {
		return fmt.Errorf("%w: cannot enter file %s", ErrInvalidTransition, entry.Path)
	}
	if b.cfg.StrictRoot && !fsutils.IsWithin(b.cfg.RootPath, entry.Path) {
		return fmt.Errorf("%w: %s is outside of root %s", ErrInvalidTransition, entry.Path, b.cfg.RootPath)
	}
	b.current = filepath.Clean(entry.Path)
	return nil
}

// GoUp moves to the parent directory. It reports atRoot and stays put
// when the current directory is the root or has no parent.
func (b *Browser) GoUp() (atRoot bool) {
	if b.isAtRoot() {
		return true
	}
	parent, ok := parentOf(b.current)
	if !ok {
		return true
	}
	if b.cfg.StrictRoot && !fsutils.IsWithin(b.cfg.RootPath, parent) {
		return true
	}
	b.current = parent
	return false
}

// Select returns the path of a file entry in FileMode.
func (b *Browser) Select(entry Entry) (string, error) {
	if b.cfg.Mode != FileMode {
		return "", fmt.Errorf("%w: files are not selectable in %v mode", ErrInvalidTransition, b.cfg.Mode)
	}
	if entry.IsFolder {
		return "", fmt.Errorf("%w: %s is a folder", ErrInvalidTransition, entry.Path)
	}
	return entry.Path, nil
}

// SelectCurrentFolder returns the current directory with a trailing separator.
func (b *Browser) SelectCurrentFolder() (string, error) {
	if b.cfg.Mode != FolderMode {
		return "", fmt.Errorf("%w: folder selection requires folder mode", ErrInvalidTransition)
	}
	return fsutils.WithTrailingSeparator(b.current), nil
}

// Title is the current directory with DeviceRoot replaced by DeviceLabel.
func (b *Browser) Title() string {
	root, label := b.cfg.DeviceRoot, b.cfg.DeviceLabel
	if root == "" || label == "" || !fsutils.IsWithin(root, b.current) {
		return b.current
	}
	rest := strings.TrimPrefix(b.current, root)
	if rest != "" && !strings.HasPrefix(rest, string(filepath.Separator)) {
		rest = string(filepath.Separator) + rest
	}
	return label + rest
}
