package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datatug/filechooser/pkg/chooser"
	"github.com/datatug/filechooser/pkg/files/aferofile"
	"github.com/datatug/filechooser/pkg/fsutils"
)

// jail serves the chooser from an afero base path rooted at the chooser root,
// so nothing above the root can be listed. Chosen paths are mapped back to
// the real tree before they are printed.
type jail struct {
	root  string
	store *aferofile.Store
}

func newJail(cfg chooser.Config) (*jail, chooser.Config, error) {
	sep := string(filepath.Separator)
	root, err := filepath.Abs(cfg.RootPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("%w: failed to resolve %s: %w", chooser.ErrInvalidConfig, cfg.RootPath, err)
	}
	start, err := filepath.Abs(cfg.StartPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("%w: failed to resolve %s: %w", chooser.ErrInvalidConfig, cfg.StartPath, err)
	}
	if !fsutils.IsWithin(root, start) {
		return nil, cfg, fmt.Errorf("%w: start path %s is outside of jail %s", chooser.ErrInvalidConfig, start, root)
	}
	rel, _ := filepath.Rel(root, start)

	label := cfg.DeviceLabel
	if label == "" {
		label = root
	}
	jailed := chooser.NewConfig(sep,
		chooser.WithStartPath(filepath.Join(sep, rel)),
		chooser.WithMode(cfg.Mode),
		chooser.WithExtension(cfg.Extension),
		chooser.WithShowHidden(cfg.ShowHidden),
		chooser.WithStrictRoot(true),
		chooser.WithDeviceLabel(sep, label),
	)
	return &jail{root: root, store: aferofile.NewBasePathStore(root)}, jailed, nil
}

// realPath maps a path inside the jail to the OS filesystem.
func (j *jail) realPath(p string) string {
	osPath := filepath.Join(j.root, p)
	if strings.HasSuffix(p, string(filepath.Separator)) {
		return fsutils.WithTrailingSeparator(osPath)
	}
	return osPath
}
