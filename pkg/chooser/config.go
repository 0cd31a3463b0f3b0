package chooser

import (
	"fmt"
	"path/filepath"
	"strings"
)

var filepathAbs = filepath.Abs

// Config is the launch configuration of a chooser session.
// Build it with NewConfig and treat it as read-only afterwards.
type Config struct {
	RootPath   string
	StartPath  string
	Mode       Mode
	Extension  string
	ShowHidden bool

	// DeviceRoot is shown as DeviceLabel in titles.
	DeviceRoot  string
	DeviceLabel string

	// StrictRoot confines navigation to the RootPath subtree.
	// Without it the root is only compared by exact path.
	StrictRoot bool
}

type Option func(c *Config)

func WithStartPath(p string) Option {
	return func(c *Config) {
		c.StartPath = p
	}
}

func WithMode(m Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// WithExtension keeps only files with the given extension, e.g. "txt".
// A leading dot is ignored. Matching is case-sensitive.
func WithExtension(ext string) Option {
	return func(c *Config) {
		c.Extension = ext
	}
}

func WithShowHidden(show bool) Option {
	return func(c *Config) {
		c.ShowHidden = show
	}
}

func WithDeviceLabel(root, label string) Option {
	return func(c *Config) {
		c.DeviceRoot = root
		c.DeviceLabel = label
	}
}

func WithStrictRoot(strict bool) Option {
	return func(c *Config) {
		c.StrictRoot = strict
	}
}

func NewConfig(rootPath string, options ...Option) Config {
	c := Config{RootPath: rootPath}
	for _, option := range options {
		option(&c)
	}
	return c.normalized()
}

func (c Config) normalized() Config {
	if c.RootPath != "" {
		c.RootPath = filepath.Clean(c.RootPath)
	}
	if c.StartPath == "" {
		c.StartPath = c.RootPath
	} else {
		c.StartPath = filepath.Clean(c.StartPath)
	}
	if c.DeviceRoot != "" {
		c.DeviceRoot = filepath.Clean(c.DeviceRoot)
	}
	c.Extension = strings.TrimPrefix(c.Extension, ".")
	return c
}

// absolute resolves relative paths against the working directory.
func (c Config) absolute() (Config, error) {
	for _, p := range []*string{&c.RootPath, &c.StartPath, &c.DeviceRoot} {
		if *p == "" {
			continue
		}
		abs, err := filepathAbs(*p)
		if err != nil {
			return c, fmt.Errorf("%w: failed to resolve %s: %w", ErrInvalidConfig, *p, err)
		}
		*p = abs
	}
	return c, nil
}
