package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datatug/filechooser/pkg/chooser"
	"github.com/datatug/filechooser/pkg/chooser/chooserui"
	"github.com/datatug/filechooser/pkg/files"
	"github.com/datatug/filechooser/pkg/files/aferofile"
	"github.com/datatug/filechooser/pkg/files/osfile"
)

type chooserCall struct {
	cfg      chooser.Config
	provider files.Provider
	options  chooserui.RunOptions
	called   bool
}

func stubChooser(t *testing.T, result chooser.Result, err error) *chooserCall {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	oldRunChooser, oldNewApp := runChooser, newApp
	t.Cleanup(func() {
		runChooser, newApp = oldRunChooser, oldNewApp
	})
	call := &chooserCall{}
	newApp = func() chooserui.App {
		return chooserui.NewApp(nil)
	}
	runChooser = func(_ context.Context, _ chooserui.App, provider files.Provider, cfg chooser.Config, options ...chooserui.RunOption) (chooser.Result, error) {
		call.called = true
		call.cfg = cfg
		call.provider = provider
		for _, option := range options {
			option(&call.options)
		}
		return result, err
	}
	return call
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("prints_selected_path", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "/music/a.mp3"}, nil)
		out, err := execute(t, "--root", "/music", "-e", ".mp3", "--show-hidden")
		require.NoError(t, err)
		assert.Equal(t, "/music/a.mp3\n", out)
		require.True(t, call.called)
		assert.Equal(t, "/music", call.cfg.RootPath)
		assert.Equal(t, "/music", call.cfg.StartPath)
		assert.Equal(t, "mp3", call.cfg.Extension)
		assert.True(t, call.cfg.ShowHidden)
		assert.Equal(t, chooser.FileMode, call.cfg.Mode)
	})

	t.Run("folder_mode_with_label", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "/sd/photos/"}, nil)
		out, err := execute(t, "-r", "/sd", "-s", "/sd/photos", "-m", "folder", "--device-label", "SD card", "--strict-root")
		require.NoError(t, err)
		assert.Equal(t, "/sd/photos/\n", out)
		assert.Equal(t, chooser.FolderMode, call.cfg.Mode)
		assert.Equal(t, "/sd/photos", call.cfg.StartPath)
		assert.Equal(t, "/sd", call.cfg.DeviceRoot)
		assert.Equal(t, "SD card", call.cfg.DeviceLabel)
		assert.True(t, call.cfg.StrictRoot)
	})

	t.Run("default_root_is_home", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		_, err := execute(t)
		require.NoError(t, err)
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Clean(home), call.cfg.RootPath)
	})

	t.Run("cancelled", func(t *testing.T) {
		stubChooser(t, chooser.Result{Cancelled: true}, nil)
		out, err := execute(t, "--root", "/music")
		assert.ErrorIs(t, err, errCancelled)
		assert.Empty(t, out)
	})

	t.Run("chooser_error", func(t *testing.T) {
		stubChooser(t, chooser.Result{}, chooser.ErrInvalidConfig)
		_, err := execute(t, "--root", "/missing")
		assert.ErrorIs(t, err, chooser.ErrInvalidConfig)
	})

	t.Run("invalid_mode", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{}, nil)
		_, err := execute(t, "--mode", "both")
		assert.ErrorIs(t, err, chooser.ErrInvalidConfig)
		assert.False(t, call.called)
	})

	t.Run("env_overrides_default", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		t.Setenv("FILECHOOSER_ROOT", "/from-env")
		t.Setenv("FILECHOOSER_SHOW_HIDDEN", "true")
		_, err := execute(t)
		require.NoError(t, err)
		assert.Equal(t, "/from-env", call.cfg.RootPath)
		assert.True(t, call.cfg.ShowHidden)
	})

	t.Run("flag_overrides_env", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		t.Setenv("FILECHOOSER_ROOT", "/from-env")
		_, err := execute(t, "--root", "/from-flag")
		require.NoError(t, err)
		assert.Equal(t, "/from-flag", call.cfg.RootPath)
	})

	t.Run("unexpected_args", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{}, nil)
		_, err := execute(t, "extra")
		assert.NoError(t, err)
		assert.False(t, call.called)
	})
}

func TestRootCommand_Theme(t *testing.T) {
	t.Run("default_dark", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		_, err := execute(t, "--root", "/r")
		require.NoError(t, err)
		assert.Equal(t, chooserui.DarkTheme, call.options.Theme)
	})

	t.Run("light", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		_, err := execute(t, "--root", "/r", "--theme", "light")
		require.NoError(t, err)
		assert.Equal(t, chooserui.LightTheme, call.options.Theme)
	})

	t.Run("env", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		t.Setenv("FILECHOOSER_THEME", "light")
		_, err := execute(t, "--root", "/r")
		require.NoError(t, err)
		assert.Equal(t, chooserui.LightTheme, call.options.Theme)
	})

	t.Run("unknown", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{}, nil)
		_, err := execute(t, "--root", "/r", "--theme", "sepia")
		assert.Error(t, err)
		assert.False(t, call.called)
	})
}

func TestRootCommand_Jail(t *testing.T) {
	t.Run("off_by_default", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		_, err := execute(t, "--root", "/r")
		require.NoError(t, err)
		assert.IsType(t, &osfile.Store{}, call.provider)
	})

	t.Run("file", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: filepath.Join("/", "docs", "a.txt")}, nil)
		root := t.TempDir()
		out, err := execute(t, "--root", root, "--start", filepath.Join(root, "docs"), "--jail")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "docs", "a.txt")+"\n", out)

		assert.IsType(t, &aferofile.Store{}, call.provider)
		assert.Equal(t, string(filepath.Separator), call.cfg.RootPath)
		assert.Equal(t, filepath.Join("/", "docs"), call.cfg.StartPath)
		assert.True(t, call.cfg.StrictRoot)
		assert.Equal(t, root, call.cfg.DeviceLabel)
	})

	t.Run("folder_keeps_trailing_separator", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "/docs/"}, nil)
		root := t.TempDir()
		out, err := execute(t, "--root", root, "-m", "folder", "--device-label", "Card", "--jail")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "docs")+"/\n", out)
		assert.Equal(t, "Card", call.cfg.DeviceLabel)
		assert.Equal(t, chooser.FolderMode, call.cfg.Mode)
	})

	t.Run("start_outside", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{}, nil)
		_, err := execute(t, "--root", t.TempDir(), "--start", "/", "--jail")
		assert.ErrorIs(t, err, chooser.ErrInvalidConfig)
		assert.False(t, call.called)
	})
}

func Test_jail_listsOnlyBelowRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))

	j, cfg, err := newJail(chooser.NewConfig(root))
	require.NoError(t, err)
	b, err := chooser.Initialize(context.Background(), j.store, cfg)
	require.NoError(t, err)

	entries, err := b.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "docs", entries[0].Name)
	assert.Equal(t, root, b.Title())
	assert.True(t, b.GoUp())
	assert.Equal(t, filepath.Join(root, "docs"), j.realPath(entries[0].Path))
}

func TestRootCommand_ConfigFile(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		configFile := filepath.Join(t.TempDir(), "chooser.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("root: /cfg\nmode: folder\n"), 0600))

		_, err := execute(t, "--config", configFile)
		require.NoError(t, err)
		assert.Equal(t, "/cfg", call.cfg.RootPath)
		assert.Equal(t, chooser.FolderMode, call.cfg.Mode)
	})

	t.Run("user_dir", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		userDir := filepath.Join(os.Getenv("HOME"), ".filechooser")
		require.NoError(t, os.MkdirAll(userDir, 0700))
		require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("extension: txt\n"), 0600))

		_, err := execute(t, "--root", "/docs")
		require.NoError(t, err)
		assert.Equal(t, "txt", call.cfg.Extension)
	})

	t.Run("missing_explicit", func(t *testing.T) {
		call := stubChooser(t, chooser.Result{Path: "x"}, nil)
		_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
		assert.False(t, call.called)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, FileChooserVersion+"\n", out)
}

func TestMain_ExitsOnCancel(t *testing.T) {
	stubChooser(t, chooser.Result{Cancelled: true}, nil)
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	oldArgs, oldOsExit := os.Args, osExit
	defer func() {
		os.Args, osExit = oldArgs, oldOsExit
	}()
	os.Args = []string{"filechooser", "--root", "/music"}
	exitCode := -1
	osExit = func(code int) {
		exitCode = code
	}

	main()
	assert.Equal(t, 1, exitCode)
}

func Test_loadEnvFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadEnvFile(filepath.Join(dir, ".env")))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FILECHOOSER_TEST_MODE=folder\n"), 0600))
	t.Cleanup(func() {
		_ = os.Unsetenv("FILECHOOSER_TEST_MODE")
	})
	assert.NoError(t, loadEnvFile(envFile))
	assert.Equal(t, "folder", os.Getenv("FILECHOOSER_TEST_MODE"))

	assert.Error(t, loadEnvFile(dir))
}

func Test_redirectLog(t *testing.T) {
	previous := log.Writer()

	t.Run("discard", func(t *testing.T) {
		restore, err := redirectLog("")
		require.NoError(t, err)
		assert.Equal(t, io.Discard, log.Writer())
		restore()
		assert.Equal(t, previous, log.Writer())
	})

	t.Run("file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "chooser.log")
		restore, err := redirectLog(logFile)
		require.NoError(t, err)
		log.Println("listing failed")
		restore()

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "listing failed")
	})

	t.Run("bad_path", func(t *testing.T) {
		_, err := redirectLog(filepath.Join(t.TempDir(), "missing", "chooser.log"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
