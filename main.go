package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/datatug/filechooser/pkg/chooser"
	"github.com/datatug/filechooser/pkg/chooser/chooserui"
	"github.com/datatug/filechooser/pkg/files"
	"github.com/datatug/filechooser/pkg/files/osfile"
	"github.com/datatug/filechooser/pkg/fsutils"
	"github.com/datatug/filechooser/pkg/settings"
)

const (
	FileChooserVersion = "0.1.0"

	envPrefix = "FILECHOOSER"
)

const (
	flagRoot        = "root"
	flagStart       = "start"
	flagMode        = "mode"
	flagExtension   = "extension"
	flagShowHidden  = "show-hidden"
	flagStrictRoot  = "strict-root"
	flagDeviceLabel = "device-label"
	flagJail        = "jail"
	flagTheme       = "theme"
	//
	flagConfig  = "config"
	flagLogFile = "log-file"
)

// errCancelled makes the process exit non-zero without printing anything.
var errCancelled = errors.New("cancelled")

var osExit = os.Exit

var runChooser = chooserui.Run

var newApp = func() chooserui.App {
	return chooserui.NewApp(tview.NewApplication())
}

var newProvider = func() files.Provider {
	return osfile.NewStore()
}

func initChooserFlags(flag *pflag.FlagSet) {
	flag.StringP(flagRoot, "r", "~", "top-most directory the user may browse")
	flag.StringP(flagStart, "s", "", "directory shown first (defaults to the root)")
	flag.StringP(flagMode, "m", chooser.FileMode.String(), "what is being chosen.  One of: file,folder")
	flag.StringP(flagExtension, "e", "", "only show files with this extension")
	flag.Bool(flagShowHidden, false, "show entries whose names start with a dot")
	flag.Bool(flagStrictRoot, false, "never navigate outside of the root")
	flag.String(flagDeviceLabel, "", "label shown instead of the root path in the title")
	flag.Bool(flagJail, false, "serve the root through a base-path filesystem so nothing above it can be listed")
	flag.String(flagTheme, chooserui.DarkTheme.String(), "color theme.  One of: dark,light")
	flag.String(flagConfig, "", "path to a config file (defaults to config.yaml in ~/.filechooser)")
	flag.String(flagLogFile, "", "path to the log output.  Logs are discarded when empty.")
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	if err = readConfigFile(v); err != nil {
		return v, err
	}
	return v, nil
}

func readConfigFile(v *viper.Viper) error {
	if configFile := v.GetString(flagConfig); configFile != "" {
		v.SetConfigFile(fsutils.ExpandHome(configFile))
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
		return nil
	}
	userDir, err := settings.UserDir()
	if err != nil {
		log.Println("failed to get user dir:", err)
		return nil
	}
	v.SetConfigName(settings.ConfigName)
	v.AddConfigPath(userDir)
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

func configFromViper(v *viper.Viper) (chooser.Config, error) {
	root := fsutils.ExpandHome(v.GetString(flagRoot))
	if root == "" {
		return chooser.Config{}, fmt.Errorf("%w: --%s is required", chooser.ErrInvalidConfig, flagRoot)
	}
	mode, err := chooser.ParseMode(v.GetString(flagMode))
	if err != nil {
		return chooser.Config{}, err
	}
	options := []chooser.Option{
		chooser.WithMode(mode),
		chooser.WithExtension(v.GetString(flagExtension)),
		chooser.WithShowHidden(v.GetBool(flagShowHidden)),
		chooser.WithStrictRoot(v.GetBool(flagStrictRoot)),
	}
	if start := v.GetString(flagStart); start != "" {
		options = append(options, chooser.WithStartPath(fsutils.ExpandHome(start)))
	}
	if label := v.GetString(flagDeviceLabel); label != "" {
		options = append(options, chooser.WithDeviceLabel(root, label))
	}
	return chooser.NewConfig(root, options...), nil
}

// redirectLog keeps log output away from the terminal while the UI owns it.
func redirectLog(logFile string) (restore func(), err error) {
	previous := log.Writer()
	restore = func() {
		log.SetOutput(previous)
	}
	if logFile == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}
	f, err := os.OpenFile(fsutils.ExpandHome(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return func() {}, fmt.Errorf("error opening log file %s: %w", logFile, err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(previous)
		_ = f.Close()
	}, nil
}

// loadEnvFile loads path into the environment unless it does not exist.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:                   `filechooser [flags]`,
		DisableFlagsInUseLine: true,
		Short:                 "filechooser lets the user pick a file or folder in the terminal and prints its path.",
		Example: `filechooser --root ~/Music --extension mp3
filechooser --mode folder --root /mnt/sdcard --device-label "SD card"`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Usage()
			}
			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}
			cfg, err := configFromViper(v)
			if err != nil {
				return err
			}
			theme, err := chooserui.ParseTheme(v.GetString(flagTheme))
			if err != nil {
				return err
			}
			provider := newProvider()
			resultPath := func(p string) string { return p }
			if v.GetBool(flagJail) {
				j, jailed, err := newJail(cfg)
				if err != nil {
					return err
				}
				cfg, provider, resultPath = jailed, j.store, j.realPath
			}
			restoreLog, err := redirectLog(v.GetString(flagLogFile))
			if err != nil {
				return err
			}
			defer restoreLog()

			result, err := runChooser(cmd.Context(), newApp(), provider, cfg, chooserui.WithTheme(theme))
			if err != nil {
				return err
			}
			if result.Cancelled {
				return errCancelled
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), resultPath(result.Path))
			return nil
		},
	}
	initChooserFlags(rootCommand.Flags())

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), FileChooserVersion)
			return nil
		},
	}

	rootCommand.AddCommand(versionCommand)
	return rootCommand
}

func main() {
	if err := loadEnvFile(".env"); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "filechooser: "+err.Error())
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errCancelled) {
			_, _ = fmt.Fprintln(os.Stderr, "filechooser: "+err.Error())
			_, _ = fmt.Fprintln(os.Stderr, "Try filechooser --help for more information.")
		}
		osExit(1)
	}
}
