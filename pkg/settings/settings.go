package settings

import (
	"os"
	"path/filepath"
)

const (
	UserDirName = "~/.filechooser"

	// ConfigName is looked up by viper with any supported extension.
	ConfigName = "config"
)

var osUserHomeDir = os.UserHomeDir

// UserDir returns the per-user directory holding the optional config file.
// On error the unexpanded UserDirName is returned along with the error.
func UserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDirName, err
	}
	return filepath.Join(userHomeDir, UserDirName[2:]), nil
}
