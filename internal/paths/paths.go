// Package paths resolves filesystem locations for ifccheck configuration.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigHome returns the base directory for user configuration files,
// honoring XDG_CONFIG_HOME with the platform default as fallback.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory where the ifccheck config file lives.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), "ifccheck")
}

// Exists reports whether the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
