// Package config provides the global configuration directory for scribe.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the scribe configuration directory, home of the global
// env file holding the API credential.
//
// Resolution:
//   - $SCRIBE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/scribe if set (respects XDG on any platform)
//   - %AppData%/scribe on Windows
//   - ~/.config/scribe on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("SCRIBE_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scribe")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "scribe")
		}
	}

	// macOS and Linux: ~/.config/scribe
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "scribe")
}
