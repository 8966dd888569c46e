package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the autolink configuration directory.
//
// Resolution:
//   - $AUTOLINK_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/autolink if set (respects XDG on any platform)
//   - %AppData%/autolink on Windows
//   - ~/.config/autolink on macOS and Linux
func Dir() string {
	if dir := os.Getenv("AUTOLINK_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "autolink")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "autolink")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "autolink")
}

// UserConfigPath returns the user-level config file, or "" when no config
// directory can be determined.
func UserConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// ProjectConfigPath is the per-repository config file, relative to the
// working directory.
const ProjectConfigPath = ".autolink.yaml"
