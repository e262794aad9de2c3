package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds all the path configurations for emopick.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/emopick)
	ConfigDir string

	// DataDir is the directory for data files (~/.local/share/emopick)
	DataDir string
}

// DefaultPaths returns the default paths based on XDG Base Directory spec.
// On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}

		return &Paths{
			ConfigDir: filepath.Join(appData, "emopick"),
			DataDir:   filepath.Join(localAppData, "emopick"),
		}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	return &Paths{
		ConfigDir: filepath.Join(configHome, "emopick"),
		DataDir:   filepath.Join(dataHome, "emopick"),
	}
}

// ConfigFile returns the path to the main configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// RecentsFile returns the path to the recent-picks database.
func (p *Paths) RecentsFile() string {
	return filepath.Join(p.DataDir, "recents.db")
}

// homeDir returns the user's home directory, falling back to the
// current directory when it cannot be determined.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
