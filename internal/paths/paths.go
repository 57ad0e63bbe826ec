// Package paths resolves the sharedkit configuration and data directories.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user directories.
const appName = "sharedkit"

// Project-local directory names, relative to the working directory.
const (
	DefaultConfigDirName = ".sharedkit"
	DefaultDataDirName   = ".sharedkit-db"
)

// ConfigFileName is the config file inside the config directory.
const ConfigFileName = "config.yaml"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SHAREDKIT_CONFIG_DIR"
	EnvDataDir   = "SHAREDKIT_DATA_DIR"
)

// platformDir holds platform lookups that tests override.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the per-user configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/sharedkit (fallback ~/.config/sharedkit)
// macOS:   ~/Library/Application Support/sharedkit
// Windows: %APPDATA%/sharedkit
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the per-user data directory.
//
// Linux:   $XDG_DATA_HOME/sharedkit (fallback ~/.local/share/sharedkit)
// macOS and Windows: same as DefaultConfigDir.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", ".local", "share")
}

// userDir follows the XDG convention on Linux and os.UserConfigDir elsewhere.
func userDir(xdgEnv string, homeFallback ...string) (string, error) {
	if platformDir.goos != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, homeFallback...)
	return filepath.Join(append(parts, appName)...), nil
}

// ResolveConfigDir returns the configuration directory. Precedence:
// flag > SHAREDKIT_CONFIG_DIR > $(CWD)/.sharedkit when it exists >
// DefaultConfigDir(). Overrides are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := override(flag, os.Getenv(EnvConfigDir)); ok || err != nil {
		return dir, err
	}

	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	local := filepath.Join(cwd, DefaultConfigDirName)
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		return local, nil
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory. Precedence:
// flag > configValue (data_dir in config.yaml) > SHAREDKIT_DATA_DIR >
// $(CWD)/.sharedkit-db. Overrides are made absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir, ok, err := override(flag, configValue, os.Getenv(EnvDataDir)); ok || err != nil {
		return dir, err
	}

	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ConfigFile returns the path of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// override returns the first non-empty candidate as an absolute path.
func override(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		abs, err := filepath.Abs(c)
		return abs, true, err
	}
	return "", false, nil
}
