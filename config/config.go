package config

import (
	"os"
	"path/filepath"
)

// DirEnv overrides the configuration directory when set.
const DirEnv = "RAINWATER_CONFIG_DIR"

const (
	appName     = "rainwater"
	initName    = "init.lua"
	logFileName = "rainwater.log"
)

// Dir returns the directory holding init.lua and the TUI log.
// DirEnv wins; otherwise the platform config directory is used
// (XDG_CONFIG_HOME or ~/.config on Unix, APPDATA on Windows).
func Dir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName)
}

// InitFile is the script session.Boot runs before applying Options.
func InitFile() string {
	return filepath.Join(Dir(), initName)
}

// LogFile is where the TUI logs, since it owns the terminal.
func LogFile() string {
	return filepath.Join(Dir(), logFileName)
}
