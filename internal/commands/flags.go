package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Mr-Dark-debug/limpio/internal/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// cfg returns the loaded config, or the defaults when no Before hook ran.
func (f *Flags) cfg() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "limpio", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/limpio/limpio.log
// On Linux: $XDG_STATE_HOME/limpio/limpio.log (defaults to ~/.local/state/limpio/limpio.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "limpio", "limpio.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "limpio", "limpio.log")
	}

	return filepath.Join(home, ".local", "state", "limpio", "limpio.log")
}
