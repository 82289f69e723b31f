package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/formgate/internal/core/config"
	"github.com/hay-kot/formgate/internal/core/form"
	"github.com/hay-kot/formgate/internal/core/i18n"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Locale     string

	// Config is read in the Before hook and available to all commands. It is
	// not validated; commands that need a usable form call Definition.
	Config *config.Config
}

// Definition validates the loaded config and returns its form definition.
func (f *Flags) Definition() (*form.Definition, error) {
	if f.Config == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	if err := f.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return f.Config.Definition()
}

// Catalog returns the message catalog for the --locale flag, falling back to
// the configured locale.
func (f *Flags) Catalog() (*i18n.Catalog, error) {
	lang := f.Locale
	if lang == "" && f.Config != nil {
		lang = f.Config.Locale
	}
	if lang == "" {
		lang = i18n.LangEN
	}
	return i18n.New(lang)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "formgate", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/formgate/formgate.log
// On Linux: $XDG_STATE_HOME/formgate/formgate.log (defaults to ~/.local/state/formgate/formgate.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "formgate", "formgate.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "formgate", "formgate.log")
	}

	return filepath.Join(home, ".local", "state", "formgate", "formgate.log")
}
