// Package config loads the launcher configuration from
// ~/.config/flare/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the launcher configuration
type Config struct {
	General  General  `toml:"general"`
	Features Features `toml:"features"`
	Theme    Theme    `toml:"theme"`

	// ExtraEntryDirs are scanned after the standard application
	// directories, in the order given (lowest priority last).
	ExtraEntryDirs []string `toml:"extra_entry_dirs"`
}

// General holds presentation-independent behavior settings
type General struct {
	Prompt          string `toml:"prompt"`           // Search box prompt
	HighlightSymbol string `toml:"highlight_symbol"` // Marker for the selected row
	FavoriteKey     string `toml:"favorite_key"`     // Key that toggles favorite
}

// Features holds the behavior flags. Each flag must work independently;
// all disabled yields a plain alphabetical application list.
type Features struct {
	DirsFirst          bool `toml:"dirs_first"`           // Directories before files in listings
	ShowDuplicates     bool `toml:"show_duplicates"`      // Keep same-identity entries from every directory
	RecentFirst        bool `toml:"recent_first"`         // Sort applications by usage count first
	EnableFileExplorer bool `toml:"enable_file_explorer"` // Path queries browse the filesystem
	EnableLaunchArgs   bool `toml:"enable_launch_args"`   // Text after the matched app becomes arguments
	EnableAutoComplete bool `toml:"enable_auto_complete"` // Tab completion in file mode
}

// Theme holds the color palette as hex strings
type Theme struct {
	Primary  string `toml:"primary"`
	Border   string `toml:"border"`
	Selected string `toml:"selected"`
	Muted    string `toml:"muted"`
	Error    string `toml:"error"`
}

// LoadResult carries the effective config plus a warning when the
// persisted file could not be used. A warning is never fatal.
type LoadResult struct {
	Config  *Config
	Warning string
}

// configFileName is the name of the config file
const configFileName = "config.toml"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		General: General{
			Prompt:          "> ",
			HighlightSymbol: ">> ",
			FavoriteKey:     "alt+f",
		},
		Features: Features{
			DirsFirst:          true,
			ShowDuplicates:     false,
			RecentFirst:        true,
			EnableFileExplorer: true,
			EnableLaunchArgs:   true,
			EnableAutoComplete: true,
		},
		Theme: Theme{
			Primary:  "#cba6f7",
			Border:   "#585b70",
			Selected: "#cdd6f4",
			Muted:    "#6c7086",
			Error:    "#f38ba8",
		},
	}
}

// Dir returns the directory containing flare's config files
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "flare"), nil
}

// Path returns the path to the config file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load loads the configuration. A missing file yields defaults (and
// writes them back so the user has something to edit); an unreadable or
// invalid file yields defaults plus a warning.
func Load() LoadResult {
	path, err := Path()
	if err != nil {
		return LoadResult{Config: Default(), Warning: err.Error()}
	}
	return LoadFile(path)
}

// LoadFile loads the configuration from a specific path
func LoadFile(path string) LoadResult {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: persist the defaults, best effort
			_ = writeDefault(path, cfg)
			return LoadResult{Config: cfg}
		}
		return LoadResult{
			Config:  cfg,
			Warning: fmt.Sprintf("failed to read config (%v), using defaults", err),
		}
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return LoadResult{
			Config:  Default(),
			Warning: fmt.Sprintf("invalid config (%v), using defaults", err),
		}
	}

	return LoadResult{Config: cfg}
}

// writeDefault serializes cfg to path, creating the parent directory
func writeDefault(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
