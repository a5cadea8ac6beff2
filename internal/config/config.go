package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tuicomplete/internal/eventbus"
)

const (
	DefaultNumOfResults = 10
	DefaultGitHubURL    = "https://api.github.com/search/users"
	DefaultCacheSize    = 64
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Widget  WidgetSettings `toml:"widget"`
	GitHub  GitHubSettings `toml:"github"`
	UI      UISettings     `toml:"ui"`
}

// WidgetSettings controls autocomplete behaviour
type WidgetSettings struct {
	NumOfResults  int    `toml:"num_of_results"`
	Strict        bool   `toml:"strict"`    // drop results of superseded queries
	DataFile      string `toml:"data_file"` // optional TOML dataset replacing the built-in states
	DisableRemote bool   `toml:"disable_remote"`
}

// GitHubSettings configures the remote user search
type GitHubSettings struct {
	BaseURL   string `toml:"base_url"`
	CacheSize int    `toml:"cache_size"` // 0 disables caching
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpFooter bool `toml:"show_help_footer"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "tuicomplete", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus so loads and saves are published
func WithBus(cs ConfigService, bus eventbus.EventBus) ConfigService {
	if c, ok := cs.(*configService); ok {
		c.bus = bus
	}
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Fields absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) normalize() {
	if c.Widget.NumOfResults <= 0 {
		c.Widget.NumOfResults = DefaultNumOfResults
	}
	if c.GitHub.BaseURL == "" {
		c.GitHub.BaseURL = DefaultGitHubURL
	}
	if c.GitHub.CacheSize < 0 {
		c.GitHub.CacheSize = 0
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Widget: WidgetSettings{
			NumOfResults: DefaultNumOfResults,
			Strict:       true,
		},
		GitHub: GitHubSettings{
			BaseURL:   DefaultGitHubURL,
			CacheSize: DefaultCacheSize,
		},
		UI: UISettings{
			ShowHelpFooter: true,
		},
	}
}
