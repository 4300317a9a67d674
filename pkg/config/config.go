package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Scraper modes
const (
	ScraperModeMock   = "mock"
	ScraperModeRemote = "remote"
)

type Config struct {
	// Scraper
	Scraper struct {
		Mode        string `toml:"mode" validate:"oneof=mock remote"`
		BaseURL     string `toml:"base_url" validate:"omitempty,url"` // External scraper service (remote mode)
		MockDelayMS int    `toml:"mock_delay_ms" validate:"gte=0"`    // Artificial delay for the mock invoker
		Timeout     int    `toml:"timeout" validate:"gt=0"`           // Timeout for scraping operations in seconds
	} `toml:"scraper"`

	// API
	API struct {
		Port   int    `toml:"port" validate:"gt=0,lte=65535"`
		Host   string `toml:"host"`
		APIKey string `toml:"api_key"` // Empty disables auth
	} `toml:"api"`

	// CLI
	CLI struct {
		APIBaseURL        string `toml:"api_base_url" validate:"omitempty,url"` // Used with --remote
		APIKey            string `toml:"api_key"`
		LogDir            string `toml:"log_dir"`
		ScrapeConcurrency int    `toml:"scrape_concurrency" validate:"gt=0"`
	} `toml:"cli"`

	// URLs seeded into every new session
	URLs struct {
		Seed []string `toml:"seed"`
	} `toml:"urls"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Scraper.Mode = ScraperModeMock
	cfg.Scraper.BaseURL = "http://localhost:3000"
	cfg.Scraper.MockDelayMS = 1000
	cfg.Scraper.Timeout = 30
	cfg.API.Port = 8080
	cfg.API.Host = "0.0.0.0"
	cfg.API.APIKey = ""
	cfg.CLI.APIBaseURL = "http://localhost:8080"
	cfg.CLI.LogDir = "tmp"
	cfg.CLI.ScrapeConcurrency = 4
	cfg.URLs.Seed = []string{
		"https://example.com",
		"https://example.org",
		"https://example.net",
	}
	return cfg
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "web-scraping-tool")
	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads configuration from ~/.config/web-scraping-tool/config.toml
// Creates the file with defaults if it doesn't exist
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from configPath, creating it with defaults if missing.
func LoadFrom(configPath string) (*Config, error) {
	configPath, err := expandHome(configPath)
	if err != nil {
		return nil, err
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveTo(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		applyEnv(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	mergeDefaults(&cfg)
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeDefaults fills any missing values from DefaultConfig.
// A present-but-empty seed list is kept so users can start with no URLs.
func mergeDefaults(cfg *Config) {
	defaultCfg := DefaultConfig()
	if cfg.Scraper.Mode == "" {
		cfg.Scraper.Mode = defaultCfg.Scraper.Mode
	}
	if cfg.Scraper.BaseURL == "" {
		cfg.Scraper.BaseURL = defaultCfg.Scraper.BaseURL
	}
	if cfg.Scraper.Timeout == 0 {
		cfg.Scraper.Timeout = defaultCfg.Scraper.Timeout
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = defaultCfg.API.Port
	}
	if cfg.API.Host == "" {
		cfg.API.Host = defaultCfg.API.Host
	}
	if cfg.CLI.APIBaseURL == "" {
		cfg.CLI.APIBaseURL = defaultCfg.CLI.APIBaseURL
	}
	if cfg.CLI.LogDir == "" {
		cfg.CLI.LogDir = defaultCfg.CLI.LogDir
	}
	if cfg.CLI.ScrapeConcurrency == 0 {
		cfg.CLI.ScrapeConcurrency = defaultCfg.CLI.ScrapeConcurrency
	}
	if cfg.URLs.Seed == nil {
		cfg.URLs.Seed = defaultCfg.URLs.Seed
	}
}

// applyEnv overrides values with environment variables if set (useful for Docker)
func applyEnv(cfg *Config) {
	if mode := os.Getenv("SCRAPER_MODE"); mode != "" {
		cfg.Scraper.Mode = mode
	}
	if baseURL := os.Getenv("SCRAPER_BASE_URL"); baseURL != "" {
		cfg.Scraper.BaseURL = baseURL
	}
	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		cfg.API.APIKey = apiKey
	}
	if apiBaseURL := os.Getenv("API_BASE_URL"); apiBaseURL != "" {
		cfg.CLI.APIBaseURL = apiBaseURL
	}
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the configuration to the config file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes the configuration to configPath
func SaveTo(configPath string, cfg *Config) error {
	configPath, err := expandHome(configPath)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to TOML
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandHome expands a leading ~ in path
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return strings.Replace(path, "~", homeDir, 1), nil
}
