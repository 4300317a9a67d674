package cli

import (
	"fmt"
	"strconv"
	"strings"

	"web-scraping-tool/pkg/config"

	"github.com/pelletier/go-toml/v2"
)

// ShowConfig displays the current configuration
func (a *App) ShowConfig() error {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	fmt.Fprintln(a.out, string(data))
	return nil
}

// SetConfig sets a configuration value
// Format: section.key=value (e.g., "scraper.mode=remote")
func (a *App) SetConfig(setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	keyPath := strings.Split(parts[0], ".")
	value := parts[1]

	if len(keyPath) != 2 {
		return fmt.Errorf("invalid key format: expected 'section.key'")
	}

	section := keyPath[0]
	key := keyPath[1]

	switch section {
	case "scraper":
		switch key {
		case "mode":
			a.cfg.Scraper.Mode = value
		case "base_url":
			a.cfg.Scraper.BaseURL = value
		case "mock_delay_ms":
			n, err := parseInt(key, value)
			if err != nil {
				return err
			}
			a.cfg.Scraper.MockDelayMS = n
		case "timeout":
			n, err := parseInt(key, value)
			if err != nil {
				return err
			}
			a.cfg.Scraper.Timeout = n
		default:
			return fmt.Errorf("unknown scraper key: %s", key)
		}
	case "api":
		switch key {
		case "host":
			a.cfg.API.Host = value
		case "port":
			n, err := parseInt(key, value)
			if err != nil {
				return err
			}
			a.cfg.API.Port = n
		case "api_key":
			a.cfg.API.APIKey = value
		default:
			return fmt.Errorf("unknown api key: %s", key)
		}
	case "cli":
		switch key {
		case "api_base_url":
			a.cfg.CLI.APIBaseURL = value
		case "api_key":
			a.cfg.CLI.APIKey = value
		case "log_dir":
			a.cfg.CLI.LogDir = value
		case "scrape_concurrency":
			n, err := parseInt(key, value)
			if err != nil {
				return err
			}
			a.cfg.CLI.ScrapeConcurrency = n
		default:
			return fmt.Errorf("unknown cli key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s", section)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if a.configPath != "" {
		return config.SaveTo(a.configPath, a.cfg)
	}
	return config.Save(a.cfg)
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %s", key, value)
	}
	return n, nil
}
