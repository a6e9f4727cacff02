package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	CatalogURL  string `yaml:"catalog_url" json:"catalog_url"`     // Base URL of the catalog server
	PageSize    int    `yaml:"page_size" json:"page_size"`         // Default items per page (10, 50 or 100)
	SessionTTL  string `yaml:"session_ttl" json:"session_ttl"`     // Session lifetime, Go duration string
	DataDir     string `yaml:"data_dir" json:"data_dir"`           // Directory for the local state database
	LogLevel    string `yaml:"log_level" json:"log_level"`         // Log level: DEBUG, INFO, WARN, ERROR
	LogFile     string `yaml:"log_file" json:"log_file"`           // Path to log file
	LogConsole  bool   `yaml:"log_console" json:"log_console"`     // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	dataDir := ""
	if home != "" {
		logPath = filepath.Join(home, ".lotview", "logs", "lotview.log")
		dataDir = filepath.Join(home, ".lotview")
	}

	return &Config{
		CatalogURL: getEnv("LOTVIEW_CATALOG_URL", "http://localhost:8080"),
		PageSize:   10,
		SessionTTL: "1h",
		DataDir:    getEnv("LOTVIEW_DATA_DIR", dataDir),
		LogLevel:   getEnv("LOTVIEW_LOG_LEVEL", "INFO"),
		LogFile:    getEnv("LOTVIEW_LOG_FILE", logPath),
		LogConsole: getEnv("LOTVIEW_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// TTL parses the configured session lifetime, falling back to one hour
func (c *Config) TTL() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// Load loads config from ~/.lotview/config.yaml
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".lotview", "config.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Return defaults if no config
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.lotview/config.yaml
func (c *Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".lotview")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
