package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the attractions gateway
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Backend  BackendConfig  `yaml:"backend"`
	Channels ChannelsConfig `yaml:"channels"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// BackendConfig defines the attractions backend connection settings
type BackendConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// GetTimeout returns the timeout as a time.Duration
func (b *BackendConfig) GetTimeout() time.Duration {
	if b.Timeout == "" {
		return 15 * time.Second
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// ChannelsConfig defines channel configurations
type ChannelsConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Discord  DiscordConfig  `yaml:"discord"`
	WebChat  WebChatConfig  `yaml:"webchat"`
}

// TelegramConfig defines Telegram channel settings
type TelegramConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
}

// DiscordConfig defines Discord channel settings
type DiscordConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
}

// WebChatConfig defines WebChat channel settings
type WebChatConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// LoggingConfig defines logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration used when no config file
// is present. Only the port and backend URL are required to run, both
// of which can come from the environment.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Port: 3000},
		Backend: BackendConfig{URL: "http://localhost:8080", Timeout: "15s"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load loads configuration from a YAML file with environment variable
// overrides. An empty path yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		fmt.Sscanf(port, "%d", &c.Server.Port)
	}
	if url := os.Getenv("BACKEND_URL"); url != "" {
		c.Backend.URL = url
	}
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		c.Channels.Telegram.Token = token
	}
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		c.Channels.Discord.Token = token
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("backend URL is required")
	}
	if c.Channels.Telegram.Enabled && c.Channels.Telegram.Token == "" {
		return fmt.Errorf("telegram channel enabled without a token")
	}
	if c.Channels.Discord.Enabled && c.Channels.Discord.Token == "" {
		return fmt.Errorf("discord channel enabled without a token")
	}
	if c.Channels.WebChat.Enabled && c.Channels.WebChat.Port <= 0 {
		return fmt.Errorf("webchat channel enabled without a port")
	}
	return nil
}
