package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Ampache server base URL, e.g. https://music.example.com
	Server string

	// Ampache account credentials
	Username string
	Password string

	// Path to the SQLite response cache ("" disables caching)
	CacheDB string

	// How long cached listings stay fresh (in seconds)
	CacheTTL int

	// Per-request timeout for server calls (in seconds)
	RequestTimeout int
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("cache_db", filepath.Join(configDir, "cache.db"))
	v.SetDefault("cache_ttl", 300)
	v.SetDefault("request_timeout", 30)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables (AMPVIEW_SERVER, AMPVIEW_PASSWORD, ...)
	v.SetEnvPrefix("AMPVIEW")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		Server:         v.GetString("server"),
		Username:       v.GetString("username"),
		Password:       v.GetString("password"),
		CacheDB:        v.GetString("cache_db"),
		CacheTTL:       v.GetInt("cache_ttl"),
		RequestTimeout: v.GetInt("request_timeout"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "ampview")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("server", c.Server)
	v.Set("username", c.Username)
	v.Set("password", c.Password)
	v.Set("cache_db", c.CacheDB)
	v.Set("cache_ttl", c.CacheTTL)
	v.Set("request_timeout", c.RequestTimeout)

	// Write to file
	return v.WriteConfigAs(configFile)
}
