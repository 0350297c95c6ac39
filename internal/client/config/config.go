package config

import (
	"fmt"
	"net"
	"os"
	"time"
)

// APIPort is the port the board API listens on when only a host is known.
const APIPort = "3001"

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds runtime settings for the board client.
//
// APIBaseURL, when set, is used verbatim. Otherwise the base URL is derived
// from APIHost; see BaseURL.
type Config struct {
	APIBaseURL      string
	APIHost         string
	DatabasePath    string
	RequestTimeout  time.Duration
	IdentityTimeout time.Duration
	LogLevel        string
	LogBackend      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = ""
	c.APIHost = "localhost"
	c.DatabasePath = "board.db"
	c.RequestTimeout = 15 * time.Second
	c.IdentityTimeout = 10 * time.Second
	c.LogLevel = "warn"
	c.LogBackend = "slog"
}

// BaseURL is the API root every request is resolved against.
func (c *Config) BaseURL() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return "http://" + net.JoinHostPort(c.APIHost, APIPort)
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and finally the process arguments.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], DefaultEnvFile, os.LookupEnv)
}

func load(args []string, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, envFile, lookup); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
