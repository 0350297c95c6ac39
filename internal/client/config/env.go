package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL     = "BOARD_API_URL"
	EnvAPIHost    = "BOARD_API_HOST"
	EnvDatabase   = "BOARD_DB"
	EnvLogLevel   = "BOARD_LOG_LEVEL"
	EnvLogBackend = "BOARD_LOG_BACKEND"
)

// parseEnv overlays cfg with BOARD_* variables. Values from envFile are used
// only where the process environment does not set the variable. A missing
// envFile is ignored.
func parseEnv(cfg *Config, envFile string, lookup func(string) (string, bool)) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return err
		default:
			fileVars = vars
		}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	for key, dst := range map[string]*string{
		EnvAPIURL:     &cfg.APIBaseURL,
		EnvAPIHost:    &cfg.APIHost,
		EnvDatabase:   &cfg.DatabasePath,
		EnvLogLevel:   &cfg.LogLevel,
		EnvLogBackend: &cfg.LogBackend,
	} {
		if v, ok := get(key); ok && v != "" {
			*dst = v
		}
	}
	return nil
}
