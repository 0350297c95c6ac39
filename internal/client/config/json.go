package config

import (
	"encoding/json"
	"os"

	"github.com/Donghyun-K/board-client/internal/flagx"
	"github.com/Donghyun-K/board-client/internal/timex"
)

// jsonConfig is the on-disk shape. Absent keys leave the current value alone.
type jsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	APIHost         *string         `json:"api_host"`
	DatabasePath    *string         `json:"database_path"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	IdentityTimeout *timex.Duration `json:"identity_timeout"`
	LogLevel        *string         `json:"log_level"`
	LogBackend      *string         `json:"log_backend"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.APIHost, jc.APIHost)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.IdentityTimeout != nil {
		cfg.IdentityTimeout = jc.IdentityTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
