package config

import (
	"flag"
	"io"

	"github.com/Donghyun-K/board-client/internal/flagx"
)

// parseFlags overlays cfg with the flags this package owns. Other arguments
// are filtered out with flagx.FilterArgs so they cannot make parsing fail.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, "a", "host", "d", "t", "l", "log-backend")

	fs := flag.NewFlagSet("board-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.APIHost, "host", cfg.APIHost, "API host, used when no base URL is given")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "client database path")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "log backend: slog, zap or zerolog")

	return fs.Parse(args)
}
