// Package config loads runtime configuration for the board client.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: variables from a .env file in the working directory,
//     overridden by the real process environment.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string            API base URL (e.g. http://api.example:3001)
//	-host string         API host; the base URL becomes http://<host>:3001
//	-d string            path of the client database
//	-t duration          per-request timeout
//	-l string            log level (debug, info, warn, error)
//	-log-backend string  slog, zap or zerolog
//
// Environment
//
//	BOARD_API_URL, BOARD_API_HOST, BOARD_DB, BOARD_LOG_LEVEL, BOARD_LOG_BACKEND
//
// # JSON schema
//
// Durations use timex.Duration, so "15s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://localhost:3001",
//	  "api_host": "localhost",
//	  "database_path": "board.db",
//	  "request_timeout": "15s",
//	  "identity_timeout": "10s",
//	  "log_level": "warn",
//	  "log_backend": "slog"
//	}
package config
