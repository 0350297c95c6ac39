package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog    = "slog"
	BackendZap     = "zap"
	BackendZerolog = "zerolog"
)

var ErrUnknownBackend = errors.New("unknown log backend")

// New builds a Logger writing to w. Backend is one of slog (text), zap (JSON)
// or zerolog (JSON); level is debug, info, warn or error.
func New(backend, level string, w io.Writer) (Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}

	switch strings.ToLower(backend) {
	case "", BackendSlog:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("slog level %q: %w", level, err)
		}
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		lvl := zapcore.InfoLevel
		if err := lvl.Set(level); err != nil {
			return nil, fmt.Errorf("zap level %q: %w", level, err)
		}
		encCfg := zapcore.EncoderConfig{
			MessageKey:  "message",
			LevelKey:    "level",
			TimeKey:     "ts",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		}
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), lvl)
		return NewZapLogger(zap.New(core)), nil

	case BackendZerolog:
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("zerolog level %q: %w", level, err)
		}
		return NewZerologLogger(zerolog.New(w).Level(lvl).With().Timestamp().Logger()), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
