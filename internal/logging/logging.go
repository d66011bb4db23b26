// Package logging builds the service's zap logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a *zap.Logger configured with the given format and level.
// format: "json" (default, production encoder) or "console" (development encoder).
// level: any zapcore level name; empty means "info".
// If w is nil, os.Stderr is used.
func New(format, level string, w io.Writer) (*zap.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "", "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
