// Package logging builds the diagnostic logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Env names the environment variable holding the log level.
const Env = "LILGREP_LOG"

// New returns a console logger writing to w at the given level.
// An empty level or "off" disables logging.
func New(level string, w io.Writer) (*zap.Logger, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" || level == "off" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q", Env, level)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core), nil
}
