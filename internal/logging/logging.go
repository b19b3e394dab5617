// Package logging builds the process zap logger around an AtomicLevel so
// the level can change at runtime when the config file is edited.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger bundles the zap logger with the level that controls it.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// New builds a JSON ("json") or human-readable ("console") logger at level.
func New(level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch format {
	case "console":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json", "":
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "ts"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	atomic := zap.NewAtomicLevelAt(lvl)
	zc.Level = atomic

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return &Logger{Logger: l, level: atomic}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

// ParseLevel maps debug|info|warn|error onto zapcore levels.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zap.DebugLevel, nil
	case "info", "":
		return zap.InfoLevel, nil
	case "warn":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// SetLevel changes the level of every logger derived from l.
func (l *Logger) SetLevel(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	if l.level.Level() != lvl {
		l.Info("log level changed", zap.String("from", l.level.String()), zap.String("to", lvl.String()))
		l.level.SetLevel(lvl)
	}

	return nil
}

// Level returns the current level.
func (l *Logger) Level() zapcore.Level { return l.level.Level() }
