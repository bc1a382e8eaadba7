// Package logging provides zap logger helpers.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the process-wide logger. It defaults to a no-op logger so packages can
// log before InitLogger runs (and so tests stay silent).
var L = zap.NewNop()

// InitLogger replaces L with a development console logger.
func InitLogger() {
	logger, err := New(true)
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	L = logger
}

// New builds a zap.Logger configured for development or production.
func New(development bool) (*zap.Logger, error) {
	if development {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("build dev logger: %w", err)
		}
		return logger, nil
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = false
	cfg.EncoderConfig.TimeKey = "ts"
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build prod logger: %w", err)
	}
	return logger, nil
}

// NewWithFile builds a logger that writes console output and tees JSON entries
// to a timestamped file under dir, rotated by lumberjack. The returned string
// is the active log file path.
func NewWithFile(dir string, development bool) (*zap.Logger, string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, "", fmt.Errorf("create log dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, time.Now().Format("20060102_150405")+".log")

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		}),
		zapcore.InfoLevel,
	)

	consoleEnc := zap.NewDevelopmentEncoderConfig()
	consoleEnc.TimeKey = "ts"
	consoleEnc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	level := zapcore.InfoLevel
	if development {
		level = zapcore.DebugLevel
	}
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEnc),
		zapcore.Lock(os.Stdout),
		level,
	)

	return zap.New(zapcore.NewTee(consoleCore, fileCore)), path, nil
}
