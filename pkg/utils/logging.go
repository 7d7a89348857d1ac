package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Logger returns the process logger: JSON to stdout, teed into LOG_FILE when
// it is set, at the LOG_LEVEL level.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}
	logger = build(level(os.Getenv("LOG_LEVEL")), os.Getenv("LOG_FILE"))
	return logger
}

func build(lvl zapcore.Level, logFile string) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)}
	if logFile != "" {
		f, err := openLogFile(logFile)
		if err != nil {
			// stdout still works; report the file problem through it
			l := zap.New(cores[0])
			l.Warn("Falha ao abrir LOG_FILE", zap.String("path", logFile), zap.Error(err))
			return l
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), lvl))
	}
	return zap.New(zapcore.NewTee(cores...))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// level parses LOG_LEVEL, falling back to info.
func level(s string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil || s == "" {
		return zapcore.InfoLevel
	}
	return l
}
