// Package logger предоставляет printf-логгер с уровнями поверх zap.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Форматы вывода
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger логгер сервиса
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

// ParseLevel разбирает уровень логирования из строки
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", s)
	}
}

// New создает логгер, пишущий в stdout и, если указан file, дополнительно в файл
func New(file, level string) (*Logger, error) {
	return NewWithFormat(file, level, FormatJSON)
}

// NewWithFormat создает логгер с заданным форматом вывода
func NewWithFormat(file, level, format string) (*Logger, error) {
	writers := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}

	var f *os.File
	if file != "" {
		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", file, err)
		}
		writers = append(writers, zapcore.AddSync(f))
	}

	l, err := build(zapcore.NewMultiWriteSyncer(writers...), level, format)
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return nil, err
	}
	l.file = f
	return l, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level, format string) (*Logger, error) {
	return build(zapcore.AddSync(w), level, format)
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	base := zap.NewNop()
	return &Logger{base: base, sugar: base.Sugar()}
}

func build(ws zapcore.WriteSyncer, level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case "", FormatJSON:
		encoder = zapcore.NewJSONEncoder(encCfg)
	case FormatConsole:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	core := zapcore.NewCore(encoder, ws, zap.NewAtomicLevelAt(lvl))
	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{base: base, sugar: base.Sugar()}, nil
}

// Debug логирует отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Info логирует информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn логирует предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error логирует ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close сбрасывает буферы и закрывает файл лога
func (l *Logger) Close() error {
	_ = l.base.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
