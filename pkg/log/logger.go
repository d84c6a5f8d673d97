package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = Nop()
)

// SetupLogger function setup logger.
// It installs a colored console logger on stderr as the default returned by
// GetLogger.
func SetupLogger(loglevel string) error {
	level, err := ToLogLevel(loglevel)
	if err != nil {
		return err
	}
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}
	SetLogger(NewZerologLogger(console, level))
	return nil
}

// ToLogLevel parses a level name as accepted by the -log-level flag.
func ToLogLevel(level string) (Level, error) {
	switch level {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide default logger.
func SetLogger(l Logger) {
	if l == nil {
		l = Nop()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &ZerologLogger{zl: zerolog.Nop()}
}

// NewJSONLogger returns a zerolog logger writing one JSON object per line to w.
func NewJSONLogger(w io.Writer, level Level) Logger {
	return NewZerologLogger(w, level)
}
