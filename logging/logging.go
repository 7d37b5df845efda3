// Package logging sets up the file-backed zerolog logger
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultDir      = "logs"
	logFileName     = "deepecho.log"
	maxLogSize      = 10 * 1024 * 1024
	rotatedTimeForm = "20060102-150405"
)

// Config controls logging, output is discarded unless Debug is set
type Config struct {
	Debug   bool   `mapstructure:"debug"`
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
	MaxSize int64  `mapstructure:"max_size"` // Bytes before an existing file is rotated on start
}

// DefaultConfig returns logging disabled, writing to logs/ at debug level when enabled
func DefaultConfig() Config {
	return Config{
		Dir:     defaultDir,
		Level:   "debug",
		MaxSize: maxLogSize,
	}
}

// Setup builds the process logger and redirects the standard library logger to it.
// The returned closer releases the log file; with Debug off the logger is a no-op and
// nothing touches the terminal
func Setup(cfg Config) (zerolog.Logger, io.Closer, error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nopCloser{}, nil
	}

	if cfg.Dir == "" {
		cfg.Dir = defaultDir
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = maxLogSize
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, logFileName)
	if err := rotate(path, cfg.MaxSize); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	out := zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	logger := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()

	log.SetFlags(0)
	log.SetOutput(logger)

	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")
	return logger, file, nil
}

// rotate renames an oversized log file to a timestamped name
func rotate(path string, limit int64) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= limit {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), time.Now().Format(rotatedTimeForm), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
