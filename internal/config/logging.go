package config

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/gridview/internal/logging"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logResult tracks the current log file for cleanup.
//
//nolint:gochecknoglobals // Tracks the global logger's file handle for proper cleanup
var logResult *logging.Result

// logMu protects concurrent access to logResult and Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger replaces the global Logger with one built from cfg, writing to
// stderr unless cfg.File is set. Any previously opened log file is closed.
func InitLogger(cfg logging.Config) error {
	return initLogger(cfg, os.Stderr)
}

func initLogger(cfg logging.Config, stderr io.Writer) error {
	logMu.Lock()
	defer logMu.Unlock()

	res, err := logging.New(cfg, stderr)
	if err != nil {
		return err
	}

	closeLogFileLocked()
	logResult = res
	Logger = res.Logger
	return nil
}

// SetLogLevel sets the package global Logger's level to the value parsed from level.
// If the provided level cannot be parsed, the logger level is set to zerolog.InfoLevel.
func SetLogLevel(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	Logger = Logger.Level(lvl)
}

// CloseLogFile closes the current log file handle, if any.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

// closeLogFileLocked closes the log file. Must be called with logMu held.
func closeLogFileLocked() {
	if logResult != nil {
		_ = logResult.Close()
		logResult = nil
	}
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// init installs a warn-level console logger so logging works before configuration loads.
//
//nolint:gochecknoinits // intentional: package-level logger must be initialized before use
func init() {
	_ = InitLogger(logging.DefaultConfig())
}
