package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/PotionGacha_Go/internal/config"
	"github.com/osse101/PotionGacha_Go/internal/logger"
)

// SetupLogger installs the default logger. Output always goes to stdout; when
// cfg.LogDir is set it is also written to a timestamped session file there.
// The returned file is nil when file logging is off, otherwise the caller closes it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	var out io.Writer = os.Stdout
	var logFile *os.File
	if cfg.LogDir != "" {
		var err error
		logFile, err = openSessionLog(cfg.LogDir, time.Now())
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger.InitWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", cfg.LogDir != "")
	slog.Info(LogMsgStartingService,
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_driver", cfg.DBDriver,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return logFile, nil
}

// openSessionLog prunes old session files and opens a new one named after now
func openSessionLog(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(dir, LogFileRetentionCount)

	name := filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}
	return f, nil
}

// cleanupLogs removes the oldest log files so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	sort.Strings(logFiles)

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(dir, logFiles[i])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i], "error", err)
		}
	}
}
