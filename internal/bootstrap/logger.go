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

	"github.com/osse101/BrandishSpin_Go/internal/config"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// SetupLogger writes logs to stdout and a per-session file in cfg.LogDir.
// The caller must close the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}

	// source locations only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "file", name)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store", cfg.StoreBackend,
		"ledger", cfg.LedgerBackend,
		"oracle", cfg.OracleBackend)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"spin_cost", cfg.SpinCost,
		"win_threshold", cfg.SpinWinThreshold,
		"modulus", cfg.SpinModulus,
		"payout_multiplier", cfg.SpinPayoutMultiplier)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that keep-1 remain before
// the new session file is created.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// timestamped names sort chronologically
	sort.Strings(logFiles)

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, logFiles[i], err)
		}
	}
}
