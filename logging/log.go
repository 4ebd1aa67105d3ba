package logging

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bnb-chain/ens-claim-input/config"
)

const module = "ens-claim-input"

var (
	// Logger instance for quick declarative logging levels
	Logger = logging.MustGetLogger(module)

	format = logging.MustStringFormatter(
		`%{time:2006-01-02T15:04:05.000} %{shortfile} %{level:.4s} %{message}`,
	)
)

// InitLogger routes Logger to the backends enabled in cfg. The console backend
// writes to stderr, stdout carries program output only.
func InitLogger(cfg *config.LogConfig) {
	initLogger(cfg, os.Stderr)
}

func initLogger(cfg *config.LogConfig, console io.Writer) {
	var backends []logging.Backend
	if cfg.UseConsoleLogger {
		backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(console, "", 0), format))
	}
	if cfg.UseFileLogger {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxFileSizeInMB,
			MaxBackups: cfg.MaxBackupsOfLogFiles,
			MaxAge:     cfg.MaxAgeToRetainLogFilesInDays,
			Compress:   cfg.Compress,
		}
		backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(fileWriter, "", 0), format))
	}

	leveled := logging.SetBackend(backends...)
	level, err := logging.LogLevel(strings.ToUpper(cfg.Level))
	if err != nil {
		level = logging.INFO
	}
	leveled.SetLevel(level, module)
}
