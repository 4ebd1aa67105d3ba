package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogConfig       LogConfig       `json:"log_config"`
	GeneratorConfig GeneratorConfig `json:"generator_config"`
}

// GeneratorConfig describes the claim the input bundle is built from.
type GeneratorConfig struct {
	BlockNumber    uint64 `json:"block_number"`
	TxIdx          uint64 `json:"tx_idx"`
	LogIdx         uint64 `json:"log_idx"`
	RepeatCount    int    `json:"repeat_count"` // RepeatCount is the number of claim slots in the bundle
	ClaimCacheSize uint64 `json:"claim_cache_size"`
}

func (c *GeneratorConfig) GetClaimCacheSize() uint64 {
	if c.ClaimCacheSize != 0 {
		return c.ClaimCacheSize
	}
	return DefaultClaimCacheSize
}

type LogConfig struct {
	Level                        string `json:"level"`
	Filename                     string `json:"filename"`
	MaxFileSizeInMB              int    `json:"max_file_size_in_mb"`
	MaxBackupsOfLogFiles         int    `json:"max_backups_of_log_files"`
	MaxAgeToRetainLogFilesInDays int    `json:"max_age_to_retain_log_files_in_days"`
	UseConsoleLogger             bool   `json:"use_console_logger"`
	UseFileLogger                bool   `json:"use_file_logger"`
	Compress                     bool   `json:"compress"`
}

var logLevels = []string{"CRITICAL", "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG"}

func (cfg *LogConfig) Validate() {
	valid := false
	for _, l := range logLevels {
		if strings.EqualFold(cfg.Level, l) {
			valid = true
			break
		}
	}
	if !valid {
		panic(fmt.Sprintf("unknown log level %q", cfg.Level))
	}
	if cfg.UseFileLogger {
		if cfg.Filename == "" {
			panic("filename should not be empty if use file logger")
		}
		if cfg.MaxFileSizeInMB <= 0 {
			panic("max_file_size_in_mb should be larger than 0 if use file logger")
		}
		if cfg.MaxBackupsOfLogFiles <= 0 {
			panic("max_backups_off_log_files should be larger than 0 if use file logger")
		}
	}
}

func (cfg *Config) Validate() {
	cfg.LogConfig.Validate()
}

// DefaultConfig returns the config producing the reference renewal claim input.
func DefaultConfig() *Config {
	return &Config{
		LogConfig: LogConfig{
			Level:                        DefaultLogLevel,
			MaxFileSizeInMB:              DefaultMaxFileSizeInMB,
			MaxBackupsOfLogFiles:         DefaultMaxBackupsOfLogFiles,
			MaxAgeToRetainLogFilesInDays: DefaultMaxAgeToRetainLogFilesInDays,
			UseConsoleLogger:             true,
		},
		GeneratorConfig: GeneratorConfig{
			BlockNumber:    ReferenceBlockNumber,
			TxIdx:          ReferenceTxIdx,
			LogIdx:         ReferenceLogIdx,
			RepeatCount:    MaxClaims,
			ClaimCacheSize: DefaultClaimCacheSize,
		},
	}
}

// ParseConfigFromViper overlays the log settings bound in v on top of the defaults.
// Only logging is configurable, the generated bundle is fixed.
func ParseConfigFromViper(v *viper.Viper) *Config {
	cfg := DefaultConfig()
	if level := v.GetString(FlagLogLevel); level != "" {
		cfg.LogConfig.Level = strings.ToUpper(level)
	}
	if filename := v.GetString(FlagLogFile); filename != "" {
		cfg.LogConfig.Filename = filename
		cfg.LogConfig.UseFileLogger = true
	}
	return cfg
}
