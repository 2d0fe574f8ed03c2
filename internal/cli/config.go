package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/lindio/diophantine"
)

const (
	configBaseName   = "diophantine"
	configFolderPath = "."
	envPrefix        = "DIOPHANTINE"

	configFlagName  = "config"
	verboseFlagName = "verbose"

	limitFlagName    = "limit"
	parallelFlagName = "parallel"

	naturalLimitKey  = "natural.limit"
	batchParallelKey = "batch.parallel"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultBatchParallel = 4
	defaultLogLevel      = "warn"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// newConfig returns a viper instance with defaults and environment binding.
// Files are read later by loadConfig, once the --config flag is parsed.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(naturalLimitKey, diophantine.DefaultLimit)
	v.SetDefault(batchParallelKey, defaultBatchParallel)

	v.SetDefault(logFilenameKey, "")
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// loadConfig reads path if given, otherwise an optional diophantine.yaml in
// the working directory. Only an explicitly requested file must exist.
func loadConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configBaseName)
	v.AddConfigPath(configFolderPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// bindFlagToConfig wires a cobra flag to a viper key so config/env values feed the flag.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(v.BindPFlag(key, flag))
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// numeric slog levels are accepted too (e.g. -4 for debug)
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the default slog logger.
//
// With log.filename set, records go to a rotating file; otherwise to stderr.
// verbose forces the debug level.
func configureLogger(v *viper.Viper, stderr io.Writer, verbose bool) *slog.Logger {
	level := parseSlogLevel(v.GetString(logLevelKey), slog.LevelWarn)
	if verbose {
		level = slog.LevelDebug
	}

	w := stderr
	if name := strings.TrimSpace(v.GetString(logFilenameKey)); name != "" {
		w = &lumberjack.Logger{
			Filename:   name,
			MaxSize:    v.GetInt(logMaxSizeKey),
			MaxBackups: v.GetInt(logMaxBackupsKey),
			MaxAge:     v.GetInt(logMaxAgeKey),
			Compress:   v.GetBool(logCompressKey),
		}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger
}
