// Package main is the entry point for the Dealvoy source registry server.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/dealvoy/source-registry-server/cmd/dealvoy-registry/app"
	"github.com/dealvoy/source-registry-server/internal/config"
	"github.com/dealvoy/source-registry-server/internal/logger"
)

// getLogLevel parses the DEALVOY_LOG_LEVEL environment variable and returns the
// corresponding slog.Level. Falls back to LOG_LEVEL for compatibility.
// Defaults to slog.LevelInfo if neither is set or if the value is invalid.
func getLogLevel() slog.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	levelStr := v.GetString("LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", levelStr)
		return slog.LevelInfo
	}
}

func main() {
	// Structured JSON logging on stderr: stdout stays clean for commands that
	// output data (e.g. version --format json).
	level := getLogLevel()
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	logger.Initialize(level.String(), false)

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
