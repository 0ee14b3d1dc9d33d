package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"parley"
	"parley/internal/logging"
	"parley/pkg/adapters/yamlfile"
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(parseLevel(level))
}

// loadEngine builds an engine from the --dialog file. CLI-loaded dialogs
// use reply templates; registered handlers are for embedding hosts.
func loadEngine(cmd *cobra.Command, logger *slog.Logger, opts ...parley.Option) (*parley.Engine, error) {
	path, _ := cmd.Flags().GetString("dialog")

	def, err := yamlfile.Load(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load dialog: %w", err)
	}

	opts = append(opts, parley.WithName(def.Name), parley.WithLogger(logger))
	return parley.New(def.Dialog, opts...)
}
