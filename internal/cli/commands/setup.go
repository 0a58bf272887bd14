// Package commands implements the xpres subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/xpres/internal/cli/config"
	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/spf13/cobra"
)

// configKey is used to store config in context.
type configKey struct{}

// ConfigKey returns the context key used for storing the config. The root
// command stores the loaded config under it.
func ConfigKey() interface{} {
	return configKey{}
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Styles *output.Styles
	Out    io.Writer
	ErrOut io.Writer
}

// NewCommandContext collects config, logger and writers for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig(cmd)
	return &CommandContext{
		Cfg:    cfg,
		Logger: config.GetLogger(cmd.Context()),
		Styles: output.NewStyles(cmd.ErrOrStderr(), cfg.Color),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// getConfig returns the config stored by the root command, or defaults when
// a command runs standalone (tests).
func getConfig(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return config.Default()
}

// readSource reads a program file in full.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}
	return string(data), nil
}
