// Package cli wires the four pngstash operations to their command-line verbs.
//
// Each command maps positional arguments onto one parse/mutate/serialize pass
// over a whole file loaded into memory. User-facing output goes to stdout;
// diagnostics go to a zap logger on stderr, controlled by --log-level.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerFunc builds the per-invocation logger after flags are parsed.
type loggerFunc func() (*zap.Logger, error)

// NewRootCommand builds the pngstash command tree.
func NewRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "pngstash",
		Short:         "Hide, recover, and inspect messages in PNG chunks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"supported log levels are debug, info, warn and error")

	newLogger := func() (*zap.Logger, error) {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stderr"}

		return cfg.Build()
	}

	cmd.AddCommand(
		newEncodeCommand(newLogger),
		newDecodeCommand(newLogger),
		newRemoveCommand(newLogger),
		newPrintCommand(newLogger),
	)

	return cmd
}
