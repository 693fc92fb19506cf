// Package cli implements the balance command-line interface.
//
// The root command starts an interactive session: a full-screen TUI by
// default, or a line-oriented console with --simple. Positional arguments
// are Lua scripts run after init.lua.
//
// # Logging
//
// --verbose (-v) enables debug-level logging and a periodic stats monitor.
// The TUI owns the terminal, so in TUI mode logs go to --log-file or are
// discarded; console mode logs to stderr unless --log-file is given.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "balance"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev" // set via -ldflags

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetIO replaces the streams used by console mode and subcommand output.
func (c *CLI) SetIO(in io.Reader, out io.Writer) {
	c.stdin = in
	c.stdout = out
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var opts sessionOptions

	root := &cobra.Command{
		Use:          appName + " [scripts...]",
		Short:        "An interactive two-pan balancing scale",
		Long:         `Balance places weights on the left and right pans of a scale and animates the beam toward the imbalance. Lua scripts can drive it and react to its events.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSession(cmd.Context(), opts, args)
		},
	}

	root.SetOut(c.stdout)
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "settings file (default: "+appName+".toml in the config dir)")
	root.Flags().BoolVar(&opts.simple, "simple", false, "use the line-oriented console instead of the TUI")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(c.configCommand(&opts))

	return root
}
