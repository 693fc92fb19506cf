package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drake/balance/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand(opts *sessionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := c.loadSettings(*opts)
			return settings.Encode(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(c.configPathCommand(opts))

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand(opts *sessionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file and init script locations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "settings: %s\ninit:     %s\n", opts.settingsPath(), config.InitFile())
		},
	}
}
