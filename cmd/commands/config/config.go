package config

import (
	"nathanbeddoewebdev/courseplan/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage courseplan configuration",
		Long: "View and modify persistent courseplan settings.\n\n" +
			"Configuration is stored at ~/.config/courseplan/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
