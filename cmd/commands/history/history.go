package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage catalog load history",
		Long: "View a local record of course file loads and prune old entries.\n\n" +
			"History is stored locally in ~/.config/courseplan/courseplan.db and can be\n" +
			"switched off with \"courseplan config set history off\".",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
