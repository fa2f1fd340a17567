package shell

import (
	"nathanbeddoewebdev/courseplan/cmd/commands/cmdenv"
	"nathanbeddoewebdev/courseplan/internal/shell"

	"github.com/spf13/cobra"
)

// NewCommand returns the "shell" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive course planner",
		Long: `Start the interactive course planner menu.

The session reads commands from standard input:
  1  load a course file
  2  print the course list
  3  print one course and its prerequisites
  9  exit

Running courseplan without a subcommand does the same thing.`,
		Args:         cobra.NoArgs,
		RunE:         Run,
		SilenceUsage: true,
	}

	return cmd
}

// Run starts a session on the command's input and output streams.
func Run(cmd *cobra.Command, args []string) error {
	env, err := cmdenv.Setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	opts := shell.Options{
		Delimiter: env.Config.FieldDelimiter(),
		Logger:    env.Logger,
		SessionID: env.SessionID,
	}
	if env.History.Enabled() {
		opts.Recorder = env.History
	}

	return shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run()
}
