package cmd

import (
	"os"

	"nathanbeddoewebdev/courseplan/cmd/commands/browse"
	"nathanbeddoewebdev/courseplan/cmd/commands/check"
	cfgcmd "nathanbeddoewebdev/courseplan/cmd/commands/config"
	"nathanbeddoewebdev/courseplan/cmd/commands/course"
	"nathanbeddoewebdev/courseplan/cmd/commands/history"
	"nathanbeddoewebdev/courseplan/cmd/commands/shell"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "courseplan",
		Short: "Look up courses and their prerequisites from a course file",
		Long: `courseplan loads course records (course number, title, prerequisites)
from a delimited text file and answers questions about them.

Without a subcommand it starts the interactive course planner menu.

Quick start:
  courseplan                                  # interactive menu
  courseplan course list --file courses.csv   # sorted course list
  courseplan course show --id CSCI300         # one course
  courseplan browse                           # full-screen viewer`,
		Args:         cobra.NoArgs,
		RunE:         shell.Run,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "Write diagnostic logs to stderr")

	cmd.AddCommand(browse.NewCommand())
	cmd.AddCommand(check.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(course.NewCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(shell.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
