package browse

import (
	"fmt"
	"os"
	"path/filepath"

	"nathanbeddoewebdev/courseplan/cmd/commands/cmdenv"
	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "browse" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a course file in a full-screen viewer",
		Long: `Open a full-screen viewer for a course file.

The viewer lists courses in identifier order with a detail pane showing
prerequisites, a filter (/), a per-subject chart (s) and reload (r).

Examples:
  courseplan browse --file courses.csv
  courseplan browse                     # uses the default-file config key`,
		Args:         cobra.NoArgs,
		RunE:         runBrowse,
		SilenceUsage: true,
	}

	cmd.Flags().String("file", "", "Course file to load (defaults to the default-file config key)")
	cmd.Flags().String("delimiter", "", "Field delimiter (defaults to the delimiter config key)")

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse requires a terminal; use \"courseplan course list\" instead")
	}

	env, err := cmdenv.Setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	file, err := env.ResolveFile(cmd)
	if err != nil {
		return err
	}
	delimiter, _ := cmd.Flags().GetString("delimiter")
	svc := env.Courses(delimiter)

	load := func() (*catalog.Catalog, catalog.Result, error) {
		return svc.Load(cmd.CommandPath(), file)
	}
	if err := tui.RunBrowser(filepath.Base(file), load); err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}
	return nil
}
