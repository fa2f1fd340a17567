package course

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/courseplan/cmd/commands/cmdenv"
	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/domain"
	"nathanbeddoewebdev/courseplan/internal/render"
	"nathanbeddoewebdev/courseplan/internal/tui"
	"nathanbeddoewebdev/courseplan/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ShowCommand returns the "course show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one course and its prerequisites",
		Long: `Display a single course with its prerequisites resolved to titles.

The course number is matched case-insensitively. If --id is not provided and
stdout is a terminal, an interactive picker is shown.

Examples:
  # Interactive picker
  courseplan course show --file courses.csv

  # Non-interactive
  courseplan course show --file courses.csv --id csci300

  # JSON output for scripting
  courseplan course show --file courses.csv --id CSCI300 -o json`,
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().String("id", "", "Course number to show (skips interactive selection)")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	rawOutput, _ := cmd.Flags().GetString("output")
	output, err := validateOutput(rawOutput)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	id = strings.TrimSpace(id)
	interactive := id == ""
	if interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("--id is required when not running in a terminal")
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
	var cat *catalog.Catalog
	load := func() error {
		var err error
		cat, _, err = svc.Load(cmd.CommandPath(), file)
		return err
	}

	if interactive {
		err = tui.LoadWithSpinner("Loading "+file+"...", load)
		if err == nil {
			id, err = tui.SelectCourse(cat)
		}
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Selection cancelled.")
			return nil
		}
	} else {
		err = load()
	}
	if err != nil {
		return err
	}

	if output == outputTable {
		return render.Course(cmd.OutOrStdout(), cat, id)
	}

	normalized := util.NormalizeIdentifier(util.Trim(id))
	course, ok := cat.Lookup(normalized)
	if !ok {
		return fmt.Errorf("course %s: %w", normalized, domain.ErrNotFound)
	}
	if output == outputJSON {
		return printJSON(cmd, course)
	}
	return printYAML(cmd, course)
}
