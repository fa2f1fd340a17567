package course

import (
	"fmt"

	"nathanbeddoewebdev/courseplan/cmd/commands/cmdenv"

	"github.com/spf13/cobra"
)

// ListCommand returns the "course list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all courses in identifier order",
		Long: `List every course in the file, sorted by course number.

Examples:
  courseplan course list --file courses.csv
  courseplan course list --file courses.psv --delimiter "|"
  courseplan course list -o yaml`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	rawOutput, _ := cmd.Flags().GetString("output")
	output, err := validateOutput(rawOutput)
	if err != nil {
		return err
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

	cat, res, err := env.Courses(delimiter).Load(cmd.CommandPath(), file)
	if err != nil {
		return err
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped invalid line %d\n", skipped.Number)
	}

	courses := cat.Courses()
	switch output {
	case outputJSON:
		return printJSON(cmd, courses)
	case outputYAML:
		return printYAML(cmd, courses)
	}

	if len(courses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
		return nil
	}
	printCourseTable(cmd, courses)
	return nil
}
