package check

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/courseplan/cmd/commands/cmdenv"
	"nathanbeddoewebdev/courseplan/internal/catalog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxParallel bounds the number of files parsed at once.
const maxParallel = 4

// NewCommand returns the "check" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate course files without loading them",
		Long: `Parse one or more course files and report how many courses each holds
and which lines would be skipped. Nothing is kept or recorded.

The command fails if any file cannot be opened or read.

Examples:
  courseplan check courses.csv
  courseplan check fall.csv spring.csv --delimiter ";"`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runCheck,
		SilenceUsage: true,
	}

	cmd.Flags().String("delimiter", "", "Field delimiter (defaults to the delimiter config key)")

	return cmd
}

type fileReport struct {
	path   string
	result catalog.Result
	err    error
}

func runCheck(cmd *cobra.Command, args []string) error {
	env, err := cmdenv.Setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	delimiter, _ := cmd.Flags().GetString("delimiter")
	svc := env.Courses(delimiter)

	reports := make([]fileReport, len(args))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(maxParallel)
	for i, path := range args {
		g.Go(func() error {
			res, err := svc.Check(path)
			reports[i] = fileReport{path: path, result: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tCOURSES\tSKIPPED\tSTATUS")
	fmt.Fprintln(w, "----\t-------\t-------\t------")
	for _, r := range reports {
		status := "ok"
		if r.err != nil {
			status = "error: " + r.err.Error()
			failed++
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.path, r.result.Count, skippedLines(r.result.Skipped), status)
	}
	w.Flush()

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be checked", failed, len(reports))
	}
	return nil
}

func skippedLines(skipped []catalog.SkippedLine) string {
	if len(skipped) == 0 {
		return "-"
	}
	nums := make([]string, len(skipped))
	for i, s := range skipped {
		nums[i] = fmt.Sprint(s.Number)
	}
	return strings.Join(nums, ",")
}
