package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/courseplan/cmd/commands/cmdenv"
	historysvc "nathanbeddoewebdev/courseplan/internal/services/history"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent loads",
		Long: `List recent course file loads, newest first.

Examples:
  courseplan history list
  courseplan history list --limit 50
  courseplan history list --file courses.csv
  courseplan history list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("file", "", "Filter by exact file path")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	file, _ := cmd.Flags().GetString("file")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	env, err := cmdenv.Setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	entries, err := env.History.Recent(limit, file)
	if err != nil {
		if errors.Is(err, historysvc.ErrDisabled) {
			return fmt.Errorf("%w (enable it with \"courseplan config set history on\")", err)
		}
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSOURCE\tFILE\tOUTCOME\tCOURSES\tSKIPPED\tDURATION\tDETAIL")
	fmt.Fprintln(w, "----\t------\t----\t-------\t-------\t-------\t--------\t------")
	for _, entry := range entries {
		detail := entry.Detail
		if detail == "" {
			detail = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Source,
			entry.File,
			entry.Outcome,
			entry.Courses,
			entry.Skipped,
			formatDuration(entry.DurationMs),
			detail,
		)
	}
	w.Flush()
	return nil
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}
