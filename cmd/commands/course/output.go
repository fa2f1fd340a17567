package course

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/courseplan/internal/domain"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(output string) (string, error) {
	switch output {
	case "":
		return outputTable, nil
	case outputTable, outputJSON, outputYAML:
		return output, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (valid: table, json, yaml)", output)
	}
}

// printJSON encodes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printYAML encodes v as YAML to the command's stdout.
func printYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// printCourseTable prints one row per course with bare prerequisite IDs.
func printCourseTable(cmd *cobra.Command, courses []domain.Course) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPREREQUISITES")
	fmt.Fprintln(w, "--\t-----\t-------------")
	for _, c := range courses {
		prereqs := "-"
		if len(c.Prerequisites) > 0 {
			prereqs = strings.Join(c.Prerequisites, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Title, prereqs)
	}
	w.Flush()
}
