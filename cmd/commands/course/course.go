package course

import "github.com/spf13/cobra"

// NewCommand returns the "course" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Query a course file without the interactive menu",
		Long: "Load a course file and print its courses.\n\n" +
			"The file comes from --file, or from the default-file config key when\n" +
			"--file is not given.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("file", "", "Course file to load (defaults to the default-file config key)")
	cmd.PersistentFlags().String("delimiter", "", "Field delimiter (defaults to the delimiter config key)")

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}
