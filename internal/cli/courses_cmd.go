package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scotty/internal/cli/formatter"
)

func newCoursesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Manage the list of courses offered as already taken",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List past-course options",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				labels, err := app.Catalog.Labels(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPastCourses(labels))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add LABEL...",
			Short: `Add past-course options, e.g. "15-440: Distributed Systems"`,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Catalog.Add(cmd.Context(), args...); err != nil {
					return err
				}
				for _, l := range args {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Added "+l))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove LABEL",
			Short: "Remove a past-course option",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Catalog.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed "+args[0]))
				return nil
			},
		},
	)
	return cmd
}
