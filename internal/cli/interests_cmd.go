package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scotty/internal/cli/formatter"
)

func newInterestsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "interests FILE.pdf",
		Short: "Detect interests in a PDF resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.Interests.FromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInterests(set))
			return nil
		},
	}
}
