package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scotty/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.History.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(runs, app.now()))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of runs to show")

	cmd.AddCommand(newHistoryShowCmd(app), newHistoryDeleteCmd(app))
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show one recommendation run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRunID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			run, err := app.History.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRun(run))
			return nil
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete RUN_ID",
		Short: "Delete one recommendation run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRunID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.History.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted run "+id))
			return nil
		},
	}
}
