package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scotty/internal/cli/formatter"
	"github.com/alexanderramin/scotty/internal/domain"
)

func newCalendarCmd(app *App) *cobra.Command {
	var rec domain.CourseRecord
	var outPath string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Create a weekly calendar event for one course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := app.Export.Render(cmd.Context(), rec)
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), cal.Content)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(cal.Content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Calendar event for %s saved to %s", rec.Title, outPath)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&rec.Title, "title", "", "Course title")
	f.StringVar(&rec.ID, "id", "", "Course number, e.g. 15-440")
	f.StringVar(&rec.Day, "day", "", "Weekday, Monday through Friday")
	f.StringVar(&rec.StartTime, "start", "", "Start time HH:MM")
	f.StringVar(&rec.EndTime, "end", "", "End time HH:MM")
	f.StringVar(&rec.Location, "location", "", "Room or building")
	f.StringVar(&rec.Description, "description", "", "Event description")
	f.StringVarP(&outPath, "out", "o", "", "Write to FILE instead of stdout")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
