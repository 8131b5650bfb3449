package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scotty/internal/cli/formatter"
	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/service"
)

var errMissingInterests = service.ErrMissingInterests

func newRecommendCmd(app *App) *cobra.Command {
	var (
		interests string
		past      []string
		resume    string
		exportDir string
		noHistory bool
		noExport  bool
	)
	req := domain.NewRecommendationRequest("")

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Ask the advisor for courses and export them as calendar events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			req.Interests = strings.TrimSpace(interests)
			req.PastCourses = past

			if resume != "" {
				set, err := app.Interests.FromFile(ctx, resume)
				if err != nil {
					fmt.Fprintln(out, formatter.Warn(fmt.Sprintf("Could not read resume: %v", err)))
				} else {
					fmt.Fprint(out, formatter.FormatInterests(set))
					if req.Interests == "" {
						req.Interests = set.String()
					}
				}
			}

			if req.Interests == "" {
				if !app.interactive() {
					return errMissingInterests
				}
				if err := runRecommendWizard(ctx, app, &req); err != nil {
					return err
				}
			}

			res, err := waitFor(ctx, app.interactive(), cmd.InOrStdin(), cmd.ErrOrStderr(), "Asking the advisor...",
				func(ctx context.Context) (*service.RecommendResult, error) {
					return app.Recommend.Recommend(ctx, service.RecommendRequest{
						RecommendationRequest: req,
						Source:                domain.SourceCLI,
						SkipHistory:           noHistory,
					})
				})
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatRecommendation(res))
			if res.HistoryErr != nil {
				fmt.Fprintln(out, formatter.Warn(fmt.Sprintf("Run not saved: %v", res.HistoryErr)))
			}

			if noExport || len(res.Courses) == 0 {
				return nil
			}
			dir := exportDir
			if dir == "" {
				dir = app.ExportDir
			}
			exported, err := app.Export.WriteFiles(ctx, dir, res.Courses)
			if err != nil {
				return err
			}
			fmt.Fprint(out, "\n"+formatter.FormatExport(exported))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&interests, "interests", "", "Your interests in free text")
	f.StringArrayVar(&past, "past", nil, "A course you have already taken (repeatable)")
	f.StringVar(&resume, "resume", "", "PDF resume to detect interests from")
	f.Var(newHoursValue(&req.Hours), "hours", "Weekly workload range in hours")
	f.Var(newRatingValue(&req.Rating), "rating", "Course rating range")
	f.StringVar(&exportDir, "export-dir", "", "Directory for .ics files")
	f.BoolVar(&noHistory, "no-history", false, "Do not save this run")
	f.BoolVar(&noExport, "no-export", false, "Do not write .ics files")

	return cmd
}
