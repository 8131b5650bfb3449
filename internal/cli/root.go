package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/scotty/internal/advisor"
	"github.com/alexanderramin/scotty/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Advisor   advisor.Advisor
	Recommend service.RecommendService
	Export    service.ExportService
	Interests service.InterestService
	History   service.HistoryService
	Catalog   service.CatalogService

	// ExportDir is where recommend writes .ics files unless --export-dir is set.
	ExportDir string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Now is the clock used for relative timestamps. Nil means time.Now.
	Now func() time.Time

	// Serve runs the HTTP API until ctx is cancelled.
	Serve func(ctx context.Context, port int) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "scotty" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "scotty",
		Short:         "Course recommendations with calendar export",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRecommendCmd(app),
		newInterestsCmd(app),
		newCalendarCmd(app),
		newHistoryCmd(app),
		newCoursesCmd(app),
		newServeCmd(app),
	)

	return root
}
