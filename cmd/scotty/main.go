package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/alexanderramin/scotty/internal/advisor"
	"github.com/alexanderramin/scotty/internal/calendar"
	"github.com/alexanderramin/scotty/internal/cli"
	"github.com/alexanderramin/scotty/internal/config"
	"github.com/alexanderramin/scotty/internal/db"
	"github.com/alexanderramin/scotty/internal/extract"
	"github.com/alexanderramin/scotty/internal/llm"
	"github.com/alexanderramin/scotty/internal/logger"
	"github.com/alexanderramin/scotty/internal/repository"
	"github.com/alexanderramin/scotty/internal/server"
	"github.com/alexanderramin/scotty/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer logr.Sync() //nolint:errcheck

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	runRepo := repository.NewSQLiteRunRepo(database)
	pastCourseRepo := repository.NewSQLitePastCourseRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	adv, err := newAdvisor(cfg, logr, registry)
	if err != nil {
		return err
	}

	observer := service.NewLogUseCaseObserver(logr)
	catalog := service.NewCatalogService(pastCourseRepo, uow)
	if err := catalog.Add(context.Background(), cfg.PastCourses...); err != nil {
		return fmt.Errorf("seeding past courses: %w", err)
	}

	generator := calendar.NewGenerator(time.Now, calendar.Options{
		Location:  cfg.Calendar.Location,
		UIDDomain: cfg.Calendar.UIDDomain,
		ProdID:    cfg.Calendar.ProdID,
	})

	app := &cli.App{
		Advisor:   adv,
		Recommend: service.NewRecommendService(adv, uow, time.Now, observer),
		Export:    service.NewExportService(generator, observer),
		Interests: service.NewInterestService(extract.NewPDFExtractor()),
		History:   service.NewHistoryService(runRepo),
		Catalog:   catalog,
		ExportDir: cfg.Calendar.ExportDir,
	}

	// Detect interactive terminal for the wizard and spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Serve = func(ctx context.Context, port int) error {
		if port == 0 {
			port = cfg.Server.Port
		}
		srv := server.New(server.Deps{
			Advisor:        app.Advisor,
			Recommend:      app.Recommend,
			Export:         app.Export,
			Interests:      app.Interests,
			History:        app.History,
			Catalog:        app.Catalog,
			Logger:         logr,
			Registry:       registry,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Release:        cfg.Env == config.EnvProduction,
		})
		return srv.Run(ctx, fmt.Sprintf(":%d", port))
	}

	return cli.NewRootCmd(app).Execute()
}

// newAdvisor builds the configured advisor, wrapped in the answer cache.
func newAdvisor(cfg *config.Config, logr *zap.Logger, reg prometheus.Registerer) (advisor.Advisor, error) {
	var inner advisor.Advisor
	switch cfg.Advisor.Mode {
	case config.AdvisorRemote:
		remote, err := advisor.NewRemote(cfg.Advisor.Endpoint, cfg.Advisor.Timeout)
		if err != nil {
			return nil, err
		}
		inner = remote
	default:
		observers := llm.MultiObserver{llm.NewMetricsObserver(reg)}
		if cfg.LLM.LogCalls {
			observers = append(observers, llm.NewLogObserver(logr))
		}
		inner = advisor.NewLLM(llm.NewClient(cfg.LLM, observers))
	}
	return advisor.NewCached(inner, cfg.Advisor.CacheTTL), nil
}
