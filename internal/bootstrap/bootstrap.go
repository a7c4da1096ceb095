package bootstrap

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	cataloginadapter "planwise/internal/modules/catalog/adapter/in"
	catalogoutadapter "planwise/internal/modules/catalog/adapter/out"
	catalogservice "planwise/internal/modules/catalog/service"
	catalogusecase "planwise/internal/modules/catalog/usecase"
	historyinadapter "planwise/internal/modules/history/adapter/in"
	historyoutadapter "planwise/internal/modules/history/adapter/out"
	historyservice "planwise/internal/modules/history/service"
	historyusecase "planwise/internal/modules/history/usecase"
	navigationinadapter "planwise/internal/modules/navigation/adapter/in"
	navigationservice "planwise/internal/modules/navigation/service"
	navigationusecase "planwise/internal/modules/navigation/usecase"
	planinadapter "planwise/internal/modules/plan/adapter/in"
	planoutadapter "planwise/internal/modules/plan/adapter/out"
	planservice "planwise/internal/modules/plan/service"
	planusecase "planwise/internal/modules/plan/usecase"
	plugininadapter "planwise/internal/modules/plugin/adapter/in"
	pluginoutadapter "planwise/internal/modules/plugin/adapter/out"
	pluginservice "planwise/internal/modules/plugin/service"
	pluginusecase "planwise/internal/modules/plugin/usecase"
	reportinadapter "planwise/internal/modules/report/adapter/in"
	reportoutadapter "planwise/internal/modules/report/adapter/out"
	reportservice "planwise/internal/modules/report/service"
	reportusecase "planwise/internal/modules/report/usecase"
	scheduleinadapter "planwise/internal/modules/schedule/adapter/in"
	scheduleoutadapter "planwise/internal/modules/schedule/adapter/out"
	scheduleservice "planwise/internal/modules/schedule/service"
	scheduleusecase "planwise/internal/modules/schedule/usecase"
	sessioninadapter "planwise/internal/modules/session/adapter/in"
	sessionoutadapter "planwise/internal/modules/session/adapter/out"
	sessionservice "planwise/internal/modules/session/service"
	sessionusecase "planwise/internal/modules/session/usecase"
	"planwise/internal/platform/apiclient"
	"planwise/internal/platform/clock"
	"planwise/internal/platform/config"
	"planwise/internal/platform/id"
	"planwise/internal/platform/logger"
	"planwise/internal/platform/tx"
	uiapp "planwise/internal/ui/app"
)

type App struct {
	Config config.Config
	Log    zerolog.Logger

	SessionCLI    sessioninadapter.CLIHandler
	CatalogCLI    cataloginadapter.CLIHandler
	PlanCLI       planinadapter.CLIHandler
	HistoryCLI    historyinadapter.CLIHandler
	ScheduleCLI   scheduleinadapter.CLIHandler
	NavigationCLI navigationinadapter.CLIHandler
	ReportCLI     reportinadapter.CLIHandler
	PluginCLI     plugininadapter.CLIHandler

	db      *sql.DB
	logFile io.Closer
}

func New(cfg config.Config) (*App, error) {
	log, logFile, err := logger.New(cfg.LogPath, cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	clk := clock.SystemClock{}
	client := apiclient.New(cfg.BaseURL, cfg.RequestTimeout, id.RandomHex{}, log)

	db, err := sessionoutadapter.OpenDB(cfg.DBPath)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("open state db: %w", err)
	}
	stateStore, err := sessionoutadapter.NewSQLiteStateStore(db)
	if err != nil {
		_ = db.Close()
		_ = logFile.Close()
		return nil, fmt.Errorf("new state store: %w", err)
	}

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogoutadapter.NewAPIGateway(client)))
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, sessionoutadapter.NewAPIGateway(client), stateStore, tx.NewSQLManager(db)),
		catalogUC,
	)
	planUC := planusecase.NewInteractor(planservice.NewPlanService(planoutadapter.NewAPIGateway(client), cfg.DefaultTermID))
	historyUC := historyusecase.NewInteractor(
		historyservice.NewHistoryService(historyoutadapter.NewAPIGateway(client)),
		historyoutadapter.NewPDFTranscriptReader(),
		historyoutadapter.NewCatalogCourseResolver(catalogUC),
	)
	scheduleUC := scheduleusecase.NewInteractor(scheduleservice.NewScheduleService(scheduleoutadapter.NewAPIGateway(client), cfg.CheckSections))
	navigationUC := navigationusecase.NewInteractor(navigationservice.NewNavigationService())

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(clk, reportoutadapter.NewMarkdownReportStore()),
		planUC,
		historyUC,
		scheduleUC,
	)
	pluginUC := pluginusecase.NewInteractor(
		pluginservice.NewPluginService(
			pluginoutadapter.NewFileManifestStore(cfg.PluginsDir),
			pluginoutadapter.NewGRPCHost(log),
		),
		planUC,
	)

	log.Debug().Str("base_url", cfg.BaseURL).Str("data_dir", cfg.DataDir).Msg("planwise ready")

	return &App{
		Config:        cfg,
		Log:           log,
		SessionCLI:    sessioninadapter.NewCLIHandler(sessionUC),
		CatalogCLI:    cataloginadapter.NewCLIHandler(catalogUC),
		PlanCLI:       planinadapter.NewCLIHandler(planUC),
		HistoryCLI:    historyinadapter.NewCLIHandler(historyUC),
		ScheduleCLI:   scheduleinadapter.NewCLIHandler(scheduleUC),
		NavigationCLI: navigationinadapter.NewCLIHandler(navigationUC),
		ReportCLI:     reportinadapter.NewCLIHandler(reportUC),
		PluginCLI:     plugininadapter.NewCLIHandler(pluginUC),
		db:            db,
		logFile:       logFile,
	}, nil
}

// Close releases the state database and the log file.
func (a *App) Close() error {
	return errors.Join(a.db.Close(), a.logFile.Close())
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(uiapp.Ports{
		Session:    app.SessionCLI,
		Catalog:    app.CatalogCLI,
		Plan:       app.PlanCLI,
		History:    app.HistoryCLI,
		Schedule:   app.ScheduleCLI,
		Navigation: app.NavigationCLI,
		Report:     app.ReportCLI,
		Plugin:     app.PluginCLI,
	}, uiapp.Options{
		DataDir:       app.Config.DataDir,
		ExportDir:     filepath.Join(app.Config.DataDir, "reports"),
		DefaultTermID: app.Config.DefaultTermID,
	}, app.Log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
