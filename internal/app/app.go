package app

import (
	"context"
	"fmt"

	"github.com/mishpatech/lawdocs-backend/internal/db"
	"github.com/mishpatech/lawdocs-backend/internal/formschema"
	internalhttp "github.com/mishpatech/lawdocs-backend/internal/http"
	"github.com/mishpatech/lawdocs-backend/internal/observability"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

const serviceName = "lawdocs-backend"

type App struct {
	Log    *logger.Logger
	Config Config
	Server *internalhttp.Server

	clients      Clients
	database     *db.DatabaseService
	otelShutdown func(context.Context) error
}

// New wires the whole application. Only the document-generation path is
// required; database, Drive, Redis, GCS and Groq are attached when their env
// is present and skipped with a warning when it is not.
func New(ctx context.Context, log *logger.Logger) (*App, error) {
	cfg := LoadConfig(log)

	var otelShutdown func(context.Context) error
	if observability.Enabled() {
		otelShutdown = observability.Init(ctx, log, observability.Config{
			ServiceName: serviceName,
			Environment: cfg.Environment,
		})
	}

	clients := wireClients(ctx, log)

	var database *db.DatabaseService
	if d, err := db.NewDatabaseService(log); err != nil {
		log.Warn("database unavailable, submission records disabled", "error", err)
	} else if err := d.AutoMigrateAll(); err != nil {
		log.Warn("database migration failed, submission records disabled", "error", err)
	} else {
		database = d
	}

	schema, err := formschema.Load(cfg.FormSchemaPath)
	if err != nil {
		return nil, fmt.Errorf("load form schema: %w", err)
	}

	repos := wireRepos(database, log)
	svcs := wireServices(log, cfg, clients, database, repos)
	handlers := wireHandlers(log, cfg, svcs, schema)

	server := internalhttp.NewServer(internalhttp.RouterConfig{
		Log:               log,
		HealthHandler:     handlers.Health,
		DocumentHandler:   handlers.Document,
		SchemaHandler:     handlers.Schema,
		SubmissionHandler: handlers.Submission,
		AuthMiddleware:    handlers.Auth,
		ServiceName:       serviceName,
		Tracing:           observability.Enabled(),
	})

	return &App{
		Log:          log,
		Config:       cfg,
		Server:       server,
		clients:      clients,
		database:     database,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	addr := ":" + a.Config.Port
	a.Log.Info("starting http server", "addr", addr, "env", a.Config.Environment)
	return a.Server.Run(addr)
}

func (a *App) Close(ctx context.Context) {
	if a.clients.Cache != nil {
		if err := a.clients.Cache.Close(); err != nil {
			a.Log.Warn("closing redis", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown", "error", err)
		}
	}
}
