package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/assist"
	"resume-builder-backend/internal/examples"
	"resume-builder-backend/internal/export"
	"resume-builder-backend/internal/publish"
	"resume-builder-backend/internal/registrar"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/internal/sites"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ResumesRepo resumes.Repo
	SitesRepo   sites.Repo
	Registrar   registrar.Client
	Generator   assist.Generator
	PDFRenderer export.Renderer

	ResumesService *resumes.Service
	PublishService *publish.Service
	AssistService  *assist.Service
	ExportService  *export.Service

	ResumesHandler  *resumes.Handler
	PublishHandler  *publish.Handler
	SitesHandler    *sites.Handler
	AssistHandler   *assist.Handler
	ExportHandler   *export.Handler
	ExamplesHandler *examples.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ResumesHandler:  app.ResumesHandler,
		PublishHandler:  app.PublishHandler,
		SitesHandler:    app.SitesHandler,
		AssistHandler:   app.AssistHandler,
		ExportHandler:   app.ExportHandler,
		ExamplesHandler: app.ExamplesHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.SitesRepo = &sites.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.SitesRepo = sites.NewMemoryRepo()
	}

	app.Registrar = registrar.NewNameClient(
		app.Config.NameAPIURL,
		app.Config.NameUsername,
		app.Config.NameAPIKey,
	)

	app.Generator = assist.Generator(assist.PlaceholderGenerator{})
	if app.Config.GeminiAPIKey != "" {
		gen, err := assist.NewGeminiGenerator(context.Background(), app.Config.GeminiAPIKey, app.Config.GeminiModel)
		if err != nil {
			return err
		}
		app.Generator = gen
	}

	app.PDFRenderer = export.NewChromeRenderer(app.Config.ChromePath)

	samples, err := examples.Load()
	if err != nil {
		return err
	}

	app.ResumesService = resumes.NewService(app.ResumesRepo)
	app.PublishService = publish.NewService(app.ResumesRepo, app.SitesRepo, app.Registrar, app.Config.Env)
	app.AssistService = assist.NewService(app.Generator)
	app.ExportService = export.NewService(app.ResumesRepo, app.PDFRenderer)

	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.PublishHandler = publish.NewHandler(app.PublishService)
	app.SitesHandler = sites.NewHandler(app.SitesRepo)
	app.AssistHandler = assist.NewHandler(app.AssistService)
	app.ExportHandler = export.NewHandler(app.ExportService)
	app.ExamplesHandler = examples.NewHandler(samples)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
