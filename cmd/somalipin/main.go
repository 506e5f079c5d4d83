package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/lafoolehh-stack/SomaliPin-V1/client"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/config"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/infra/backend"
	infracache "github.com/lafoolehh-stack/SomaliPin-V1/internal/infra/cache"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/infra/database"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/infra/gateway"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/present/rest"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/present/rest/middleware"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/service"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/usecase"
)

const summaryTTL = time.Hour

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		// A missing or broken config is not fatal: the directory still
		// renders from the bundled dataset.
		slog.Warn("config not loaded, starting in demo mode",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
	}

	if conf.Server.EnableTrace {
		shutdown, err := setupTracer(conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
		} else {
			defer shutdown()
		}
	}

	mock := backend.NewMock()
	var dossiers usecase.DossierBackend = mock
	var images usecase.ImageStore = mock
	mode := "demo"

	switch {
	case conf.Server.PostgresDsn != "":
		db, err := database.NewPostgres(conf.Server.PostgresDsn)
		if err != nil {
			slog.Error("failed to connect database", slog.String("error", err.Error()))
			return
		}
		if err := database.MigratePostgres(db); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			return
		}
		dossiers = backend.NewPostgres(db)
		mode = "postgres"
		// Image storage still needs the hosted bucket.
		if client.IsConfigured(conf.Supabase.URL, conf.Supabase.AnonKey) {
			images = backend.NewSupabase(client.New(conf.Supabase.URL, conf.Supabase.AnonKey), conf.Supabase.StorageBucket)
		}
	case client.IsConfigured(conf.Supabase.URL, conf.Supabase.AnonKey):
		sb := backend.NewSupabase(client.New(conf.Supabase.URL, conf.Supabase.AnonKey), conf.Supabase.StorageBucket)
		dossiers = sb
		images = sb
		mode = "supabase"
	default:
		slog.Info("no backend configured, serving the bundled dataset")
	}

	var summaries gateway.SummaryCache
	switch {
	case conf.Server.RedisAddr != "":
		summaries = infracache.NewRedis(database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB), summaryTTL)
	case conf.Server.MemcachedAddr != "":
		summaries = infracache.NewMemcached(database.NewMemcached(conf.Server.MemcachedAddr), summaryTTL)
	}

	archivist := gateway.NewArchivist(conf.Archivist.APIKey, conf.Archivist.BaseURL, conf.Archivist.Model, summaries)
	directory := usecase.NewDirectoryUsecase(dossiers, images)
	search := usecase.NewSearchUsecase(directory, archivist)
	auth := service.NewAuthService(conf.Admin.Secret)

	h := rest.NewHandler(directory, search, auth, mode)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("somalipin"))
	}

	h.RegisterRoutes(e, middleware.NewAdminMiddleware(auth))

	slog.Info("starting somalipin", slog.String("addr", conf.Server.ListenAddr), slog.String("mode", mode))
	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}

func setupTracer(endpoint string) (func(), error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "somalipin"),
		)),
	)
	otel.SetTracerProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down tracer", slog.String("error", err.Error()))
		}
	}, nil
}
