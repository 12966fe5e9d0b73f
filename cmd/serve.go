package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"

	"github.com/alt-project/phonectl/internal/adapter/gateway"
	adapterhandler "github.com/alt-project/phonectl/internal/adapter/handler"
	infracache "github.com/alt-project/phonectl/internal/infrastructure/cache"
	infratoken "github.com/alt-project/phonectl/internal/infrastructure/token"
	"github.com/alt-project/phonectl/internal/usecase"
	appmiddleware "github.com/alt-project/phonectl/middleware"
	applogger "github.com/alt-project/phonectl/utils/logger"
	"github.com/alt-project/phonectl/utils/otel"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP lookup service",
	Long: `Run phonectl as an internal HTTP service exposing the phone-number
lookup over REST.

Routes:
  GET  /lookup?phone=<E.164>
  POST /lookup/batch
  GET  /health

Lookup routes require a bearer service token when SERVICE_TOKEN_SECRET
is configured.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	applogger.Init(otelCfg.Enabled)

	slog.InfoContext(ctx, "configuration loaded",
		"kratos_admin_url", cfg.KratosAdminURL,
		"port", cfg.Port,
		"cache_ttl", cfg.CacheTTL)

	// Infrastructure
	recordCache := infracache.NewRecordCache(cfg.CacheTTL)
	kratosGateway := gateway.NewKratosGateway(cfg.KratosAdminURL, cfg.KratosAdminToken, cfg.LookupTimeout)
	serviceToken := infratoken.NewServiceToken(infratoken.ServiceTokenConfig{
		Secret:   cfg.ServiceTokenSecret,
		Issuer:   cfg.ServiceTokenIssuer,
		Audience: cfg.ServiceTokenAudience,
	})

	// Usecases
	lookupUC := usecase.NewLookupUser(kratosGateway, recordCache, slog.Default())
	batchUC := usecase.NewLookupBatch(lookupUC, slog.Default())

	// Handlers
	lookupHandler := adapterhandler.NewLookupHandler(lookupUC)
	batchHandler := adapterhandler.NewBatchHandler(batchUC)
	healthHandler := adapterhandler.NewHealthHandler()

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(appmiddleware.SecurityHeaders())

	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"caller", appmiddleware.CallerSubject(c),
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(echomiddleware.Recover())

	// Rate limiters per endpoint group
	lookupRL := appmiddleware.NewRateLimiter(100.0/60.0, 10) // 100 req/min
	batchRL := appmiddleware.NewRateLimiter(10.0/60.0, 3)    // 10 req/min

	lookupGroup := e.Group("/lookup")
	if cfg.ServiceTokenSecret != "" {
		lookupGroup.Use(appmiddleware.ServiceAuth(serviceToken))
	} else {
		slog.Warn("SERVICE_TOKEN_SECRET not set, lookup endpoints are unauthenticated")
	}
	lookupGroup.GET("", lookupHandler.Handle, lookupRL.Middleware())
	lookupGroup.POST("/batch", batchHandler.Handle, batchRL.Middleware())

	e.GET("/health", healthHandler.Handle)

	address := fmt.Sprintf(":%s", cfg.Port)
	slog.InfoContext(ctx, "starting phone lookup server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server exited properly")
	return nil
}
