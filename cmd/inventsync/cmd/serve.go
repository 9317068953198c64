package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sunraincyq/inventsync-app/internal/api/handlers"
	"github.com/sunraincyq/inventsync-app/internal/api/middleware"
	"github.com/sunraincyq/inventsync-app/internal/config"
	"github.com/sunraincyq/inventsync-app/internal/ebay"
	"github.com/sunraincyq/inventsync-app/internal/publish"
	"github.com/sunraincyq/inventsync-app/internal/store"
	"github.com/sunraincyq/inventsync-app/pkg/logger"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cmdLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(),
		store.WithPoolSize(cfg.Database.PoolSize))
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	clients := sellClientFactory(cfg.Ebay)
	publisher := publish.NewPublisher(st, clients, appLog)
	connector := publish.NewConnector(st, clients, appLog)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(appLog))
	e.Use(middleware.RequestLog(appLog))
	e.Use(middleware.Metrics())

	registerRoutes(e, st, connector, publisher)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	cmdLog.Info("starting server", "addr", addr)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cmdLog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cmdLog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	cmdLog.Info("server stopped")
	return nil
}

// sellClientFactory builds per-connection Sell API clients with the
// configured environment base URLs.
func sellClientFactory(cfg config.EbayConfig) publish.ClientFactory {
	return func(creds domain.Credentials) ebay.Client {
		base := cfg.ProductionURL
		if creds.Sandbox {
			base = cfg.SandboxURL
		}
		return ebay.NewSellClient(creds.AccessToken, creds.Sandbox,
			ebay.WithBaseURL(base),
			ebay.WithMarketplace(cfg.Marketplace),
			ebay.WithLocationKey(cfg.LocationKey),
		)
	}
}

func registerRoutes(
	e *echo.Echo,
	st store.Store,
	connector *publish.Connector,
	publisher *publish.Publisher,
) {
	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	products := handlers.NewProductHandler(st)
	e.GET("/api/products", products.List)
	e.POST("/api/products", products.Create)
	e.GET("/api/products/:id", products.Get)
	e.PUT("/api/products/:id", products.Update)
	e.DELETE("/api/products/:id", products.Delete)

	eb := handlers.NewEbayHandler(st, connector, publisher)
	e.GET("/api/ebay/connection", eb.GetConnection)
	e.POST("/api/ebay/connect", eb.Connect)
	e.POST("/api/ebay/disconnect", eb.Disconnect)
	e.POST("/api/ebay/list/:productId", eb.Publish)
	e.GET("/api/ebay/listings", eb.Listings)
	e.GET("/api/ebay/listings/:productId", eb.ProductListing)
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
