package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"restaurantform/docs"
	"restaurantform/internal/applog"
	"restaurantform/internal/config"
	"restaurantform/internal/form"
	handlers "restaurantform/internal/http/handler"
	"restaurantform/internal/http/middleware"
	"restaurantform/internal/metrics"
	"restaurantform/internal/model"
	appotel "restaurantform/internal/otel"
	"restaurantform/internal/service"
	"restaurantform/internal/view"
)

// @title Restaurant Form API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	logger := applog.New(os.Stdout, loc)
	applog.SetDefault(logger)

	shutdownTracing, err := appotel.Init(context.Background(), logger)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	// Root: owns the restaurant list
	restaurants := service.NewRestaurantService(logger)

	renderer, err := view.NewRenderer(cfg.PageTitle)
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}
	container, err := view.NewContainer(renderer, logger)
	if err != nil {
		log.Fatalf("failed to render restaurants: %v", err)
	}
	restaurants.Subscribe(container.Update)

	// Every page session submits into Root's append
	sessions := form.NewSessions(func(ctx context.Context, d model.RestaurantDraft) {
		restaurants.Append(ctx, d)
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	if cfg.DraftIdleTimeout > 0 {
		go sessions.EvictIdle(ctx, time.Minute, cfg.DraftIdleTimeout)
	}

	deps := handlers.Dependencies{
		Restaurants: restaurants,
		Sessions:    sessions,
		Constraints: form.NewConstraints(),
		Renderer:    renderer,
		Container:   container,
	}

	app := fiber.New(handlers.AppConfig())

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			log.Fatalf("failed to register http metrics: %v", err)
		}
		app.Use(promMiddleware.Handler())

		domainMetrics, err := metrics.NewRestaurants(reg)
		if err != nil {
			log.Fatalf("failed to register restaurant metrics: %v", err)
		}
		restaurants.Subscribe(domainMetrics.ObserveList)
		sessions.OnCount(domainMetrics.SessionsOpen)

		deps.Metrics = domainMetrics
		deps.Gatherer = reg
	}

	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info(map[string]any{"msg": "shutdown_started"})
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			logger.Error(map[string]any{"msg": "shutdown_failed", "error": err.Error()})
		}
	}()

	addr := ":" + cfg.Port
	logger.Info(map[string]any{"msg": "server_starting", "addr": addr, "app_host": cfg.AppHost})

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error(map[string]any{"msg": "tracing_shutdown_failed", "error": err.Error()})
	}
}
