package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/config"
	"github.com/BruksfildServices01/lily-salon/internal/infra/apiclient"
	"github.com/BruksfildServices01/lily-salon/internal/logging"
	"github.com/BruksfildServices01/lily-salon/internal/routes"
	"github.com/BruksfildServices01/lily-salon/internal/session"
	"github.com/BruksfildServices01/lily-salon/internal/timezone"
	"github.com/BruksfildServices01/lily-salon/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ======================================================
	// SESSION STORE
	// ======================================================
	var (
		store session.Store
		ready func(ctx context.Context) error
	)
	switch cfg.SessionStore {
	case "memory":
		log.Warn("using in-memory session store; sessions are lost on restart")
		store = session.NewMemoryStore()
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		rs := session.NewRedisStore(rdb)
		if err := rs.Ping(context.Background()); err != nil {
			log.Warn("redis not reachable at startup", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		store = rs
		ready = rs.Ping
	}
	sessions := session.NewManager(store, cfg.SessionPrefix)

	// ======================================================
	// METRICS
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	apiMetrics := apiclient.NewMetrics()
	if err := apiMetrics.Register(reg); err != nil {
		log.Fatal("register metrics failed", zap.Error(err))
	}

	// ======================================================
	// API CLIENT
	// ======================================================
	client, err := apiclient.New(cfg.APIBaseURL,
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}),
		apiclient.WithAuthScheme(cfg.APIAuthScheme),
		apiclient.WithLogger(log),
		apiclient.WithMetrics(apiMetrics),
	)
	if err != nil {
		log.Fatal("invalid api base url", zap.Error(err))
	}

	if !timezone.IsValid(cfg.SalonTimezone) {
		log.Warn("invalid salon timezone, using default",
			zap.String("timezone", cfg.SalonTimezone),
			zap.String("default", timezone.DefaultTimezone),
		)
	}

	h := web.New(web.Options{
		API:          client,
		Sessions:     sessions,
		Clock:        timezone.SalonClock(cfg.SalonTimezone),
		Log:          log,
		CookieName:   cfg.SessionCookie,
		SecureCookie: cfg.IsProduction(),
	})

	r := gin.New()
	r.Use(logging.Middleware(log), gin.Recovery())
	routes.RegisterConsoleRoutes(r, routes.Console{
		Handler:    h,
		Sessions:   sessions,
		CookieName: cfg.SessionCookie,
		Log:        log,
		Ready:      ready,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:              cfg.ConsoleAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("console listening",
			zap.String("addr", cfg.ConsoleAddr()),
			zap.String("api", cfg.APIBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
