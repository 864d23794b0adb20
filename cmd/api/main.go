package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/audit"
	"github.com/BruksfildServices01/lily-salon/internal/config"
	dbpkg "github.com/BruksfildServices01/lily-salon/internal/db"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/logging"
	"github.com/BruksfildServices01/lily-salon/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	seed := flag.Bool("seed", false, "create the default manager and staff accounts when no users exist")
	flag.Parse()

	cfg := config.Load()
	log := logging.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg, log)
	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	if *seed {
		n, err := dbpkg.Seed(context.Background(), db, []dbpkg.SeedUser{
			{Username: "manager", Password: cfg.SeedManagerPassword, FirstName: "Salon", LastName: "Manager", Role: dto.RoleManager},
			{Username: "staff", Password: cfg.SeedStaffPassword, FirstName: "Salon", LastName: "Staff", Role: dto.RoleStaff},
		})
		if err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("seed finished", zap.Int("users_created", n))
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	r := gin.New()
	r.Use(logging.Middleware(log), gin.Recovery())
	routes.RegisterRoutes(r, db, cfg, auditDispatcher, log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("api listening", zap.String("addr", cfg.Addr()))
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
	auditDispatcher.Close()
}
