package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"livelink/internal/audit"
	"livelink/internal/config"
	handlers "livelink/internal/handlers/admin"
	"livelink/internal/repositories/interfaces"
	"livelink/internal/repositories/mongodb"
	"livelink/internal/services"
	"livelink/pkg/cache"
	"livelink/pkg/database"
	"livelink/pkg/logger"
	"livelink/pkg/websocket"
	"livelink/routes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub(log, cfg.Audit.Room)
	go hub.Run(ctx)

	recorder := audit.NewRecorder(100)
	sinks := []audit.Notifier{recorder}
	checks := map[string]handlers.Pinger{}
	var auditLogs interfaces.AuditLogRepository

	if cfg.Audit.Log {
		auditLog, err := logger.NewAuditLogger(cfg.Logger)
		if err != nil {
			return fmt.Errorf("create audit logger: %w", err)
		}
		sinks = append(sinks, audit.NewLogNotifier(auditLog))
	}
	if cfg.Audit.WebSocket {
		sinks = append(sinks, audit.NewHubNotifier(hub, cfg.Audit.Room))
	}

	if cfg.Audit.Mongo {
		db, err := database.NewMongoDB(ctx, &database.DatabaseConfig{
			URI:            cfg.Database.URI,
			Database:       cfg.Database.Database,
			MaxPoolSize:    cfg.Database.MaxPoolSize,
			MinPoolSize:    cfg.Database.MinPoolSize,
			ConnectTimeout: cfg.Database.ConnectTimeout,
			SocketTimeout:  cfg.Database.SocketTimeout,
		})
		if err != nil {
			return fmt.Errorf("connect mongodb: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Warn("MongoDB disconnect failed")
			}
		}()

		if err := database.NewMigrator(db.Database, log).Up(ctx); err != nil {
			return fmt.Errorf("migrate mongodb: %w", err)
		}

		auditLogs = mongodb.NewAuditLogRepository(db.Database)
		sinks = append(sinks, audit.NewMongoNotifier(auditLogs))
		checks["mongodb"] = db
	}

	if cfg.Audit.Redis {
		rc, err := cache.NewRedisCache(ctx, &cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rc.Close()

		sinks = append(sinks, audit.NewRedisNotifier(rc, cfg.Audit.Channel))
		checks["redis"] = rc
	}

	adminService := services.NewAdminService(services.FixtureSeed(), services.Options{
		Notifier:     audit.Multi(sinks...),
		Logger:       log,
		Settings:     cfg.Settings,
		ExpiryWindow: cfg.ExpiryWindow(),
	})

	router, err := routes.NewRouter(routes.Dependencies{
		Config:    cfg,
		Logger:    log,
		Admin:     handlers.NewAdminHandler(adminService, auditLogs, recorder),
		Health:    handlers.NewHealthHandler(checks),
		WebSocket: websocket.NewHandler(hub, cfg.WebSocket.AllowedOrigins),
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{"addr": srv.Addr, "env": cfg.App.Environment}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
