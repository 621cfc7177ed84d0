package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jamjam-resort-api/analytics"
	"jamjam-resort-api/config"
	"jamjam-resort-api/handlers"
	"jamjam-resort-api/logger"
	"jamjam-resort-api/middleware"
	"jamjam-resort-api/routes"
	"jamjam-resort-api/seed"
	"jamjam-resort-api/services"
	"jamjam-resort-api/storage"
	"jamjam-resort-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log, err := logger.New(cfg.Logger())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set up logging")
	}
	gin.SetMode(cfg.GinMode)

	log.Info("🏨 Jam Jam Resort API Server")

	ctx := context.Background()
	awsCfg, err := cfg.AWS(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to load AWS configuration")
	}

	// Document store
	var db store.Store
	switch cfg.StoreDriver {
	case "sqlite":
		sq, err := store.OpenSQLite(cfg.SQLitePath, cfg.TablePrefix, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to open SQLite store")
		}
		defer sq.Close()
		db = sq
		log.WithField("path", cfg.SQLitePath).Info("✅ Using SQLite document store")
	default:
		db = store.NewDynamo(cfg.DynamoDB(awsCfg), cfg.TablePrefix, log)
		log.WithField("region", cfg.AWSRegion).Info("✅ Using DynamoDB document store")
	}

	loc, err := cfg.Location()
	if err != nil {
		log.WithError(err).Fatal("Invalid report time zone")
	}
	defaults, err := seed.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load default catalogue")
	}

	svc := services.New(db, time.Now, log)
	images := storage.NewS3Images(cfg.S3(awsCfg), storage.Options{
		Bucket: cfg.S3Bucket,
		Region: cfg.AWSRegion,
		Expiry: cfg.UploadURLExpiry,
	}, log)

	if cfg.InitMode {
		log.Info("🔧 Checking tables...")
		initCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		if _, err := svc.Initialize(initCtx, defaults); err != nil {
			cancel()
			log.WithError(err).Fatal("❌ Failed to initialize tables")
		}
		if err := images.EnsureBucket(initCtx); err != nil {
			log.WithError(err).Warn("⚠️ Image bucket unavailable; uploads will fail")
		} else if err := images.ConfigureCORS(initCtx); err != nil {
			log.WithError(err).Warn("⚠️ Could not apply bucket CORS")
		}
		cancel()
	}

	h := handlers.New(handlers.Options{
		Services: svc,
		Stats:    analytics.New(db, time.Now, loc, log),
		Images:   images,
		Defaults: defaults,
		Location: loc,
		Log:      log,
	})

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Register all routes
	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("🚀 Server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
