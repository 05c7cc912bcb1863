package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/dailyjournal/journal/internal/config"
	"github.com/dailyjournal/journal/internal/middleware"
	"github.com/dailyjournal/journal/internal/rest"
	"github.com/dailyjournal/journal/journal/application"
	"github.com/dailyjournal/journal/journal/domain"
	"github.com/dailyjournal/journal/journal/persistence"
	"github.com/dailyjournal/journal/shared/db/sqlite"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Load()

	// Initialize storage
	var repo domain.PostRepository
	switch cfg.Storage {
	case config.StorageDocument:
		repo = persistence.NewDocumentPostRepository(cfg.DocumentPath)
		log.Info().Str("path", cfg.DocumentPath).Msg("Using document storage")
	case config.StorageSQLite:
		database := sqlite.NewSQLiteDB(&sqlite.Config{Path: cfg.DBPath})
		if err := database.Connect(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer database.Close()
		repo = persistence.NewSQLitePostRepository(database.DB())
		log.Info().Str("path", cfg.DBPath).Msg("Using sqlite storage")
	default:
		log.Fatal().Str("storage", cfg.Storage).Msg("Unknown storage backend")
	}

	postService := application.NewPostService(repo)

	r := gin.New()
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))
	r.Use(middleware.CORS())

	rest.NewApi(r, postService)

	if cfg.PublicDir != "" {
		registerFrontend(r, cfg.PublicDir)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Info().Msg("Starting server on " + cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}

// registerFrontend serves the static frontend, falling back to index.html
// for unmatched paths so client-side routing works.
func registerFrontend(r *gin.Engine, publicDir string) {
	r.NoRoute(func(c *gin.Context) {
		requested := filepath.Join(publicDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(publicDir, "index.html"))
	})
}
