package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gita-explorer-api/internal/config"
	"github.com/gita-explorer-api/internal/handlers"
	"github.com/gita-explorer-api/internal/middleware"
	"github.com/gita-explorer-api/internal/services"
	"github.com/gita-explorer-api/internal/startup"
	"github.com/gita-explorer-api/internal/voice"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	// Load the corpus once; it is read-only from here on
	ctx := context.Background()
	gita, err := startup.LoadCorpus(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware(cfg))

	// Create services
	verseSearchSvc := services.NewVerseSearchService(gita)
	capturer := voice.NewCapturer(cfg.VoiceCommand, cfg.VoiceTimeout)

	searchHandler := handlers.NewSearchHandler(verseSearchSvc)
	voiceHandler := handlers.NewVoiceHandler(capturer)

	// Explorer page and the routes it calls live at the root
	handlers.NewPageHandler().RegisterRoutes(e)
	root := e.Group("")
	searchHandler.RegisterRoutes(root)
	voiceHandler.RegisterRoutes(root)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	source := cfg.CorpusBackend
	if source == config.BackendFile {
		source = cfg.CorpusPath
	}
	healthHandler := handlers.NewHealthHandler(gita, source)
	healthHandler.RegisterRoutes(api)
	searchHandler.RegisterRoutes(api)
	voiceHandler.RegisterRoutes(api)

	api.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server stopped")
}
