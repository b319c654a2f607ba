package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/yl-doc/gearadvisor/api"
	"github.com/yl-doc/gearadvisor/config"
	"github.com/yl-doc/gearadvisor/gateway"
	"github.com/yl-doc/gearadvisor/intent"
	"github.com/yl-doc/gearadvisor/profile"
	"github.com/yl-doc/gearadvisor/prompt"
	"github.com/yl-doc/gearadvisor/service"
	"github.com/yl-doc/gearadvisor/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Debugf(".env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.Info("Starting advisor server...")
	log.Infof("HTTP port: %d", cfg.HTTPPort)
	log.Infof("Model: %s", cfg.Model)

	ctx := context.Background()

	// Profile workbook is read once at startup.
	profiles, err := profile.LoadExcel(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("failed to load profiles: %v", err)
	}
	log.Infof("Loaded %d user profiles from %s", profiles.Len(), cfg.ProfilePath)

	var st store.Store
	if cfg.SessionDSN != "" {
		st, err = store.NewSQLiteStore(cfg.SessionDSN)
		if err != nil {
			log.Fatalf("failed to initialize session store: %v", err)
		}
		log.Infof("Session store: sqlite (%s)", cfg.SessionDSN)
	} else {
		st = store.NewMemoryStore(cfg.MaxSessionTurns)
		log.Info("Session store: in-memory")
	}
	defer st.Close()

	gen, err := gateway.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.Model)
	if err != nil {
		log.Fatalf("failed to initialize generator: %v", err)
	}
	defer gen.Close()

	engine, err := intent.NewEngine(ctx, intent.DefaultPolicy)
	if err != nil {
		log.Fatalf("failed to initialize intent engine: %v", err)
	}
	classifier := intent.NewClassifier(engine)

	persona := ""
	if cfg.PersonaPromptPath != "" {
		b, err := os.ReadFile(cfg.PersonaPromptPath)
		if err != nil {
			log.Warnf("failed to read persona prompt, using built-in: %v", err)
		} else {
			persona = string(b)
		}
	}

	svc := service.New(st, gen, profiles, classifier, prompt.NewSet(persona), cfg.GenerateTimeout)
	h := api.NewHandler(svc, st)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	log.Infof("API started on port %d", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down advisor server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shutdown server gracefully: %v", err)
	}

	log.Info("Advisor server stopped")
}
