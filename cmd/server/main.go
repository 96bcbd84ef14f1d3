package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/overlaylab/rtsp-overlay/internal/config"
	"github.com/overlaylab/rtsp-overlay/internal/es"
	"github.com/overlaylab/rtsp-overlay/internal/events"
	"github.com/overlaylab/rtsp-overlay/internal/httpserver"
	"github.com/overlaylab/rtsp-overlay/internal/logging"
	"github.com/overlaylab/rtsp-overlay/internal/middleware"
	"github.com/overlaylab/rtsp-overlay/internal/repo"
	"github.com/overlaylab/rtsp-overlay/internal/service"
	"github.com/overlaylab/rtsp-overlay/internal/service/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(middleware.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	esClient, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
	if err != nil {
		log.Fatalf("elasticsearch init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaAddress)
	defer producer.Close()

	gormRepo := &repo.GormRepo{DB: db}

	authHTTP := &httpserver.AuthHTTP{
		Svc: &service.AuthService{
			Repo:          gormRepo,
			JWTSecret:     cfg.JWTSecret,
			RefreshSecret: cfg.RefreshSecret,
			Producer:      producer,
		},
	}
	overlayHTTP := &httpserver.OverlayHTTP{
		Svc: &service.OverlayService{
			Repo:     gormRepo,
			Producer: producer,
			ES:       esClient,
			ESIndex:  search.OverlayIndex,
		},
	}
	settingsHTTP := &httpserver.SettingsHTTP{
		Svc: &service.SettingsService{
			Repo:             gormRepo,
			DefaultStreamURL: cfg.DefaultStreamURL,
		},
	}

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:     authHTTP,
		OverlayHandler:  overlayHTTP,
		SettingsHandler: settingsHTTP,
		JWTSecret:       cfg.JWTSecret,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
