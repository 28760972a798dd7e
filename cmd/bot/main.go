package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kurator/config"
	"kurator/internal/bot"
	"kurator/internal/catalog"
	"kurator/internal/database"
	"kurator/internal/repository"
	"kurator/internal/router"
	"kurator/internal/service"
	"kurator/internal/ws"
)

func main() {
	cfg := config.Load()
	if cfg.Telegram.Token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cat := catalog.New()
	if err := database.SeedCourseCache(db, cat); err != nil {
		log.Fatalf("seed courses: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	clickRepo := repository.NewClickRepository(db)

	feed := ws.NewHub()
	registry := service.NewRegistryService(userRepo)
	tracker := service.NewTrackerService(userRepo, clickRepo, feed)

	tgBot, err := bot.New(&cfg.Telegram, registry, tracker, cat)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}

	engine := router.Setup(cfg, tracker, feed)
	srv := &http.Server{
		Addr:         ":" + cfg.Admin.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Admin.ReadTimeout,
		WriteTimeout: cfg.Admin.WriteTimeout,
	}
	go func() {
		log.Printf("admin API listening on :%s", cfg.Admin.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		log.Printf("bot started, %d courses in catalog", cat.Len())
		if err := tgBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("bot stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	log.Println("stopped")
}
