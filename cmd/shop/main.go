package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/adelacruz/campus-api/internal/events"
	"github.com/adelacruz/campus-api/internal/shop/httpserver"
	"github.com/adelacruz/campus-api/internal/shop/models"
	"github.com/adelacruz/campus-api/internal/shop/repo"
	"github.com/adelacruz/campus-api/internal/shop/service"
	"github.com/adelacruz/campus-api/pkg/config"
	"github.com/adelacruz/campus-api/pkg/db"
	"github.com/adelacruz/campus-api/pkg/logging"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", config.EnvDefault("SERVICE_NAME", "shop"))

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	if err := database.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	producer, err := events.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		log.Fatalf("kafka producer error: %v", err)
	}

	store := &repo.GormRepo{DB: database}
	pub := httpserver.Publisher{Producer: producer}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		UserHandler:    &httpserver.UserHTTP{Svc: &service.UserService{Repo: store}, Events: pub},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: store}, Events: pub},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: store}, Events: pub},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := db.Close(database); err != nil {
		log.Printf("db close error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("producer close error: %v", err)
	}

	log.Println("shutdown complete")
}
