// @title Trà Sữa POS API
// @version 1.0
// @description Backend for the milk tea shop point of sale.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trasua/internal/auth"
	"trasua/internal/config"
	httpapi "trasua/internal/http"
	"trasua/internal/repository"
	"trasua/internal/service"

	_ "trasua/docs"
)

func main() {
	cfg := config.FromEnv()

	var store repository.Store
	if cfg.MySQL.Host != "" {
		sqlStore, err := repository.OpenMySQL(cfg.MySQL.DSN())
		if err != nil {
			log.Fatalf("mysql: %v", err)
		}
		if err := sqlStore.AutoMigrate(); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		store = sqlStore
		log.Printf("using mysql store at %s", cfg.MySQL.Host)
	} else {
		store = repository.NewMemoryStore()
		log.Print("using in-memory store")
	}

	if cfg.SeedDemo {
		if err := repository.SeedDemo(context.Background(), store); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	tokens := auth.NewManager(cfg.JWTSecret)
	srv := httpapi.NewServer(cfg.PrefixAPI,
		service.NewCatalogService(store),
		service.NewCartService(store, store),
		service.NewOrderService(store, store, store),
		service.NewRevenueService(store),
		service.NewAuthService(store, tokens),
	)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
