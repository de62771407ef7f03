package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shareit-backend/internal/gateway"
	"shareit-backend/internal/platform/clock"
	"shareit-backend/internal/platform/config"
	"shareit-backend/internal/platform/httpx"
)

func main() {
	configPath := flag.String("config", "", "path to gateway config (default config/gateway.yaml)")
	flag.Parse()

	cfg, err := config.LoadGateway(config.ResolvePath(*configPath, "config/gateway.yaml"))
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] mode:%s upstream:%s", cfg.Mode, cfg.ServerURL)

	r := httpx.NewEngine(cfg.Mode == config.ModeDev)
	h := gateway.NewHandler(gateway.NewClient(cfg.ServerURL, cfg.Timeout), clock.Real())
	gateway.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("[INFO] listening on http://%s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
