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
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "shareit-backend/docs"
	"shareit-backend/internal/bookings"
	"shareit-backend/internal/items"
	"shareit-backend/internal/platform/clock"
	"shareit-backend/internal/platform/config"
	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/platform/httpx"
	"shareit-backend/internal/platform/jsontime"
	"shareit-backend/internal/requests"
	"shareit-backend/internal/users"
)

func main() {
	configPath := flag.String("config", "", "path to server config (default config/server.yaml)")
	flag.Parse()

	// 設定読み込み
	cfg, err := config.LoadServer(config.ResolvePath(*configPath, "config/server.yaml"))
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] mode:%s version:%s", cfg.Mode, cfg.Version)

	loc, _ := cfg.Location()
	jsontime.Location = loc

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	defer conn.Close()
	log.Printf("[INFO] connected to DB: driver=%s", conn.DriverName())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.Migrate(ctx, conn)
	cancel()
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}

	dev := cfg.Mode == config.ModeDev
	r := httpx.NewEngine(dev)
	if dev {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	registerRoutes(r, conn)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		var err error
		if cfg.TLSEnabled() {
			log.Printf("[INFO] listening on https://%s", cfg.Addr)
			err = srv.ListenAndServeTLS(cfg.Certificate.Cert, cfg.Certificate.Key)
		} else {
			log.Printf("[INFO] listening on http://%s", cfg.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func registerRoutes(r gin.IRoutes, conn *sqlx.DB) {
	clk := clock.Real()
	users.RegisterRoutes(r, users.NewService(conn))
	items.RegisterRoutes(r, items.NewService(conn, clk))
	bookings.RegisterRoutes(r, bookings.NewService(conn, clk))
	requests.RegisterRoutes(r, requests.NewService(conn, clk))
}
