package main

import (
	"flag"
	"fittrack_backend/internal/app"
	"fittrack_backend/internal/config"
	"fittrack_backend/pkg/configwatcher"
	"log"
)

// @title Fittrack API
// @version 1.0
// @description REST backend for tracking fitness goals and progress entries.

// @contact.name Fittrack Support

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)

	if cfg.MigrateOnly {
		log.Println("Migrations complete, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
