// @title EduHub Backend API
// @version 1.0
// @description Data access and analytics service for the EduHub e-learning platform.

// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"flag"
	"log"

	"eduhub_backend/internal/app"
	"eduhub_backend/internal/config"
	"eduhub_backend/pkg/logger"
)

func main() {
	seed := flag.Bool("seed", false, "populate sample data before starting the server")
	seedOnly := flag.Bool("seed-only", false, "populate sample data and exit")
	export := flag.Bool("export", false, "export all collections to JSON and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Log.Sync()

	ctx := context.Background()

	if *seed || *seedOnly {
		if _, err := application.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed sample data: %v", err)
		}
		if *seedOnly {
			log.Println("Sample data populated, exiting")
			return
		}
	}

	if *export {
		file, _, err := application.Export(ctx)
		if err != nil {
			log.Fatalf("Failed to export database: %v", err)
		}
		log.Printf("Database exported to %s", file)
		return
	}

	application.Run()
}
