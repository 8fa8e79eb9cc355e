package main

import (
	"ReliefStock-Backend/cmd/config"
	migration "ReliefStock-Backend/cmd/database/migrate"
	"ReliefStock-Backend/internal/utils"
	"context"
	"log"
	"time"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed connecting to database: %v", err)
	}

	mongoDB, err := config.ConnectMongo()
	if err != nil {
		log.Fatalf("failed connecting to mongo: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed migrating database: %v", err)
	}

	app, alertService, err := config.NewApp(db, mongoDB)
	if err != nil {
		log.Fatalf("failed setting up app: %v", err)
	}

	// Background expiry sweep. The same check is exposed on POST
	// /api/v1/alerts/check for manual runs.
	interval := utils.GetConfigInt("ALERT_CHECK_INTERVAL_MINUTES", 60)
	go func() {
		ticker := time.NewTicker(time.Duration(interval) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			if _, err := alertService.GenerateAlerts(ctx, 0); err != nil {
				log.Printf("scheduled expiry check failed: %v", err)
			}
			cancel()
		}
	}()

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("failed starting server: %v", err)
	}
}
