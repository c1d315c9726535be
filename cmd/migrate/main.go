package main

import (
	"log"

	"abhi-advisor-be/internal/app"
	"abhi-advisor-be/internal/config"
)

func main() {
	cfg := config.Load()

	db, err := app.OpenDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Running AutoMigrate (%s)...", cfg.Database.Driver)
	if err := app.Migrate(db); err != nil {
		log.Fatalf("Error: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
