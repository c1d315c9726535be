package main

import (
	"context"
	"log"
	"os"

	"abhi-advisor-be/internal/app"
	"abhi-advisor-be/internal/config"
	"abhi-advisor-be/internal/pkg/logger"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := app.OpenDatabase(cfg.Database)
	if err != nil {
		color.Red("✗ Failed to connect to database: %v", err)
		os.Exit(1)
	}
	if err := app.Migrate(db); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	summary, err := app.Seed(context.Background(), db, sysLogger)
	if err != nil {
		color.Red("✗ Seeding failed: %v", err)
		os.Exit(1)
	}

	bold := color.New(color.Bold)
	bold.Println("Seed summary")
	green := color.New(color.FgGreen).SprintFunc()
	rows := []struct {
		label string
		count int
	}{
		{"advisors", summary.Users},
		{"exemptions", summary.Exemptions},
		{"policies", summary.Policies},
		{"competitor policies", summary.Competitors},
		{"customers", summary.Customers},
	}
	for _, r := range rows {
		log.Printf("  %-20s %s", r.label, green(r.count))
	}
	if summary.Skipped > 0 {
		color.Yellow("  %d existing rows left unchanged", summary.Skipped)
	}
	color.Green("✓ Done")
}
