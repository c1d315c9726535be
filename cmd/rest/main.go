package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"abhi-advisor-be/internal/app"
	"abhi-advisor-be/internal/bootstrap"
	"abhi-advisor-be/internal/config"
	"abhi-advisor-be/internal/server"
	"abhi-advisor-be/internal/tracer"

	"github.com/getsentry/sentry-go"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Error reporting and tracing
	if cfg.Observability.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Observability.SentryDSN,
			Environment: cfg.App.Environment,
		}); err != nil {
			log.Printf("[WARN] Sentry init failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	shutdownTracer := tracer.InitTracer(cfg.Observability)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := app.OpenDatabase(cfg.Database)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if cfg.Database.AutoMigrate {
		if err := app.Migrate(gormDB); err != nil {
			log.Panicf("Migration failed: %v", err)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	if cfg.Database.SeedOnStart {
		summary, err := app.SeedIfEmpty(context.Background(), gormDB, container.Logger)
		if err != nil {
			log.Printf("[WARN] Seeding failed: %v", err)
		} else if summary != nil {
			log.Printf("[INFO] Seeded %d customers, %d policies", summary.Customers, summary.Policies)
		}
	}

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(ctx); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
