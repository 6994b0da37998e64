package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/docuchat/backend/internal/infrastructure/config"
	"github.com/docuchat/backend/internal/infrastructure/logger"
	"github.com/docuchat/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Applies the schema to the configured database without starting the
// server. The server runs the same migration on boot; this exists for
// provisioning pipelines that migrate before rolling out.
func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg.Log.Level = logLevel

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migration complete",
		zap.String("database", cfg.Database.DBName),
		zap.String("host", cfg.Database.Host),
	)
}
