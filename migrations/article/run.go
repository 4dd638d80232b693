package main

import (
	"context"
	"embed"

	"github.com/ghuser/medsupply/pkg/config"
	"github.com/ghuser/medsupply/pkg/logger"
	"github.com/ghuser/medsupply/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg)
	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, MigrationsFS, log); err != nil {
		log.Error("migration failed", "error", err)
		panic(err)
	}
}
