package main

import (
	"context"
	"flag"
	"log"
	"time"

	"skill-gap/internal/config"
	"skill-gap/internal/database/migration"
	dbpostgres "skill-gap/internal/database/postgres"
	"skill-gap/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "migrations directory")
	skipSeed := flag.Bool("skip-seed", false, "run migrations only")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	r := migration.Runner{Dir: *migrationsDir}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("[Seed] migrations applied")

	if *skipSeed {
		return
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("[Seed] taxonomy and demo jobs seeded")
}
