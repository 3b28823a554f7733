package main

import (
	"context"
	"flag"
	"log"

	"papi/internal/config"
	"papi/internal/datastore"
	"papi/internal/seed"
	"papi/internal/store"
)

func main() {
	force := flag.Bool("force", false, "overwrite collections that already exist")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	kv, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	log.Printf("Connected to %s store", cfg.StoreDriver)

	ds := datastore.New(kv)
	collections := seed.Collections()

	seeded := ds.Seed(context.Background(), collections, *force)

	log.Printf("Seed completed successfully!")
	log.Printf("  - Collections written: %d", seeded)
	log.Printf("  - Collections left untouched: %d", len(collections)-seeded)
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		return store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	case config.DriverMySQL:
		return store.NewMySQL(cfg.MySQLDSN)
	default:
		return store.NewFile(cfg.DataDir)
	}
}
