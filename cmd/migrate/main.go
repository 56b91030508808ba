// Command migrate applies the database schema for environments where the
// server does not auto-migrate on startup.
package main

import (
	"fmt"
	"log"

	"fitlink/internal/config"
	"fitlink/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return err
	}

	log.Printf("schema migration applied (env=%s db=%s)", cfg.Env, cfg.DBName)
	return nil
}
