package main

import (
	"adboard/internal/config" // Custom import path (Config)
	"adboard/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Create tables, constraints and indexes
}
