package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/Foodgram_Go/internal/bootstrap"
	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/database/postgres"
)

// setup creates the database if needed, applies migrations and seeds the catalog
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Config{
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),
	}
	if cfg.DBName == "" {
		cfg.DBName = config.DefaultDBName
	}

	ctx := context.Background()
	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 4, time.Minute, 10*time.Minute)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	fmt.Println("Seeding catalog...")
	svc := catalog.NewService(postgres.NewCatalogRepository(pool), catalog.CacheConfig{})
	result, err := bootstrap.SeedCatalog(ctx, svc, config.SeedPathTags, config.SeedPathIngredients)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	fmt.Printf("Setup completed: %d new tags, %d new ingredients.\n", result.TagsWritten, result.IngredientsWritten)
}

// ensureDatabase creates cfg.DBName through the maintenance database when it is missing
func ensureDatabase(ctx context.Context, cfg config.Config) error {
	admin := cfg
	admin.DBName = "postgres"

	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
