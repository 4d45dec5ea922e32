package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// databaseURL prefers DB_URL and otherwise builds one from the DB_* variables
func databaseURL() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}
	cfg := config.Config{
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", config.DefaultDBName),
	}
	return cfg.GetDBConnString()
}

// redactPassword masks the password of a connection URL for display
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		return "<unparsable connection string>"
	}
	return u.Redacted()
}

// openPool connects to the configured database with a small pool
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))
	pool, err := database.NewPool(ctx, dbURL, 4, time.Minute, 10*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}
