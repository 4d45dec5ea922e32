package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")
	dbURL := databaseURL()

	var err error
	for i := 0; i < dbRetryAttempts; i++ {
		if err = ping(dbURL); err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, dbRetryAttempts, err)
		time.Sleep(dbRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", dbRetryAttempts, err)
}

func ping(dbURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbRetryInterval)
	defer cancel()

	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
