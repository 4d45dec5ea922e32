package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status, reset)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status, reset")
	}

	ctx := context.Background()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "status":
		return database.MigrationStatus(ctx, pool)
	case "reset":
		if !confirm("This drops every table and re-applies all migrations. Continue?") {
			PrintWarning("Reset cancelled")
			return nil
		}
		if err := database.ResetSchema(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Schema reset")
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
	return nil
}

// confirm asks a yes/no question on stdin; anything but "yes" declines
func confirm(question string) bool {
	fmt.Printf("%s (type '%s'): ", question, confirmYes)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(answer) == confirmYes
}
