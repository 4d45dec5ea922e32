package main

import (
	"fmt"
	"strings"
)

const composeDBService = "db"

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Start the compose database if needed and wait until it accepts connections"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking Docker database status...")

	if err := runCommand("docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose not found, please install Docker Compose")
	}

	if composeServiceRunning(composeDBService) {
		PrintSuccess("Database container is running")
	} else {
		PrintInfo("Starting database container...")
		if err := runCommandVerbose("docker", "compose", "up", "-d", composeDBService); err != nil {
			return fmt.Errorf("error starting database: %w", err)
		}
	}

	if err := (&WaitForDBCommand{}).Run(nil); err != nil {
		_ = runCommandVerbose("docker", "compose", "logs", "--tail", "50", composeDBService)
		return err
	}

	PrintSuccess("Database check complete")
	return nil
}

func composeServiceRunning(service string) bool {
	out, err := getCommandOutput("docker", "compose", "ps", "--status", "running", "--services")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == service {
			return true
		}
	}
	return false
}
