package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func printColored(color, prefix, format string, a ...any) {
	fmt.Printf(color+prefix+format+colorReset+"\n", a...)
}

func PrintInfo(format string, a ...any)    { printColored(colorBlue, "ℹ ", format, a...) }
func PrintSuccess(format string, a ...any) { printColored(colorGreen, "✓ ", format, a...) }
func PrintWarning(format string, a ...any) { printColored(colorYellow, "⚠ ", format, a...) }
func PrintError(format string, a ...any)   { printColored(colorRed, "✗ ", format, a...) }

func PrintHeader(title string) {
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// shellPatterns never appear in the docker compose arguments devtool builds
var shellPatterns = []string{"|", "`", "$(", "&&", "||", ">", "<", ";"}

// checkHostile rejects arguments that look like shell injection. Values
// come from the environment (DB_USER, DB_NAME) so they are not trusted.
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r\x00") {
			return fmt.Errorf("hostile input detected: control character in %q", s)
		}
		for _, p := range shellPatterns {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func command(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - arguments checked above
	return exec.Command(name, args...), nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommand runs a command silently
func runCommand(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// runCommandVerbose runs a command with its output attached to ours
func runCommandVerbose(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
