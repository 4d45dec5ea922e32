package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// MaxStoredCookingTime is the largest cooking time the recipes table accepts
const MaxStoredCookingTime = 32767

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// Placeholder values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if v := os.Getenv("MAX_COOKING_TIME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > MaxStoredCookingTime {
			return fmt.Errorf("MAX_COOKING_TIME %d exceeds the stored limit of %d minutes", n, MaxStoredCookingTime)
		}
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// load fine but are probably mistakes
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if v := os.Getenv("SHOPPING_LIST_LOCALE"); v != "" {
		if _, err := language.Parse(v); err != nil {
			warnings = append(warnings, fmt.Sprintf("SHOPPING_LIST_LOCALE %q is not a valid BCP 47 language tag", v))
		}
	}

	for _, proxy := range getEnvAsList("TRUSTED_PROXIES") {
		if net.ParseIP(proxy) == nil {
			warnings = append(warnings, fmt.Sprintf("TRUSTED_PROXIES entry %q is not an IP address and will never match", proxy))
		}
	}

	if os.Getenv("ENVIRONMENT") == "prod" && os.Getenv("LOG_FORMAT") != "json" {
		warnings = append(warnings, "LOG_FORMAT should be json in prod")
	}

	return warnings, nil
}
