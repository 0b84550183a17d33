package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain picks up a local .env and keeps the CLI quiet so tests can parse its stdout
func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env")

	if os.Getenv("LOG_LEVEL") == "" {
		_ = os.Setenv("LOG_LEVEL", "error")
	}
	// CATALOG_PATH from a developer .env would change the expected catalog contents
	_ = os.Unsetenv("CATALOG_PATH")

	os.Exit(m.Run())
}
