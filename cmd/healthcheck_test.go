package cmd

import (
	"testing"
)

func TestHealthcheckCommand_FreshArchive(t *testing.T) {
	dbPath := tempStorePath(t)
	if err := runCommand(t, "--store", dbPath, "healthcheck"); err != nil {
		t.Errorf("healthcheck on fresh archive failed: %v", err)
	}
}

func TestHealthcheckCommand_PopulatedArchive(t *testing.T) {
	dbPath := tempStorePath(t)
	importFixture(t, dbPath)

	if err := runCommand(t, "--store", dbPath, "healthcheck"); err != nil {
		t.Errorf("healthcheck on populated archive failed: %v", err)
	}
}
