package main

import (
	"os"
	"testing"

	"tripctl/cmd"
)

func TestMain(m *testing.M) {
	// Run tests
	code := m.Run()
	os.Exit(code)
}

func TestVersion(t *testing.T) {
	// Test default version
	if version != "dev" {
		t.Errorf("Expected default version to be 'dev', got %s", version)
	}

	// Test setting version
	testVersion := "1.2.3"
	version = testVersion
	if version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, version)
	}

	// Reset version
	version = "dev"
}

func TestMainPackageIntegration(t *testing.T) {
	// This test verifies that the main package properly integrates with cmd package

	// Save original version
	originalVersion := version
	defer func() { version = originalVersion }()

	// Test different version scenarios
	versions := []string{"dev", "1.0.0", "v2.0.0-rc1"}

	for _, v := range versions {
		version = v
		// Test that SetVersion doesn't panic with different version formats
		cmd.SetVersion(version)
	}

	if cmd.GetVersion() != versions[len(versions)-1] {
		t.Errorf("Expected version %s to stick, got %s", versions[len(versions)-1], cmd.GetVersion())
	}
}
