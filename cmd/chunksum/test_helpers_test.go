package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chunksum/internal/testsupport"
)

// runCLI executes the root command with an isolated HOME so the user's
// configuration never leaks into a test. configPath may be empty.
func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// quietConfig writes a config that only logs errors.
func quietConfig(t *testing.T, opts ...testsupport.ConfigOption) string {
	t.Helper()
	return testsupport.WriteConfig(t, testsupport.NewConfig(t, opts...))
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
