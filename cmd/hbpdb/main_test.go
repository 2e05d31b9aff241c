package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTestConfig writes a settings file pointing all paths into tmpDir.
func writeTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	content := `
[app]
name = hbp-core

[paths]
db_dir = ` + filepath.Join(tmpDir, "data") + `
log_dir = ` + filepath.Join(tmpDir, "logs") + `

[database]
hbp_db_filename = test.db
hbp_table = hbpdata

[logging]
level = info
format = text
dbtest_prefix = hbpdb
`
	configPath := filepath.Join(tmpDir, "settings.ini")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

// TestRun_InvalidConfig verifies run fails with an invalid config path.
func TestRun_InvalidConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, options{configPath: "/nonexistent/path/settings.ini", noLog: true})
	if err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

// TestRun_MissingKeys verifies run fails cleanly when required settings are absent.
func TestRun_MissingKeys(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "settings.ini")
	if err := os.WriteFile(configPath, []byte("[app]\nname = hbp-core\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, options{configPath: configPath, noLog: true})
	if err == nil {
		t.Fatal("run() should fail when [paths] db_dir is missing")
	}
}

// TestRun_FullCheck verifies the happy path end to end against a temp database.
func TestRun_FullCheck(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeTestConfig(t, tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, options{configPath: configPath, verbose: true}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	// The database file and a timestamped log file must exist afterwards.
	if _, err := os.Stat(filepath.Join(tmpDir, "data", "test.db")); err != nil {
		t.Errorf("database file missing: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "logs"))
	if err != nil {
		t.Fatalf("reading log dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("log dir has %d files, want 1", len(entries))
	}
}

// TestRun_RepeatedInvocations verifies a second run against the same database
// succeeds (fresh play ids each run).
func TestRun_RepeatedInvocations(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeTestConfig(t, tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := run(ctx, options{configPath: configPath, noLog: true}); err != nil {
			t.Fatalf("run() #%d error = %v", i+1, err)
		}
	}
}

// TestParseFlags verifies flag parsing and defaults.
func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := parseFlags(nil)
		if opts.configPath != defaultConfigPath {
			t.Errorf("configPath = %q, want %q", opts.configPath, defaultConfigPath)
		}
		if opts.noLog || opts.verbose || opts.checkMySQL {
			t.Error("boolean flags should default to false")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		opts := parseFlags([]string{"-config", "/etc/hbp.ini", "-nolog", "-verbose", "-mysql"})
		if opts.configPath != "/etc/hbp.ini" {
			t.Errorf("configPath = %q, want %q", opts.configPath, "/etc/hbp.ini")
		}
		if !opts.noLog || !opts.verbose || !opts.checkMySQL {
			t.Error("boolean flags not parsed")
		}
	})
}
