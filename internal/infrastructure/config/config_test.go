package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeSettings writes content to a temp settings file and returns its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.ini")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test settings: %v", err)
	}
	return path
}

func TestLoad_ValidSettings(t *testing.T) {
	content := `
# test fixture
[MYSQL]
hostname = localhost
database = test
username = u
password = p

[paths]
db_dir = data
`
	cfg, err := Load(writeSettings(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	host, err := cfg.Get("MYSQL", "hostname")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if host != "localhost" {
		t.Errorf("Get(MYSQL, hostname) = %q, want %q", host, "localhost")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/settings.ini")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidSyntax(t *testing.T) {
	// A non-comment line with no key/value delimiter is a parse error.
	_, err := Load(writeSettings(t, "[paths]\nthis line has no delimiter\n"))
	if err == nil {
		t.Error("Load() expected error for invalid syntax, got nil")
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	cfg, err := Load(writeSettings(t, "[MySQL]\nHostName = dbhost\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name    string
		section string
		key     string
	}{
		{name: "exact case", section: "MySQL", key: "HostName"},
		{name: "lower case", section: "mysql", key: "hostname"},
		{name: "upper case", section: "MYSQL", key: "HOSTNAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := cfg.Get(tt.section, tt.key)
			if err != nil {
				t.Fatalf("Get(%q, %q) error = %v", tt.section, tt.key, err)
			}
			if v != "dbhost" {
				t.Errorf("Get(%q, %q) = %q, want %q", tt.section, tt.key, v, "dbhost")
			}
		})
	}
}

func TestGet_MissingSection(t *testing.T) {
	cfg, err := Load(writeSettings(t, "[paths]\ndb_dir = data\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = cfg.Get("mysql", "hostname")
	if !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("Get() error = %v, want ErrSectionNotFound", err)
	}
}

func TestGet_MissingKey(t *testing.T) {
	cfg, err := Load(writeSettings(t, "[paths]\ndb_dir = data\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = cfg.Get("paths", "log_dir")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

func TestSet_RoundTrip(t *testing.T) {
	cfg, err := Load(writeSettings(t, "[paths]\ndb_dir = data\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	t.Run("overwrite existing key", func(t *testing.T) {
		cfg.Set("paths", "db_dir", "/tmp/other")
		v, err := cfg.Get("paths", "db_dir")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if v != "/tmp/other" {
			t.Errorf("Get() after Set() = %q, want %q", v, "/tmp/other")
		}
	})

	t.Run("implicit section creation", func(t *testing.T) {
		cfg.Set("logging", "level", "debug")
		v, err := cfg.Get("logging", "level")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if v != "debug" {
			t.Errorf("Get() after Set() = %q, want %q", v, "debug")
		}
	})
}

func TestAll(t *testing.T) {
	content := `
[paths]
db_dir = data
log_dir = logs

[database]
hbp_table = hbpdata
`
	cfg, err := Load(writeSettings(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	all := cfg.All()
	if len(all["paths"]) != 2 {
		t.Errorf("All()[paths] has %d keys, want 2", len(all["paths"]))
	}
	if all["database"]["hbp_table"] != "hbpdata" {
		t.Errorf("All()[database][hbp_table] = %q, want %q", all["database"]["hbp_table"], "hbpdata")
	}
}

func TestTypedAccessors(t *testing.T) {
	content := `
[operations]
verbose_output = 1
retries = 3
broken = notanumber
`
	cfg, err := Load(writeSettings(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	n, err := cfg.GetInt("operations", "retries")
	if err != nil {
		t.Fatalf("GetInt() error = %v", err)
	}
	if n != 3 {
		t.Errorf("GetInt() = %d, want 3", n)
	}

	b, err := cfg.GetBool("operations", "verbose_output")
	if err != nil {
		t.Fatalf("GetBool() error = %v", err)
	}
	if !b {
		t.Error("GetBool() = false, want true")
	}

	if _, err := cfg.GetInt("operations", "broken"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("GetInt(broken) error = %v, want ErrInvalidValue", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HBP_MYSQL_PASSWORD", "fromenv")

	cfg, err := Load(writeSettings(t, "[mysql]\npassword = fromfile\nusername = u\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	v, err := cfg.Get("mysql", "password")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != "fromenv" {
		t.Errorf("Get(mysql, password) = %q, want env override %q", v, "fromenv")
	}

	// Untouched keys keep their file values.
	u, err := cfg.Get("mysql", "username")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if u != "u" {
		t.Errorf("Get(mysql, username) = %q, want %q", u, "u")
	}
}
