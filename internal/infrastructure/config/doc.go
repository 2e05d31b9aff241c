// Package config loads HBP Core settings from INI files.
//
// This package manages:
//   - Parsing [SECTION] / key = value settings files
//   - Case-insensitive section and key lookup
//   - Overriding values with environment variables
//   - In-memory mutation of settings for command-line overrides
//
// Security Considerations:
//   - Credentials (the [mysql] section) should be set via environment
//     variables rather than committed to the settings file
//   - The settings file should have restricted permissions (0600)
//
// Performance Characteristics:
//   - Settings are loaded once at startup
//   - No file watching; changes require a restart
//
// Usage:
//
//	cfg, err := config.Load("configs/settings.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	host, err := cfg.Get("mysql", "hostname")
package config
