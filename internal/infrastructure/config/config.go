package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "HBP"

// Config holds the settings loaded from an INI file.
//
// Sections group related keys ([paths], [database], [mysql], ...). All values
// are stored and returned as strings; typed accessors convert on read.
// Section and key lookups are case-insensitive.
//
// Mutations via Set are in-memory only; the file is never written back.
type Config struct {
	path string
	file *ini.File
}

// Load reads configuration from an INI file and applies environment variable
// overrides.
//
// The file uses [SECTION] headers and key = value lines; # and ; start
// comments. There is no schema validation beyond syntax.
//
// Environment variables follow the pattern: HBP_SECTION_KEY
// For example: HBP_MYSQL_PASSWORD, HBP_PATHS_DB_DIR
//
// Parameters:
//   - path: Path to the INI settings file
//
// Returns:
//   - *Config: Loaded configuration
//   - error: If the file cannot be read or parsed
func Load(path string) (*Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, path)
	if err != nil {
		return nil, fmt.Errorf("loading settings file: %w", err)
	}

	cfg := &Config{
		path: path,
		file: file,
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides replaces loaded values with environment variables where
// set. Only keys already present in the file are considered, so a stray
// variable cannot invent configuration.
func (c *Config) applyEnvOverrides() {
	for _, section := range c.file.Sections() {
		for _, key := range section.Keys() {
			name := strings.ToUpper(fmt.Sprintf("%s_%s_%s", envPrefix, section.Name(), key.Name()))
			if v := os.Getenv(name); v != "" {
				key.SetValue(v)
			}
		}
	}
}

// Get returns the value stored under section and key.
//
// Returns:
//   - string: The value, always as a string
//   - error: ErrSectionNotFound or ErrKeyNotFound; never a silent default
func (c *Config) Get(section, key string) (string, error) {
	sec, err := c.file.GetSection(section)
	if err != nil {
		return "", fmt.Errorf("%w: [%s]", ErrSectionNotFound, section)
	}

	k, err := sec.GetKey(key)
	if err != nil {
		return "", fmt.Errorf("%w: [%s] %s", ErrKeyNotFound, section, key)
	}

	return k.String(), nil
}

// GetInt returns the value under section and key parsed as an integer.
func (c *Config) GetInt(section, key string) (int, error) {
	v, err := c.Get(section, key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: [%s] %s = %q is not an integer", ErrInvalidValue, section, key, v)
	}
	return n, nil
}

// GetBool returns the value under section and key parsed as a boolean.
// The settings files use 0/1 flags; true/false are also accepted.
func (c *Config) GetBool(section, key string) (bool, error) {
	v, err := c.Get(section, key)
	if err != nil {
		return false, err
	}

	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: [%s] %s = %q is not a boolean", ErrInvalidValue, section, key, v)
	}
	return b, nil
}

// Set stores value under section and key, creating the section if absent.
// The change is in-memory only and is never persisted to disk.
func (c *Config) Set(section, key, value string) {
	c.file.Section(section).Key(key).SetValue(value)
}

// All returns a copy of the full configuration as section -> key -> value.
// Intended for diagnostics and startup dumps.
func (c *Config) All() map[string]map[string]string {
	all := make(map[string]map[string]string)
	for _, section := range c.file.Sections() {
		keys := section.KeysHash()
		if strings.EqualFold(section.Name(), ini.DefaultSection) && len(keys) == 0 {
			continue
		}
		all[section.Name()] = keys
	}
	return all
}

// Path returns the path the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}
