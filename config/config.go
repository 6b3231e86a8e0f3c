package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultFileName is used when DB_CONFIG_FILE is not set.
	DefaultFileName = "db_config.json"
	// EnvConfigFile overrides the configuration file name.
	EnvConfigFile = "DB_CONFIG_FILE"
)

var (
	ErrNotFound        = errors.New("config file not found")
	ErrUnknownDatabase = errors.New("unknown database")
	ErrMissingField    = errors.New("missing profile field")
)

// Profile is one named database connection entry from the config file.
type Profile struct {
	Name        string `json:"-"`
	Type        string `json:"type"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	User        string `json:"user"`
	Password    string `json:"password"`
	Database    string `json:"database"`
	Description string `json:"description"`
}

// Config maps profile names to database profiles
type Config struct {
	Databases map[string]Profile `json:"databases"`
}

// DefaultPath resolves the configuration file path: .env is loaded if present,
// then DB_CONFIG_FILE is honoured, falling back to db_config.json. A relative
// name is resolved next to the executable.
func DefaultPath() string {
	godotenv.Load()

	name := os.Getenv(EnvConfigFile)
	if name == "" {
		name = DefaultFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), name)
	}
	return name
}

// Load reads and decodes the JSON configuration file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (create %s or set %s)", ErrNotFound, path, DefaultFileName, EnvConfigFile)
		}
		return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
	}

	var config Config
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	return &config, nil
}

// Names returns the configured profile names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Databases))
	for name := range c.Databases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile looks up a database profile by name.
func (c *Config) Profile(name string) (*Profile, error) {
	profile, ok := c.Databases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDatabase, name, strings.Join(c.Names(), ", "))
	}
	profile.Name = name
	return &profile, nil
}

// Validate checks that the required connection fields are present. Fields are
// only checked here, at first use, not at load time.
func (p *Profile) Validate() error {
	required := []struct {
		field string
		empty bool
	}{
		{"type", p.Type == ""},
		{"host", p.Host == ""},
		{"port", p.Port == 0},
		{"user", p.User == ""},
		{"password", p.Password == ""},
		{"database", p.Database == ""},
	}
	for _, r := range required {
		if r.empty {
			return fmt.Errorf("%w: profile %q has no %q", ErrMissingField, p.Name, r.field)
		}
	}
	return nil
}

// Describe prints a formatted catalog of the configured databases.
func (c *Config) Describe(w io.Writer) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Available databases")
	fmt.Fprintln(w, divider)

	for _, name := range c.Names() {
		info := c.Databases[name]
		description := info.Description
		if description == "" {
			description = "-"
		}
		fmt.Fprintf(w, "\n%s\n", name)
		fmt.Fprintf(w, "   type: %s\n", info.Type)
		fmt.Fprintf(w, "   database: %s\n", info.Database)
		fmt.Fprintf(w, "   description: %s\n", description)
	}
	fmt.Fprintln(w, "\n"+divider)
}
