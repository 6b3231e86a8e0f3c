package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureJSON = `{
  "databases": {
    "demo": {
      "type": "postgresql",
      "host": "localhost",
      "port": 5432,
      "user": "u",
      "password": "p",
      "database": "d"
    },
    "logs": {
      "type": "mariadb",
      "host": "db.internal",
      "port": 3306,
      "user": "reader",
      "password": "secret",
      "database": "weblogs",
      "description": "access log store"
    }
  }
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db_config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture config, %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := Load(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the resolved path %q, got %q", path, err.Error())
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeFixture(t, `{"databases": `)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error for malformed JSON")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("parse errors must not be reported as ErrNotFound, got %v", err)
	}
}

func TestProfileLookup(t *testing.T) {
	cfg, err := Load(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("failed to load fixture config, %v", err)
	}

	profile, err := cfg.Profile("demo")
	if err != nil {
		t.Fatalf("expected demo profile, got error %v", err)
	}
	if profile.Name != "demo" {
		t.Errorf("profile name not set, got %q", profile.Name)
	}
	if profile.Type != "postgresql" || profile.Host != "localhost" || profile.Port != 5432 {
		t.Errorf("unexpected profile contents: %+v", profile)
	}
}

func TestProfileUnknownListsNames(t *testing.T) {
	cfg, err := Load(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("failed to load fixture config, %v", err)
	}

	_, err = cfg.Profile("nope")
	if !errors.Is(err, ErrUnknownDatabase) {
		t.Fatalf("expected ErrUnknownDatabase, got %v", err)
	}
	for _, name := range []string{"demo", "logs"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should list configured name %q, got %q", name, err.Error())
		}
	}
}

// missing fields surface at first use, not at load time
func TestValidateMissingField(t *testing.T) {
	base := Profile{
		Name: "demo", Type: "postgresql", Host: "localhost",
		Port: 5432, User: "u", Password: "p", Database: "d",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("complete profile should validate, got %v", err)
	}

	tests := []struct {
		field  string
		mutate func(p *Profile)
	}{
		{"type", func(p *Profile) { p.Type = "" }},
		{"host", func(p *Profile) { p.Host = "" }},
		{"port", func(p *Profile) { p.Port = 0 }},
		{"user", func(p *Profile) { p.User = "" }},
		{"password", func(p *Profile) { p.Password = "" }},
		{"database", func(p *Profile) { p.Database = "" }},
	}

	for _, tc := range tests {
		profile := base
		tc.mutate(&profile)

		err := profile.Validate()
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("field %s: expected ErrMissingField, got %v", tc.field, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Errorf("error should name field %q, got %q", tc.field, err.Error())
		}
	}
}

func TestDescribe(t *testing.T) {
	cfg, err := Load(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("failed to load fixture config, %v", err)
	}

	var buf bytes.Buffer
	cfg.Describe(&buf)

	for _, want := range []string{"demo", "postgresql", "d", "logs", "mariadb", "access log store"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("catalog output should contain %q, got:\n%s", want, buf.String())
		}
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigFile, "/etc/datatool/custom.json")

	if got := DefaultPath(); got != "/etc/datatool/custom.json" {
		t.Errorf("expected env override to win, got %q", got)
	}
}

func TestDefaultPathFallsBackToDefaultName(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	if got := filepath.Base(DefaultPath()); got != DefaultFileName {
		t.Errorf("expected default file name %q, got %q", DefaultFileName, got)
	}
}
