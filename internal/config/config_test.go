package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/1broseidon/winctl/internal/x11"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Mode() != x11.TraverseTree {
		t.Fatalf("expected default traversal %q, got %q", x11.TraverseTree, cfg.Traversal)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "# empty\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode() != x11.TraverseTree {
		t.Fatalf("expected traversal %q, got %q", x11.TraverseTree, cfg.Traversal)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", cfg.Level())
	}
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := writeConfig(t, "display: \":1\"\ntraversal: children\nlog_level: debug\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Display != ":1" {
		t.Fatalf("expected display :1, got %q", cfg.Display)
	}
	if cfg.Mode() != x11.TraverseChildren {
		t.Fatalf("expected traversal children, got %q", cfg.Traversal)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", cfg.Level())
	}
}

func TestLoadFromPath_InvalidTraversal(t *testing.T) {
	path := writeConfig(t, "traversal: everything\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for unknown traversal mode")
	}
}

func TestLoadFromPath_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, "log_level: chatty\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}
