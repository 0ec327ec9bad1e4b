package mcp

import (
	"testing"

	"github.com/1broseidon/winctl/internal/config"
)

func TestNewServer_RegistersWithoutPanicking(t *testing.T) {
	s := NewServer(config.DefaultConfig())
	if s == nil || s.mcpServer == nil {
		t.Fatalf("expected initialized server")
	}
}

func TestTransform_RejectsBadPattern(t *testing.T) {
	s := NewServer(config.DefaultConfig())
	if _, err := s.transform("(", nil); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}
