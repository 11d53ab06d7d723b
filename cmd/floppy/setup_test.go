package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"runs.db", "runs.db"},
		{"/tmp/runs.db", "/tmp/runs.db"},
		{"~/.floppy/runs.db", filepath.Join(home, ".floppy/runs.db")},
	}

	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	defer func(old string) { flagLogLevel = old }(flagLogLevel)

	flagLogLevel = "warn"
	var buf bytes.Buffer
	logger, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "floppy") {
		t.Errorf("expected prefixed warn message, got %q", out)
	}

	flagLogLevel = "loud"
	if _, err := newLogger(&buf); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRuntimeConfigSeed(t *testing.T) {
	defer func(seed int64, fps int) { flagSeed, flagFPS = seed, fps }(flagSeed, flagFPS)

	flagSeed, flagFPS = 42, 30
	rt := runtimeConfig()
	if rt.Seed != 42 || rt.TickRate != 30 {
		t.Errorf("runtimeConfig() = seed %d rate %d, want 42 and 30", rt.Seed, rt.TickRate)
	}

	flagSeed = 0
	if rt := runtimeConfig(); rt.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}
