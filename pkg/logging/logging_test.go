package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{" DEBUG ", slog.LevelDebug},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetupFromEnv(t *testing.T) {
	t.Setenv("GAMESQUAD_LOG_LEVEL", "")
	t.Setenv("GAMESQUAD_LOG_FORMAT", "")
	if err := SetupFromEnv(); err != nil {
		t.Errorf("SetupFromEnv() with unset env: %v", err)
	}

	t.Setenv("GAMESQUAD_LOG_LEVEL", "debug")
	t.Setenv("GAMESQUAD_LOG_FORMAT", "json")
	if err := SetupFromEnv(); err != nil {
		t.Errorf("SetupFromEnv() with debug/json: %v", err)
	}

	t.Setenv("GAMESQUAD_LOG_LEVEL", "verbose")
	if err := SetupFromEnv(); err == nil {
		t.Error("SetupFromEnv() accepted an unknown level")
	}
}
