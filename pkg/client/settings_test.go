package client

import "testing"

func TestSettingsAPIBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     string
	}{
		{"default production", *DefaultSettings(), productionAPIURL},
		{"explicit production", Settings{Environment: "production"}, productionAPIURL},
		{"local", Settings{Environment: "local"}, localAPIURL},
		{"unknown environment falls back to production", Settings{Environment: "staging"}, productionAPIURL},
		{"server url overrides environment", Settings{Environment: "local", ServerURL: "http://10.0.0.2:5000/api"}, "http://10.0.0.2:5000/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.APIBaseURL(); got != tt.want {
				t.Errorf("APIBaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("GAMESQUAD_ENV", "local")
	t.Setenv("GAMESQUAD_SERVER", "")

	s := LoadSettings()
	if s.Environment != "local" {
		t.Errorf("Environment = %q, want local", s.Environment)
	}
	if got := s.APIBaseURL(); got != localAPIURL {
		t.Errorf("APIBaseURL() = %q, want %q", got, localAPIURL)
	}
}
