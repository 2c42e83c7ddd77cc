package client

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend base URLs per environment.
const (
	productionAPIURL = "https://gamesquad-backend.onrender.com/api"
	localAPIURL      = "http://localhost:5000/api"
)

// Settings stores client configuration persisted as YAML next to the binary.
// Environment selects the backend ("production" or "local"); ServerURL, when
// set, overrides both.
type Settings struct {
	Environment string `yaml:"environment"`
	ServerURL   string `yaml:"server_url,omitempty"`
}

// DefaultSettings returns the production defaults.
func DefaultSettings() *Settings {
	return &Settings{Environment: "production"}
}

func settingsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "settings.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "settings.yaml")
}

// LoadSettings loads settings from YAML or returns defaults. The
// GAMESQUAD_ENV and GAMESQUAD_SERVER environment variables override the file.
func LoadSettings() *Settings {
	s := DefaultSettings()
	if data, err := os.ReadFile(settingsPath()); err == nil {
		if err := yaml.Unmarshal(data, s); err != nil {
			slog.Error("parse settings", "err", err)
			s = DefaultSettings()
		}
	}
	if v := os.Getenv("GAMESQUAD_ENV"); v != "" {
		s.Environment = v
	}
	if v := os.Getenv("GAMESQUAD_SERVER"); v != "" {
		s.ServerURL = v
	}
	return s
}

// APIBaseURL returns the backend base URL for these settings.
func (s *Settings) APIBaseURL() string {
	if s.ServerURL != "" {
		return s.ServerURL
	}
	if s.Environment == "local" {
		return localAPIURL
	}
	return productionAPIURL
}

// Save writes settings to YAML.
func (s *Settings) Save() error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(settingsPath(), data, 0600)
}
