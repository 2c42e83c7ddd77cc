package client

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SessionStore persists the auth token between runs, in a YAML file next to
// the binary. It is the only state the client keeps across restarts.
type SessionStore struct {
	path string
}

// sessionFile is the on-disk shape. The token is stored raw; it is already
// an opaque credential.
type sessionFile struct {
	Token string `yaml:"token"`
}

// NewSessionStore creates a store backed by the given file path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath returns the session file location next to the
// executable, falling back to the working directory.
func DefaultSessionPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "session.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "session.yaml")
}

// Load returns the persisted token, or "" when none is stored.
func (s *SessionStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var f sessionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", err
	}
	return f.Token, nil
}

// Save writes the token to disk, replacing any previous one.
func (s *SessionStore) Save(token string) error {
	data, err := yaml.Marshal(sessionFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the persisted token. Clearing an empty store is not an error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
