// Package settings manages persistent user settings for the fwaudit CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// DefaultFormat is the output format when --json/--yaml is not specified
	DefaultFormat string `json:"default_format,omitempty"`

	// MinSeverity filters findings below this severity by default
	MinSeverity string `json:"min_severity,omitempty"`

	// RedisAddr is the history store address
	RedisAddr string `json:"redis_addr,omitempty"`

	// RedisDB is the history store database number
	RedisDB int `json:"redis_db,omitempty"`

	// ProfilePath is the default audit profile applied by analyze
	ProfilePath string `json:"profile_path,omitempty"`

	// AuditLogDir overrides the default audit log directory
	AuditLogDir string `json:"audit_log_dir,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fwaudit_settings.json"
	}
	return filepath.Join(home, ".fwaudit", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetFormat returns the default output format (with fallback)
func (s *Settings) GetFormat() string {
	if s.DefaultFormat != "" {
		return s.DefaultFormat
	}
	return "table"
}

// GetRedisAddr returns the history store address (with fallback)
func (s *Settings) GetRedisAddr() string {
	if s.RedisAddr != "" {
		return s.RedisAddr
	}
	return "localhost:6379"
}

// GetAuditLogDir returns the audit log directory (with fallback)
func (s *Settings) GetAuditLogDir() string {
	if s.AuditLogDir != "" {
		return s.AuditLogDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".fwaudit")
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
