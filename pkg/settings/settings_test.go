package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Defaults(t *testing.T) {
	s := &Settings{}

	if got := s.GetFormat(); got != "table" {
		t.Errorf("GetFormat() default = %q, want %q", got, "table")
	}
	if got := s.GetRedisAddr(); got != "localhost:6379" {
		t.Errorf("GetRedisAddr() default = %q, want %q", got, "localhost:6379")
	}
	if s.MinSeverity != "" {
		t.Errorf("MinSeverity should be empty, got %q", s.MinSeverity)
	}
	if s.ProfilePath != "" {
		t.Errorf("ProfilePath should be empty, got %q", s.ProfilePath)
	}
}

func TestSettings_Fallbacks(t *testing.T) {
	s := &Settings{
		DefaultFormat: "json",
		RedisAddr:     "redis.internal:6380",
		AuditLogDir:   "/var/log/fwaudit",
	}

	if got := s.GetFormat(); got != "json" {
		t.Errorf("GetFormat() = %q, want %q", got, "json")
	}
	if got := s.GetRedisAddr(); got != "redis.internal:6380" {
		t.Errorf("GetRedisAddr() = %q, want %q", got, "redis.internal:6380")
	}
	if got := s.GetAuditLogDir(); got != "/var/log/fwaudit" {
		t.Errorf("GetAuditLogDir() = %q, want %q", got, "/var/log/fwaudit")
	}
}

func TestSettings_Clear(t *testing.T) {
	s := &Settings{
		DefaultFormat: "yaml",
		MinSeverity:   "high",
		RedisAddr:     "host:6379",
		RedisDB:       3,
		ProfilePath:   "/etc/fwaudit/profile.yaml",
	}

	s.Clear()

	if *s != (Settings{}) {
		t.Error("Clear() should reset all fields")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "settings.json")

	original := &Settings{
		DefaultFormat: "json",
		MinSeverity:   "medium",
		RedisAddr:     "localhost:6380",
		RedisDB:       2,
		ProfilePath:   "/etc/fwaudit/pci.yaml",
	}

	if err := original.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("loaded settings = %+v, want %+v", loaded, original)
	}
}

func TestSettings_LoadNonExistent(t *testing.T) {
	s, err := LoadFrom("/nonexistent/path/settings.json")
	if err != nil {
		t.Fatalf("LoadFrom() non-existent should not error: %v", err)
	}
	if s == nil {
		t.Fatal("LoadFrom() should return non-nil Settings")
	}
	if *s != (Settings{}) {
		t.Error("LoadFrom() non-existent should return empty settings")
	}
}

func TestSettings_LoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "settings.json")
	if err := os.WriteFile(path, []byte("invalid json {"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() with invalid JSON should error")
	}
}

func TestSettings_SaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "subdir", "nested", "settings.json")

	s := &Settings{DefaultFormat: "json"}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() should create directories: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("SaveTo() should have created the file")
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	path := DefaultSettingsPath()
	if path == "" {
		t.Error("DefaultSettingsPath() should not be empty")
	}
	if !filepath.IsAbs(path) && path != "fwaudit_settings.json" {
		t.Errorf("DefaultSettingsPath() should be absolute or fallback, got %q", path)
	}
}
