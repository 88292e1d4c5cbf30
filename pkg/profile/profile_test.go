package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwaudit/fwaudit/pkg/risk"
	"github.com/fwaudit/fwaudit/pkg/util"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `name: pci
description: PCI segment audit
suppress:
  - DEFAULT_ADMIN_PORT
  - NO_NTP
min_severity: medium
fail_below: 70
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Name != "pci" {
		t.Errorf("Name = %q", p.Name)
	}
	if len(p.Suppress) != 2 {
		t.Errorf("Suppress = %v", p.Suppress)
	}
	if p.MinSeverity != "medium" || p.FailBelow != 70 {
		t.Errorf("profile = %+v", p)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/profile.yaml"); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeProfile(t, "name: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for invalid YAML")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "fail_below: 50\n"},
		{"bad severity", "name: x\nmin_severity: urgent\n"},
		{"score out of range", "name: x\nfail_below: 150\n"},
		{"blank suppress entry", "name: x\nsuppress:\n  - \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProfile(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load should fail validation")
			}
			if !errors.Is(err, util.ErrValidationFailed) {
				t.Errorf("error should wrap ErrValidationFailed, got %v", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	findings := []risk.Risk{
		{Type: "OPEN_INBOUND", Severity: risk.SeverityCritical},
		{Type: "NO_NTP", Severity: risk.SeverityLow},
		{Type: "ADMIN_NO_MFA", Severity: risk.SeverityHigh},
		{Type: "DPI_SSL_DISABLED", Severity: risk.SeverityMedium},
	}

	t.Run("suppress by type", func(t *testing.T) {
		p := &Profile{Name: "x", Suppress: []string{"no_ntp"}}
		got := p.Apply(findings)
		if len(got) != 3 {
			t.Fatalf("got %d findings, want 3", len(got))
		}
		for _, r := range got {
			if r.Type == "NO_NTP" {
				t.Error("NO_NTP should be suppressed (case-insensitive)")
			}
		}
	})

	t.Run("minimum severity", func(t *testing.T) {
		p := &Profile{Name: "x", MinSeverity: "high"}
		got := p.Apply(findings)
		if len(got) != 2 {
			t.Fatalf("got %d findings, want 2", len(got))
		}
	})

	t.Run("empty profile passes everything", func(t *testing.T) {
		p := &Profile{Name: "x"}
		if got := p.Apply(findings); len(got) != len(findings) {
			t.Errorf("got %d findings, want %d", len(got), len(findings))
		}
	})

	t.Run("input not modified", func(t *testing.T) {
		p := &Profile{Name: "x", MinSeverity: "critical"}
		p.Apply(findings)
		if len(findings) != 4 {
			t.Error("Apply must not modify its input")
		}
	})
}

func TestFails(t *testing.T) {
	p := &Profile{Name: "x", FailBelow: 70}
	if !p.Fails(69) {
		t.Error("69 should fail a 70 gate")
	}
	if p.Fails(70) {
		t.Error("70 should pass a 70 gate")
	}

	unguarded := &Profile{Name: "x"}
	if unguarded.Fails(0) {
		t.Error("a profile without fail_below never fails")
	}
}
