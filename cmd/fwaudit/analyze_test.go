package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwaudit/fwaudit/pkg/settings"
)

func TestRunAnalysis_ProfileRecordedAndGates(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fw.cfg")
	if err := os.WriteFile(cfgPath, []byte("wan-management enable\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	profPath := filepath.Join(dir, "strict.yaml")
	profText := "name: strict\nfail_below: 95\nsuppress:\n  - NO_NTP\n"
	if err := os.WriteFile(profPath, []byte(profText), 0o644); err != nil {
		t.Fatal(err)
	}

	userSettings = &settings.Settings{}
	analyzeProfile = profPath
	defer func() { analyzeProfile = "" }()

	report, err := runAnalysis(cfgPath)
	if err != nil {
		t.Fatalf("runAnalysis: %v", err)
	}

	if report.Profile != "strict" {
		t.Errorf("applied profile = %q, want strict", report.Profile)
	}
	if report.profile == nil {
		t.Fatal("report should carry the applied profile for the fail gate")
	}
	if !report.profile.Fails(report.Score) {
		t.Errorf("score %d should fall under the profile's 95 gate", report.Score)
	}
	for _, r := range report.Findings {
		if r.Type == "NO_NTP" {
			t.Error("suppressed finding type survived the profile")
		}
	}
}

func TestRunAnalysis_NoProfile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fw.cfg")
	if err := os.WriteFile(cfgPath, []byte("hostname fw01\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	userSettings = &settings.Settings{}
	analyzeProfile = ""

	report, err := runAnalysis(cfgPath)
	if err != nil {
		t.Fatalf("runAnalysis: %v", err)
	}
	if report.Profile != "" || report.profile != nil {
		t.Errorf("no profile was given, report records %q", report.Profile)
	}
}
