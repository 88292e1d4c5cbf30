package parser

import (
	"testing"

	"github.com/fwaudit/fwaudit/pkg/model"
)

func TestScanSecurityFlags_AllFeatures(t *testing.T) {
	cfg := Parse(`intrusion-prevention enable
gateway anti-virus enable
anti-spyware enable
app-control enable
content-filter enable
botnet filter enable
dpi-ssl enable
geo-ip filter enable`)

	s := cfg.SecuritySettings
	checks := []struct {
		name string
		got  bool
	}{
		{"ips", s.IPSEnabled},
		{"gateway-av", s.GAVEnabled},
		{"anti-spyware", s.AntiSpywareEnabled},
		{"app-control", s.AppControlEnabled},
		{"content-filter", s.ContentFilterEnabled},
		{"botnet-filter", s.BotnetFilterEnabled},
		{"dpi-ssl", s.DPISSLEnabled},
		{"geo-ip", s.GeoIPFilterEnabled},
	}
	for _, c := range checks {
		if !c.got {
			t.Errorf("%s should be enabled", c.name)
		}
	}
}

func TestScanSecurityFlags_LastMatchWins(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"enable then disable", "ips enable\nips disable", false},
		{"disable then enable", "ips disable\nips enable", true},
		{"long then short form", "intrusion prevention disable\nips enable", true},
		{"single enable", "ips enable", true},
		{"single disable", "ips disable", false},
		{"never mentioned", "hostname fw1", false},
		{"keyword without verb", "ips signature count 4821", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Parse(tt.text)
			if got := cfg.SecuritySettings.IPSEnabled; got != tt.want {
				t.Errorf("IPSEnabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanSecurityFlags_DisableBeatsEnableOnOneLine(t *testing.T) {
	cfg := Parse("ips enable disable")
	if cfg.SecuritySettings.IPSEnabled {
		t.Error("a line carrying both verbs should read as disabled")
	}
}

func TestScanSecurityFlags_KeywordVariants(t *testing.T) {
	tests := []struct {
		text string
		want func(cfg *model.SecuritySettings) bool
	}{
		{"gav enabled", func(s *model.SecuritySettings) bool { return s.GAVEnabled }},
		{"gateway-av on", func(s *model.SecuritySettings) bool { return s.GAVEnabled }},
		{"gateway antivirus enable", func(s *model.SecuritySettings) bool { return s.GAVEnabled }},
		{"application control enable", func(s *model.SecuritySettings) bool { return s.AppControlEnabled }},
		{"cfs enable", func(s *model.SecuritySettings) bool { return s.ContentFilterEnabled }},
		{"content filtering enable", func(s *model.SecuritySettings) bool { return s.ContentFilterEnabled }},
		{"geoip filter enable", func(s *model.SecuritySettings) bool { return s.GeoIPFilterEnabled }},
		{"antispyware enable", func(s *model.SecuritySettings) bool { return s.AntiSpywareEnabled }},
	}

	for _, tt := range tests {
		cfg := Parse(tt.text)
		if !tt.want(&cfg.SecuritySettings) {
			t.Errorf("line %q should enable its feature", tt.text)
		}
	}
}
