package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewParsedConfig_Defaults(t *testing.T) {
	cfg := NewParsedConfig()

	if cfg.AdminSettings.HTTPSPort != 443 {
		t.Errorf("HTTPSPort default = %d, want 443", cfg.AdminSettings.HTTPSPort)
	}
	if cfg.SystemSettings.FirmwareVersion != "unknown" {
		t.Errorf("FirmwareVersion default = %q, want unknown", cfg.SystemSettings.FirmwareVersion)
	}
	if cfg.SystemSettings.Hostname != "unknown" {
		t.Errorf("Hostname default = %q, want unknown", cfg.SystemSettings.Hostname)
	}
	if cfg.SystemSettings.Timezone != "unknown" {
		t.Errorf("Timezone default = %q, want unknown", cfg.SystemSettings.Timezone)
	}
	if len(cfg.Rules) != 0 || len(cfg.Interfaces) != 0 || len(cfg.VPNConfigs) != 0 {
		t.Error("collections should start empty")
	}
	if cfg.SecuritySettings.IPSEnabled || cfg.SecuritySettings.GAVEnabled {
		t.Error("security flags should default to false")
	}
}

func TestNewParsedConfig_MarshalsEmptyCollections(t *testing.T) {
	data, err := json.Marshal(NewParsedConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if strings.Contains(string(data), "null") {
		t.Errorf("empty config should serialize collections as [], got %s", data)
	}
	for _, want := range []string{`"rules":[]`, `"nat_policies":[]`, `"interfaces":[]`, `"ntp_servers":[]`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("serialized config missing %s: %s", want, data)
		}
	}
}

func TestNewFirewallRule_Defaults(t *testing.T) {
	r := NewFirewallRule()

	for field, got := range map[string]string{
		"SourceZone":         r.SourceZone,
		"DestinationZone":    r.DestinationZone,
		"SourceAddress":      r.SourceAddress,
		"DestinationAddress": r.DestinationAddress,
		"Service":            r.Service,
	} {
		if got != AnyValue {
			t.Errorf("%s default = %q, want %q", field, got, AnyValue)
		}
	}
	if r.Action != ActionAllow {
		t.Errorf("Action default = %q, want %q", r.Action, ActionAllow)
	}
	if !r.Enabled {
		t.Error("rules should default to enabled")
	}
}

func TestFirewallRule_Matches(t *testing.T) {
	r := NewFirewallRule()
	r.SourceZone = "wan"
	r.DestinationZone = "Lan"

	if !r.Matches("WAN", "LAN") {
		t.Error("Matches should be case-insensitive")
	}
	if r.Matches("LAN", "WAN") {
		t.Error("Matches should not match swapped zones")
	}
}

func TestFirewallRule_IsAllow(t *testing.T) {
	r := NewFirewallRule()
	r.Action = "ALLOW"
	if !r.IsAllow() {
		t.Error("IsAllow should ignore case")
	}
	r.Action = "deny"
	if r.IsAllow() {
		t.Error("deny rule reported as allow")
	}
}

func TestFirewallRule_HasComment(t *testing.T) {
	r := NewFirewallRule()
	if r.HasComment() {
		t.Error("empty comment reported as present")
	}
	r.Comment = "   "
	if r.HasComment() {
		t.Error("blank comment reported as present")
	}
	r.Comment = "allow web traffic"
	if !r.HasComment() {
		t.Error("comment not detected")
	}
}

func TestInterfaceConfig_IsWAN(t *testing.T) {
	if !(InterfaceConfig{Zone: "wan"}).IsWAN() {
		t.Error("IsWAN should ignore case")
	}
	if (InterfaceConfig{Zone: "LAN"}).IsWAN() {
		t.Error("LAN interface reported as WAN")
	}
}

func TestIsAny(t *testing.T) {
	if !IsAny("Any") || !IsAny("ANY") {
		t.Error("IsAny should ignore case")
	}
	if IsAny("10.0.0.1") {
		t.Error("address reported as wildcard")
	}
}

func TestParsedConfig_HasWANInterface(t *testing.T) {
	cfg := NewParsedConfig()
	if cfg.HasWANInterface() {
		t.Error("empty config should have no WAN interface")
	}
	cfg.Interfaces = append(cfg.Interfaces, InterfaceConfig{Name: "X0", Zone: "LAN"})
	cfg.Interfaces = append(cfg.Interfaces, InterfaceConfig{Name: "X1", Zone: "wan"})
	if !cfg.HasWANInterface() {
		t.Error("WAN interface not detected")
	}
}

func TestParsedConfig_JSONRoundTrip(t *testing.T) {
	cfg := NewParsedConfig()
	cfg.Rules = append(cfg.Rules, NewFirewallRule())
	cfg.AdminSettings.Usernames = []string{"admin"}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got ParsedConfig
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.AdminSettings.HTTPSPort != 443 {
		t.Errorf("HTTPSPort lost in round trip: %d", got.AdminSettings.HTTPSPort)
	}
	if len(got.Rules) != 1 || got.Rules[0].Action != ActionAllow {
		t.Error("rules lost in round trip")
	}
}
