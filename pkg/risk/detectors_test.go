package risk

import (
	"testing"

	"github.com/fwaudit/fwaudit/pkg/model"
)

func TestOpenInboundDetector(t *testing.T) {
	rule := func(action, src, dst, dstAddr string) model.FirewallRule {
		return model.FirewallRule{
			SourceZone:         src,
			DestinationZone:    dst,
			SourceAddress:      "any",
			DestinationAddress: dstAddr,
			Action:             action,
			Enabled:            true,
		}
	}

	tests := []struct {
		name string
		rule model.FirewallRule
		want int
	}{
		{"wan to lan any", rule(model.ActionAllow, "WAN", "LAN", "any"), 1},
		{"zones fold case", rule(model.ActionAllow, "wan", "lan", "ANY"), 1},
		{"deny does not fire", rule(model.ActionDeny, "WAN", "LAN", "any"), 0},
		{"specific destination", rule(model.ActionAllow, "WAN", "LAN", "Web Server"), 0},
		{"lan to wan", rule(model.ActionAllow, "LAN", "WAN", "any"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.NewParsedConfig()
			cfg.Rules = []model.FirewallRule{tt.rule}
			if got := len(openInboundDetector{}.Evaluate(cfg)); got != tt.want {
				t.Errorf("findings = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOpenInboundDetector_DisabledRuleStillFires(t *testing.T) {
	// Exposure is judged on the written policy, not its runtime state:
	// a disabled open rule is one click from being live.
	cfg := model.NewParsedConfig()
	cfg.Rules = []model.FirewallRule{{
		SourceZone:         "WAN",
		DestinationZone:    "LAN",
		DestinationAddress: "any",
		Action:             model.ActionAllow,
		Enabled:            false,
	}}
	if got := len(openInboundDetector{}.Evaluate(cfg)); got != 1 {
		t.Errorf("findings = %d, want 1", got)
	}
}

func TestGuestIsolationDetector(t *testing.T) {
	cfg := model.NewParsedConfig()
	cfg.Rules = []model.FirewallRule{
		{SourceZone: "GUEST", DestinationZone: "LAN", Action: model.ActionAllow, Enabled: true},
		{SourceZone: "GUEST", DestinationZone: "WAN", Action: model.ActionAllow, Enabled: true},
		{SourceZone: "GUEST", DestinationZone: "LAN", Action: model.ActionDeny, Enabled: true},
	}

	risks := guestIsolationDetector{}.Evaluate(cfg)
	if len(risks) != 1 {
		t.Fatalf("findings = %d, want 1", len(risks))
	}
	if risks[0].Severity != SeverityHigh || risks[0].Category != CategoryNetworkMisconf {
		t.Errorf("finding = %s/%s", risks[0].Severity, risks[0].Category)
	}
}

func TestDHCPOnWANDetector(t *testing.T) {
	cfg := model.NewParsedConfig()
	cfg.Interfaces = []model.InterfaceConfig{
		{Name: "X0", Zone: "LAN", DHCPServerEnabled: true},
		{Name: "X1", Zone: "WAN", DHCPServerEnabled: true},
		{Name: "X2", Zone: "WAN", DHCPServerEnabled: false},
	}

	risks := dhcpOnWANDetector{}.Evaluate(cfg)
	if len(risks) != 1 {
		t.Fatalf("findings = %d, want 1", len(risks))
	}
	if risks[0].Severity != SeverityCritical {
		t.Errorf("severity = %s, want critical", risks[0].Severity)
	}
}

func TestDefaultUsernameDetector(t *testing.T) {
	cfg := model.NewParsedConfig()
	cfg.AdminSettings.Usernames = []string{"Admin", "secops", "ROOT", "administrator"}

	risks := defaultUsernameDetector{}.Evaluate(cfg)
	if len(risks) != 3 {
		t.Fatalf("findings = %d, want 3 (one per default name, case-folded)", len(risks))
	}
	for _, r := range risks {
		if r.Type != TypeDefaultAdminUsername || r.Severity != SeverityMedium {
			t.Errorf("finding = %s/%s", r.Type, r.Severity)
		}
	}
}

func TestSSHOnWANDetector(t *testing.T) {
	tests := []struct {
		name   string
		ssh    bool
		hasWAN bool
		want   int
	}{
		{"ssh with wan interface", true, true, 1},
		{"ssh without wan interface", true, false, 0},
		{"no ssh with wan interface", false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.NewParsedConfig()
			cfg.AdminSettings.SSHEnabled = tt.ssh
			if tt.hasWAN {
				cfg.Interfaces = []model.InterfaceConfig{{Name: "X1", Zone: "WAN"}}
			}
			if got := len(sshOnWANDetector{}.Evaluate(cfg)); got != tt.want {
				t.Errorf("findings = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVPNEncryptionDetector(t *testing.T) {
	tests := []struct {
		enc  string
		want int
	}{
		{"des", 1},
		{"3DES", 1},
		{"aes-256", 0},
		{"aes-128", 0},
		// Substring near-misses must not fire; only exact cipher names do.
		{"3des-hmac", 0},
		{"unknown", 0},
	}

	for _, tt := range tests {
		cfg := model.NewParsedConfig()
		cfg.VPNConfigs = []model.VPNConfig{{PolicyName: "p", Encryption: tt.enc, AuthMethod: "cert"}}
		if got := len(vpnEncryptionDetector{}.Evaluate(cfg)); got != tt.want {
			t.Errorf("encryption %q: findings = %d, want %d", tt.enc, got, tt.want)
		}
	}
}

func TestVPNAuthDetector(t *testing.T) {
	tests := []struct {
		auth string
		want int
	}{
		{"psk", 1},
		{"pre-shared key", 1},
		{"preshared", 1},
		{"shared-secret", 1},
		{"certificate", 0},
		{"x509", 0},
		// PSK with certificate fallback is acceptable.
		{"psk + x509", 0},
		{"rsa-sig", 0},
		{"unknown", 0},
	}

	for _, tt := range tests {
		cfg := model.NewParsedConfig()
		cfg.VPNConfigs = []model.VPNConfig{{PolicyName: "p", Encryption: "aes-256", AuthMethod: tt.auth}}
		if got := len(vpnAuthDetector{}.Evaluate(cfg)); got != tt.want {
			t.Errorf("auth %q: findings = %d, want %d", tt.auth, got, tt.want)
		}
	}
}

func TestRuleDescriptionDetector(t *testing.T) {
	cfg := model.NewParsedConfig()
	cfg.Rules = []model.FirewallRule{
		{Name: "a", Comment: "documented"},
		{Name: "b"},
		{Name: "c", Comment: "   "},
	}

	risks := ruleDescriptionDetector{}.Evaluate(cfg)
	if len(risks) != 2 {
		t.Fatalf("findings = %d, want 2 (blank comment counts as missing)", len(risks))
	}
	for _, r := range risks {
		if r.Severity != SeverityLow {
			t.Errorf("severity = %s, want low", r.Severity)
		}
	}
}

func TestFeatureDetectorSeverities(t *testing.T) {
	risks := NewAt(testClock).Analyze(model.NewParsedConfig())

	want := map[string]Severity{
		TypeIPSDisabled:           SeverityCritical,
		TypeGAVDisabled:           SeverityCritical,
		TypeDPISSLDisabled:        SeverityMedium,
		TypeBotnetFilterDisabled:  SeverityHigh,
		TypeAppControlDisabled:    SeverityMedium,
		TypeContentFilterDisabled: SeverityMedium,
	}
	for typ, sev := range want {
		r, ok := findByType(risks, typ)
		if !ok {
			t.Errorf("missing %s", typ)
			continue
		}
		if r.Severity != sev {
			t.Errorf("%s severity = %s, want %s", typ, r.Severity, sev)
		}
		if r.Category != CategoryFeatureDisabled {
			t.Errorf("%s category = %s", typ, r.Category)
		}
	}
}
