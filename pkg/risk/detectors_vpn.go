package risk

import (
	"fmt"
	"strings"

	"github.com/fwaudit/fwaudit/pkg/model"
)

// weakCiphers are encryption algorithms considered broken for VPN use.
var weakCiphers = []string{"des", "3des"}

// pskTokens mark pre-shared-key authentication; certTokens mark
// certificate-based authentication. PSK-only means a PSK token is
// present and no certificate token is.
var (
	pskTokens  = []string{"psk", "pre-shared", "preshared", "shared-secret"}
	certTokens = []string{"cert", "x509", "rsa-sig"}
)

// vpnEncryptionDetector flags tunnels negotiated with broken ciphers.
type vpnEncryptionDetector struct{}

func (vpnEncryptionDetector) Name() string { return "vpn-encryption" }

func (vpnEncryptionDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, vpn := range cfg.VPNConfigs {
		enc := strings.ToLower(vpn.Encryption)
		for _, weak := range weakCiphers {
			if enc == weak {
				risks = append(risks, Risk{
					Category: CategoryFeatureDisabled,
					Type:     TypeVPNWeakEncryption,
					Severity: SeverityHigh,
					Description: fmt.Sprintf(
						"VPN policy %s uses the deprecated %s cipher", vpnLabel(vpn), strings.ToUpper(vpn.Encryption)),
					Remediation: "Re-negotiate the tunnel with AES-128 or stronger; DES and 3DES are practically breakable",
				})
				break
			}
		}
	}
	return risks
}

// vpnAuthDetector flags tunnels authenticated by pre-shared key alone.
type vpnAuthDetector struct{}

func (vpnAuthDetector) Name() string { return "vpn-auth" }

func (vpnAuthDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, vpn := range cfg.VPNConfigs {
		auth := strings.ToLower(vpn.AuthMethod)
		if containsAnyToken(auth, pskTokens) && !containsAnyToken(auth, certTokens) {
			risks = append(risks, Risk{
				Category: CategoryBestPractice,
				Type:     TypeVPNPSKOnly,
				Severity: SeverityMedium,
				Description: fmt.Sprintf(
					"VPN policy %s authenticates with a pre-shared key only", vpnLabel(vpn)),
				Remediation: "Move the tunnel to certificate-based authentication; shared secrets leak and rarely rotate",
			})
		}
	}
	return risks
}

func containsAnyToken(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func vpnLabel(vpn model.VPNConfig) string {
	if vpn.PolicyName != "" {
		return fmt.Sprintf("%q", vpn.PolicyName)
	}
	return "(unnamed)"
}
