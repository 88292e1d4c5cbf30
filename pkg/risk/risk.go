// Package risk evaluates a parsed firewall configuration against a
// fixed battery of detectors and derives an aggregate 0-100 score.
// Detectors are pure and independent; the engine only concatenates
// their findings in registry order.
package risk

// Severity classifies a finding and weights its score deduction
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Rank orders severities for filtering: critical is highest.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Risk categories group findings for reporting and filtering
const (
	CategoryExposure        = "exposure_risk"
	CategoryNetworkMisconf  = "network_misconfiguration"
	CategoryFeatureDisabled = "security_feature_disabled"
	CategoryBestPractice    = "best_practice_violation"
)

// Risk is a single finding. Findings are plain values with no identity;
// one analysis may emit several findings of the same type.
type Risk struct {
	Category    string   `json:"risk_category"`
	Type        string   `json:"risk_type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Remediation string   `json:"remediation"`
}

// Risk type identifiers emitted by the detector battery
const (
	TypeOpenInbound           = "OPEN_INBOUND"
	TypeAnyAnyRule            = "ANY_ANY_RULE"
	TypeGuestNotIsolated      = "GUEST_NOT_ISOLATED"
	TypeDHCPOnWAN             = "DHCP_ON_WAN"
	TypeWANManagementEnabled  = "WAN_MANAGEMENT_ENABLED"
	TypeAdminNoMFA            = "ADMIN_NO_MFA"
	TypeDefaultAdminUsername  = "DEFAULT_ADMIN_USERNAME"
	TypeDefaultAdminPort      = "DEFAULT_ADMIN_PORT"
	TypeSSHOnWAN              = "SSH_ON_WAN"
	TypeIPSDisabled           = "IPS_DISABLED"
	TypeGAVDisabled           = "GAV_DISABLED"
	TypeDPISSLDisabled        = "DPI_SSL_DISABLED"
	TypeBotnetFilterDisabled  = "BOTNET_FILTER_DISABLED"
	TypeAppControlDisabled    = "APP_CONTROL_DISABLED"
	TypeContentFilterDisabled = "CONTENT_FILTER_DISABLED"
	TypeRuleNoDescription     = "RULE_NO_DESCRIPTION"
	TypeVPNWeakEncryption     = "VPN_WEAK_ENCRYPTION"
	TypeVPNPSKOnly            = "VPN_PSK_ONLY"
	TypeOutdatedFirmware      = "OUTDATED_FIRMWARE"
	TypeNoNTP                 = "NO_NTP"
)
