package risk

import (
	"fmt"

	"github.com/fwaudit/fwaudit/pkg/model"
	"github.com/fwaudit/fwaudit/pkg/util"
)

// defaultAdminUsernames are factory account names attackers try first.
var defaultAdminUsernames = []string{"admin", "root", "administrator"}

// wanManagementDetector flags the management plane reachable from WAN.
type wanManagementDetector struct{}

func (wanManagementDetector) Name() string { return "wan-management" }

func (wanManagementDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if !cfg.AdminSettings.WANManagementEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryExposure,
		Type:        TypeWANManagementEnabled,
		Severity:    SeverityCritical,
		Description: "Management interface is reachable from the WAN zone",
		Remediation: "Disable WAN-side management; administer the device from the LAN or through a VPN tunnel",
	}}
}

// mfaDetector flags administrator accounts without a second factor.
type mfaDetector struct{}

func (mfaDetector) Name() string { return "admin-mfa" }

func (mfaDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.AdminSettings.MFAEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryBestPractice,
		Type:        TypeAdminNoMFA,
		Severity:    SeverityHigh,
		Description: "Administrator login does not require multi-factor authentication",
		Remediation: "Enable TOTP or another second factor for all administrator accounts",
	}}
}

// defaultUsernameDetector flags factory-default admin account names.
// One finding per matching username.
type defaultUsernameDetector struct{}

func (defaultUsernameDetector) Name() string { return "default-admin-username" }

func (defaultUsernameDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, name := range cfg.AdminSettings.Usernames {
		if !util.ContainsFold(defaultAdminUsernames, name) {
			continue
		}
		risks = append(risks, Risk{
			Category:    CategoryBestPractice,
			Type:        TypeDefaultAdminUsername,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Administrator account uses the default username %q", name),
			Remediation: "Rename the account to a non-default username to blunt credential-stuffing attempts",
		})
	}
	return risks
}

// defaultPortDetector flags the factory HTTPS management port.
type defaultPortDetector struct{}

func (defaultPortDetector) Name() string { return "default-admin-port" }

func (defaultPortDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.AdminSettings.HTTPSPort != model.DefaultHTTPSPort {
		return nil
	}
	return []Risk{{
		Category:    CategoryBestPractice,
		Type:        TypeDefaultAdminPort,
		Severity:    SeverityLow,
		Description: "HTTPS management uses the default port 443",
		Remediation: "Move the management interface to a non-standard port to reduce automated scanning noise",
	}}
}

// sshOnWANDetector flags SSH management on a device with a WAN interface.
type sshOnWANDetector struct{}

func (sshOnWANDetector) Name() string { return "ssh-on-wan" }

func (sshOnWANDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if !cfg.AdminSettings.SSHEnabled || !cfg.HasWANInterface() {
		return nil
	}
	return []Risk{{
		Category:    CategoryExposure,
		Type:        TypeSSHOnWAN,
		Severity:    SeverityHigh,
		Description: "SSH management is enabled on a device with a WAN-facing interface",
		Remediation: "Restrict SSH to management networks or disable it; never expose the SSH service toward the internet",
	}}
}
