package risk

import "github.com/fwaudit/fwaudit/pkg/model"

// Security-service detectors treat an unset flag as disabled: a config
// that never mentions a service gets the finding, because the parser
// defaults every flag to false.

type ipsDetector struct{}

func (ipsDetector) Name() string { return "ips-enabled" }

func (ipsDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.SecuritySettings.IPSEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryFeatureDisabled,
		Type:        TypeIPSDisabled,
		Severity:    SeverityCritical,
		Description: "Intrusion prevention is disabled",
		Remediation: "Enable the intrusion prevention service and keep its signature database current",
	}}
}

type gavDetector struct{}

func (gavDetector) Name() string { return "gateway-av-enabled" }

func (gavDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.SecuritySettings.GAVEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryFeatureDisabled,
		Type:        TypeGAVDisabled,
		Severity:    SeverityCritical,
		Description: "Gateway anti-virus is disabled",
		Remediation: "Enable gateway anti-virus so malware is stripped at the perimeter before reaching endpoints",
	}}
}

type dpiSSLDetector struct{}

func (dpiSSLDetector) Name() string { return "dpi-ssl-enabled" }

func (dpiSSLDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.SecuritySettings.DPISSLEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryFeatureDisabled,
		Type:        TypeDPISSLDisabled,
		Severity:    SeverityMedium,
		Description: "Deep packet inspection of TLS traffic is disabled",
		Remediation: "Enable DPI-SSL so threats inside encrypted sessions remain visible to the security services",
	}}
}

type botnetFilterDetector struct{}

func (botnetFilterDetector) Name() string { return "botnet-filter-enabled" }

func (botnetFilterDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.SecuritySettings.BotnetFilterEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryFeatureDisabled,
		Type:        TypeBotnetFilterDisabled,
		Severity:    SeverityHigh,
		Description: "Botnet command-and-control filtering is disabled",
		Remediation: "Enable the botnet filter to block connections to known command-and-control infrastructure",
	}}
}

type appControlDetector struct{}

func (appControlDetector) Name() string { return "app-control-enabled" }

func (appControlDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.SecuritySettings.AppControlEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryFeatureDisabled,
		Type:        TypeAppControlDisabled,
		Severity:    SeverityMedium,
		Description: "Application control is disabled",
		Remediation: "Enable application control to identify and police application traffic regardless of port",
	}}
}

type contentFilterDetector struct{}

func (contentFilterDetector) Name() string { return "content-filter-enabled" }

func (contentFilterDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if cfg.SecuritySettings.ContentFilterEnabled {
		return nil
	}
	return []Risk{{
		Category:    CategoryFeatureDisabled,
		Type:        TypeContentFilterDisabled,
		Severity:    SeverityMedium,
		Description: "Content filtering is disabled",
		Remediation: "Enable the content filtering service to block known-malicious and policy-violating destinations",
	}}
}
