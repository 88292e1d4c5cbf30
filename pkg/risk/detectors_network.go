package risk

import (
	"fmt"
	"strings"

	"github.com/fwaudit/fwaudit/pkg/model"
)

// openInboundDetector flags allow rules exposing the whole LAN to WAN.
type openInboundDetector struct{}

func (openInboundDetector) Name() string { return "open-inbound" }

func (openInboundDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, rule := range cfg.Rules {
		if rule.IsAllow() && rule.Matches(model.ZoneWAN, model.ZoneLAN) && model.IsAny(rule.DestinationAddress) {
			risks = append(risks, Risk{
				Category: CategoryExposure,
				Type:     TypeOpenInbound,
				Severity: SeverityCritical,
				Description: fmt.Sprintf(
					"Rule %s allows inbound traffic from WAN to any LAN destination", ruleLabel(rule)),
				Remediation: "Restrict the rule to specific destination hosts or remove it; inbound WAN access should terminate on explicitly published services only",
			})
		}
	}
	return risks
}

// anyAnyRuleDetector flags allow rules with wildcard source and destination.
type anyAnyRuleDetector struct{}

func (anyAnyRuleDetector) Name() string { return "any-any-rule" }

func (anyAnyRuleDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, rule := range cfg.Rules {
		if rule.IsAllow() && model.IsAny(rule.SourceAddress) && model.IsAny(rule.DestinationAddress) {
			risks = append(risks, Risk{
				Category: CategoryNetworkMisconf,
				Type:     TypeAnyAnyRule,
				Severity: SeverityHigh,
				Description: fmt.Sprintf(
					"Rule %s allows traffic from any source to any destination", ruleLabel(rule)),
				Remediation: "Scope the rule to the specific address objects that need to communicate",
			})
		}
	}
	return risks
}

// guestIsolationDetector flags guest networks with a path into the LAN.
type guestIsolationDetector struct{}

func (guestIsolationDetector) Name() string { return "guest-isolation" }

func (guestIsolationDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, rule := range cfg.Rules {
		if rule.IsAllow() && rule.Matches(model.ZoneGuest, model.ZoneLAN) {
			risks = append(risks, Risk{
				Category: CategoryNetworkMisconf,
				Type:     TypeGuestNotIsolated,
				Severity: SeverityHigh,
				Description: fmt.Sprintf(
					"Rule %s allows guest zone traffic into the internal LAN", ruleLabel(rule)),
				Remediation: "Guest networks should be isolated from internal segments; allow only internet-bound traffic from the guest zone",
			})
		}
	}
	return risks
}

// dhcpOnWANDetector flags DHCP server enabled on a WAN-facing interface.
type dhcpOnWANDetector struct{}

func (dhcpOnWANDetector) Name() string { return "dhcp-on-wan" }

func (dhcpOnWANDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, iface := range cfg.Interfaces {
		if iface.IsWAN() && iface.DHCPServerEnabled {
			risks = append(risks, Risk{
				Category: CategoryNetworkMisconf,
				Type:     TypeDHCPOnWAN,
				Severity: SeverityCritical,
				Description: fmt.Sprintf(
					"Interface %s serves DHCP on the WAN zone", iface.Name),
				Remediation: "Disable the DHCP server on WAN-facing interfaces; address assignment toward the ISP is never the firewall's job",
			})
		}
	}
	return risks
}

// ruleLabel names a rule for finding text, falling back to its zones
// when the rule is anonymous.
func ruleLabel(rule model.FirewallRule) string {
	if rule.Name != "" {
		return fmt.Sprintf("%q", rule.Name)
	}
	return fmt.Sprintf("%s->%s", strings.ToUpper(rule.SourceZone), strings.ToUpper(rule.DestinationZone))
}
