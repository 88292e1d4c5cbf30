// Package model defines the structured representation of a parsed
// firewall configuration. Types here are plain values with JSON tags;
// the parser fills them in and the risk engine reads them.
package model

import "strings"

// Rule actions
const (
	ActionAllow = "allow"
	ActionDeny  = "deny"
)

// Well-known zone names referenced by detectors
const (
	ZoneWAN   = "WAN"
	ZoneLAN   = "LAN"
	ZoneGuest = "GUEST"
)

// AnyValue is the wildcard used for unextracted zones, addresses, and services.
const AnyValue = "any"

// UnknownValue fills string fields the parser could not determine.
const UnknownValue = "unknown"

// ZeroIP fills IP fields the parser could not determine.
const ZeroIP = "0.0.0.0"

// FirewallRule represents a single access rule
type FirewallRule struct {
	Name               string `json:"rule_name"`
	SourceZone         string `json:"source_zone"`
	DestinationZone    string `json:"destination_zone"`
	SourceAddress      string `json:"source_address"`
	DestinationAddress string `json:"destination_address"`
	Service            string `json:"service"`
	Action             string `json:"action"` // allow, deny
	Enabled            bool   `json:"enabled"`
	Schedule           string `json:"schedule,omitempty"`
	Comment            string `json:"comment,omitempty"`
}

// NewFirewallRule returns a rule with wildcard defaults.
func NewFirewallRule() FirewallRule {
	return FirewallRule{
		SourceZone:         AnyValue,
		DestinationZone:    AnyValue,
		SourceAddress:      AnyValue,
		DestinationAddress: AnyValue,
		Service:            AnyValue,
		Action:             ActionAllow,
		Enabled:            true,
	}
}

// IsAllow reports whether the rule action is allow, ignoring case.
func (r FirewallRule) IsAllow() bool {
	return strings.EqualFold(r.Action, ActionAllow)
}

// Matches reports whether the rule's zones match the given source and
// destination, ignoring case.
func (r FirewallRule) Matches(srcZone, dstZone string) bool {
	return strings.EqualFold(r.SourceZone, srcZone) && strings.EqualFold(r.DestinationZone, dstZone)
}

// HasComment reports whether the rule carries a non-blank comment.
func (r FirewallRule) HasComment() bool {
	return strings.TrimSpace(r.Comment) != ""
}

// NATPolicy represents an address translation policy
type NATPolicy struct {
	OriginalSource        string `json:"original_source"`
	TranslatedSource      string `json:"translated_source"`
	OriginalDestination   string `json:"original_destination"`
	TranslatedDestination string `json:"translated_destination"`
	Interface             string `json:"interface"`
}

// NewNATPolicy returns a NAT policy with wildcard defaults.
func NewNATPolicy() NATPolicy {
	return NATPolicy{
		OriginalSource:        AnyValue,
		TranslatedSource:      AnyValue,
		OriginalDestination:   AnyValue,
		TranslatedDestination: AnyValue,
		Interface:             AnyValue,
	}
}

// AddressObject is a named reusable IP/network reference
type AddressObject struct {
	Name      string `json:"object_name"`
	IPAddress string `json:"ip_address"`
	Zone      string `json:"zone"`
}

// ServiceObject is a named protocol+port combination
type ServiceObject struct {
	Name      string `json:"service_name"`
	Protocol  string `json:"protocol"`
	PortRange string `json:"port_range"`
}

// InterfaceConfig represents a network interface
type InterfaceConfig struct {
	Name              string `json:"interface_name"`
	Zone              string `json:"zone"`
	IPAddress         string `json:"ip_address"`
	DHCPServerEnabled bool   `json:"dhcp_server_enabled"`
}

// IsWAN reports whether the interface sits in the WAN zone, ignoring case.
func (i InterfaceConfig) IsWAN() bool {
	return strings.EqualFold(i.Zone, ZoneWAN)
}

// VPNConfig represents a VPN tunnel policy
type VPNConfig struct {
	PolicyName string `json:"policy_name"`
	Encryption string `json:"encryption"`
	AuthMethod string `json:"authentication_method"`
}

// IsAny reports whether a zone/address/service value is the wildcard, ignoring case.
func IsAny(value string) bool {
	return strings.EqualFold(value, AnyValue)
}
