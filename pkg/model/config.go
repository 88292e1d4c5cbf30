package model

// ParsedConfig is the structured result of one parse pass over a raw
// configuration export. Every field is populated: collections may be
// empty but scalar fields always carry their documented defaults, so
// consumers never check for absence.
type ParsedConfig struct {
	Rules            []FirewallRule    `json:"rules"`
	NATPolicies      []NATPolicy       `json:"nat_policies"`
	AddressObjects   []AddressObject   `json:"address_objects"`
	ServiceObjects   []ServiceObject   `json:"service_objects"`
	SecuritySettings SecuritySettings  `json:"security_settings"`
	AdminSettings    AdminSettings     `json:"admin_settings"`
	Interfaces       []InterfaceConfig `json:"interfaces"`
	VPNConfigs       []VPNConfig       `json:"vpn_configs"`
	SystemSettings   SystemSettings    `json:"system_settings"`
}

// NewParsedConfig returns a config with all scalar defaults applied
// and every collection empty rather than nil, so serialized output
// renders empty lists. Parsing an empty string yields exactly this
// value.
func NewParsedConfig() *ParsedConfig {
	return &ParsedConfig{
		Rules:          []FirewallRule{},
		NATPolicies:    []NATPolicy{},
		AddressObjects: []AddressObject{},
		ServiceObjects: []ServiceObject{},
		Interfaces:     []InterfaceConfig{},
		VPNConfigs:     []VPNConfig{},
		AdminSettings: AdminSettings{
			Usernames: []string{},
			HTTPSPort: DefaultHTTPSPort,
		},
		SystemSettings: SystemSettings{
			FirmwareVersion: UnknownValue,
			Hostname:        UnknownValue,
			Timezone:        UnknownValue,
			NTPServers:      []string{},
			DNSServers:      []string{},
		},
	}
}

// HasWANInterface reports whether any interface sits in the WAN zone.
func (c *ParsedConfig) HasWANInterface() bool {
	for _, iface := range c.Interfaces {
		if iface.IsWAN() {
			return true
		}
	}
	return false
}
