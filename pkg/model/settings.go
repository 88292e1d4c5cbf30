package model

// DefaultHTTPSPort is the factory-default HTTPS management port.
const DefaultHTTPSPort = 443

// SecuritySettings holds the enabled/disabled state of the firewall's
// security services. Unset features report false; the risk engine treats
// unset and disabled the same for these flags.
type SecuritySettings struct {
	IPSEnabled           bool `json:"ips_enabled"`
	GAVEnabled           bool `json:"gav_enabled"`
	AntiSpywareEnabled   bool `json:"anti_spyware_enabled"`
	AppControlEnabled    bool `json:"app_control_enabled"`
	ContentFilterEnabled bool `json:"content_filter_enabled"`
	BotnetFilterEnabled  bool `json:"botnet_filter_enabled"`
	DPISSLEnabled        bool `json:"dpi_ssl_enabled"`
	GeoIPFilterEnabled   bool `json:"geo_ip_filter_enabled"`
}

// AdminSettings holds management-plane configuration
type AdminSettings struct {
	Usernames            []string `json:"admin_usernames"`
	MFAEnabled           bool     `json:"mfa_enabled"`
	WANManagementEnabled bool     `json:"wan_management_enabled"`
	HTTPSPort            int      `json:"https_admin_port"`
	SSHEnabled           bool     `json:"ssh_enabled"`
}

// SystemSettings holds device identity and time configuration
type SystemSettings struct {
	FirmwareVersion string   `json:"firmware_version"`
	Hostname        string   `json:"hostname"`
	Timezone        string   `json:"timezone"`
	NTPServers      []string `json:"ntp_servers"`
	DNSServers      []string `json:"dns_servers"`
}
