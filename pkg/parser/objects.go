package parser

import (
	"strconv"
	"strings"

	"github.com/fwaudit/fwaudit/pkg/model"
	"github.com/fwaudit/fwaudit/pkg/util"
)

var (
	addrObjNamePats = patterns(
		`\baddress-object\s+(?:ipv4\s+)?` + token,
		`\baddress\s+object\s+` + token,
	)
	addrObjIPPats = patterns(
		`\bhost\s+` + token,
		`\bnetwork\s+` + token,
		`\bip\s+` + token,
	)
	objZonePats = patterns(
		`\bzone\s+` + token,
	)

	svcObjNamePats = patterns(
		`\bservice-object\s+` + token,
		`\bservice\s+object\s+` + token,
	)
	svcProtocolPats = patterns(
		`\bprotocol\s+` + token,
		`\bproto\s+` + token,
	)
	svcPortPats = patterns(
		`\bports?\s+([0-9]+(?:\s*-\s*[0-9]+)?)`,
	)

	ifaceNamePats = patterns(
		`^interface\s+` + token,
	)
	ifaceIPPats = patterns(
		`\bip\s+(?:address\s+)?` + token,
		`\baddress\s+` + token,
	)
	ifaceDHCPPat = patterns(
		`\bdhcp(?:-server|\s+server)?\s+(enable[d]?|on)\b`,
	)

	vpnNamePats = patterns(
		`\bpolicy\s+` + token,
		`\bname\s+` + token,
	)
	vpnEncryptionPats = patterns(
		`\bencryption\s+` + token,
		`\benc\s+` + token,
	)
	vpnAuthPats = patterns(
		`\bauthentication\s+` + token,
		`\bauth\s+` + token,
	)
)

func isAddressObjectLine(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "address-object") || strings.Contains(l, "address object")
}

func isServiceObjectLine(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "service-object") || strings.Contains(l, "service object")
}

func isInterfaceLine(line string) bool {
	return strings.HasPrefix(strings.ToLower(line), "interface ")
}

func isVPNLine(line string) bool {
	l := strings.ToLower(line)
	// HasPrefix keeps rule lines whose service happens to be "vpn" out.
	return strings.HasPrefix(l, "vpn ") || strings.Contains(l, "vpn policy") || strings.Contains(l, "vpn-policy")
}

func (ex *extractor) extractAddressObjects(lines []string) {
	for _, line := range lines {
		if !isAddressObjectLine(line) {
			continue
		}

		name, ok := firstMatch(line, addrObjNamePats)
		if !ok {
			ex.rep.skipf("address object with no name: %q", line)
			continue
		}

		obj := model.AddressObject{
			Name:      name,
			IPAddress: model.ZeroIP,
			Zone:      model.AnyValue,
		}
		if ip, ok := firstMatch(line, addrObjIPPats); ok {
			if util.IsValidIPv4(ip) || util.IsValidIPv4CIDR(ip) {
				obj.IPAddress = ip
			} else {
				ex.rep.warnf("address object %s: %q is not an IPv4 address", name, ip)
			}
		}
		if zone, ok := firstMatch(line, objZonePats); ok {
			obj.Zone = zone
		}
		ex.cfg.AddressObjects = append(ex.cfg.AddressObjects, obj)
	}
}

func (ex *extractor) extractServiceObjects(lines []string) {
	for _, line := range lines {
		if !isServiceObjectLine(line) {
			continue
		}

		name, ok := firstMatch(line, svcObjNamePats)
		if !ok {
			ex.rep.skipf("service object with no name: %q", line)
			continue
		}

		obj := model.ServiceObject{
			Name:      name,
			Protocol:  model.AnyValue,
			PortRange: model.AnyValue,
		}
		if proto, ok := firstMatch(line, svcProtocolPats); ok {
			obj.Protocol = strings.ToLower(proto)
		}
		if ports, ok := firstMatch(line, svcPortPats); ok {
			normalized, err := normalizePortRange(ports)
			if err != nil {
				ex.rep.skipf("service object %s: %v", name, err)
				continue
			}
			obj.PortRange = normalized
		}
		ex.cfg.ServiceObjects = append(ex.cfg.ServiceObjects, obj)
	}
}

// normalizePortRange validates a "N" or "N-M" port spec and strips
// whitespace around the dash.
func normalizePortRange(spec string) (string, error) {
	parts := strings.SplitN(spec, "-", 2)
	nums := make([]string, 0, 2)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return "", util.NewInputError("port spec", "port out of range: "+p)
		}
		nums = append(nums, p)
	}
	return strings.Join(nums, "-"), nil
}

func (ex *extractor) extractInterfaces(lines []string) {
	for _, line := range lines {
		if !isInterfaceLine(line) {
			continue
		}

		name, ok := firstMatch(line, ifaceNamePats)
		if !ok {
			ex.rep.skipf("interface line with no name: %q", line)
			continue
		}

		iface := model.InterfaceConfig{
			Name:      name,
			Zone:      model.AnyValue,
			IPAddress: model.ZeroIP,
		}
		if zone, ok := firstMatch(line, objZonePats); ok {
			iface.Zone = zone
		}
		if ip, ok := firstMatch(line, ifaceIPPats); ok {
			switch {
			case util.IsValidIPv4(ip):
				iface.IPAddress = ip
			case util.IsValidIPv4CIDR(ip):
				// Interface identity is the address; the mask stays out.
				addr, _ := util.SplitIPMask(ip)
				iface.IPAddress = addr
			default:
				ex.rep.warnf("interface %s: %q is not an IPv4 address", name, ip)
			}
		}
		if _, ok := firstMatch(line, ifaceDHCPPat); ok {
			iface.DHCPServerEnabled = true
		}
		ex.cfg.Interfaces = append(ex.cfg.Interfaces, iface)
	}
}

func (ex *extractor) extractVPNConfigs(lines []string) {
	for _, line := range lines {
		if !isVPNLine(line) {
			continue
		}

		vpn := model.VPNConfig{
			Encryption: model.UnknownValue,
			AuthMethod: model.UnknownValue,
		}
		found := false

		if name, ok := firstMatch(line, vpnNamePats); ok {
			vpn.PolicyName = name
			found = true
		}
		if enc, ok := firstMatch(line, vpnEncryptionPats); ok {
			vpn.Encryption = strings.ToLower(enc)
			found = true
		}
		if auth, ok := firstMatch(line, vpnAuthPats); ok {
			vpn.AuthMethod = strings.ToLower(auth)
			found = true
		}

		// Lines that merely mention VPN (counters, status) carry nothing.
		if !found {
			continue
		}
		ex.cfg.VPNConfigs = append(ex.cfg.VPNConfigs, vpn)
	}
}
