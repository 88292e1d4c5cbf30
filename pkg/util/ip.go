package util

import (
	"net"
	"strconv"
	"strings"
)

// IsValidIPv4 reports whether s is a well-formed IPv4 address.
func IsValidIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// IsValidIPv4CIDR reports whether s is a well-formed IPv4 network in
// CIDR notation.
func IsValidIPv4CIDR(s string) bool {
	if _, _, err := net.ParseCIDR(s); err != nil {
		return false
	}
	ip := net.ParseIP(strings.SplitN(s, "/", 2)[0])
	return ip != nil && ip.To4() != nil
}

// SplitIPMask splits CIDR notation into the address and mask length.
// Input without a parseable mask comes back with length 0.
func SplitIPMask(cidr string) (string, int) {
	parts := strings.SplitN(cidr, "/", 2)
	if len(parts) != 2 {
		return cidr, 0
	}
	maskLen, err := strconv.Atoi(parts[1])
	if err != nil {
		return parts[0], 0
	}
	return parts[0], maskLen
}
