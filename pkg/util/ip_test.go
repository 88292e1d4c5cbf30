package util

import "testing"

func TestIsValidIPv4(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.0.0.1", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"256.0.0.1", false},
		{"10.0.0", false},
		{"::1", false},
		{"not-an-ip", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidIPv4(tt.input); got != tt.want {
			t.Errorf("IsValidIPv4(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidIPv4CIDR(t *testing.T) {
	if !IsValidIPv4CIDR("192.168.1.0/24") {
		t.Error("valid CIDR rejected")
	}
	if IsValidIPv4CIDR("192.168.1.0") {
		t.Error("bare IP accepted as CIDR")
	}
	if IsValidIPv4CIDR("2001:db8::/32") {
		t.Error("IPv6 CIDR accepted")
	}
}

func TestSplitIPMask(t *testing.T) {
	ip, mask := SplitIPMask("10.1.1.1/30")
	if ip != "10.1.1.1" || mask != 30 {
		t.Errorf("SplitIPMask = %q/%d, want 10.1.1.1/30", ip, mask)
	}

	ip, mask = SplitIPMask("10.1.1.1")
	if ip != "10.1.1.1" || mask != 0 {
		t.Errorf("SplitIPMask without mask = %q/%d", ip, mask)
	}
}

func TestHashConfig(t *testing.T) {
	a := HashConfig("interface X1 zone WAN")
	b := HashConfig("interface X1 zone WAN")
	c := HashConfig("interface X1 zone LAN")

	if a != b {
		t.Error("equal inputs must hash equal")
	}
	if a == c {
		t.Error("different inputs should not collide")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
