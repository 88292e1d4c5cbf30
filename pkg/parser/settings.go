package parser

import (
	"regexp"
	"strconv"

	"github.com/fwaudit/fwaudit/pkg/util"
)

var (
	adminUserPats = patterns(
		`\badmin(?:istrator)?\s+user(?:name)?\s+` + token,
		`\badmin\s+name\s+` + token,
	)
	adminPortPats = patterns(
		`\bhttps\s+(?:admin-?port|management\s+port|port)\s+(\d+)`,
		`\badmin-port\s+(\d+)`,
		`\bweb\s+management\s+port\s+(\d+)`,
	)

	mfaKeywordPat     = regexp.MustCompile(`(?i)\b(?:mfa|multi-?factor|two-?factor|totp)\b`)
	wanMgmtKeywordPat = regexp.MustCompile(`(?i)\b(?:wan[ -]management|management\s+wan|remote\s+management)\b`)
	sshKeywordPat     = regexp.MustCompile(`(?i)\bssh\b`)

	firmwarePats = patterns(
		`\bfirmware(?:[ -]version)?\s+(\S.*)$`,
		`\b(?:sonicos|os)\s+version\s+(\S.*)$`,
	)
	hostnamePats = patterns(
		`^host-?name\s+` + token,
		`^system\s+name\s+` + token,
	)
	timezonePats = patterns(
		`\btime-?zone\s+` + token,
	)
	ntpServerPats = patterns(
		`\bntp[ -]server\s+` + token,
	)
	dnsServerPats = patterns(
		`\bdns[ -]server\s+` + token,
		`\bname-server\s+` + token,
	)
)

// extractAdminSettings walks every line: usernames accumulate uniquely
// in insertion order, boolean toggles use the same last-write-wins
// tri-state as the security-flag scan, and the HTTPS port keeps its 443
// default when unparseable.
func (ex *extractor) extractAdminSettings(lines []string) {
	admin := &ex.cfg.AdminSettings
	mfa, wanMgmt, ssh := flagUnset, flagUnset, flagUnset

	for _, line := range lines {
		if name, ok := firstMatch(line, adminUserPats); ok {
			admin.Usernames = util.AppendUnique(admin.Usernames, name)
		}

		if port, ok := firstMatch(line, adminPortPats); ok {
			n, err := strconv.Atoi(port)
			if err != nil || n < 1 || n > 65535 {
				ex.rep.warnf("ignoring invalid admin port %q", port)
			} else {
				admin.HTTPSPort = n
			}
		}

		mfa = applyToggle(mfa, line, mfaKeywordPat)
		wanMgmt = applyToggle(wanMgmt, line, wanMgmtKeywordPat)
		ssh = applyToggle(ssh, line, sshKeywordPat)
	}

	admin.MFAEnabled = mfa.bool()
	admin.WANManagementEnabled = wanMgmt.bool()
	admin.SSHEnabled = ssh.bool()
}

// applyToggle advances a tri-state flag when line carries the keyword
// plus an enable/disable word.
func applyToggle(state flagState, line string, keyword *regexp.Regexp) flagState {
	if !keyword.MatchString(line) {
		return state
	}
	switch {
	case disableWordPat.MatchString(line):
		return flagOff
	case enableWordPat.MatchString(line):
		return flagOn
	}
	return state
}

func (ex *extractor) extractSystemSettings(lines []string) {
	sys := &ex.cfg.SystemSettings

	for _, line := range lines {
		if v, ok := firstMatch(line, firmwarePats); ok {
			sys.FirmwareVersion = v
		}
		if v, ok := firstMatch(line, hostnamePats); ok {
			sys.Hostname = v
		}
		if v, ok := firstMatch(line, timezonePats); ok {
			sys.Timezone = v
		}
		if v, ok := firstMatch(line, ntpServerPats); ok {
			sys.NTPServers = util.AppendUnique(sys.NTPServers, v)
		}
		if v, ok := firstMatch(line, dnsServerPats); ok {
			sys.DNSServers = util.AppendUnique(sys.DNSServers, v)
		}
	}
}
