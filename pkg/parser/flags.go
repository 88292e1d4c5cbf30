package parser

import (
	"regexp"

	"github.com/fwaudit/fwaudit/pkg/model"
)

// flagState is the three-state accumulator for a security feature:
// unset until the first matching line, then whatever the last matching
// line said. Last write wins across the whole file; this mirrors the
// observed vendor export behavior and is a documented assumption.
type flagState int

const (
	flagUnset flagState = iota
	flagOn
	flagOff
)

func (s flagState) bool() bool { return s == flagOn }

var (
	enableWordPat  = regexp.MustCompile(`(?i)\b(?:enabled?|on)\b`)
	disableWordPat = regexp.MustCompile(`(?i)\b(?:disabled?|off)\b`)
)

// securityFeature pairs a feature-keyword pattern with the flag it drives.
type securityFeature struct {
	name    string
	keyword *regexp.Regexp
	assign  func(*model.SecuritySettings, bool)
}

var securityFeatures = []securityFeature{
	{
		name:    "ips",
		keyword: regexp.MustCompile(`(?i)\b(?:intrusion[ -]prevention|ips)\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.IPSEnabled = v },
	},
	{
		name:    "gateway-av",
		keyword: regexp.MustCompile(`(?i)\b(?:gateway[ -]anti-?virus|gateway-av|gav)\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.GAVEnabled = v },
	},
	{
		name:    "anti-spyware",
		keyword: regexp.MustCompile(`(?i)\banti[ -]?spyware\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.AntiSpywareEnabled = v },
	},
	{
		name:    "app-control",
		keyword: regexp.MustCompile(`(?i)\b(?:app(?:lication)?[ -]control)\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.AppControlEnabled = v },
	},
	{
		name:    "content-filter",
		keyword: regexp.MustCompile(`(?i)\b(?:content[ -]filter(?:ing)?|cfs)\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.ContentFilterEnabled = v },
	},
	{
		name:    "botnet-filter",
		keyword: regexp.MustCompile(`(?i)\bbotnet\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.BotnetFilterEnabled = v },
	},
	{
		name:    "dpi-ssl",
		keyword: regexp.MustCompile(`(?i)\bdpi[ -]ssl\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.DPISSLEnabled = v },
	},
	{
		name:    "geo-ip",
		keyword: regexp.MustCompile(`(?i)\bgeo[ -]?ip\b`),
		assign:  func(s *model.SecuritySettings, v bool) { s.GeoIPFilterEnabled = v },
	},
}

// scanSecurityFlags walks every line once per feature. A line counts
// when the feature keyword co-occurs with an enable or disable word;
// disable is checked first so a line carrying both reads as off.
func (ex *extractor) scanSecurityFlags(lines []string) {
	for _, feat := range securityFeatures {
		state := flagUnset
		for _, line := range lines {
			if !feat.keyword.MatchString(line) {
				continue
			}
			switch {
			case disableWordPat.MatchString(line):
				state = flagOff
			case enableWordPat.MatchString(line):
				state = flagOn
			}
		}
		feat.assign(&ex.cfg.SecuritySettings, state.bool())
	}
}
