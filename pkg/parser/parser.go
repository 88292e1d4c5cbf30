// Package parser turns a raw firewall configuration export into a
// structured model.ParsedConfig. Parsing is heuristic and line-oriented:
// each line is classified by a coarse keyword gate, then the matching
// category extractor tries an ordered list of field patterns and falls
// back to the category default when nothing matches. Malformed entries
// are skipped with a warning; Parse never fails.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwaudit/fwaudit/pkg/model"
	"github.com/fwaudit/fwaudit/pkg/util"
)

// Report records what a parse pass actually did, so silently skipped
// entries stay observable to callers and tests.
type Report struct {
	Lines    int      `json:"lines"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

func (r *Report) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	util.WithSection("parser").Warn(msg)
}

func (r *Report) skipf(format string, args ...interface{}) {
	r.Skipped++
	r.warnf(format, args...)
}

// Parse extracts a structured configuration from raw config text.
// It always returns a fully-defaulted config, whatever the input.
func Parse(text string) *model.ParsedConfig {
	cfg, _ := ParseWithReport(text)
	return cfg
}

// ParseWithReport is Parse plus a report of skipped entries and warnings.
func ParseWithReport(text string) (*model.ParsedConfig, *Report) {
	cfg := model.NewParsedConfig()
	rep := &Report{}

	lines := configLines(text)
	rep.Lines = len(lines)

	ex := &extractor{cfg: cfg, rep: rep}
	ex.extractRules(lines)
	ex.extractNATPolicies(lines)
	ex.extractAddressObjects(lines)
	ex.extractServiceObjects(lines)
	ex.extractInterfaces(lines)
	ex.extractVPNConfigs(lines)
	ex.scanSecurityFlags(lines)
	ex.extractAdminSettings(lines)
	ex.extractSystemSettings(lines)

	util.Debugf("parsed %d lines: %d rules, %d interfaces, %d findings-relevant objects, %d skipped",
		rep.Lines, len(cfg.Rules), len(cfg.Interfaces),
		len(cfg.AddressObjects)+len(cfg.ServiceObjects), rep.Skipped)

	return cfg, rep
}

// extractor accumulates parse results. Each extractX method scans the
// full line set independently; there is no cross-category state.
type extractor struct {
	cfg *model.ParsedConfig
	rep *Report
}

// configLines splits text into trimmed, non-empty, non-comment lines.
func configLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" || isComment(l) {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func isComment(line string) bool {
	switch line[0] {
	case '#', '!', ';':
		return true
	}
	return false
}

// firstMatch tries patterns in order and returns the first pattern's
// first capture group. Quoted captures are unquoted.
func firstMatch(line string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(line); len(m) > 1 && m[1] != "" {
			return util.Unquote(m[1]), true
		}
	}
	return "", false
}

// matchOrDefault is firstMatch with a fallback value.
func matchOrDefault(line string, patterns []*regexp.Regexp, def string) string {
	if v, ok := firstMatch(line, patterns); ok {
		return v
	}
	return def
}

// token matches a quoted string or a bare word.
const token = `("[^"]*"|'[^']*'|\S+)`

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}
