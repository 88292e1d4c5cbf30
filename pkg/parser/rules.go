package parser

import (
	"strings"

	"github.com/fwaudit/fwaudit/pkg/model"
)

// Rule and NAT field patterns. Each field carries ordered alternatives:
// the long-form keyword first, then short aliases. First capture wins.
var (
	ruleNamePats = patterns(
		`\brule-name\s+` + token,
		`\bname\s+` + token,
	)
	ruleSrcZonePats = patterns(
		`\bsource-zone\s+` + token,
		`\bsrc-zone\s+` + token,
		`\bfrom\s+` + token,
	)
	ruleDstZonePats = patterns(
		`\bdestination-zone\s+` + token,
		`\bdst-zone\s+` + token,
		`\bto\s+` + token,
	)
	ruleSrcAddrPats = patterns(
		`\bsource\s+address\s+` + token,
		`\bsource\s+` + token,
		`\bsrc\s+` + token,
	)
	ruleDstAddrPats = patterns(
		`\bdestination\s+address\s+` + token,
		`\bdestination\s+` + token,
		`\bdst\s+` + token,
	)
	ruleServicePats = patterns(
		`\bservice\s+` + token,
		`\bsvc\s+` + token,
	)
	ruleActionPats = patterns(
		`\baction\s+(allow|permit|accept|deny|drop|block|discard)\b`,
		`\b(allow|permit|deny|drop)\b`,
	)
	ruleSchedulePats = patterns(
		`\bschedule\s+` + token,
	)
	ruleCommentPats = patterns(
		`\bcomment\s+"([^"]*)"`,
		`\bcomment\s+(\S.*)$`,
		`\bdescription\s+"([^"]*)"`,
	)
	ruleDisabledPat = patterns(
		`\b(disabled?|inactive)\b`,
	)

	natOrigSrcPats = patterns(
		`\boriginal-source\s+` + token,
		`\borig-src\s+` + token,
	)
	natTransSrcPats = patterns(
		`\btranslated-source\s+` + token,
		`\btrans-src\s+` + token,
	)
	natOrigDstPats = patterns(
		`\boriginal-destination\s+` + token,
		`\borig-dst\s+` + token,
	)
	natTransDstPats = patterns(
		`\btranslated-destination\s+` + token,
		`\btrans-dst\s+` + token,
	)
	natInterfacePats = patterns(
		`\binterface\s+` + token,
	)
)

// isRuleLine is the coarse category gate for access rules.
func isRuleLine(line string) bool {
	l := strings.ToLower(line)
	if strings.Contains(l, "access-rule") || strings.Contains(l, "firewall rule") {
		return true
	}
	return false
}

// isNATLine is the coarse category gate for NAT policies.
func isNATLine(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "nat-policy") || strings.Contains(l, "nat policy")
}

func (ex *extractor) extractRules(lines []string) {
	for _, line := range lines {
		if !isRuleLine(line) {
			continue
		}

		rule := model.NewFirewallRule()
		rule.Name = matchOrDefault(line, ruleNamePats, "")
		rule.SourceZone = matchOrDefault(line, ruleSrcZonePats, model.AnyValue)
		rule.DestinationZone = matchOrDefault(line, ruleDstZonePats, model.AnyValue)
		rule.SourceAddress = matchOrDefault(line, ruleSrcAddrPats, model.AnyValue)
		rule.DestinationAddress = matchOrDefault(line, ruleDstAddrPats, model.AnyValue)
		rule.Service = matchOrDefault(line, ruleServicePats, model.AnyValue)
		rule.Schedule = matchOrDefault(line, ruleSchedulePats, "")
		rule.Comment = matchOrDefault(line, ruleCommentPats, "")

		if action, ok := firstMatch(line, ruleActionPats); ok {
			rule.Action = normalizeAction(action)
		}
		if _, disabled := firstMatch(line, ruleDisabledPat); disabled {
			rule.Enabled = false
		}

		ex.cfg.Rules = append(ex.cfg.Rules, rule)
	}
}

// normalizeAction folds vendor action synonyms onto allow/deny.
func normalizeAction(action string) string {
	switch strings.ToLower(action) {
	case "allow", "permit", "accept":
		return model.ActionAllow
	case "deny", "drop", "block", "discard":
		return model.ActionDeny
	}
	return model.ActionAllow
}

func (ex *extractor) extractNATPolicies(lines []string) {
	for _, line := range lines {
		if !isNATLine(line) {
			continue
		}

		policy := model.NewNATPolicy()
		found := false

		if v, ok := firstMatch(line, natOrigSrcPats); ok {
			policy.OriginalSource = v
			found = true
		}
		if v, ok := firstMatch(line, natTransSrcPats); ok {
			policy.TranslatedSource = v
			found = true
		}
		if v, ok := firstMatch(line, natOrigDstPats); ok {
			policy.OriginalDestination = v
			found = true
		}
		if v, ok := firstMatch(line, natTransDstPats); ok {
			policy.TranslatedDestination = v
			found = true
		}
		if v, ok := firstMatch(line, natInterfacePats); ok {
			policy.Interface = v
			found = true
		}

		// A NAT line with no recognizable field carries no information.
		if !found {
			ex.rep.skipf("nat policy with no recognizable fields: %q", line)
			continue
		}
		ex.cfg.NATPolicies = append(ex.cfg.NATPolicies, policy)
	}
}
