package risk

import (
	"fmt"
	"time"

	"github.com/fwaudit/fwaudit/pkg/model"
	"github.com/fwaudit/fwaudit/pkg/parser"
)

// firmwareMaxAge is how old a firmware build may be before it counts
// as outdated.
const firmwareMaxAge = 6 * 30 * 24 * time.Hour

// ruleDescriptionDetector flags rules without a comment, one finding
// per rule.
type ruleDescriptionDetector struct{}

func (ruleDescriptionDetector) Name() string { return "rule-description" }

func (ruleDescriptionDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	var risks []Risk
	for _, rule := range cfg.Rules {
		if rule.HasComment() {
			continue
		}
		risks = append(risks, Risk{
			Category: CategoryBestPractice,
			Type:     TypeRuleNoDescription,
			Severity: SeverityLow,
			Description: fmt.Sprintf(
				"Rule %s has no description", ruleLabel(rule)),
			Remediation: "Document every rule's business purpose so stale entries can be identified and removed",
		})
	}
	return risks
}

// firmwareAgeDetector flags firmware older than six months as of the
// engine clock. A version of "unknown" emits nothing; when no build
// date can be extracted the static known-old marker table decides.
type firmwareAgeDetector struct {
	now func() time.Time
}

func (firmwareAgeDetector) Name() string { return "firmware-age" }

func (d firmwareAgeDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	version := cfg.SystemSettings.FirmwareVersion
	if version == "" || version == model.UnknownValue {
		return nil
	}

	outdated := false
	if date, ok := parser.FirmwareDate(version); ok {
		outdated = d.now().Sub(date) > firmwareMaxAge
	} else {
		outdated = parser.KnownOldFirmware(version)
	}
	if !outdated {
		return nil
	}

	return []Risk{{
		Category: CategoryBestPractice,
		Type:     TypeOutdatedFirmware,
		Severity: SeverityMedium,
		Description: fmt.Sprintf(
			"Firmware %q is more than six months old", version),
		Remediation: "Schedule a maintenance window and update to the current firmware release",
	}}
}

// ntpDetector flags devices without time synchronization.
type ntpDetector struct{}

func (ntpDetector) Name() string { return "ntp-configured" }

func (ntpDetector) Evaluate(cfg *model.ParsedConfig) []Risk {
	if len(cfg.SystemSettings.NTPServers) > 0 {
		return nil
	}
	return []Risk{{
		Category:    CategoryBestPractice,
		Type:        TypeNoNTP,
		Severity:    SeverityLow,
		Description: "No NTP servers are configured",
		Remediation: "Configure at least two NTP servers; accurate clocks are a prerequisite for usable audit logs",
	}}
}
