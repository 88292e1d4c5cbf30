package risk

import (
	"time"

	"github.com/fwaudit/fwaudit/pkg/model"
	"github.com/fwaudit/fwaudit/pkg/util"
)

// Detector is one auditable rule. Evaluate inspects its slice of the
// config and returns zero or more findings; it must not depend on any
// other detector's output.
type Detector interface {
	Name() string
	Evaluate(cfg *model.ParsedConfig) []Risk
}

// Registry returns the fixed detector battery in evaluation order:
// network exposure, admin plane, security features, VPN, then
// best-practice checks. Order affects only finding order, never content.
func Registry() []Detector {
	return registryAt(time.Now)
}

func registryAt(now func() time.Time) []Detector {
	return []Detector{
		openInboundDetector{},
		anyAnyRuleDetector{},
		guestIsolationDetector{},
		dhcpOnWANDetector{},
		wanManagementDetector{},
		mfaDetector{},
		defaultUsernameDetector{},
		defaultPortDetector{},
		sshOnWANDetector{},
		ipsDetector{},
		gavDetector{},
		dpiSSLDetector{},
		botnetFilterDetector{},
		appControlDetector{},
		contentFilterDetector{},
		ruleDescriptionDetector{},
		vpnEncryptionDetector{},
		vpnAuthDetector{},
		firmwareAgeDetector{now: now},
		ntpDetector{},
	}
}

// Engine runs the detector battery over a parsed config. The clock is
// injectable so the firmware-age detector is testable.
type Engine struct {
	detectors []Detector
}

// New creates an engine with the default registry and wall clock.
func New() *Engine {
	return &Engine{detectors: Registry()}
}

// NewAt creates an engine whose age-based detectors evaluate relative
// to the given clock.
func NewAt(now func() time.Time) *Engine {
	return &Engine{detectors: registryAt(now)}
}

// Analyze runs every detector and concatenates findings in registry
// order. It never fails: a detector with no supporting data emits
// nothing.
func (e *Engine) Analyze(cfg *model.ParsedConfig) []Risk {
	risks := []Risk{}
	for _, d := range e.detectors {
		found := d.Evaluate(cfg)
		if len(found) > 0 {
			util.WithDetector(d.Name()).Debugf("%d finding(s)", len(found))
		}
		risks = append(risks, found...)
	}
	return risks
}
