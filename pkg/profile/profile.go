// Package profile loads YAML audit profiles that tune an analysis run:
// suppressed finding types, a minimum severity, and a CI score gate.
// Profiles act on the finding list after analysis; the engine itself
// stays profile-agnostic.
package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fwaudit/fwaudit/pkg/risk"
	"github.com/fwaudit/fwaudit/pkg/util"
)

// Profile tunes which findings an audit run reports and when it fails.
type Profile struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Suppress    []string `yaml:"suppress,omitempty"`     // finding types to drop
	MinSeverity string   `yaml:"min_severity,omitempty"` // drop findings below this
	FailBelow   int      `yaml:"fail_below,omitempty"`   // exit non-zero when score < this
}

// Load reads and validates a YAML profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the profile fields.
func (p *Profile) Validate() error {
	v := &util.ValidationBuilder{}
	v.Add(p.Name != "", "name is required")
	v.Add(p.FailBelow >= 0 && p.FailBelow <= 100, "fail_below must be between 0 and 100")
	if p.MinSeverity != "" {
		v.Add(risk.Severity(strings.ToLower(p.MinSeverity)).Valid(),
			fmt.Sprintf("min_severity %q is not one of critical, high, medium, low", p.MinSeverity))
	}
	for _, s := range p.Suppress {
		v.Add(strings.TrimSpace(s) != "", "suppress entries must not be blank")
	}
	return v.Build()
}

// Apply filters a finding list through the profile: suppressed types
// are dropped, then findings below the minimum severity. The input
// slice is not modified.
func (p *Profile) Apply(risks []risk.Risk) []risk.Risk {
	minRank := 0
	if p.MinSeverity != "" {
		minRank = risk.Severity(strings.ToLower(p.MinSeverity)).Rank()
	}

	out := make([]risk.Risk, 0, len(risks))
	for _, r := range risks {
		if p.suppressed(r.Type) {
			continue
		}
		if r.Severity.Rank() < minRank {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Fails reports whether the score falls under the profile's CI gate.
func (p *Profile) Fails(score int) bool {
	return p.FailBelow > 0 && score < p.FailBelow
}

func (p *Profile) suppressed(typ string) bool {
	for _, s := range p.Suppress {
		if strings.EqualFold(strings.TrimSpace(s), typ) {
			return true
		}
	}
	return false
}
