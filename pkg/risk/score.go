package risk

// Per-finding score deductions by severity.
const (
	deductCritical = 25
	deductHigh     = 15
	deductMedium   = 5
	deductLow      = 1
)

// Score derives the aggregate 0-100 risk score from a finding list.
// It is a pure, order-independent function of the severity multiset:
// 100 minus per-severity deductions, clamped to [0, 100].
func Score(risks []Risk) int {
	score := 100
	for _, r := range risks {
		switch r.Severity {
		case SeverityCritical:
			score -= deductCritical
		case SeverityHigh:
			score -= deductHigh
		case SeverityMedium:
			score -= deductMedium
		case SeverityLow:
			score -= deductLow
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
