package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fwaudit/fwaudit/pkg/audit"
	"github.com/fwaudit/fwaudit/pkg/cli"
	"github.com/fwaudit/fwaudit/pkg/risk"
	"github.com/fwaudit/fwaudit/pkg/util"
)

var scoreFailBelow int

var scoreCmd = &cobra.Command{
	Use:   "score <findings-file>",
	Short: "Recompute the score from a saved findings file",
	Long: `Score reads findings from a JSON file and recomputes the 0-100
score. The file can be a bare findings array or the output of
'analyze --json'.

Useful for re-gating an earlier analysis in CI without re-parsing
the config.

Examples:
  fwaudit analyze branch-fw.cfg --json > report.json
  fwaudit score report.json --fail-below 70`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		event := audit.NewEvent(currentUser(), audit.OpScore)

		findings, err := loadFindings(args[0])
		if err != nil {
			audit.Log(event.WithError(err).WithDuration(time.Since(start)))
			return err
		}

		score := risk.Score(findings)
		event.WithResult(score, len(findings), countCritical(findings))
		audit.Log(event.WithSuccess().WithDuration(time.Since(start)))

		counts := map[risk.Severity]int{}
		for _, r := range findings {
			counts[r.Severity]++
		}
		for _, sev := range []risk.Severity{risk.SeverityCritical, risk.SeverityHigh, risk.SeverityMedium, risk.SeverityLow} {
			if counts[sev] > 0 {
				fmt.Printf("%s: %d\n", cli.ColorSeverity(sev), counts[sev])
			}
		}
		fmt.Printf("Score: %s\n", cli.ColorScore(score))

		if scoreFailBelow > 0 && score < scoreFailBelow {
			return fmt.Errorf("score %d is below the required threshold %d", score, scoreFailBelow)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().IntVar(&scoreFailBelow, "fail-below", 0, "Exit non-zero when the score is below this value")
}

// loadFindings accepts either a bare findings array or a full
// analysis report object.
func loadFindings(path string) ([]risk.Risk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading findings %s: %w", path, err)
	}

	var findings []risk.Risk
	if err := json.Unmarshal(data, &findings); err == nil {
		return findings, nil
	}

	var report analysisReport
	if err := json.Unmarshal(data, &report); err == nil && report.Findings != nil {
		return report.Findings, nil
	}

	return nil, util.NewInputError(path, "not a findings array or analyze report")
}
