package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fwaudit/fwaudit/pkg/audit"
	"github.com/fwaudit/fwaudit/pkg/cli"
	"github.com/fwaudit/fwaudit/pkg/parser"
	"github.com/fwaudit/fwaudit/pkg/profile"
	"github.com/fwaudit/fwaudit/pkg/risk"
	"github.com/fwaudit/fwaudit/pkg/store"
	"github.com/fwaudit/fwaudit/pkg/util"
)

var (
	analyzeJSON        bool
	analyzeYAML        bool
	analyzeProfile     string
	analyzeMinSeverity string
	analyzeSuppress    string
	analyzeFailBelow   int
	analyzeStore       bool
	analyzeDevice      string
)

// analysisReport is the structured output of one analyze run.
type analysisReport struct {
	ConfigFile string         `json:"config_file" yaml:"config_file"`
	ConfigHash string         `json:"config_hash" yaml:"config_hash"`
	Profile    string         `json:"profile,omitempty" yaml:"profile,omitempty"`
	Score      int            `json:"score" yaml:"score"`
	RuleCount  int            `json:"rule_count" yaml:"rule_count"`
	Findings   []risk.Risk    `json:"findings" yaml:"findings"`
	Parse      *parser.Report `json:"parse_report" yaml:"parse_report"`

	profile *profile.Profile
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <config-file>",
	Short: "Parse a config export and score its security posture",
	Long: `Analyze parses a firewall configuration export, runs the full
risk detector battery, and prints the findings with an aggregate
0-100 score.

A profile (--profile, or profile_path in settings) can suppress
finding types and set a minimum severity. With --fail-below, the
command exits non-zero when the score falls under the threshold,
for use in CI pipelines.

Examples:
  fwaudit analyze branch-fw.cfg
  fwaudit analyze branch-fw.cfg --json
  fwaudit analyze branch-fw.cfg --profile pci.yaml --fail-below 70
  fwaudit analyze branch-fw.cfg --store --device branch-fw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		event := audit.NewEvent(currentUser(), audit.OpAnalyze)

		report, err := runAnalysis(args[0])
		if err != nil {
			audit.Log(event.WithError(err).WithDuration(time.Since(start)))
			return err
		}

		event.WithConfig(args[0], report.ConfigHash).
			WithResult(report.Score, len(report.Findings), countCritical(report.Findings))
		if report.Profile != "" {
			event.WithProfile(report.Profile)
		}

		if analyzeStore {
			if err := storeResult(args[0], report); err != nil {
				audit.Log(event.WithError(err).WithDuration(time.Since(start)))
				return err
			}
			event.WithStored()
		}

		audit.Log(event.WithSuccess().WithDuration(time.Since(start)))

		if err := printAnalysis(report); err != nil {
			return err
		}

		// An explicit --fail-below wins; otherwise the profile's gate applies.
		switch {
		case analyzeFailBelow > 0 && report.Score < analyzeFailBelow:
			return fmt.Errorf("score %d is below the required threshold %d", report.Score, analyzeFailBelow)
		case analyzeFailBelow == 0 && report.profile != nil && report.profile.Fails(report.Score):
			return fmt.Errorf("score %d is below profile %q threshold %d",
				report.Score, report.Profile, report.profile.FailBelow)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeYAML, "yaml", false, "Output as YAML")
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "Audit profile file (YAML)")
	analyzeCmd.Flags().StringVar(&analyzeMinSeverity, "min-severity", "", "Drop findings below this severity (critical|high|medium|low)")
	analyzeCmd.Flags().StringVar(&analyzeSuppress, "suppress", "", "Comma-separated finding types to drop")
	analyzeCmd.Flags().IntVar(&analyzeFailBelow, "fail-below", 0, "Exit non-zero when the score is below this value")
	analyzeCmd.Flags().BoolVar(&analyzeStore, "store", false, "Save the result to the history store")
	analyzeCmd.Flags().StringVar(&analyzeDevice, "device", "", "Device label for the stored result")
}

func runAnalysis(path string) (*analysisReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	text := string(data)

	cfg, parseRep := parser.ParseWithReport(text)
	findings := risk.New().Analyze(cfg)

	findings, prof, err := applyProfile(findings)
	if err != nil {
		return nil, err
	}

	if suppress := util.SplitCommaSeparated(analyzeSuppress); len(suppress) > 0 {
		kept := findings[:0]
		for _, r := range findings {
			if !util.ContainsFold(suppress, r.Type) {
				kept = append(kept, r)
			}
		}
		findings = kept
	}

	minSev := analyzeMinSeverity
	if minSev == "" {
		minSev = userSettings.MinSeverity
	}
	if minSev != "" {
		sev := risk.Severity(strings.ToLower(minSev))
		if !sev.Valid() {
			return nil, util.NewInputError("min-severity", "must be one of critical, high, medium, low")
		}
		findings = filterBySeverity(findings, sev)
	}

	report := &analysisReport{
		ConfigFile: path,
		ConfigHash: util.HashConfig(text),
		Score:      risk.Score(findings),
		RuleCount:  len(cfg.Rules),
		Findings:   findings,
		Parse:      parseRep,
	}
	if prof != nil {
		report.Profile = prof.Name
		report.profile = prof
	}
	return report, nil
}

// applyProfile runs the findings through the --profile file, or the
// settings default when the flag is unset. Returns the applied profile
// so the caller can honor its fail_below gate and record its name.
func applyProfile(findings []risk.Risk) ([]risk.Risk, *profile.Profile, error) {
	path := analyzeProfile
	if path == "" {
		path = userSettings.ProfilePath
	}
	if path == "" {
		return findings, nil, nil
	}

	p, err := profile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	util.WithSection("profile").Debugf("applying profile %s", p.Name)
	return p.Apply(findings), p, nil
}

func filterBySeverity(findings []risk.Risk, min risk.Severity) []risk.Risk {
	out := make([]risk.Risk, 0, len(findings))
	for _, r := range findings {
		if r.Severity.Rank() >= min.Rank() {
			out = append(out, r)
		}
	}
	return out
}

func storeResult(path string, report *analysisReport) error {
	s := store.New(userSettings.GetRedisAddr(), "", userSettings.RedisDB)
	defer s.Close()

	if err := s.Ping(); err != nil {
		return err
	}

	return s.Save(&store.Result{
		Hash:         report.ConfigHash,
		Device:       analyzeDevice,
		ConfigFile:   path,
		Timestamp:    time.Now(),
		Score:        report.Score,
		RuleCount:    report.RuleCount,
		FindingCount: len(report.Findings),
		Findings:     report.Findings,
	})
}

func printAnalysis(report *analysisReport) error {
	switch {
	case analyzeJSON:
		return printJSON(report)
	case analyzeYAML:
		return printYAML(report)
	}
	// Flags override the persistent default format.
	switch userSettings.GetFormat() {
	case "json":
		return printJSON(report)
	case "yaml":
		return printYAML(report)
	}

	fmt.Printf("%s  %s\n", cli.Bold(report.ConfigFile), cli.Dim(report.ConfigHash[:12]))
	if report.Parse.Skipped > 0 {
		fmt.Printf("%s\n", cli.Yellow(fmt.Sprintf("%d entries skipped during parsing (-v for details)", report.Parse.Skipped)))
	}
	fmt.Println()

	if len(report.Findings) == 0 {
		fmt.Println(cli.Green("No findings."))
	} else {
		t := cli.NewTable("SEVERITY", "TYPE", "DESCRIPTION")
		for _, r := range report.Findings {
			t.Row(cli.ColorSeverity(r.Severity), r.Type, r.Description)
		}
		t.Flush()
	}

	fmt.Printf("\nScore: %s\n", cli.ColorScore(report.Score))
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func countCritical(findings []risk.Risk) int {
	n := 0
	for _, r := range findings {
		if r.Severity == risk.SeverityCritical {
			n++
		}
	}
	return n
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}
