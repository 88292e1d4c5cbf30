package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fwaudit/fwaudit/pkg/audit"
	"github.com/fwaudit/fwaudit/pkg/cli"
	"github.com/fwaudit/fwaudit/pkg/model"
	"github.com/fwaudit/fwaudit/pkg/parser"
	"github.com/fwaudit/fwaudit/pkg/util"
)

var (
	parseJSON bool
	parseYAML bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <config-file>",
	Short: "Parse a config export without scoring it",
	Long: `Parse reads a firewall configuration export and prints the
structured model the risk detectors would see, without running
them. Useful for checking what the heuristic parser recognized.

Examples:
  fwaudit parse branch-fw.cfg
  fwaudit parse branch-fw.cfg --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		event := audit.NewEvent(currentUser(), audit.OpParse)

		data, err := os.ReadFile(args[0])
		if err != nil {
			err = fmt.Errorf("reading config %s: %w", args[0], err)
			audit.Log(event.WithError(err).WithDuration(time.Since(start)))
			return err
		}
		text := string(data)

		cfg, rep := parser.ParseWithReport(text)
		event.WithConfig(args[0], util.HashConfig(text))
		audit.Log(event.WithSuccess().WithDuration(time.Since(start)))

		switch {
		case parseJSON:
			return printJSON(cfg)
		case parseYAML:
			return printYAML(cfg)
		}
		printParseSummary(args[0], cfg, rep)
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output as JSON")
	parseCmd.Flags().BoolVar(&parseYAML, "yaml", false, "Output as YAML")
}

func printParseSummary(path string, cfg *model.ParsedConfig, rep *parser.Report) {
	fmt.Printf("%s\n\n", cli.Bold(path))

	t := cli.NewTable("SECTION", "COUNT")
	t.Row("Firewall rules", strconv.Itoa(len(cfg.Rules)))
	t.Row("NAT policies", strconv.Itoa(len(cfg.NATPolicies)))
	t.Row("Address objects", strconv.Itoa(len(cfg.AddressObjects)))
	t.Row("Service objects", strconv.Itoa(len(cfg.ServiceObjects)))
	t.Row("Interfaces", strconv.Itoa(len(cfg.Interfaces)))
	t.Row("VPN policies", strconv.Itoa(len(cfg.VPNConfigs)))
	t.Row("Admin users", strconv.Itoa(len(cfg.AdminSettings.Usernames)))
	t.Flush()

	fmt.Println()
	fmt.Printf("%s %s\n", cli.DotPad("hostname", 14), orUnset(cfg.SystemSettings.Hostname))
	fmt.Printf("%s %s\n", cli.DotPad("firmware", 14), cfg.SystemSettings.FirmwareVersion)
	fmt.Printf("%s %s\n", cli.DotPad("features", 14), featureSummary(&cfg.SecuritySettings))

	fmt.Printf("\n%d lines, %d skipped", rep.Lines, rep.Skipped)
	if len(rep.Warnings) > 0 {
		fmt.Printf(", %d warnings", len(rep.Warnings))
	}
	fmt.Println()
	if verbose {
		for _, w := range rep.Warnings {
			fmt.Printf("  %s\n", cli.Yellow(w))
		}
	}
}

func orUnset(s string) string {
	if s == "" {
		return cli.Dim("(not set)")
	}
	return s
}

// featureSummary renders the security feature toggles as a short
// enabled/disabled roster for the plain-text report.
func featureSummary(s *model.SecuritySettings) string {
	features := []struct {
		name string
		on   bool
	}{
		{"ips", s.IPSEnabled},
		{"gav", s.GAVEnabled},
		{"anti-spyware", s.AntiSpywareEnabled},
		{"app-control", s.AppControlEnabled},
		{"content-filter", s.ContentFilterEnabled},
		{"botnet-filter", s.BotnetFilterEnabled},
		{"dpi-ssl", s.DPISSLEnabled},
		{"geo-ip", s.GeoIPFilterEnabled},
	}

	var parts []string
	for _, f := range features {
		if f.on {
			parts = append(parts, cli.Green(f.name))
		} else {
			parts = append(parts, cli.Dim(f.name))
		}
	}
	return strings.Join(parts, " ")
}
