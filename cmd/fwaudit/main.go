// Fwaudit - Firewall Configuration Audit Tool
//
// A CLI tool for auditing firewall configuration exports:
//   - Heuristic parsing of vendor config text into a structured model
//   - A fixed battery of risk detectors with severity-weighted scoring
//   - Audit profiles for suppressions and CI score gates
//   - Redis-backed analysis history
//   - Local audit logging of every run
//
// Examples:
//
//	fwaudit analyze branch-fw.cfg                   # table report + score
//	fwaudit analyze branch-fw.cfg --json            # structured output
//	fwaudit analyze branch-fw.cfg --profile pci.yaml --fail-below 70
//	fwaudit parse branch-fw.cfg --json              # parsed config only
//	fwaudit history list --limit 10                 # stored results
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fwaudit/fwaudit/pkg/audit"
	"github.com/fwaudit/fwaudit/pkg/settings"
	"github.com/fwaudit/fwaudit/pkg/util"
	"github.com/fwaudit/fwaudit/pkg/version"
)

var (
	verbose bool

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "fwaudit",
	Short:             "Firewall Configuration Audit Tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Fwaudit parses firewall configuration exports and scores them
against a battery of security risk detectors.

  fwaudit analyze <config-file> [--profile <file>] [--fail-below <score>]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		// Load user settings
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Set log level: quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		// Initialize audit logger
		auditPath := userSettings.GetAuditLogDir() + "/audit.log"
		auditLogger, err := audit.NewFileLogger(auditPath, audit.RotationConfig{
			MaxSize:    10 * 1024 * 1024, // 10MB
			MaxBackups: 10,
		})
		if err != nil {
			util.Warnf("Could not initialize audit logging: %v", err)
		} else {
			audit.SetDefaultLogger(auditLogger)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "audit", Title: "Audit Operations:"},
		&cobra.Group{ID: "history", Title: "Result History:"},
		&cobra.Group{ID: "meta", Title: "Configuration & Meta:"},
	)

	for _, cmd := range []*cobra.Command{analyzeCmd, parseCmd, scoreCmd} {
		cmd.GroupID = "audit"
		rootCmd.AddCommand(cmd)
	}
	historyCmd.GroupID = "history"
	rootCmd.AddCommand(historyCmd)
	for _, cmd := range []*cobra.Command{settingsCmd, versionCmd} {
		cmd.GroupID = "meta"
		rootCmd.AddCommand(cmd)
	}
}

// isSettingsOrHelp reports whether cmd needs no settings/audit setup.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "help", "version", "completion":
			return true
		}
	}
	return false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("fwaudit dev build (use 'make build' for version info)")
			return
		}
		fmt.Printf("fwaudit %s\n", version.Info())
	},
}
