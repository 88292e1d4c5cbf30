package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fwaudit/fwaudit/pkg/cli"
	"github.com/fwaudit/fwaudit/pkg/store"
	"github.com/fwaudit/fwaudit/pkg/util"
)

var (
	historyLimit   int
	historyDevice  string
	historyJSON    bool
	historyAskPass bool
	historyForce   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage stored analysis results",
	Long: `Manage analysis results saved with 'analyze --store'.

Results live in Redis, keyed by the config hash, and are listed
newest first.

Examples:
  fwaudit history list --limit 10
  fwaudit history show 3b4f2a91cc07
  fwaudit history show latest
  fwaudit history clear --force`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.List(historyLimit)
		if err != nil {
			return err
		}
		if historyDevice != "" {
			filtered := results[:0]
			for _, r := range results {
				if strings.EqualFold(r.Device, historyDevice) {
					filtered = append(filtered, r)
				}
			}
			results = filtered
		}

		if historyJSON {
			return printJSON(results)
		}
		if len(results) == 0 {
			fmt.Println("No stored results.")
			return nil
		}

		t := cli.NewTable("HASH", "DEVICE", "TIME", "SCORE", "FINDINGS")
		for _, r := range results {
			device := r.Device
			if device == "" {
				device = "-"
			}
			t.Row(
				r.Hash[:12],
				device,
				r.Timestamp.Format("2006-01-02 15:04"),
				cli.ColorScore(r.Score),
				fmt.Sprintf("%d", r.FindingCount),
			)
		}
		t.Flush()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <hash|latest>",
	Short: "Show one stored result in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		result, err := lookupResult(s, args[0])
		if err != nil {
			return err
		}

		if historyJSON {
			return printJSON(result)
		}

		fmt.Printf("%s  %s\n", cli.Bold(result.Hash), cli.Dim(result.Timestamp.Format("2006-01-02 15:04:05")))
		if result.Device != "" {
			fmt.Printf("Device: %s\n", result.Device)
		}
		if result.ConfigFile != "" {
			fmt.Printf("Config: %s\n", result.ConfigFile)
		}
		fmt.Printf("Rules:  %d\n\n", result.RuleCount)

		if len(result.Findings) == 0 {
			fmt.Println(cli.Green("No findings."))
		} else {
			t := cli.NewTable("SEVERITY", "TYPE", "DESCRIPTION")
			for _, r := range result.Findings {
				t.Row(cli.ColorSeverity(r.Severity), r.Type, r.Description)
			}
			t.Flush()
		}

		fmt.Printf("\nScore: %s\n", cli.ColorScore(result.Score))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored results",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if !historyForce {
			fmt.Print("Delete all stored results? [y/N] ")
			var answer string
			fmt.Scanln(&answer)
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := s.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyAskPass, "askpass", false, "Prompt for the Redis password")
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "Output as JSON")

	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum results to list (0 for all)")
	historyListCmd.Flags().StringVar(&historyDevice, "device", "", "Only show results for this device label")
	historyClearCmd.Flags().BoolVar(&historyForce, "force", false, "Skip the confirmation prompt")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyClearCmd)
}

// openStore connects to the history store using settings defaults,
// prompting for a password when --askpass is given.
func openStore() (*store.Store, error) {
	password := ""
	if historyAskPass {
		fmt.Fprint(os.Stderr, "Redis password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	}

	s := store.New(userSettings.GetRedisAddr(), password, userSettings.RedisDB)
	if err := s.Ping(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// lookupResult resolves "latest", a full config hash, or a unique
// hash prefix as shown by 'history list'.
func lookupResult(s *store.Store, ref string) (*store.Result, error) {
	if strings.EqualFold(ref, "latest") {
		return s.Latest()
	}
	if len(ref) == 64 {
		return s.Get(ref)
	}

	results, err := s.List(0)
	if err != nil {
		return nil, err
	}
	var match *store.Result
	for _, r := range results {
		if strings.HasPrefix(r.Hash, ref) {
			if match != nil {
				return nil, fmt.Errorf("hash prefix %s is ambiguous", ref)
			}
			match = r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("result %s: %w", ref, util.ErrNotFound)
	}
	return match, nil
}
