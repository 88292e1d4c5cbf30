package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fwaudit/fwaudit/pkg/cli"
	"github.com/fwaudit/fwaudit/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.fwaudit/settings.json.

Settings provide defaults for command flags:
  - format:       Default output format
  - min-severity: Default --min-severity for analyze
  - redis-addr:   History store address
  - redis-db:     History store database number
  - profile:      Default audit profile file
  - audit-dir:    Audit log directory

Examples:
  fwaudit settings show
  fwaudit settings set redis-addr redis.lab:6379
  fwaudit settings set profile ~/profiles/pci.yaml
  fwaudit settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		t := cli.NewTable("SETTING", "VALUE")

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value)
		}

		printSetting("format", s.DefaultFormat)
		printSetting("min-severity", s.MinSeverity)
		printSetting("redis-addr", s.RedisAddr)
		if s.RedisDB != 0 {
			t.Row("redis-db", strconv.Itoa(s.RedisDB))
		} else {
			t.Row("redis-db", "(not set)")
		}
		printSetting("profile", s.ProfilePath)
		printSetting("audit-dir", s.AuditLogDir)

		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "format":
			s.DefaultFormat = value
			fmt.Printf("Default format set to: %s\n", value)
		case "min-severity":
			s.MinSeverity = value
			fmt.Printf("Default minimum severity set to: %s\n", value)
		case "redis-addr":
			s.RedisAddr = value
			fmt.Printf("Redis address set to: %s\n", value)
		case "redis-db":
			db, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("redis-db must be a number: %s", value)
			}
			s.RedisDB = db
			fmt.Printf("Redis database set to: %d\n", db)
		case "profile":
			s.ProfilePath = value
			fmt.Printf("Default profile set to: %s\n", value)
		case "audit-dir":
			s.AuditLogDir = value
			fmt.Printf("Audit log directory set to: %s\n", value)
		default:
			return fmt.Errorf("unknown setting: %s (valid: format, min-severity, redis-addr, redis-db, profile, audit-dir)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <setting>",
	Short: "Get a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		var value string
		switch args[0] {
		case "format":
			value = s.DefaultFormat
		case "min-severity":
			value = s.MinSeverity
		case "redis-addr":
			value = s.RedisAddr
		case "redis-db":
			if s.RedisDB != 0 {
				value = strconv.Itoa(s.RedisDB)
			}
		case "profile":
			value = s.ProfilePath
		case "audit-dir":
			value = s.AuditLogDir
		default:
			return fmt.Errorf("unknown setting: %s (valid: format, min-severity, redis-addr, redis-db, profile, audit-dir)", args[0])
		}

		if value == "" {
			fmt.Println("(not set)")
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("Settings cleared.")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsGetCmd, settingsClearCmd)
}
