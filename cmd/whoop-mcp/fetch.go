// ABOUTME: CLI command for fetching one domain directly, bypassing MCP.
// ABOUTME: Useful for checking credentials and eyeballing upstream payloads.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/whoop-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

var fetchDate string

var fetchCmd = &cobra.Command{
	Use:       "fetch {overview|sleep|recovery|strain|healthspan}",
	Short:     "Fetch one domain and print its summary",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"overview", "sleep", "recovery", "strain", "healthspan"},
	Long: `Fetch a single Whoop domain and print the same formatted summary the
MCP tool would return. Logs in with WHOOP_EMAIL/WHOOP_PASSWORD.

EXAMPLES:

  whoop-mcp fetch overview
  whoop-mcp fetch sleep --date 2026-08-01
  whoop-mcp fetch healthspan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateCredentials(); err != nil {
			return err
		}
		client := newWhoopClient()
		ctx := cmd.Context()

		var summary string
		switch args[0] {
		case "overview":
			home, err := client.GetHome(ctx, fetchDate)
			if err != nil {
				return err
			}
			summary = mcp.OverviewSummary(home)
		case "sleep":
			dive, err := client.GetSleepDeepDive(ctx, fetchDate)
			if err != nil {
				return err
			}
			summary = mcp.SleepSummary(dive)
		case "recovery":
			dive, err := client.GetRecoveryDeepDive(ctx, fetchDate)
			if err != nil {
				return err
			}
			summary = mcp.RecoverySummary(dive)
		case "strain":
			dive, err := client.GetStrainDeepDive(ctx, fetchDate)
			if err != nil {
				return err
			}
			summary = mcp.StrainSummary(dive)
		case "healthspan":
			hs, err := client.GetHealthspan(ctx, fetchDate)
			if err != nil {
				return err
			}
			summary = mcp.HealthspanSummary(hs)
		default:
			return fmt.Errorf("unknown domain: %s", args[0])
		}

		faint := color.New(color.Faint)
		if fetchDate != "" {
			faint.Printf("date: %s\n\n", fetchDate)
		}
		fmt.Print(summary)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchDate, "date", "d", "", "date in YYYY-MM-DD format (defaults to today)")
}
