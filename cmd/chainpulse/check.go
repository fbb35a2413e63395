package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/services/regime"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and the regime tables",
	Long: `Loads and validates the config file, builds the regime tables and lists
gaps or overlaps between bands. Values that fall into a gap saturate to
the nearest end of the table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tables, _, err := regime.FromConfig(cfg.Regimes)
		if err != nil {
			return fmt.Errorf("regime tables: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		out := cmd.OutOrStdout()

		warnings := 0
		for _, m := range models.TrackedMetrics() {
			gaps := tables[m].Gaps()
			if len(gaps) == 0 {
				fmt.Fprintf(out, "%s %s\n", green("ok"), m)
				continue
			}
			for _, g := range gaps {
				fmt.Fprintf(out, "%s %s: %s\n", yellow("warn"), m, g)
				warnings++
			}
		}
		fmt.Fprintf(out, "\nsource=%s notify=%s warnings=%d\n", cfg.Source.Type, cfg.Notify.Channel, warnings)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
