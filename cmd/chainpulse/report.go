package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ChainPulse/internal/di"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the latest report without delivering it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		builder, cleanup, err := di.InitializeReportBuilder(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init report: %w", err)
		}
		defer cleanup()

		rep, err := builder.Build(cmd.Context())
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (previous %s)\n\n", cyan("Report for"),
			rep.Latest.Date, rep.Previous.Date)
		fmt.Fprintln(out, rep.Text)
		if len(rep.Alerts) > 0 {
			fmt.Fprintf(out, "\n%s %d regime change(s)\n", yellow("!"), len(rep.Alerts))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.AddCommand(reportCmd)
}
