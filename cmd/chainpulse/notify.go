package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ChainPulse/internal/di"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Build the latest report and deliver it once",
	Long: `Loads the metrics table, compares the two most recent rows and sends
the formatted report to the configured channel (telegram or kafka).
With --dry-run the report is printed instead of sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
			cfg.Notify.DryRun = true
		}

		job, cleanup, err := di.InitializeNotifyJob(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init notify: %w", err)
		}
		defer cleanup()

		rep, err := job.Run(cmd.Context())
		if rep != nil && cfg.Notify.DryRun {
			fmt.Fprintln(cmd.OutOrStdout(), rep.Text)
		}
		return err
	},
}

func init() {
	notifyCmd.Flags().Bool("dry-run", false, "Print the report instead of sending it")
	rootCmd.AddCommand(notifyCmd)
}
