package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ChainPulse/internal/di"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the metrics dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Dashboard.Port = port
		}

		app, cleanup, err := di.InitializeDashboard(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init dashboard: %w", err)
		}
		defer cleanup()

		return app.Run(cmd.Context())
	},
}

func init() {
	dashboardCmd.Flags().IntP("port", "p", 0, "Listen port (overrides dashboard.port)")
	rootCmd.AddCommand(dashboardCmd)
}
