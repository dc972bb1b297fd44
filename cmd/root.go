package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kiep-data/analytics-cli/internal/analytics"
	"github.com/kiep-data/analytics-cli/internal/config"
	"github.com/kiep-data/analytics-cli/pkg/kiepapi"
)

var (
	cfg          *config.Config
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "kiep-analytics",
	Short: "Analytic queries over the KIEP industrial dataset",
	Long:  "Queries the KIEP data API for regions, companies and industrial complexes and derives health bands, rankings, cluster matches and risk reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newService builds the analytics service over the configured data API.
func newService() *analytics.Service {
	api := kiepapi.NewClient(cfg.API.BaseURL, kiepapi.WithTimeout(cfg.API.Timeout()))
	return analytics.NewService(api)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format (json or yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
