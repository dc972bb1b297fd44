package main

import (
	"github.com/spf13/cobra"
)

var regionHealthCmd = &cobra.Command{
	Use:   "region-health <code>",
	Short: "Classify a region's industrial health",
	Long:  "Fetches one region by its 5-digit administrative code and classifies its health score into one of five bands, alongside the component indicators.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newService().RegionHealth(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return renderResult(cmd.OutOrStdout(), report, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(regionHealthCmd)
}
