package main

import (
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <code>...",
	Short: "Compare up to 5 regions across industrial metrics",
	Long:  "Fetches the given regions concurrently and ranks them on health score, company count, employee count and growth rate. Codes that fail to resolve are dropped from the comparison.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comparison, err := newService().CompareRegions(cmd.Context(), args)
		if err != nil {
			return err
		}
		return renderResult(cmd.OutOrStdout(), comparison, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
