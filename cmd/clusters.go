package main

import (
	"github.com/spf13/cobra"
)

var (
	clusterMinCompanies int
	clusterTopN         int
)

var clustersCmd = &cobra.Command{
	Use:   "clusters <keyword>",
	Short: "Find regions where an industry is concentrated",
	Long:  "Scans the region directory for top industries containing the keyword and ranks the matching regions by company count.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newService().FindClusters(cmd.Context(), args[0], clusterMinCompanies, clusterTopN)
		if err != nil {
			return err
		}
		return renderResult(cmd.OutOrStdout(), report, outputFormat)
	},
}

func init() {
	clustersCmd.Flags().IntVar(&clusterMinCompanies, "min-companies", 10, "minimum company count for a match")
	clustersCmd.Flags().IntVar(&clusterTopN, "top", 10, "number of top regions to return")
	rootCmd.AddCommand(clustersCmd)
}
