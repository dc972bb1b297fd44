package main

import (
	"github.com/spf13/cobra"
)

var (
	riskComplexCode string
	riskProvince    string
)

var complexRiskCmd = &cobra.Command{
	Use:   "complex-risk",
	Short: "Assess operational risk of industrial complexes",
	Long:  "Scores industrial complexes on occupancy, operating rate and employment. With --complex a single complex is assessed; otherwise the full directory, optionally filtered by --province.",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newService().ComplexRisk(cmd.Context(), riskComplexCode, riskProvince)
		if err != nil {
			return err
		}
		return renderResult(cmd.OutOrStdout(), report, outputFormat)
	},
}

func init() {
	complexRiskCmd.Flags().StringVar(&riskComplexCode, "complex", "", "assess a single complex by code")
	complexRiskCmd.Flags().StringVar(&riskProvince, "province", "", "filter the bulk assessment by province")
	rootCmd.AddCommand(complexRiskCmd)
}
