package main

import (
	"github.com/spf13/cobra"
)

var regionsProvince string

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List regions in the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		regions, err := newService().ListRegions(cmd.Context(), regionsProvince)
		if err != nil {
			return err
		}
		return renderResult(cmd.OutOrStdout(), regions, outputFormat)
	},
}

func init() {
	regionsCmd.Flags().StringVar(&regionsProvince, "province", "", "filter by province name")
	rootCmd.AddCommand(regionsCmd)
}
