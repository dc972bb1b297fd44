package main

import (
	"github.com/spf13/cobra"
)

var companyCmd = &cobra.Command{
	Use:   "company <biz-no>",
	Short: "Show a company's 360° profile",
	Long:  "Looks up a company by its 10-digit business registration number (hyphens allowed) and assembles its identity, employment, financial and procurement profile.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := newService().CompanyProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return renderResult(cmd.OutOrStdout(), profile, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)
}
