package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Start a test session",
	Long:  "Start a test session over the configured bank directory, or over a single bank file when one is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bankFile := ""
		if len(args) == 1 {
			bankFile = args[0]
		}
		category, _ := cmd.Flags().GetString("category")
		return runApp(cmd, bankFile, category)
	},
}

func init() {
	playCmd.Flags().String("category", "", "Limit the test to one bank category")
}
