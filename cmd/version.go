package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden by -ldflags on release builds; the update command
// refuses to touch a "(devel)" binary.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quizdrill version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quizdrill", version)
	},
}
