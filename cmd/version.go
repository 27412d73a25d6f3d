package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sampledir/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of sampledir",
	Long:  `Displays the version of sampledir.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sampledir %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
