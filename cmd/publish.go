package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notelab/partwise/bucket"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish [direct|algorithmic]",
	Short: "Uploads a rendered demo score",
	Long:  `Renders a demo score and uploads it to the configured bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		score, err := demoScore(args[0])
		if err != nil {
			panic(err.Error())
		}
		key, err := bucket.PublishScore(score)
		if err != nil {
			panic("Could not publish score because: " + err.Error())
		}
		fmt.Printf("Published %v\n", key)
	},
}
