package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notelab/partwise/mxml"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [direct|algorithmic] [output file]",
	Short: "Renders a demo score to MusicXML",
	Long:  `Renders one of the built-in demo scores to a MusicXML file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args: demo name and output path")
		}
		score, err := demoScore(args[0])
		if err != nil {
			panic(err.Error())
		}
		if err := mxml.WriteFile(score, args[1]); err != nil {
			panic("Could not write score because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", args[1])
	},
}
