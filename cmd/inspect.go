package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/notelab/partwise/constants"
	"github.com/notelab/partwise/timeline"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [direct|algorithmic]",
	Short: "Dumps the layout of a demo score",
	Long:  `Dumps the per-measure event stream of a demo score.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(name string) {
	score, err := demoScore(name)
	if err != nil {
		panic(err.Error())
	}
	for _, part := range score.Parts() {
		fmt.Printf("part: %v\n", part.Name)
		for i, m := range part.Measures {
			events, err := timeline.Build(m, i+1)
			if err != nil {
				panic("Could not lay out measure because: " + err.Error())
			}
			fmt.Printf("measure %v, divisions %v\n", i+1, timeline.Divisions(m, constants.MaxDivisions))
			spew.Dump(events)
		}
	}
}
