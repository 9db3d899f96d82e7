package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	midirender "github.com/notelab/partwise/midi"
)

func init() {
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi [direct|algorithmic] [output file] [bpm]",
	Short: "Renders a demo score to a MIDI file",
	Long:  `Renders a demo score to a standard MIDI file for listening.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need at least 2 args: demo name and output path")
		}
		bpm := 120.0
		if len(args) == 3 {
			parsed, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				panic(err)
			}
			bpm = parsed
		}
		score, err := demoScore(args[0])
		if err != nil {
			panic(err.Error())
		}
		if err := midirender.WriteFile(score, bpm, args[1]); err != nil {
			panic("Could not write midi file because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", args[1])
	},
}
