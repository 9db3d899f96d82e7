package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "partwise",
	Short: "MusicXML score generation",
	Long:  `Builds musical scores and renders them to MusicXML and MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
