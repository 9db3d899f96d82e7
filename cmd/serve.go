package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/notelab/partwise/constants"
	midirender "github.com/notelab/partwise/midi"
	"github.com/notelab/partwise/mxml"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the demo scores over HTTP",
	Long:  `Serves the demo scores as MusicXML and MIDI over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func handleScoreXML(w http.ResponseWriter, r *http.Request) {
	score, err := demoScore(mux.Vars(r)["demo"])
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	out, err := mxml.ToXML(score, true)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.recordare.musicxml+xml")
	fmt.Fprint(w, out)
}

func handleScoreMidi(w http.ResponseWriter, r *http.Request) {
	score, err := demoScore(mux.Vars(r)["demo"])
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	if _, err := midirender.Render(score, 120).WriteTo(w); err != nil {
		log.Printf("could not write midi response: %v", err)
	}
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scores/{demo}.musicxml", handleScoreXML).Methods("GET")
	router.HandleFunc("/scores/{demo}.mid", handleScoreMidi).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	addr := constants.GetServeAddr()
	fmt.Printf("Serving on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
