//go:build e2e
// +build e2e

package e2e_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notelab/partwise/cmd"
)

var router http.Handler

func TestMain(m *testing.M) {
	// Write code here to run before tests
	router = cmd.NewRouter()

	// Run tests
	exitVal := m.Run()

	os.Exit(exitVal)
}

func get(path string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func TestDirectScoreXMLE2E(t *testing.T) {
	resp := get("/scores/direct.musicxml")
	body, _ := io.ReadAll(resp.Body)
	out := string(body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Equal(resp.Header.Get("Content-Type"), "application/vnd.recordare.musicxml+xml")
	assert.True(strings.HasPrefix(out, "<?xml"))
	assert.Contains(out, "<!DOCTYPE score-partwise")
	assert.Contains(out, "<score-partwise")
	for _, name := range []string{"Oboe", "Clarinet", "Bassoon"} {
		assert.Contains(out, "<part-name>"+name+"</part-name>")
	}
	assert.Contains(out, `<part-group type="start">`)
	assert.Contains(out, "<backup>")
	assert.Contains(out, "<tuplet")
}

func TestAlgorithmicScoreXMLE2E(t *testing.T) {
	resp := get("/scores/algorithmic.musicxml")
	body, _ := io.ReadAll(resp.Body)
	out := string(body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Contains(out, "<beats>3</beats>")
	assert.Contains(out, "<beat-type>4</beat-type>")
	assert.Contains(out, "<actual-notes>3</actual-notes>")
	// 20 measures in the demo
	assert.Contains(out, `<measure number="20">`)
	assert.NotContains(out, `<measure number="21">`)
}

func TestDirectScoreMidiE2E(t *testing.T) {
	resp := get("/scores/direct.mid")
	body, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Equal(resp.Header.Get("Content-Type"), "audio/midi")
	assert.True(len(body) > 14)
	assert.Equal(string(body[:4]), "MThd")
}

func TestUnknownDemoE2E(t *testing.T) {
	resp := get("/scores/nope.musicxml")
	assert.Equal(t, resp.StatusCode, 404)
}
