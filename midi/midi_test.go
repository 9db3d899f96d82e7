package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/notelab/partwise/model"
)

func fourFour() *model.TimeSignature {
	return &model.TimeSignature{Beats: 4, BeatType: 4}
}

func note(pitch, dur string) *model.Note {
	return model.NewNote(model.MustPitch(pitch), model.MustDuration(dur))
}

type noteTiming struct {
	on  uint64
	off uint64
}

// noteTimings walks a track and pairs note on/off ticks per key.
func noteTimings(track smf.Track) map[uint8][]noteTiming {
	res := make(map[uint8][]noteTiming)
	open := make(map[uint8]uint64)
	var absTicks uint64
	for _, evt := range track {
		absTicks += uint64(evt.Delta)
		var channel, key, vel uint8
		switch {
		case evt.Message.GetNoteStart(&channel, &key, &vel):
			open[key] = absTicks
		case evt.Message.GetNoteEnd(&channel, &key):
			res[key] = append(res[key], noteTiming{on: open[key], off: absTicks})
		}
	}
	return res
}

func TestRenderMergesTiedNotes(t *testing.T) {
	first := note("c4", "half")
	first.Tie = model.TieStart
	second := note("c4", "half")
	second.Tie = model.TieStop
	m := model.NewMeasure([]model.MeasureElement{first, second}, fourFour())
	score := model.NewScore("Tied", "", model.NewPart("Cello", m))

	s := Render(score, 120)
	assert := assert.New(t)
	assert.Len(s.Tracks, 2)

	timings := noteTimings(s.Tracks[1])
	assert.Len(timings[60], 1)
	assert.Equal(uint64(0), timings[60][0].on)
	// two tied halves sound as one whole note: 4 quarters at 480 ticks
	assert.Equal(uint64(4*480), timings[60][0].off)
}

func TestRenderConductorTrack(t *testing.T) {
	m := model.NewMeasure([]model.MeasureElement{note("c4", "whole")}, fourFour())
	score := model.NewScore("Meter", "", model.NewPart("Flute", m))

	s := Render(score, 96)
	assert := assert.New(t)

	hasTempo, hasMeter := false, false
	for _, evt := range s.Tracks[0] {
		if evt.Message.Is(smf.MetaTempoMsg) {
			hasTempo = true
		}
		if evt.Message.Is(smf.MetaTimeSigMsg) {
			hasMeter = true
		}
	}
	assert.True(hasTempo)
	assert.True(hasMeter)
}

func TestRenderChordAndRest(t *testing.T) {
	chord := model.NewChord([]model.Pitch{
		model.MustPitch("c4"), model.MustPitch("e4"), model.MustPitch("g4"),
	}, model.MustDuration("half"))
	m := model.NewMeasure([]model.MeasureElement{
		chord,
		model.NewRest(model.MustDuration("quarter")),
		note("c5", "quarter"),
	}, fourFour())
	score := model.NewScore("", "", model.NewPart("Piano", m))

	timings := noteTimings(Render(score, 120).Tracks[1])
	assert := assert.New(t)
	assert.Len(timings[60], 1)
	assert.Len(timings[64], 1)
	assert.Len(timings[67], 1)
	// the rest pushes the final note to beat 4
	assert.Equal(uint64(3*480), timings[72][0].on)
	assert.Equal(uint64(4*480), timings[72][0].off)
}

func TestRenderSkipsGraceNotes(t *testing.T) {
	grace := model.NewGraceNote(model.MustPitch("d5"), model.MustDuration("8"), true)
	m := model.NewMeasure([]model.MeasureElement{grace, note("c5", "whole")}, fourFour())
	score := model.NewScore("", "", model.NewPart("Violin", m))

	track := Render(score, 120).Tracks[1]
	ons := 0
	for _, evt := range track {
		if evt.Message.Is(gomidi.NoteOnMsg) {
			ons++
		}
	}
	assert.Equal(t, 1, ons)
}
