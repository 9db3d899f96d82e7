package beam

import (
	"testing"

	"github.com/notelab/partwise/model"
	"github.com/stretchr/testify/assert"
)

func note(dur string) *model.Note {
	return model.NewNote(model.MustPitch("c4"), model.MustDuration(dur))
}

func TestAssignGroupFourSixteenths(t *testing.T) {
	leaves := []model.Leaf{note("16"), note("16"), note("16"), note("16")}
	AssignGroup(leaves)

	assert := assert.New(t)
	want := []map[int]string{
		{1: model.BeamBegin, 2: model.BeamBegin},
		{1: model.BeamContinue, 2: model.BeamContinue},
		{1: model.BeamContinue, 2: model.BeamContinue},
		{1: model.BeamEnd, 2: model.BeamEnd},
	}
	for i, leaf := range leaves {
		assert.Equal(want[i], leaf.(*model.Note).Beams, "leaf %d", i)
	}
}

func TestAssignGroupSecondaryBeam(t *testing.T) {
	// eighth + two sixteenths: the second beam starts on the first 16th
	leaves := []model.Leaf{note("8"), note("16"), note("16")}
	AssignGroup(leaves)

	assert := assert.New(t)
	assert.Equal(map[int]string{1: model.BeamBegin}, leaves[0].(*model.Note).Beams)
	assert.Equal(map[int]string{1: model.BeamContinue, 2: model.BeamBegin}, leaves[1].(*model.Note).Beams)
	assert.Equal(map[int]string{1: model.BeamEnd, 2: model.BeamEnd}, leaves[2].(*model.Note).Beams)
}

func TestAssignGroupHooks(t *testing.T) {
	assert := assert.New(t)

	// dotted eighth + 16th: the lone 16th hooks back toward the beam
	leaves := []model.Leaf{note("8."), note("16")}
	AssignGroup(leaves)
	assert.Equal(map[int]string{1: model.BeamEnd, 2: model.BeamBackwardHook},
		leaves[1].(*model.Note).Beams)

	// 16th + dotted eighth: the hook points forward from the start
	leaves = []model.Leaf{note("16"), note("8.")}
	AssignGroup(leaves)
	assert.Equal(map[int]string{1: model.BeamBegin, 2: model.BeamForwardHook},
		leaves[0].(*model.Note).Beams)
}

func TestAssignGroupClearsHookOnlyLeaves(t *testing.T) {
	// a 16th between two quarters has no beam to join, only hooks, so
	// it ends up unbeamed
	leaves := []model.Leaf{note("quarter"), note("16"), note("quarter")}
	AssignGroup(leaves)
	assert.Nil(t, leaves[1].(*model.Note).Beams)
}

func TestAssignGroupChordsBeamViaFirstNote(t *testing.T) {
	chord := model.NewChord([]model.Pitch{model.MustPitch("c4"), model.MustPitch("e4")},
		model.MustDuration("8"))
	leaves := []model.Leaf{note("8"), chord}
	AssignGroup(leaves)

	assert := assert.New(t)
	assert.Equal(map[int]string{1: model.BeamBegin}, leaves[0].(*model.Note).Beams)
	assert.Equal(map[int]string{1: model.BeamEnd}, chord.Notes[0].Beams)
}

func TestAssignMeasureBreaksAtBeats(t *testing.T) {
	// four eighths in 4/4: two separate pairs, never one beam of four
	voice := []model.MeasureElement{note("8"), note("8"), note("8"), note("8")}
	AssignMeasure(voice, model.TimeSignature{Beats: 4, BeatType: 4})

	assert := assert.New(t)
	assert.Equal(model.BeamBegin, voice[0].(*model.Note).Beams[1])
	assert.Equal(model.BeamEnd, voice[1].(*model.Note).Beams[1])
	assert.Equal(model.BeamBegin, voice[2].(*model.Note).Beams[1])
	assert.Equal(model.BeamEnd, voice[3].(*model.Note).Beams[1])
}

func TestAssignMeasureBreaksAtRests(t *testing.T) {
	voice := []model.MeasureElement{
		note("8"),
		model.NewRest(model.MustDuration("8")),
		note("8"), note("8"),
	}
	AssignMeasure(voice, model.TimeSignature{Beats: 4, BeatType: 4})

	assert := assert.New(t)
	// the note before the rest is a run of one: no beams
	assert.Nil(voice[0].(*model.Note).Beams)
	assert.Equal(model.BeamBegin, voice[2].(*model.Note).Beams[1])
	assert.Equal(model.BeamEnd, voice[3].(*model.Note).Beams[1])
}

func TestAssignMeasureBreaksAtGraceNotes(t *testing.T) {
	voice := []model.MeasureElement{
		note("8"),
		model.NewGraceNote(model.MustPitch("d4"), model.MustDuration("8"), true),
		note("8"),
	}
	AssignMeasure(voice, model.TimeSignature{Beats: 4, BeatType: 4})

	assert := assert.New(t)
	assert.Nil(voice[0].(*model.Note).Beams)
	assert.Nil(voice[1].(*model.Note).Beams)
	assert.Nil(voice[2].(*model.Note).Beams)
}

func TestAssignMeasureBreaksAtGraceChords(t *testing.T) {
	grace := model.NewGraceChord([]model.Pitch{model.MustPitch("c5"), model.MustPitch("e5")},
		model.MustDuration("8"), true)
	voice := []model.MeasureElement{note("8"), grace, note("8")}
	AssignMeasure(voice, model.TimeSignature{Beats: 4, BeatType: 4})

	assert := assert.New(t)
	// the grace chord interrupts the run, leaving two runs of one
	assert.Nil(voice[0].(*model.Note).Beams)
	assert.Nil(grace.Notes[0].Beams)
	assert.Nil(voice[2].(*model.Note).Beams)
}

func TestAssignMeasureKeepsExplicitGroups(t *testing.T) {
	// an explicit group spanning a beat boundary stays beamed together
	group := model.NewBeamedGroup(note("8"), note("8"), note("8"), note("8"))
	voice := []model.MeasureElement{group}
	AssignMeasure(voice, model.TimeSignature{Beats: 4, BeatType: 4})

	assert := assert.New(t)
	assert.Equal(model.BeamBegin, group.Contents[0].(*model.Note).Beams[1])
	assert.Equal(model.BeamContinue, group.Contents[1].(*model.Note).Beams[1])
	assert.Equal(model.BeamContinue, group.Contents[2].(*model.Note).Beams[1])
	assert.Equal(model.BeamEnd, group.Contents[3].(*model.Note).Beams[1])
}

func TestAssignMeasureCompoundMeter(t *testing.T) {
	// 6/8 groups in threes: six eighths beam as two triples
	voice := []model.MeasureElement{
		note("8"), note("8"), note("8"),
		note("8"), note("8"), note("8"),
	}
	AssignMeasure(voice, model.TimeSignature{Beats: 6, BeatType: 8})

	assert := assert.New(t)
	assert.Equal(model.BeamBegin, voice[0].(*model.Note).Beams[1])
	assert.Equal(model.BeamContinue, voice[1].(*model.Note).Beams[1])
	assert.Equal(model.BeamEnd, voice[2].(*model.Note).Beams[1])
	assert.Equal(model.BeamBegin, voice[3].(*model.Note).Beams[1])
	assert.Equal(model.BeamEnd, voice[5].(*model.Note).Beams[1])
}
