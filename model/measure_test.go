package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notelab/partwise/rational"
)

func TestTimeSignatureLength(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(TimeSignature{Beats: 4, BeatType: 4}.Length(), rational.FromInt(4))
	assert.Equal(TimeSignature{Beats: 6, BeatType: 8}.Length(), rational.FromInt(3))
	assert.Equal(TimeSignature{Beats: 5, BeatType: 8}.Length(), rational.New(5, 2))
}

func TestTimeSignatureBeatLength(t *testing.T) {
	assert := assert.New(t)
	// simple meters group by the denominator unit
	assert.Equal(TimeSignature{Beats: 4, BeatType: 4}.BeatLength(), rational.FromInt(1))
	assert.Equal(TimeSignature{Beats: 3, BeatType: 8}.BeatLength(), rational.New(1, 2))
	// compound meters group in threes
	assert.Equal(TimeSignature{Beats: 6, BeatType: 8}.BeatLength(), rational.New(3, 2))
	assert.Equal(TimeSignature{Beats: 12, BeatType: 8}.BeatLength(), rational.New(3, 2))
}

func TestGroupingBoundaries(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		TimeSignature{Beats: 3, BeatType: 4}.GroupingBoundaries(),
		[]rational.Rational{rational.FromInt(1), rational.FromInt(2)})
	assert.Equal(
		TimeSignature{Beats: 6, BeatType: 8}.GroupingBoundaries(),
		[]rational.Rational{rational.New(3, 2)})
}

func TestMeasureAppendAndVoiceLength(t *testing.T) {
	assert := assert.New(t)
	m := NewMeasure(nil, &TimeSignature{Beats: 4, BeatType: 4})
	m.Append(NewNote(MustPitch("c4"), MustDuration("half")))
	m.Append(NewRest(MustDuration("quarter")))
	m.Append(NewGraceNote(MustPitch("d4"), MustDuration("8"), true))
	m.Append(NewNote(MustPitch("e4"), MustDuration("quarter")))

	// grace notes take no time
	assert.Equal(m.VoiceLength(0), rational.FromInt(4))
	assert.Equal(m.VoiceLength(1), rational.Zero)
}

func TestMeasureLeavesExpandsGroups(t *testing.T) {
	assert := assert.New(t)
	a := NewNote(MustPitch("c4"), MustDuration("8"))
	b := NewNote(MustPitch("d4"), MustDuration("8"))
	c := NewNote(MustPitch("e4"), MustDuration("quarter"))
	m := NewMultiVoiceMeasure([][]MeasureElement{
		{NewBeamedGroup(a, b), c},
		nil,
	}, nil)

	leaves := m.Leaves()
	assert.Equal(len(leaves), 2)
	assert.Equal(leaves[0], []Leaf{a, b, c})
	assert.Nil(leaves[1])
}
