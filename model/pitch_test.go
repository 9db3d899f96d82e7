package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePitch(t *testing.T) {
	cases := []struct {
		in   string
		want Pitch
	}{
		{"C#5", Pitch{Step: "C", Alteration: 1, Octave: 5}},
		{"bb4", Pitch{Step: "B", Alteration: -1, Octave: 4}},
		{"f4", Pitch{Step: "F", Octave: 4}},
		{"cs'", Pitch{Step: "C", Alteration: 1, Octave: 4}},
		{"ef,,", Pitch{Step: "E", Alteration: -1, Octave: 1}},
		{"gqs5", Pitch{Step: "G", Alteration: 0.5, Octave: 5}},
		{"dqb3", Pitch{Step: "D", Alteration: -0.5, Octave: 3}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParsePitch(c.in)
			assert := assert.New(t)
			assert.Nil(err)
			assert.Equal(c.want, got)
		})
	}

	for _, bad := range []string{"", "h4", "c##x", "c4'"} {
		_, err := ParsePitch(bad)
		assert.NotNil(t, err, bad)
	}
}

func TestMidiKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(60), MustPitch("c4").MidiKey())
	assert.Equal(uint8(69), MustPitch("a4").MidiKey())
	assert.Equal(uint8(61), MustPitch("c#4").MidiKey())
	// quarter tones round to the nearest key
	assert.Equal(uint8(61), MustPitch("cqs4").MidiKey())
}

func TestPitchString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#5", MustPitch("c#5").String())
	assert.Equal("Bb4", MustPitch("bb4").String())
	assert.Equal("F4", MustPitch("f4").String())
}
