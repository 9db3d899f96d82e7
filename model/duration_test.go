package model

import (
	"fmt"
	"testing"

	"github.com/notelab/partwise/rational"
	"github.com/stretchr/testify/assert"
)

func TestNoteTypeAndDotsRoundTrips(t *testing.T) {
	// every grammar-legal (type, dots) pair classifies back to itself
	for _, nt := range noteTypes {
		for dots := 0; dots <= 3; dots++ {
			name := fmt.Sprintf("%v dots=%v", nt.Name, dots)
			t.Run(name, func(t *testing.T) {
				d := Duration{NoteType: nt.Name, Dots: dots}
				gotType, gotDots, err := NoteTypeAndDots(d.WrittenLength(), 4)
				assert := assert.New(t)
				assert.Nil(err)
				assert.Equal(nt.Name, gotType)
				assert.Equal(dots, gotDots)
			})
		}
	}
}

func TestNoteTypeAndDotsRejectsInexact(t *testing.T) {
	assert := assert.New(t)

	// 7/4 needs two dots; with a cap of 1 it must fail, not round
	_, _, err := NoteTypeAndDots(rational.New(7, 4), 1)
	assert.NotNil(err)
	var unrep *UnrepresentableDurationError
	assert.ErrorAs(err, &unrep)

	// 5/4 is not a single unit at any dot count
	_, _, err = NoteTypeAndDots(rational.New(5, 4), 4)
	assert.NotNil(err)

	// 2/3 needs a tuplet ratio, not a classification
	_, _, err = NoteTypeAndDots(rational.New(2, 3), 4)
	assert.NotNil(err)
}

func TestDurationLengths(t *testing.T) {
	assert := assert.New(t)

	dottedQuarter := Duration{NoteType: "quarter", Dots: 1}
	assert.Equal(rational.New(3, 2), dottedQuarter.WrittenLength())
	assert.Equal(rational.New(3, 2), dottedQuarter.TrueLength())
	assert.Equal(int64(2), dottedQuarter.MinDenominator())

	tripletQuarter := Duration{NoteType: "quarter", Tuplet: &TupletRatio{Actual: 3, Normal: 2}}
	assert.Equal(rational.New(1, 1), tripletQuarter.WrittenLength())
	assert.Equal(rational.New(2, 3), tripletQuarter.TrueLength())
	assert.Equal(int64(3), tripletQuarter.MinDenominator())
}

func TestNumBeams(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Duration{NoteType: "quarter"}.NumBeams())
	assert.Equal(1, Duration{NoteType: "eighth"}.NumBeams())
	assert.Equal(3, Duration{NoteType: "32nd"}.NumBeams())
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want Duration
	}{
		{"quarter", Duration{NoteType: "quarter"}},
		{"dotted eighth", Duration{NoteType: "eighth", Dots: 1}},
		{"16.", Duration{NoteType: "16th", Dots: 1}},
		{"8..", Duration{NoteType: "eighth", Dots: 2}},
		{"2", Duration{NoteType: "half"}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseDuration(c.in)
			assert := assert.New(t)
			assert.Nil(err)
			assert.Equal(c.want, got)
		})
	}

	_, err := ParseDuration("blah")
	assert.NotNil(t, err)
	_, err = ParseDuration("dotted blah")
	assert.NotNil(t, err)
	_, err = ParseDuration("3.")
	assert.NotNil(t, err)
}

func TestDurationFromDivisor(t *testing.T) {
	assert := assert.New(t)
	d, err := DurationFromDivisor(8, 1, nil)
	assert.Nil(err)
	assert.Equal(Duration{NoteType: "eighth", Dots: 1}, d)

	_, err = DurationFromDivisor(3, 0, nil)
	assert.NotNil(err)
}
