package model

import (
	"github.com/notelab/partwise/rational"
)

// Chord is two or more simultaneous notes sharing one duration and
// voice. In MusicXML a chord is consecutive note elements where all
// but the first carry a chord tag; the first note carries the chord's
// rhythmic notations, articulations and directions.
type Chord struct {
	Notes []*Note
}

func NewChord(pitches []Pitch, duration Duration) *Chord {
	if len(pitches) < 2 {
		panic("model: chord needs at least two pitches")
	}
	notes := make([]*Note, len(pitches))
	for i, p := range pitches {
		notes[i] = NewNote(p, duration)
		if i > 0 {
			notes[i].ChordMember = true
		}
	}
	return &Chord{Notes: notes}
}

// NewGraceChord builds a durationless grace chord.
func NewGraceChord(pitches []Pitch, duration Duration, slashed bool) *Chord {
	c := NewChord(pitches, duration)
	for _, n := range c.Notes {
		n.Grace = true
		n.Slashed = slashed
	}
	return c
}

func (c *Chord) Pitches() []Pitch {
	pitches := make([]Pitch, len(c.Notes))
	for i, n := range c.Notes {
		pitches[i] = n.Pitch
	}
	return pitches
}

func (c *Chord) Duration() Duration {
	return c.Notes[0].Duration
}

// SetDuration replaces the shared duration on every chord member.
func (c *Chord) SetDuration(d Duration) {
	for _, n := range c.Notes {
		n.Duration = d
	}
}

// SetTie sets the same tie state on every chord member.
func (c *Chord) SetTie(t Tie) {
	for _, n := range c.Notes {
		n.Tie = t
	}
}

// SetNotations attaches notations to the chord. Multi-gliss notations
// are distributed across the members; everything else lands on the
// first note.
func (c *Chord) SetNotations(notations ...Notation) {
	for _, notation := range notations {
		switch v := notation.(type) {
		case StartMultiGliss:
			for i, num := range v {
				if i < len(c.Notes) && num != nil {
					c.Notes[i].Notations = append(c.Notes[i].Notations, StartGliss{Number: *num})
				}
			}
		case StopMultiGliss:
			for i, num := range v {
				if i < len(c.Notes) && num != nil {
					c.Notes[i].Notations = append(c.Notes[i].Notations, StopGliss{Number: *num})
				}
			}
		default:
			c.Notes[0].Notations = append(c.Notes[0].Notations, notation)
		}
	}
}

func (c *Chord) SetDirections(directions ...Direction) {
	c.Notes[0].Directions = append(c.Notes[0].Directions, directions...)
}

func (c *Chord) SetStemless(stemless bool) {
	for _, n := range c.Notes {
		n.Stemless = stemless
	}
}

// SetNoteheads assigns one notehead per member; a single notehead is
// applied to all members.
func (c *Chord) SetNoteheads(heads ...*Notehead) {
	if len(heads) == 1 {
		for _, n := range c.Notes {
			n.Notehead = heads[0]
		}
		return
	}
	for i, h := range heads {
		if i < len(c.Notes) {
			c.Notes[i].Notehead = h
		}
	}
}

func (c *Chord) TrueLength() rational.Rational {
	return c.Notes[0].TrueLength()
}

func (c *Chord) WrittenLength() rational.Rational {
	return c.Notes[0].WrittenLength()
}

func (c *Chord) MinDenominator() int64 {
	return c.Notes[0].MinDenominator()
}

func (c *Chord) NumBeams() int {
	return c.Notes[0].NumBeams()
}

func (c *Chord) SetVoice(v int) {
	for _, n := range c.Notes {
		n.SetVoice(v)
	}
}

func (c *Chord) measureElement() {}
