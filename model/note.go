package model

import (
	"github.com/notelab/partwise/rational"
)

// Tie is a note's tie state.
type Tie string

const (
	TieNone     Tie = ""
	TieStart    Tie = "start"
	TieContinue Tie = "continue"
	TieStop     Tie = "stop"
)

func (t Tie) StartsTie() bool {
	return t == TieStart || t == TieContinue
}

func (t Tie) StopsTie() bool {
	return t == TieStop || t == TieContinue
}

// Beam markers, keyed by beam level in a note's Beams map.
const (
	BeamBegin        = "begin"
	BeamContinue     = "continue"
	BeamEnd          = "end"
	BeamForwardHook  = "forward hook"
	BeamBackwardHook = "backward hook"
)

// Tuplet bracket markers.
const (
	TupletBracketStart = "start"
	TupletBracketStop  = "stop"
	TupletBracketBoth  = "both"
)

// MeasureElement is the closed set of things that can appear in a
// measure voice: *Note, *Rest, *BarRest, *Chord, *BeamedGroup and
// *Tuplet. Engines type-switch over it exhaustively.
type MeasureElement interface {
	// TrueLength is the sounding length in quarter notes (zero for
	// grace notes).
	TrueLength() rational.Rational
	// WrittenLength is the displayed length in quarter notes.
	WrittenLength() rational.Rational
	// MinDenominator is the smallest divisions-per-quarter value that
	// renders this element's true length as an integer tick count.
	MinDenominator() int64

	measureElement()
}

// Leaf is the subset of MeasureElement with no children: *Note, *Rest,
// *BarRest and *Chord.
type Leaf interface {
	MeasureElement
	// NumBeams is the beam count of the leaf's duration; zero for
	// rests and bar rests.
	NumBeams() int
	// SetVoice tags the leaf (and its attached directions) with a
	// 1-based voice number.
	SetVoice(v int)
}

// Note is a single pitched note.
type Note struct {
	Pitch         Pitch
	Duration      Duration
	Tie           Tie
	Notations     []Notation
	Articulations []string
	Notehead      *Notehead
	Directions    []Direction
	Stemless      bool
	Grace         bool
	Slashed       bool
	ChordMember   bool
	TupletBracket string
	Beams         map[int]string
	Voice         int
	Staff         int
}

func NewNote(pitch Pitch, duration Duration) *Note {
	return &Note{Pitch: pitch, Duration: duration}
}

// NewGraceNote builds a durationless grace note; the duration only
// affects how the note is displayed.
func NewGraceNote(pitch Pitch, duration Duration, slashed bool) *Note {
	return &Note{Pitch: pitch, Duration: duration, Grace: true, Slashed: slashed}
}

func (n *Note) TrueLength() rational.Rational {
	if n.Grace {
		return rational.Zero
	}
	return n.Duration.TrueLength()
}

func (n *Note) WrittenLength() rational.Rational {
	return n.Duration.WrittenLength()
}

func (n *Note) MinDenominator() int64 {
	if n.Grace {
		return 1
	}
	return n.Duration.MinDenominator()
}

func (n *Note) NumBeams() int {
	return n.Duration.NumBeams()
}

func (n *Note) SetVoice(v int) {
	n.Voice = v
	for _, d := range n.Directions {
		d.setVoice(v)
	}
}

func (n *Note) measureElement() {}

// Rest is a notated rest with an explicit written duration.
type Rest struct {
	Duration   Duration
	Notations  []Notation
	Directions []Direction
	Voice      int
	Staff      int
}

func NewRest(duration Duration) *Rest {
	return &Rest{Duration: duration}
}

func (r *Rest) TrueLength() rational.Rational {
	return r.Duration.TrueLength()
}

func (r *Rest) WrittenLength() rational.Rational {
	return r.Duration.WrittenLength()
}

func (r *Rest) MinDenominator() int64 {
	return r.Duration.MinDenominator()
}

func (r *Rest) NumBeams() int { return 0 }

func (r *Rest) SetVoice(v int) {
	r.Voice = v
	for _, d := range r.Directions {
		d.setVoice(v)
	}
}

func (r *Rest) measureElement() {}

// BarRest is a whole-bar rest. Unlike Rest it can carry lengths (like
// 2.5 quarters) that no single written rest could, since it is always
// displayed as a centered whole-rest symbol.
type BarRest struct {
	Length     rational.Rational
	Directions []Direction
	Voice      int
	Staff      int
}

func NewBarRest(length rational.Rational) *BarRest {
	return &BarRest{Length: length}
}

func (b *BarRest) TrueLength() rational.Rational {
	return b.Length
}

func (b *BarRest) WrittenLength() rational.Rational {
	return b.Length
}

func (b *BarRest) MinDenominator() int64 {
	return b.Length.Den
}

func (b *BarRest) NumBeams() int { return 0 }

func (b *BarRest) SetVoice(v int) {
	b.Voice = v
	for _, d := range b.Directions {
		d.setVoice(v)
	}
}

func (b *BarRest) measureElement() {}
