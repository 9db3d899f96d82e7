package model

import (
	"fmt"

	"github.com/notelab/partwise/rational"
)

// TimeSignature in beats over beat-type form, e.g. {3, 4} for 3/4.
type TimeSignature struct {
	Beats    int
	BeatType int
}

// Length is the measure length the signature declares, in quarters.
func (ts TimeSignature) Length() rational.Rational {
	return rational.New(int64(ts.Beats)*4, int64(ts.BeatType))
}

// BeatLength is the length of one beat grouping in quarters. Compound
// meters (6/8, 9/8, 12/8...) group in threes; everything else groups
// by the denominator unit.
func (ts TimeSignature) BeatLength() rational.Rational {
	unit := rational.New(4, int64(ts.BeatType))
	if ts.BeatType >= 8 && ts.Beats > 3 && ts.Beats%3 == 0 {
		return unit.Mul(rational.FromInt(3))
	}
	return unit
}

// GroupingBoundaries returns the offsets of the beat-grouping
// boundaries interior to the measure (excluding 0 and the total).
func (ts TimeSignature) GroupingBoundaries() []rational.Rational {
	var res []rational.Rational
	beat := ts.BeatLength()
	total := ts.Length()
	for b := beat; b.Less(total); b = b.Add(beat) {
		res = append(res, b)
	}
	return res
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Beats, ts.BeatType)
}

// Barline styles and their bar-style element values.
var BarlineStyles = map[string]string{
	"double":      "light-light",
	"end":         "light-heavy",
	"regular":     "regular",
	"dotted":      "dotted",
	"dashed":      "dashed",
	"heavy":       "heavy",
	"light-light": "light-light",
	"light-heavy": "light-heavy",
	"heavy-light": "heavy-light",
	"heavy-heavy": "heavy-heavy",
	"tick":        "tick",
	"short":       "short",
	"none":        "none",
}

// DisplacedDirection places a direction at an arbitrary offset from
// measure start, independent of any note.
type DisplacedDirection struct {
	Direction Direction
	Offset    rational.Rational
}

// DisplacedHarmony places a chord symbol at an offset from measure
// start.
type DisplacedHarmony struct {
	Harmony *Harmony
	Offset  rational.Rational
}

// Measure is one measure of music, possibly with several voices. A nil
// voice is skipped (the voice number is still consumed, so voice 3 of
// a two-voice-plus-nil measure stays voice 3).
type Measure struct {
	Voices        [][]MeasureElement
	TimeSignature *TimeSignature
	Key           *KeySignature
	Clef          *Clef
	Barline       string
	Staves        int
	Number        int
	// Partial marks a pickup or incomplete final measure, exempting it
	// from the full-length sum check.
	Partial bool

	Directions []DisplacedDirection
	Harmonies  []DisplacedHarmony
}

// NewMeasure builds a single-voice measure.
func NewMeasure(contents []MeasureElement, ts *TimeSignature) *Measure {
	return &Measure{Voices: [][]MeasureElement{contents}, TimeSignature: ts, Number: 1}
}

// NewMultiVoiceMeasure builds a measure from explicit voices; pass nil
// for a silent voice.
func NewMultiVoiceMeasure(voices [][]MeasureElement, ts *TimeSignature) *Measure {
	return &Measure{Voices: voices, TimeSignature: ts, Number: 1}
}

// Append adds an element to the first voice.
func (m *Measure) Append(elem MeasureElement) {
	if len(m.Voices) == 0 {
		m.Voices = [][]MeasureElement{nil}
	}
	m.Voices[0] = append(m.Voices[0], elem)
}

// Leaves expands tuplets and beamed groups in every voice, yielding
// the measure's notes, chords and rests grouped per voice.
func (m *Measure) Leaves() [][]Leaf {
	res := make([][]Leaf, len(m.Voices))
	for i, voice := range m.Voices {
		if voice == nil {
			continue
		}
		for _, elem := range voice {
			switch v := elem.(type) {
			case *Tuplet:
				res[i] = append(res[i], v.Contents...)
			case *BeamedGroup:
				res[i] = append(res[i], v.Contents...)
			case *Note:
				res[i] = append(res[i], v)
			case *Rest:
				res[i] = append(res[i], v)
			case *BarRest:
				res[i] = append(res[i], v)
			case *Chord:
				res[i] = append(res[i], v)
			}
		}
	}
	return res
}

// VoiceLength is the sum of sounding lengths in the given voice.
func (m *Measure) VoiceLength(voice int) rational.Rational {
	sum := rational.Zero
	if voice < len(m.Voices) && m.Voices[voice] != nil {
		for _, elem := range m.Voices[voice] {
			sum = sum.Add(elem.TrueLength())
		}
	}
	return sum
}
