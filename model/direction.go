package model

import (
	"github.com/notelab/partwise/rational"
)

// Direction is the closed set of zero-duration staff annotations:
// *MetronomeMark, *TextAnnotation, *EndDashedLine, *Dynamic,
// *StartBracket, *StopBracket, *StartPedal and *StopPedal. Directions
// take no time in the measure; they are emitted at the cursor position
// of the element they are attached to, or at an explicit displacement.
type Direction interface {
	direction()
	setVoice(v int)
}

type directionBase struct {
	Placement string
	Voice     int
	Staff     int
}

func (d *directionBase) setVoice(v int) {
	if d.Voice == 0 {
		d.Voice = v
	}
}

// MetronomeMark is a tempo indication: a beat unit and a beats-per-
// minute value, e.g. dotted-quarter = 80.
type MetronomeMark struct {
	directionBase
	BeatUnit    Duration
	BPM         float64
	Parentheses bool
}

// NewMetronomeMark builds a mark from a beat length in quarter notes.
// A beat length that is not writable as a single unit falls back to a
// quarter-note beat with the BPM rescaled.
func NewMetronomeMark(beatLength rational.Rational, bpm float64) *MetronomeMark {
	beatUnit, err := DurationFromWrittenLength(beatLength, nil, -1)
	if err != nil {
		beatUnit = Duration{NoteType: "quarter"}
		bpm /= beatLength.Float64()
	}
	return &MetronomeMark{
		directionBase: directionBase{Placement: "above"},
		BeatUnit:      beatUnit,
		BPM:           bpm,
	}
}

// Dynamic is a dynamic marking attached to the staff, e.g. "mf".
type Dynamic struct {
	directionBase
	Text string
}

// StandardDynamics are the dynamics the format has dedicated elements
// for; anything else is emitted as other-dynamics text.
var StandardDynamics = map[string]bool{
	"f": true, "ff": true, "fff": true, "ffff": true, "fffff": true,
	"ffffff": true, "fp": true, "fz": true, "mf": true, "mp": true,
	"p": true, "pp": true, "ppp": true, "pppp": true, "ppppp": true,
	"pppppp": true, "rf": true, "rfz": true, "sf": true, "sffz": true,
	"sfp": true, "sfpp": true, "sfz": true,
}

func NewDynamic(text string) *Dynamic {
	return &Dynamic{directionBase: directionBase{Placement: "below"}, Text: text}
}

// TextAnnotation is staff text, optionally starting a dashed line
// (e.g. "rit.- - - -") that a later EndDashedLine closes.
type TextAnnotation struct {
	directionBase
	Text       string
	FontSize   float64
	Italic     bool
	Bold       bool
	DashedLine int
}

func NewTextAnnotation(text string) *TextAnnotation {
	return &TextAnnotation{directionBase: directionBase{Placement: "above"}, Text: text}
}

// EndDashedLine closes the dashed line opened by a TextAnnotation with
// the same number.
type EndDashedLine struct {
	directionBase
	Number int
}

// StartBracket opens a horizontal bracket line, optionally with text.
type StartBracket struct {
	directionBase
	Number  int
	Text    string
	LineEnd string
}

// StopBracket closes the bracket with the same number.
type StopBracket struct {
	directionBase
	Number  int
	LineEnd string
}

// StartPedal opens a sustain-pedal marking.
type StartPedal struct {
	directionBase
	Sign bool
}

// StopPedal releases the pedal.
type StopPedal struct {
	directionBase
	Sign bool
}

func (*MetronomeMark) direction()  {}
func (*TextAnnotation) direction() {}
func (*EndDashedLine) direction()  {}
func (*Dynamic) direction()        {}
func (*StartBracket) direction()   {}
func (*StopBracket) direction()    {}
func (*StartPedal) direction()     {}
func (*StopPedal) direction()      {}

// Harmony is a chord symbol (root plus kind, e.g. C major) emitted as
// a zero-duration marker at an offset in the measure.
type Harmony struct {
	RootStep  string
	RootAlter int
	Kind      string
}
