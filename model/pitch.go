package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Pitch is a notated pitch: a step letter, a signed alteration in
// semitones (fractional values express microtones), and an octave
// (middle C starts octave 4). Treat values as immutable once built.
type Pitch struct {
	Step       string
	Alteration float64
	Octave     int
}

var stepSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

func NewPitch(step string, octave int, alteration float64) (Pitch, error) {
	step = strings.ToUpper(step)
	if _, ok := stepSemitones[step]; !ok {
		return Pitch{}, fmt.Errorf("model: bad pitch step %q", step)
	}
	return Pitch{Step: step, Alteration: alteration, Octave: octave}, nil
}

// ParsePitch accepts both octave-number notation ("C#5", "Eb3") and
// lilypond-style notation ("cs'", "ees,"). Quarter-tone prefixes "q#",
// "qs", "qb" and "qf" give half-semitone alterations.
func ParsePitch(s string) (Pitch, error) {
	orig := s
	s = strings.ToLower(s)
	if len(s) == 0 {
		return Pitch{}, fmt.Errorf("model: bad pitch string %q", orig)
	}
	step := strings.ToUpper(s[:1])
	if _, ok := stepSemitones[step]; !ok {
		return Pitch{}, fmt.Errorf("model: bad pitch string %q", orig)
	}
	rest := s[1:]
	var alteration float64
	switch {
	case strings.HasPrefix(rest, "qb"), strings.HasPrefix(rest, "qf"),
		strings.HasPrefix(rest, "q#"), strings.HasPrefix(rest, "qs"):
		if rest[1] == 'b' || rest[1] == 'f' {
			alteration = -0.5
		} else {
			alteration = 0.5
		}
		rest = rest[2:]
	case strings.HasPrefix(rest, "b"), strings.HasPrefix(rest, "f"):
		alteration = -1
		rest = rest[1:]
	case strings.HasPrefix(rest, "#"), strings.HasPrefix(rest, "s"):
		alteration = 1
		rest = rest[1:]
	}

	if octave, err := strconv.Atoi(rest); err == nil {
		return Pitch{Step: step, Alteration: alteration, Octave: octave}, nil
	}
	if rest == strings.Repeat("'", len(rest)) && len(rest) > 0 {
		return Pitch{Step: step, Alteration: alteration, Octave: 3 + len(rest)}, nil
	}
	if rest == strings.Repeat(",", len(rest)) && len(rest) > 0 {
		return Pitch{Step: step, Alteration: alteration, Octave: 3 - len(rest)}, nil
	}
	return Pitch{}, fmt.Errorf("model: bad pitch string %q", orig)
}

// MustPitch is ParsePitch for literals known to be valid.
func MustPitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// MidiKey returns the nearest MIDI key number, rounding microtonal
// alterations to the closest semitone.
func (p Pitch) MidiKey() uint8 {
	semis := float64((p.Octave+1)*12+stepSemitones[p.Step]) + p.Alteration
	key := int(semis + 0.5)
	if key < 0 {
		key = 0
	}
	if key > 127 {
		key = 127
	}
	return uint8(key)
}

func (p Pitch) String() string {
	alter := ""
	switch p.Alteration {
	case 1:
		alter = "#"
	case -1:
		alter = "b"
	case 0:
	default:
		alter = fmt.Sprintf("%+g", p.Alteration)
	}
	return fmt.Sprintf("%s%s%d", p.Step, alter, p.Octave)
}
