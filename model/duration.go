package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notelab/partwise/constants"
	"github.com/notelab/partwise/rational"
)

// noteTypeInfo orders the grammar of writable note lengths from
// longest to shortest. Lengths are in quarter-note units.
type noteTypeInfo struct {
	Name     string
	Length   rational.Rational
	NumBeams int
}

var noteTypes = []noteTypeInfo{
	{"breve", rational.New(8, 1), 0},
	{"whole", rational.New(4, 1), 0},
	{"half", rational.New(2, 1), 0},
	{"quarter", rational.New(1, 1), 0},
	{"eighth", rational.New(1, 2), 1},
	{"16th", rational.New(1, 4), 2},
	{"32nd", rational.New(1, 8), 3},
	{"64th", rational.New(1, 16), 4},
	{"128th", rational.New(1, 32), 5},
	{"256th", rational.New(1, 64), 6},
	{"512th", rational.New(1, 128), 7},
	{"1024th", rational.New(1, 256), 8},
}

var noteTypeByName = func() map[string]noteTypeInfo {
	m := make(map[string]noteTypeInfo)
	for _, nt := range noteTypes {
		m[nt.Name] = nt
	}
	return m
}()

// ShortestNoteLength is the floor of the grammar, in quarter notes.
var ShortestNoteLength = noteTypes[len(noteTypes)-1].Length

// NoteTypeLength returns the undotted written length of a note type
// name, e.g. 1/2 for "eighth".
func NoteTypeLength(name string) (rational.Rational, bool) {
	nt, ok := noteTypeByName[name]
	return nt.Length, ok
}

// DotMultiplier returns (2^(dots+1) - 1) / 2^dots as an exact fraction.
func DotMultiplier(dots int) rational.Rational {
	return rational.New(int64(1)<<(dots+1)-1, int64(1)<<dots)
}

// UnrepresentableDurationError reports a length that cannot be written
// exactly with the note-length grammar. It is a caller error and is
// never silently rounded away.
type UnrepresentableDurationError struct {
	Length rational.Rational
}

func (e *UnrepresentableDurationError) Error() string {
	return fmt.Sprintf("duration of %v quarter notes is not representable", e.Length)
}

// NoteTypeAndDots finds the unique (note type, dots) pair whose written
// length equals the given length exactly, trying dot counts from the
// allowed maximum down and note types from longest to shortest. There
// is no rounding: if no exact pair exists within maxDots it returns an
// UnrepresentableDurationError and the caller must decompose.
func NoteTypeAndDots(length rational.Rational, maxDots int) (string, int, error) {
	if maxDots < 0 {
		maxDots = constants.GetMaxDots()
	}
	for dots := maxDots; dots >= 0; dots-- {
		undotted := length.Div(DotMultiplier(dots))
		for _, nt := range noteTypes {
			if nt.Length.Equal(undotted) {
				return nt.Name, dots, nil
			}
		}
	}
	return "", 0, &UnrepresentableDurationError{Length: length}
}

// LargestWritable returns the longest grammar duration (note type plus
// dots, up to maxDots) whose written length does not exceed limit.
// The second return is false if even the shortest grammar unit is too
// long.
func LargestWritable(limit rational.Rational, maxDots int) (Duration, bool) {
	if maxDots < 0 {
		maxDots = constants.GetMaxDots()
	}
	best := Duration{}
	bestLen := rational.Zero
	found := false
	for _, nt := range noteTypes {
		for dots := maxDots; dots >= 0; dots-- {
			l := nt.Length.Mul(DotMultiplier(dots))
			if l.LessEq(limit) && bestLen.Less(l) {
				best = Duration{NoteType: nt.Name, Dots: dots}
				bestLen = l
				found = true
			}
		}
	}
	return best, found
}

// TupletRatio is an actual-notes : normal-notes time modification,
// e.g. 3:2 for a triplet. NormalType optionally names the note type of
// the normal notes ("" means same as the written type).
type TupletRatio struct {
	Actual     int
	Normal     int
	NormalType string
}

// Factor returns normal/actual, the amount by which the ratio
// compresses written time.
func (tr TupletRatio) Factor() rational.Rational {
	return rational.New(int64(tr.Normal), int64(tr.Actual))
}

func (tr TupletRatio) String() string {
	return fmt.Sprintf("%d:%d", tr.Actual, tr.Normal)
}

// Duration is one displayable note or rest unit: a note type, a dot
// count, and an optional tuplet ratio.
type Duration struct {
	NoteType string
	Dots     int
	Tuplet   *TupletRatio
}

// WrittenLength is the length as displayed, in quarter notes, ignoring
// any tuplet modification.
func (d Duration) WrittenLength() rational.Rational {
	nt, ok := noteTypeByName[d.NoteType]
	if !ok {
		panic("model: unknown note type " + d.NoteType)
	}
	return nt.Length.Mul(DotMultiplier(d.Dots))
}

// TrueLength is the actual sounding length in quarter notes, with the
// tuplet ratio applied.
func (d Duration) TrueLength() rational.Rational {
	l := d.WrittenLength()
	if d.Tuplet != nil {
		l = l.Mul(d.Tuplet.Factor())
	}
	return l
}

// MinDenominator is the smallest divisions-per-quarter value that
// renders this duration as an integer tick count.
func (d Duration) MinDenominator() int64 {
	return d.TrueLength().Den
}

// NumBeams is the number of beams a note of this duration carries.
func (d Duration) NumBeams() int {
	nt, ok := noteTypeByName[d.NoteType]
	if !ok {
		panic("model: unknown note type " + d.NoteType)
	}
	return nt.NumBeams
}

func (d Duration) String() string {
	s := d.NoteType + strings.Repeat(".", d.Dots)
	if d.Tuplet != nil {
		s += " (" + d.Tuplet.String() + ")"
	}
	return s
}

// DurationFromWrittenLength classifies a written length as a single
// duration, failing if it is not exactly representable.
func DurationFromWrittenLength(length rational.Rational, tuplet *TupletRatio, maxDots int) (Duration, error) {
	noteType, dots, err := NoteTypeAndDots(length, maxDots)
	if err != nil {
		return Duration{}, err
	}
	return Duration{NoteType: noteType, Dots: dots, Tuplet: tuplet}, nil
}

// DurationFromDivisor builds a duration from the number of units per
// whole note: 4 is a quarter, 8 an eighth, and so on.
func DurationFromDivisor(divisor int, dots int, tuplet *TupletRatio) (Duration, error) {
	length := rational.New(4, int64(divisor))
	for _, nt := range noteTypes {
		if nt.Length.Equal(length) {
			return Duration{NoteType: nt.Name, Dots: dots, Tuplet: tuplet}, nil
		}
	}
	return Duration{}, fmt.Errorf("model: bad divisor %d", divisor)
}

// ParseDuration understands a note type name ("quarter"), a dotted
// form ("dotted eighth"), or a divisor with dots ("8.").
func ParseDuration(s string) (Duration, error) {
	if _, ok := noteTypeByName[s]; ok {
		return Duration{NoteType: s}, nil
	}
	if rest := strings.TrimPrefix(s, "dotted "); rest != s {
		if _, ok := noteTypeByName[rest]; !ok {
			return Duration{}, fmt.Errorf("model: bad duration string %q", s)
		}
		return Duration{NoteType: rest, Dots: 1}, nil
	}
	dots := 0
	trimmed := s
	for strings.HasSuffix(trimmed, ".") {
		trimmed = strings.TrimSuffix(trimmed, ".")
		dots++
	}
	divisor, err := strconv.Atoi(trimmed)
	if err != nil {
		return Duration{}, fmt.Errorf("model: bad duration string %q", s)
	}
	return DurationFromDivisor(divisor, dots, nil)
}

// MustDuration is ParseDuration for literals known to be valid.
func MustDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}
