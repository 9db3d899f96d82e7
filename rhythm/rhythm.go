// Package rhythm converts arbitrary rational lengths into tie-
// connected sequences of writable durations. This is the notation
// engine's core: a requested length either classifies as one unit or
// is decomposed into the fewest units that sum to it exactly, with a
// configurable preference for splits that land on beat-grouping
// boundaries.
package rhythm

import (
	"github.com/notelab/partwise/constants"
	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/rational"
)

// SplitPolicy names the tie-break between unit count and beat
// alignment when a duration cannot be written as one unit (and when a
// single writable unit would straddle a beat).
type SplitPolicy int

const (
	// SplitAtBeats prefers splits on beat-grouping boundaries: a unit
	// that crosses a boundary is kept only when it needs at most one
	// dot; otherwise the duration is split at whichever boundary
	// yields the fewest units, nearest boundary winning ties.
	SplitAtBeats SplitPolicy = iota
	// MinimalUnits ignores beat boundaries entirely and only
	// minimizes the number of tied units.
	MinimalUnits
)

// Options configures a decomposition.
type Options struct {
	// Tuplet scales the grammar: the requested length is a true
	// length, and each produced unit carries this ratio.
	Tuplet *model.TupletRatio
	// BeatLength is the beat-grouping length for the active time
	// signature, in true quarters; zero disables beat alignment.
	BeatLength rational.Rational
	// StartOffset is where the duration starts, relative to the beat
	// grid (normally the offset from measure start), in true quarters.
	StartOffset rational.Rational
	Policy      SplitPolicy
	// MaxDots caps dots per unit; zero means the configured default,
	// negative forbids dots.
	MaxDots int
}

func (o Options) maxDots() int {
	if o.MaxDots < 0 {
		return 0
	}
	if o.MaxDots == 0 {
		return constants.GetMaxDots()
	}
	return o.MaxDots
}

// Decompose breaks d (a true length in quarter notes) into writable
// units whose true lengths sum to d exactly. The result is ordered in
// time and is as short as the split policy allows. It fails with
// UnrepresentableDurationError if d is not a finite sum of grammar
// units under the active tuplet ratio.
func Decompose(d rational.Rational, opts Options) ([]model.Duration, error) {
	if d.Sign() <= 0 {
		return nil, &model.UnrepresentableDurationError{Length: d}
	}
	written := d
	if opts.Tuplet != nil {
		// the grammar, the beat grid and the start offset all move into
		// written time under the ratio
		factor := opts.Tuplet.Factor()
		written = d.Div(factor)
		if opts.BeatLength.Sign() > 0 {
			opts.BeatLength = opts.BeatLength.Div(factor)
		}
		if !opts.StartOffset.IsZero() {
			opts.StartOffset = opts.StartOffset.Div(factor)
		}
	}
	if !Representable(written) {
		return nil, &model.UnrepresentableDurationError{Length: d}
	}
	units := decompose(written, opts.StartOffset, opts)
	if opts.Tuplet != nil {
		ratio := *opts.Tuplet
		for i := range units {
			r := ratio
			units[i].Tuplet = &r
		}
	}
	return units, nil
}

// Representable reports whether a written length is expressible as a
// finite sum of grammar units: it must reduce to a power-of-two
// denominator no finer than the grammar's shortest note.
func Representable(written rational.Rational) bool {
	return written.Sign() > 0 &&
		written.HasPowerOfTwoDen() &&
		written.Den <= model.ShortestNoteLength.Den
}

func decompose(written, offset rational.Rational, opts Options) []model.Duration {
	maxDots := opts.maxDots()
	beat := opts.BeatLength

	useBeats := opts.Policy == SplitAtBeats && beat.Sign() > 0
	crosses := false
	if useBeats {
		crosses = distToBoundary(offset, beat).Less(written)
	}

	// single-unit classification; a boundary-crossing unit is kept
	// only up to one dot
	classifyCap := maxDots
	if crosses && classifyCap > 1 {
		classifyCap = 1
	}
	if noteType, dots, err := model.NoteTypeAndDots(written, classifyCap); err == nil {
		return []model.Duration{{NoteType: noteType, Dots: dots}}
	}

	if crosses {
		// split at the interior boundary that minimizes the unit
		// count; the nearest boundary wins ties
		var best []model.Duration
		for b := distToBoundary(offset, beat); b.Less(written); b = b.Add(beat) {
			head := decompose(b, offset, opts)
			tail := decompose(written.Sub(b), offset.Add(b), opts)
			candidate := append(head, tail...)
			if best == nil || len(candidate) < len(best) {
				best = candidate
			}
		}
		return best
	}

	// greedy largest-first within a beat (or with beat alignment off)
	unit, ok := model.LargestWritable(written, maxDots)
	if !ok {
		// unreachable for representable inputs
		panic("rhythm: no grammar unit fits " + written.String())
	}
	rest := written.Sub(unit.WrittenLength())
	if rest.IsZero() {
		return []model.Duration{unit}
	}
	return append([]model.Duration{unit},
		decompose(rest, offset.Add(unit.WrittenLength()), opts)...)
}

// distToBoundary is the distance from offset to the next beat-grouping
// boundary, in (0, beat].
func distToBoundary(offset, beat rational.Rational) rational.Rational {
	q := offset.Div(beat)
	floor := q.Num / q.Den
	into := offset.Sub(beat.Mul(rational.FromInt(floor)))
	return beat.Sub(into)
}

// TieChain marks a decomposed run of notes as one sounding duration:
// tie start on the first, continue on interior notes, stop on the
// last. A single note is left untouched.
func TieChain(notes []*model.Note) {
	if len(notes) < 2 {
		return
	}
	for i, n := range notes {
		switch i {
		case 0:
			n.Tie = model.TieStart
		case len(notes) - 1:
			n.Tie = model.TieStop
		default:
			n.Tie = model.TieContinue
		}
	}
}

// NoteSequence notates a pitch sounding for d quarter notes as tied
// notes.
func NoteSequence(pitch model.Pitch, d rational.Rational, opts Options) ([]*model.Note, error) {
	units, err := Decompose(d, opts)
	if err != nil {
		return nil, err
	}
	notes := make([]*model.Note, len(units))
	for i, u := range units {
		notes[i] = model.NewNote(pitch, u)
	}
	TieChain(notes)
	return notes, nil
}

// RestSequence notates a silence of d quarter notes. Rests are not
// tied.
func RestSequence(d rational.Rational, opts Options) ([]*model.Rest, error) {
	units, err := Decompose(d, opts)
	if err != nil {
		return nil, err
	}
	rests := make([]*model.Rest, len(units))
	for i, u := range units {
		rests[i] = model.NewRest(u)
	}
	return rests, nil
}

// ChordSequence notates a set of pitches sounding together for d
// quarter notes as tied chords.
func ChordSequence(pitches []model.Pitch, d rational.Rational, opts Options) ([]*model.Chord, error) {
	units, err := Decompose(d, opts)
	if err != nil {
		return nil, err
	}
	chords := make([]*model.Chord, len(units))
	for i, u := range units {
		chords[i] = model.NewChord(pitches, u)
	}
	if len(chords) > 1 {
		for i, c := range chords {
			switch i {
			case 0:
				c.SetTie(model.TieStart)
			case len(chords) - 1:
				c.SetTie(model.TieStop)
			default:
				c.SetTie(model.TieContinue)
			}
		}
	}
	return chords, nil
}

// PadWithRests appends rests after elements until the total reaches
// desiredLength. The remaining gap must not need tuplets.
func PadWithRests(elements []model.MeasureElement, desiredLength rational.Rational) ([]model.MeasureElement, error) {
	sum := rational.Zero
	for _, e := range elements {
		sum = sum.Add(e.TrueLength())
	}
	remaining := desiredLength.Sub(sum)
	if remaining.Sign() < 0 {
		return nil, &model.UnrepresentableDurationError{Length: remaining}
	}
	if remaining.IsZero() {
		return elements, nil
	}
	rests, err := RestSequence(remaining, Options{
		BeatLength:  rational.FromInt(1),
		StartOffset: sum,
	})
	if err != nil {
		return nil, err
	}
	res := append([]model.MeasureElement{}, elements...)
	for _, r := range rests {
		res = append(res, r)
	}
	return res, nil
}
