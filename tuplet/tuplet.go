// Package tuplet resolves runs of irregular subdivisions to
// actual-notes : normal-notes ratios, e.g. five equal notes filling
// four quarter beats become a 5:4 quintuplet.
package tuplet

import (
	"fmt"

	"github.com/notelab/partwise/constants"
	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/rational"
	"github.com/notelab/partwise/rhythm"
)

// InvalidTupletRatioError reports a run that no ratio within the
// configured bounds can bring back into the plain grammar.
type InvalidTupletRatioError struct {
	Durations []rational.Rational
}

func (e *InvalidTupletRatioError) Error() string {
	return fmt.Sprintf("no tuplet ratio up to %d:n resolves run %v",
		constants.MaxTupletActual, e.Durations)
}

// Needed reports whether the run needs a ratio at all: false when
// every member is already writable in plain dotted-binary terms.
func Needed(durs []rational.Rational) bool {
	for _, d := range durs {
		if !rhythm.Representable(d) {
			return true
		}
	}
	return false
}

// ResolveRun computes the minimal ratio under which every member of a
// contiguous same-voice run becomes writable. outer is the enclosing
// ratio for nested tuplets (resolved outside-in) and may be nil.
// Among workable ratios the smallest actual-notes value wins, then the
// normal closest to the actual (the nearest power-of-two relation).
func ResolveRun(durs []rational.Rational, outer *model.TupletRatio) (model.TupletRatio, error) {
	if len(durs) == 0 {
		return model.TupletRatio{}, &InvalidTupletRatioError{}
	}
	scaled := durs
	if outer != nil {
		scaled = make([]rational.Rational, len(durs))
		for i, d := range durs {
			scaled[i] = d.Div(outer.Factor())
		}
	}
	for actual := 2; actual <= constants.MaxTupletActual; actual++ {
		// normals are powers of two below actual, nearest first
		for normal := largestPowerOfTwoBelow(actual); normal >= 1; normal /= 2 {
			ratio := model.TupletRatio{Actual: actual, Normal: normal}
			if runFits(scaled, ratio) {
				return ratio, nil
			}
		}
	}
	return model.TupletRatio{}, &InvalidTupletRatioError{Durations: durs}
}

func largestPowerOfTwoBelow(n int) int {
	p := 1
	for p*2 < n {
		p *= 2
	}
	return p
}

func runFits(durs []rational.Rational, ratio model.TupletRatio) bool {
	for _, d := range durs {
		written := d.Div(ratio.Factor())
		if !rhythm.Representable(written) {
			return false
		}
		if _, _, err := model.NoteTypeAndDots(written, 0); err != nil {
			// members may carry dots, but only within the cap
			if _, _, err := model.NoteTypeAndDots(written, constants.GetMaxDots()); err != nil {
				return false
			}
		}
	}
	return true
}

// NotateRun resolves a run of true lengths to a tuplet and notates
// each member against the scaled grammar. pitches[i] may be nil for a
// rest. Start/stop bracket markers land on the first and last members
// when the tuplet is laid out.
func NotateRun(durs []rational.Rational, pitches []*model.Pitch, outer *model.TupletRatio) (*model.Tuplet, error) {
	if len(durs) != len(pitches) {
		return nil, fmt.Errorf("tuplet: %d durations but %d pitches", len(durs), len(pitches))
	}
	ratio, err := ResolveRun(durs, outer)
	if err != nil {
		return nil, err
	}
	var leaves []model.Leaf
	for i, d := range durs {
		written := d
		if outer != nil {
			written = written.Div(outer.Factor())
		}
		written = written.Div(ratio.Factor())
		unit, derr := model.DurationFromWrittenLength(written, nil, -1)
		if derr != nil {
			return nil, derr
		}
		if pitches[i] == nil {
			leaves = append(leaves, model.NewRest(unit))
		} else {
			leaves = append(leaves, model.NewNote(*pitches[i], unit))
		}
	}
	return model.NewTuplet(ratio, leaves...), nil
}
