// Package beam computes per-level beam markers for runs of beamable
// notes: begin/continue/end plus forward and backward hooks for
// isolated short values inside a run.
package beam

import (
	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/rational"
)

// AssignGroup works out the beaming for one explicit run of leaves and
// stamps the markers onto each note. For every beam level, a leaf that
// carries the level beams into its active neighbors; a leaf whose
// neighbors don't reach the level gets a hook, pointing forward when
// the leaf sits on an even multiple of its own duration class and
// backward otherwise. A leaf left with nothing but hooks is cleared.
func AssignGroup(leaves []model.Leaf) {
	maxBeams := 0
	for _, leaf := range leaves {
		if nb := leaf.NumBeams(); nb > maxBeams {
			maxBeams = nb
		}
	}
	for depth := 1; depth <= maxBeams; depth++ {
		start := rational.Zero
		for i, leaf := range leaves {
			lastActive := i > 0 && leaves[i-1].NumBeams() >= depth
			thisActive := leaf.NumBeams() >= depth
			nextActive := i < len(leaves)-1 && leaves[i+1].NumBeams() >= depth

			if thisActive {
				switch {
				case lastActive && nextActive:
					setBeam(leaf, depth, model.BeamContinue)
				case lastActive:
					setBeam(leaf, depth, model.BeamEnd)
				case nextActive:
					setBeam(leaf, depth, model.BeamBegin)
				default:
					if hookPointsForward(start, leaf.NumBeams()) {
						setBeam(leaf, depth, model.BeamForwardHook)
					} else {
						setBeam(leaf, depth, model.BeamBackwardHook)
					}
				}
			}
			start = start.Add(leaf.WrittenLength())
		}
	}

	// a leaf whose every level is a hook is better left unbeamed
	for _, leaf := range leaves {
		beams := beamsOf(leaf)
		if len(beams) == 0 {
			continue
		}
		allHooks := true
		for _, marker := range beams {
			if marker != model.BeamForwardHook && marker != model.BeamBackwardHook {
				allHooks = false
				break
			}
		}
		if allHooks {
			clearBeams(leaf)
		}
	}
}

// hookPointsForward checks the parity of the leaf's start offset
// counted in units of its own written duration class (0.5^numBeams
// quarters): even multiples hook forward, odd ones backward.
func hookPointsForward(start rational.Rational, numBeams int) bool {
	units := start.Mul(rational.FromInt(int64(1) << numBeams))
	// round to nearest, offsets are non-negative
	rounded := (2*units.Num + units.Den) / (2 * units.Den)
	return rounded%2 == 0
}

// AssignMeasure beams one voice of a measure: explicit groups and
// tuplets are beamed as given, and loose beamable notes are gathered
// into runs that stop at rests, grace notes, unbeamable values and
// beat-grouping boundaries. A run of one note gets no markers.
func AssignMeasure(voice []model.MeasureElement, ts model.TimeSignature) {
	beat := rational.FromInt(1)
	if ts.Beats != 0 {
		beat = ts.BeatLength()
	}

	var run []model.Leaf
	flush := func() {
		if len(run) > 1 {
			AssignGroup(run)
		}
		run = nil
	}

	offset := rational.Zero
	runGrouping := int64(-1)
	for _, elem := range voice {
		switch v := elem.(type) {
		case *model.BeamedGroup:
			flush()
			AssignGroup(v.Contents)
		case *model.Tuplet:
			flush()
			AssignGroup(v.Contents)
		case *model.Note:
			if v.Grace || v.NumBeams() == 0 {
				flush()
				break
			}
			if g := groupingIndex(offset, beat); g != runGrouping {
				flush()
				runGrouping = g
			}
			run = append(run, v)
		case *model.Chord:
			if v.Notes[0].Grace || v.NumBeams() == 0 {
				flush()
				break
			}
			if g := groupingIndex(offset, beat); g != runGrouping {
				flush()
				runGrouping = g
			}
			run = append(run, v)
		default:
			flush()
		}
		offset = offset.Add(elem.TrueLength())
	}
	flush()
}

func groupingIndex(offset, beat rational.Rational) int64 {
	q := offset.Div(beat)
	return q.Num / q.Den
}

func setBeam(leaf model.Leaf, depth int, marker string) {
	switch v := leaf.(type) {
	case *model.Note:
		if v.Beams == nil {
			v.Beams = make(map[int]string)
		}
		v.Beams[depth] = marker
	case *model.Chord:
		setBeam(v.Notes[0], depth, marker)
	}
}

func beamsOf(leaf model.Leaf) map[int]string {
	switch v := leaf.(type) {
	case *model.Note:
		return v.Beams
	case *model.Chord:
		return v.Notes[0].Beams
	}
	return nil
}

func clearBeams(leaf model.Leaf) {
	switch v := leaf.(type) {
	case *model.Note:
		v.Beams = nil
	case *model.Chord:
		v.Notes[0].Beams = nil
	}
}
