// Package timeline flattens a measure into an ordered event stream:
// notes per voice, backup elements rewinding the cursor between
// voices, and forward/backup hops placing free-floating directions and
// chord symbols at arbitrary offsets. The XML writer consumes this
// stream directly; keeping it separate makes the cursor arithmetic
// testable without parsing any output.
package timeline

import (
	"fmt"

	"github.com/notelab/partwise/beam"
	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/rational"
)

// MeasureDurationMismatchError reports a voice whose contents don't
// fill the measure's declared length. Partial measures are exempt.
type MeasureDurationMismatchError struct {
	MeasureNumber int
	Voice         int
	Got           rational.Rational
	Want          rational.Rational
}

func (e *MeasureDurationMismatchError) Error() string {
	return fmt.Sprintf("measure %d voice %d holds %v quarter notes, time signature wants %v",
		e.MeasureNumber, e.Voice, e.Got, e.Want)
}

// Event is the closed set of things that happen in a laid-out measure:
// *NoteEvent, *DirectionEvent, *HarmonyEvent, *BackupEvent,
// *ForwardEvent and *BarlineEvent.
type Event interface {
	event()
}

// NoteEvent places one leaf (note, chord, rest or bar rest) at an
// offset from measure start, in quarter notes.
type NoteEvent struct {
	Leaf   model.Leaf
	Voice  int
	Offset rational.Rational
}

// DirectionEvent places a direction at the current cursor position.
type DirectionEvent struct {
	Direction model.Direction
	Offset    rational.Rational
}

// HarmonyEvent places a chord symbol at the current cursor position.
type HarmonyEvent struct {
	Harmony *model.Harmony
	Offset  rational.Rational
}

// BackupEvent rewinds the cursor by Delta quarter notes.
type BackupEvent struct {
	Delta rational.Rational
}

// ForwardEvent advances the cursor by Delta quarter notes.
type ForwardEvent struct {
	Delta rational.Rational
}

// BarlineEvent closes the measure with a right barline. Style is a
// bar-style element value.
type BarlineEvent struct {
	Style string
}

func (*NoteEvent) event()      {}
func (*DirectionEvent) event() {}
func (*HarmonyEvent) event()   {}
func (*BackupEvent) event()    {}
func (*ForwardEvent) event()   {}
func (*BarlineEvent) event()   {}

// Build lays out a measure as events. It stamps voice numbers and
// tuplet ratios onto the leaves, computes beaming, and checks every
// voice against the time signature's length. number is the 1-based
// measure number used in error reports.
func Build(m *model.Measure, number int) ([]Event, error) {
	ts := m.TimeSignature

	for i, voice := range m.Voices {
		if voice == nil {
			continue
		}
		for _, elem := range voice {
			if leaf, ok := elem.(model.Leaf); ok {
				leaf.SetVoice(i + 1)
			}
			switch v := elem.(type) {
			case *model.Tuplet:
				v.ApplyRatio()
				v.SetVoice(i + 1)
			case *model.BeamedGroup:
				v.SetVoice(i + 1)
			}
		}
		if ts != nil && !m.Partial && len(voice) > 0 {
			got := m.VoiceLength(i)
			if want := ts.Length(); !got.Equal(want) {
				return nil, &MeasureDurationMismatchError{
					MeasureNumber: number,
					Voice:         i + 1,
					Got:           got,
					Want:          want,
				}
			}
		}
		beamTS := model.TimeSignature{}
		if ts != nil {
			beamTS = *ts
		}
		beam.AssignMeasure(voice, beamTS)
	}

	var events []Event
	cursor := rational.Zero
	for i, voice := range m.Voices {
		if voice == nil {
			continue
		}
		if len(events) > 0 && cursor.Sign() > 0 {
			events = append(events, &BackupEvent{Delta: cursor})
		}
		cursor = rational.Zero
		for _, elem := range voice {
			for _, leaf := range expand(elem) {
				events = append(events, &NoteEvent{Leaf: leaf, Voice: i + 1, Offset: cursor})
				cursor = cursor.Add(leaf.TrueLength())
			}
		}
	}

	events = placeDisplaced(events, m, &cursor)

	if m.Barline != "" {
		style, ok := model.BarlineStyles[m.Barline]
		if !ok {
			return nil, fmt.Errorf("timeline: unknown barline style %q in measure %d", m.Barline, number)
		}
		events = append(events, &BarlineEvent{Style: style})
	}
	return events, nil
}

// placeDisplaced hops the cursor to each free-floating direction and
// harmony in the order given, rewinding or skipping ahead as needed.
func placeDisplaced(events []Event, m *model.Measure, cursor *rational.Rational) []Event {
	hop := func(to rational.Rational) {
		switch {
		case to.Less(*cursor):
			events = append(events, &BackupEvent{Delta: cursor.Sub(to)})
		case cursor.Less(to):
			events = append(events, &ForwardEvent{Delta: to.Sub(*cursor)})
		}
		*cursor = to
	}
	for _, dd := range m.Directions {
		hop(dd.Offset)
		events = append(events, &DirectionEvent{Direction: dd.Direction, Offset: dd.Offset})
	}
	for _, dh := range m.Harmonies {
		hop(dh.Offset)
		events = append(events, &HarmonyEvent{Harmony: dh.Harmony, Offset: dh.Offset})
	}
	return events
}

func expand(elem model.MeasureElement) []model.Leaf {
	switch v := elem.(type) {
	case *model.Tuplet:
		return v.Contents
	case *model.BeamedGroup:
		return v.Contents
	case model.Leaf:
		return []model.Leaf{v}
	}
	return nil
}

// Divisions picks the divisions-per-quarter value for a measure: the
// least common multiple of every leaf's minimum denominator and of the
// denominators of any displaced-direction offsets, capped at the
// largest value notation software accepts. Past the cap the leaf
// divisions are kept and doubled as far as the cap allows.
func Divisions(m *model.Measure, cap int64) int64 {
	leafDiv := int64(1)
	for _, voice := range m.Leaves() {
		for _, leaf := range voice {
			leafDiv = rational.Lcm(leafDiv, leaf.MinDenominator())
		}
	}
	extra := int64(1)
	for _, dd := range m.Directions {
		extra = rational.Lcm(extra, dd.Offset.Den)
	}
	for _, dh := range m.Harmonies {
		extra = rational.Lcm(extra, dh.Offset.Den)
	}
	if extra == 1 {
		return leafDiv
	}
	ideal := rational.Lcm(leafDiv, extra)
	if ideal <= cap {
		return ideal
	}
	div := leafDiv
	for div*2 <= cap {
		div *= 2
	}
	return div
}
