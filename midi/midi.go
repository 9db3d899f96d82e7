// Package midi renders a score to a standard MIDI file for quick
// audio proofing. The rendering is deliberately plain: tied notes are
// merged into one sounding note, grace notes are skipped, and
// microtonal alterations round to the nearest key.
package midi

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/rational"
)

const (
	ticksPerQuarter = 480
	velocity        = 90
)

type event struct {
	tick uint64
	// order breaks ties at the same tick: offs before ons
	order int
	msg   []byte
}

// Render builds a type-1 MIDI file: a conductor track with tempo and
// meter, then one track per part.
func Render(score *model.Score, bpm float64) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	s.Add(conductorTrack(score, bpm))
	for i, part := range score.Parts() {
		channel := uint8(i % 16)
		if channel == 9 {
			// channel 10 is percussion
			channel = 15
		}
		s.Add(partTrack(part, channel))
	}
	return s
}

// WriteFile renders the score and writes it to path.
func WriteFile(score *model.Score, bpm float64, path string) error {
	return Render(score, bpm).WriteFile(path)
}

func conductorTrack(score *model.Score, bpm float64) smf.Track {
	var tr smf.Track
	if score.Title != "" {
		tr.Add(0, smf.MetaTrackSequenceName(score.Title))
	}
	tr.Add(0, smf.MetaTempo(bpm))

	parts := score.Parts()
	if len(parts) > 0 {
		var events []event
		cursor := rational.Zero
		var lastTS *model.TimeSignature
		for _, m := range parts[0].Measures {
			if ts := m.TimeSignature; ts != nil && (lastTS == nil || *ts != *lastTS) {
				events = append(events, event{
					tick: tick(cursor),
					msg:  smf.MetaMeter(uint8(ts.Beats), uint8(ts.BeatType)),
				})
				lastTS = ts
			}
			for _, dd := range m.Directions {
				if mark, ok := dd.Direction.(*model.MetronomeMark); ok {
					events = append(events, event{
						tick: tick(cursor.Add(dd.Offset)),
						msg:  smf.MetaTempo(mark.BPM * mark.BeatUnit.TrueLength().Float64()),
					})
				}
			}
			cursor = cursor.Add(measureLength(m))
		}
		addEvents(&tr, events)
	}
	tr.Close(0)
	return tr
}

func partTrack(part *model.Part, channel uint8) smf.Track {
	var tr smf.Track
	if part.Name != "" {
		tr.Add(0, smf.MetaTrackSequenceName(part.Name))
	}

	var events []event
	measureStart := rational.Zero
	for _, m := range part.Measures {
		for _, voice := range m.Leaves() {
			cursor := measureStart
			for _, leaf := range voice {
				events = append(events, leafEvents(leaf, cursor, channel)...)
				cursor = cursor.Add(leaf.TrueLength())
			}
		}
		measureStart = measureStart.Add(measureLength(m))
	}
	addEvents(&tr, events)
	tr.Close(0)
	return tr
}

// leafEvents emits note on/off pairs for one leaf. A tie start opens
// the note, continues are silent, and the stop closes it, so a tied
// chain sounds as a single note.
func leafEvents(leaf model.Leaf, cursor rational.Rational, channel uint8) []event {
	var notes []*model.Note
	switch v := leaf.(type) {
	case *model.Note:
		notes = []*model.Note{v}
	case *model.Chord:
		notes = v.Notes
	default:
		return nil
	}

	var events []event
	end := cursor.Add(leaf.TrueLength())
	for _, n := range notes {
		if n.Grace {
			continue
		}
		key := n.Pitch.MidiKey()
		switch n.Tie {
		case model.TieNone:
			events = append(events,
				event{tick: tick(cursor), order: 1, msg: midi.NoteOn(channel, key, velocity)},
				event{tick: tick(end), msg: midi.NoteOff(channel, key)})
		case model.TieStart:
			events = append(events,
				event{tick: tick(cursor), order: 1, msg: midi.NoteOn(channel, key, velocity)})
		case model.TieStop:
			events = append(events,
				event{tick: tick(end), msg: midi.NoteOff(channel, key)})
		}
	}
	return events
}

// addEvents sorts by absolute tick (note offs first within a tick) and
// delta-encodes into the track.
func addEvents(tr *smf.Track, events []event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].order < events[j].order
	})
	var last uint64
	for _, ev := range events {
		tr.Add(uint32(ev.tick-last), ev.msg)
		last = ev.tick
	}
}

func measureLength(m *model.Measure) rational.Rational {
	if m.TimeSignature != nil {
		return m.TimeSignature.Length()
	}
	longest := rational.Zero
	for i := range m.Voices {
		if l := m.VoiceLength(i); longest.Less(l) {
			longest = l
		}
	}
	return longest
}

func tick(r rational.Rational) uint64 {
	return uint64((2*r.Num*ticksPerQuarter + r.Den) / (2 * r.Den))
}
