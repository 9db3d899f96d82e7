// Package mxml turns a score into a partwise MusicXML document.
package mxml

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	xml "github.com/subchen/go-xmldom"

	"github.com/notelab/partwise/constants"
	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/rational"
	"github.com/notelab/partwise/timeline"
	"github.com/notelab/partwise/util"
)

const doctype = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`

// Render builds the full document tree for a score. Part IDs are
// assigned in document order and slur identifiers are renumbered into
// the 1..6 range the format allows.
func Render(score *model.Score) (*xml.Document, error) {
	score.AssignPartIDs()

	doc := xml.NewDocument("score-partwise")
	doc.Directives = append(doc.Directives, doctype)

	if score.Title != "" {
		work := doc.Root.CreateNode("work")
		work.CreateNode("work-title").Text = score.Title
	}
	id := doc.Root.CreateNode("identification")
	if score.Composer != "" {
		creator := id.CreateNode("creator").SetAttributeValue("type", "composer")
		creator.Text = score.Composer
	}
	encoding := id.CreateNode("encoding")
	encoding.CreateNode("encoding-date").Text = time.Now().Format("2006-01-02")
	encoding.CreateNode("software").Text = "partwise"

	partList := doc.Root.CreateNode("part-list")
	for _, content := range score.Contents {
		switch v := content.(type) {
		case *model.Part:
			addPartListEntry(partList, v)
		case *model.PartGroup:
			start := partList.CreateNode("part-group").SetAttributeValue("type", "start")
			if v.HasBracket {
				start.CreateNode("group-symbol").Text = "bracket"
			}
			if v.HasGroupBarLine {
				start.CreateNode("group-barline").Text = "yes"
			} else {
				start.CreateNode("group-barline").Text = "no"
			}
			for _, part := range v.Members {
				addPartListEntry(partList, part)
			}
			partList.CreateNode("part-group").SetAttributeValue("type", "stop")
		}
	}

	for _, part := range score.Parts() {
		if err := renderPart(doc.Root, part); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// ToXML renders a score to MusicXML text.
func ToXML(score *model.Score, pretty bool) (string, error) {
	doc, err := Render(score)
	if err != nil {
		return "", err
	}
	if pretty {
		return doc.XMLPretty(), nil
	}
	return doc.XML(), nil
}

// WriteFile renders a score and writes it to path.
func WriteFile(score *model.Score, path string) error {
	out, err := ToXML(score, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

func addPartListEntry(partList *xml.Node, part *model.Part) {
	entry := partList.CreateNode("score-part").
		SetAttributeValue("id", fmt.Sprintf("P%d", part.ID))
	entry.CreateNode("part-name").Text = part.Name
}

func renderPart(root *xml.Node, part *model.Part) error {
	renumberSlurs(part)
	partNode := root.CreateNode("part").SetAttributeValue("id", fmt.Sprintf("P%d", part.ID))
	for i, m := range part.Measures {
		if err := renderMeasure(partNode, m, i+1); err != nil {
			return err
		}
	}
	return nil
}

// renumberSlurs rewrites slur ids into the 1..6 number-level range,
// reusing numbers once the matching stop has passed. Ids that already
// are free numbers in that range keep their value.
func renumberSlurs(part *model.Part) {
	assigned := make(map[string][]int)
	taken := func(num int) bool {
		for _, nums := range assigned {
			for _, n := range nums {
				if n == num {
					return true
				}
			}
		}
		return false
	}
	for _, m := range part.Measures {
		for _, voice := range m.Leaves() {
			for _, leaf := range voice {
				for _, note := range notesOf(leaf) {
					for i, notation := range note.Notations {
						switch v := notation.(type) {
						case model.StartSlur:
							num := 0
							if n, err := strconv.Atoi(v.ID); err == nil && n >= 1 && n <= 6 && !taken(n) {
								num = n
							} else {
								for n := 1; n <= 6; n++ {
									if !taken(n) {
										num = n
										break
									}
								}
							}
							if num == 0 {
								log.Printf("mxml: more than six simultaneous slurs, dropping one")
								continue
							}
							assigned[v.ID] = append(assigned[v.ID], num)
							note.Notations[i] = model.StartSlur{ID: strconv.Itoa(num)}
						case model.StopSlur:
							nums, ok := assigned[v.ID]
							if !ok || len(nums) == 0 {
								log.Printf("mxml: slur %q stopped but never started", v.ID)
								continue
							}
							num := nums[0]
							if len(nums) == 1 {
								delete(assigned, v.ID)
							} else {
								assigned[v.ID] = nums[1:]
							}
							note.Notations[i] = model.StopSlur{ID: strconv.Itoa(num)}
						}
					}
				}
			}
		}
	}
}

func notesOf(leaf model.Leaf) []*model.Note {
	switch v := leaf.(type) {
	case *model.Note:
		return []*model.Note{v}
	case *model.Chord:
		return v.Notes
	}
	return nil
}

func renderMeasure(partNode *xml.Node, m *model.Measure, number int) error {
	events, err := timeline.Build(m, number)
	if err != nil {
		return err
	}
	divisions := timeline.Divisions(m, constants.MaxDivisions)

	measureNode := partNode.CreateNode("measure").
		SetAttributeValue("number", strconv.Itoa(number))

	attrs := measureNode.CreateNode("attributes")
	attrs.CreateNode("divisions").Text = strconv.FormatInt(divisions, 10)
	if m.Key != nil {
		key := attrs.CreateNode("key")
		key.CreateNode("fifths").Text = strconv.Itoa(m.Key.Fifths)
		if m.Key.Mode != "" {
			key.CreateNode("mode").Text = m.Key.Mode
		}
	}
	if m.TimeSignature != nil {
		ts := attrs.CreateNode("time")
		ts.CreateNode("beats").Text = strconv.Itoa(m.TimeSignature.Beats)
		ts.CreateNode("beat-type").Text = strconv.Itoa(m.TimeSignature.BeatType)
	}
	if m.Clef != nil {
		clef := attrs.CreateNode("clef")
		clef.CreateNode("sign").Text = m.Clef.Sign
		clef.CreateNode("line").Text = strconv.Itoa(m.Clef.Line)
		if m.Clef.OctavesTransposition != 0 {
			clef.CreateNode("clef-octave-change").Text = strconv.Itoa(m.Clef.OctavesTransposition)
		}
	}
	if m.Staves > 0 {
		attrs.CreateNode("staves").Text = strconv.Itoa(m.Staves)
	}

	for _, event := range events {
		switch ev := event.(type) {
		case *timeline.NoteEvent:
			renderLeaf(measureNode, ev.Leaf, divisions)
		case *timeline.BackupEvent:
			backup := measureNode.CreateNode("backup")
			backup.CreateNode("duration").Text = ticksText(ev.Delta, divisions)
		case *timeline.ForwardEvent:
			forward := measureNode.CreateNode("forward")
			forward.CreateNode("duration").Text = ticksText(ev.Delta, divisions)
		case *timeline.DirectionEvent:
			renderDirection(measureNode, ev.Direction)
		case *timeline.HarmonyEvent:
			renderHarmony(measureNode, ev.Harmony)
		case *timeline.BarlineEvent:
			barline := measureNode.CreateNode("barline").SetAttributeValue("location", "right")
			barline.CreateNode("bar-style").Text = ev.Style
		}
	}
	return nil
}

// ticks converts a quarter-note length to an integer tick count,
// rounding in case the divisions value was capped below the ideal one.
func ticks(r rational.Rational, divisions int64) int64 {
	return (2*r.Num*divisions + r.Den) / (2 * r.Den)
}

func ticksText(r rational.Rational, divisions int64) string {
	return strconv.FormatInt(ticks(r, divisions), 10)
}

func renderLeaf(measureNode *xml.Node, leaf model.Leaf, divisions int64) {
	switch v := leaf.(type) {
	case *model.Note:
		renderNote(measureNode, v, divisions)
	case *model.Chord:
		for _, n := range v.Notes {
			renderNote(measureNode, n, divisions)
		}
	case *model.Rest:
		for _, d := range v.Directions {
			renderDirection(measureNode, d)
		}
		note := measureNode.CreateNode("note")
		note.CreateNode("rest")
		note.CreateNode("duration").Text = ticksText(v.TrueLength(), divisions)
		if v.Voice > 0 {
			note.CreateNode("voice").Text = strconv.Itoa(v.Voice)
		}
		renderDurationTail(note, v.Duration)
		if v.Staff > 0 {
			note.CreateNode("staff").Text = strconv.Itoa(v.Staff)
		}
	case *model.BarRest:
		for _, d := range v.Directions {
			renderDirection(measureNode, d)
		}
		note := measureNode.CreateNode("note")
		note.CreateNode("rest")
		note.CreateNode("duration").Text = ticksText(v.Length, divisions)
		if v.Voice > 0 {
			note.CreateNode("voice").Text = strconv.Itoa(v.Voice)
		}
		if v.Staff > 0 {
			note.CreateNode("staff").Text = strconv.Itoa(v.Staff)
		}
	}
}

func renderNote(measureNode *xml.Node, n *model.Note, divisions int64) {
	for _, d := range n.Directions {
		renderDirection(measureNode, d)
	}

	note := measureNode.CreateNode("note")
	if n.Grace {
		grace := note.CreateNode("grace")
		if n.Slashed {
			grace.SetAttributeValue("slash", "yes")
		}
	}
	if n.ChordMember {
		note.CreateNode("chord")
	}
	pitch := note.CreateNode("pitch")
	pitch.CreateNode("step").Text = n.Pitch.Step
	pitch.CreateNode("alter").Text = formatFloat(n.Pitch.Alteration)
	pitch.CreateNode("octave").Text = strconv.Itoa(n.Pitch.Octave)

	if !n.Grace {
		note.CreateNode("duration").Text = ticksText(n.TrueLength(), divisions)
	}
	if n.Tie.StartsTie() {
		note.CreateNode("tie").SetAttributeValue("type", "start")
	}
	if n.Tie.StopsTie() {
		note.CreateNode("tie").SetAttributeValue("type", "stop")
	}
	if n.Voice > 0 {
		note.CreateNode("voice").Text = strconv.Itoa(n.Voice)
	}
	renderDurationTail(note, n.Duration)
	if n.Stemless {
		note.CreateNode("stem").Text = "none"
	}
	if n.Notehead != nil {
		notehead := note.CreateNode("notehead")
		notehead.Text = n.Notehead.Name
		if n.Notehead.Filled != "" {
			notehead.SetAttributeValue("filled", n.Notehead.Filled)
		}
	}
	if n.Staff > 0 {
		note.CreateNode("staff").Text = strconv.Itoa(n.Staff)
	}
	for _, level := range util.GetKeysSorted(n.Beams) {
		beamNode := note.CreateNode("beam").SetAttributeValue("number", strconv.Itoa(level))
		beamNode.Text = n.Beams[level]
	}

	hasTied := n.Tie != model.TieNone
	if len(n.Notations)+len(n.Articulations) > 0 || n.TupletBracket != "" || hasTied {
		notations := note.CreateNode("notations")
		if n.Tie.StartsTie() {
			notations.CreateNode("tied").SetAttributeValue("type", "start")
		}
		if n.Tie.StopsTie() {
			notations.CreateNode("tied").SetAttributeValue("type", "stop")
		}
		for _, notation := range n.Notations {
			renderNotation(notations, notation)
		}
		if n.TupletBracket == model.TupletBracketStart || n.TupletBracket == model.TupletBracketBoth {
			notations.CreateNode("tuplet").SetAttributeValue("type", "start")
		}
		if n.TupletBracket == model.TupletBracketStop || n.TupletBracket == model.TupletBracketBoth {
			notations.CreateNode("tuplet").SetAttributeValue("type", "stop")
		}
		if len(n.Articulations) > 0 {
			articulations := notations.CreateNode("articulations")
			for _, a := range n.Articulations {
				articulations.CreateNode(a)
			}
		}
	}
}

// renderDurationTail emits the type, dot and time-modification tags
// shared by notes and rests.
func renderDurationTail(note *xml.Node, d model.Duration) {
	note.CreateNode("type").Text = d.NoteType
	for i := 0; i < d.Dots; i++ {
		note.CreateNode("dot")
	}
	if d.Tuplet != nil {
		tm := note.CreateNode("time-modification")
		tm.CreateNode("actual-notes").Text = strconv.Itoa(d.Tuplet.Actual)
		tm.CreateNode("normal-notes").Text = strconv.Itoa(d.Tuplet.Normal)
		if d.Tuplet.NormalType != "" {
			tm.CreateNode("normal-type").Text = d.Tuplet.NormalType
		}
	}
}

func renderNotation(notations *xml.Node, notation model.Notation) {
	switch v := notation.(type) {
	case model.StartSlur:
		notations.CreateNode("slur").
			SetAttributeValue("type", "start").
			SetAttributeValue("number", v.ID)
	case model.StopSlur:
		notations.CreateNode("slur").
			SetAttributeValue("type", "stop").
			SetAttributeValue("number", v.ID)
	case model.StartGliss:
		notations.CreateNode("slide").
			SetAttributeValue("type", "start").
			SetAttributeValue("line-type", "solid").
			SetAttributeValue("number", strconv.Itoa(v.Number))
	case model.StopGliss:
		notations.CreateNode("slide").
			SetAttributeValue("type", "stop").
			SetAttributeValue("line-type", "solid").
			SetAttributeValue("number", strconv.Itoa(v.Number))
	case model.Tag:
		notations.CreateNode(v.Name)
	}
}

func renderHarmony(measureNode *xml.Node, h *model.Harmony) {
	harmony := measureNode.CreateNode("harmony")
	root := harmony.CreateNode("root")
	root.CreateNode("root-step").Text = h.RootStep
	if h.RootAlter != 0 {
		root.CreateNode("root-alter").Text = strconv.Itoa(h.RootAlter)
	}
	harmony.CreateNode("kind").Text = h.Kind
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
