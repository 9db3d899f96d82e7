package cmd

import (
	"fmt"
	"math/rand"

	"github.com/notelab/partwise/model"
	"github.com/notelab/partwise/rational"
	"github.com/notelab/partwise/tuplet"
)

// demoScore builds one of the built-in demo scores by name.
func demoScore(name string) (*model.Score, error) {
	switch name {
	case "direct":
		return buildDirectScore(), nil
	case "algorithmic":
		return buildAlgorithmicScore(), nil
	default:
		return nil, fmt.Errorf("unknown demo %q, want direct or algorithmic", name)
	}
}

func pitches(names ...string) []model.Pitch {
	res := make([]model.Pitch, len(names))
	for i, n := range names {
		res[i] = model.MustPitch(n)
	}
	return res
}

// buildDirectScore exercises most of the surface by hand: a part
// group, grace chords, glissandi, tuplets, brackets, pedal markings
// and a multi-voice measure.
func buildDirectScore() *model.Score {
	oboe := model.NewPart("Oboe", oboeMeasure1(), oboeMeasure2())
	clarinet := model.NewPart("Clarinet", clarinetMeasure1(), clarinetMeasure2())
	bassoon := model.NewPart("Bassoon", bassoonMeasure1(), bassoonMeasure2())

	return model.NewScore("Directly Created MusicXML", "HTMLvis",
		model.NewPartGroup(oboe, clarinet),
		bassoon)
}

func oboeMeasure1() *model.Measure {
	opening := model.NewChord(pitches("g#4", "b4", "d5"), model.MustDuration("4."))
	opening.SetNotations(model.StartMultiGliss(model.GlissNumbers(0, 1, 2)))

	grace := model.NewGraceChord(pitches("c5", "eb5", "g5"), model.MustDuration("8"), false)
	grace.SetStemless(true)
	grace.SetNotations(model.StopMultiGliss(model.GlissNumbers(1, 0, 2)))

	m := model.NewMeasure([]model.MeasureElement{
		opening,
		grace,
		model.NewBeamedGroup(
			model.NewNote(model.MustPitch("f#4"), model.MustDuration("16")),
			model.NewNote(model.MustPitch("a#4"), model.MustDuration("16")),
		),
		model.NewChord(pitches("cs4", "ab4"), model.MustDuration("quarter")),
		model.NewRest(model.MustDuration("quarter")),
	}, &model.TimeSignature{Beats: 4, BeatType: 4})

	rit := model.NewTextAnnotation("rit.")
	rit.Italic = true
	m.Directions = []model.DisplacedDirection{
		{Direction: model.NewMetronomeMark(rational.New(3, 2), 80), Offset: rational.Zero},
		{Direction: rit, Offset: rational.FromInt(1)},
		{Direction: model.NewMetronomeMark(rational.FromInt(1), 60), Offset: rational.New(7, 2)},
	}
	return m
}

func quintuplet(withCross bool) *model.Tuplet {
	second := model.NewNote(model.MustPitch("bb4"), model.MustDuration("16"))
	if withCross {
		second.Notehead = model.MustNotehead("x")
	}
	return model.NewTuplet(model.TupletRatio{Actual: 5, Normal: 4},
		model.NewNote(model.MustPitch("c5"), model.MustDuration("8")),
		second,
		model.NewNote(model.MustPitch("a4"), model.MustDuration("16")),
		model.NewNote(model.MustPitch("b4"), model.MustDuration("16")),
	)
}

func oboeMeasure2() *model.Measure {
	gusto := model.NewNote(model.MustPitch("f4"), model.MustDuration("half"))
	gusto.Directions = []model.Direction{model.NewTextAnnotation("with gusto!")}

	m := model.NewMeasure([]model.MeasureElement{
		quintuplet(false),
		gusto,
		model.NewRest(model.MustDuration("quarter")),
	}, nil)
	m.Clef = model.MustClef("mezzo-soprano")
	m.Barline = "end"
	return m
}

func clarinetMeasure1() *model.Measure {
	return model.NewMeasure([]model.MeasureElement{
		quintuplet(true),
		model.NewNote(model.MustPitch("f4"), model.MustDuration("half")),
		model.NewRest(model.MustDuration("quarter")),
	}, &model.TimeSignature{Beats: 4, BeatType: 4})
}

func clarinetMeasure2() *model.Measure {
	roguishly := model.NewNote(model.MustPitch("d5"), model.MustDuration("4."))
	roguishly.Directions = []model.Direction{&model.StartBracket{Number: 1, Text: "roguishly"}}

	closing := model.NewChord(pitches("cs4", "ab4"), model.MustDuration("quarter"))
	closing.SetDirections(&model.StopBracket{Number: 1, LineEnd: "down"})

	m := model.NewMeasure([]model.MeasureElement{
		roguishly,
		model.NewBeamedGroup(
			model.NewNote(model.MustPitch("f#4"), model.MustDuration("16")),
			model.NewNote(model.MustPitch("a#4"), model.MustDuration("16")),
		),
		closing,
		model.NewRest(model.MustDuration("quarter")),
	}, nil)
	m.Barline = "end"
	return m
}

func bassoonMeasure1() *model.Measure {
	rest := model.NewBarRest(rational.FromInt(4))
	rest.Directions = []model.Direction{&model.StartPedal{}}

	m := model.NewMeasure([]model.MeasureElement{rest},
		&model.TimeSignature{Beats: 4, BeatType: 4})
	m.Clef = model.MustClef("bass")
	return m
}

func bassoonMeasure2() *model.Measure {
	slur := model.NewSlurID()

	gliss1 := model.NewNote(model.MustPitch("d4"), model.MustDuration("8"))
	gliss1.Notehead = model.MustNotehead("open mi")
	gliss1.Notations = []model.Notation{model.StartGliss{Number: 1}, model.StartSlur{ID: slur}}

	gliss2 := model.NewNote(model.MustPitch("eb4"), model.MustDuration("8"))
	gliss2.Notations = []model.Notation{model.StopGliss{Number: 1}, model.StartGliss{Number: 2}}

	gliss3 := model.NewNote(model.MustPitch("f4"), model.MustDuration("8"))
	gliss3.Notations = []model.Notation{model.StopGliss{Number: 2}, model.StopSlur{ID: slur}}

	pedalOff := model.NewNote(model.MustPitch("eb3"), model.MustDuration("8"))
	pedalOff.Directions = []model.Direction{&model.StopPedal{}}

	m := model.NewMultiVoiceMeasure([][]model.MeasureElement{
		{
			model.NewBeamedGroup(
				model.NewRest(model.MustDuration("8")),
				gliss1, gliss2, gliss3,
			),
			model.NewNote(model.MustPitch("eb4"), model.MustDuration("half")),
		},
		nil,
		{
			model.NewRest(model.MustDuration("quarter")),
			model.NewNote(model.MustPitch("c4"), model.MustDuration("half")),
			pedalOff,
			model.NewRest(model.MustDuration("8")),
		},
	}, nil)
	m.Barline = "end"
	return m
}

// buildAlgorithmicScore generates twenty measures of 3/4 from a fixed
// pitch bank, cycling triads, eighth-note dyads, sixteenth runs and
// triplets.
func buildAlgorithmicScore() *model.Score {
	rng := rand.New(rand.NewSource(1))
	bank := pitches("f#4", "bb4", "d5", "e5", "ab5", "c6", "f6")
	pick := func() model.Pitch {
		return bank[rng.Intn(len(bank))]
	}
	pickChord := func(k int) []model.Pitch {
		res := make([]model.Pitch, k)
		for i := range res {
			res[i] = pick()
		}
		return res
	}

	third := rational.New(1, 3)
	triplet := func() *model.Tuplet {
		members := make([]*model.Pitch, 3)
		for i := range members {
			p := pick()
			members[i] = &p
		}
		tup, err := tuplet.NotateRun([]rational.Rational{third, third, third}, members, nil)
		if err != nil {
			panic(err.Error())
		}
		return tup
	}

	part := model.NewPart("Piano")
	for i := 0; i < 20; i++ {
		var ts *model.TimeSignature
		if i == 0 {
			ts = &model.TimeSignature{Beats: 3, BeatType: 4}
		}
		m := model.NewMeasure(nil, ts)
		for beat := 0; beat < 3; beat++ {
			// every figure fills exactly one quarter-note beat
			switch (i + beat) % 4 {
			case 0:
				m.Append(model.NewChord(pickChord(3), model.MustDuration("quarter")))
			case 1:
				m.Append(model.NewBeamedGroup(
					model.NewChord(pickChord(2), model.MustDuration("8")),
					model.NewChord(pickChord(2), model.MustDuration("8")),
				))
			case 2:
				m.Append(model.NewBeamedGroup(
					model.NewNote(pick(), model.MustDuration("16")),
					model.NewNote(pick(), model.MustDuration("16")),
					model.NewNote(pick(), model.MustDuration("16")),
					model.NewNote(pick(), model.MustDuration("16")),
				))
			default:
				m.Append(triplet())
			}
		}
		part.Append(m)
	}

	score := model.NewScore("Algorithmically Generated MusicXML", "HTMLvis")
	score.Append(part)
	return score
}
