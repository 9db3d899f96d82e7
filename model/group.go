package model

import (
	"github.com/notelab/partwise/rational"
)

// BeamedGroup joins consecutive notes, chords and rests under one
// explicit beam. Beam markers for its contents are computed at export
// time by the beaming assigner.
type BeamedGroup struct {
	Contents []Leaf
}

func NewBeamedGroup(contents ...Leaf) *BeamedGroup {
	return &BeamedGroup{Contents: contents}
}

func (g *BeamedGroup) TrueLength() rational.Rational {
	sum := rational.Zero
	for _, leaf := range g.Contents {
		sum = sum.Add(leaf.TrueLength())
	}
	return sum
}

func (g *BeamedGroup) WrittenLength() rational.Rational {
	sum := rational.Zero
	for _, leaf := range g.Contents {
		sum = sum.Add(leaf.WrittenLength())
	}
	return sum
}

func (g *BeamedGroup) MinDenominator() int64 {
	var dens []int64
	for _, leaf := range g.Contents {
		dens = append(dens, leaf.MinDenominator())
	}
	res := int64(1)
	for _, d := range dens {
		res = rational.Lcm(res, d)
	}
	return res
}

func (g *BeamedGroup) SetVoice(v int) {
	for _, leaf := range g.Contents {
		leaf.SetVoice(v)
	}
}

func (g *BeamedGroup) measureElement() {}

// Tuplet is a beamed group whose contents share a tuplet ratio. The
// ratio is stamped onto each member's duration and bracket markers
// onto the first and last members when the measure is laid out.
type Tuplet struct {
	BeamedGroup
	Ratio TupletRatio
}

func NewTuplet(ratio TupletRatio, contents ...Leaf) *Tuplet {
	return &Tuplet{BeamedGroup: BeamedGroup{Contents: contents}, Ratio: ratio}
}

// ApplyRatio stamps the tuplet's time modification onto every member
// and bracket markers onto the run's edges. A single-member tuplet
// gets both markers on the one note.
func (t *Tuplet) ApplyRatio() {
	ratio := t.Ratio
	for _, leaf := range t.Contents {
		switch v := leaf.(type) {
		case *Note:
			v.Duration.Tuplet = &ratio
		case *Rest:
			v.Duration.Tuplet = &ratio
		case *Chord:
			for _, n := range v.Notes {
				n.Duration.Tuplet = &ratio
			}
		case *BarRest:
			// bar rests cannot sit inside a tuplet; leave untouched
		}
	}
	if len(t.Contents) == 1 {
		setTupletBracket(t.Contents[0], TupletBracketBoth)
		return
	}
	if len(t.Contents) > 1 {
		setTupletBracket(t.Contents[0], TupletBracketStart)
		setTupletBracket(t.Contents[len(t.Contents)-1], TupletBracketStop)
	}
}

func setTupletBracket(leaf Leaf, marker string) {
	switch v := leaf.(type) {
	case *Note:
		v.TupletBracket = marker
	case *Chord:
		v.Notes[0].TupletBracket = marker
	}
}
