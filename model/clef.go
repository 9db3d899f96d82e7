package model

import "fmt"

// Clef is a G, F or C clef centered on a staff line, with an optional
// octave transposition.
type Clef struct {
	Sign                 string
	Line                 int
	OctavesTransposition int
}

var clefNames = map[string]Clef{
	"treble":        {Sign: "G", Line: 2},
	"bass":          {Sign: "F", Line: 4},
	"alto":          {Sign: "C", Line: 3},
	"tenor":         {Sign: "C", Line: 4},
	"soprano":       {Sign: "C", Line: 1},
	"mezzo-soprano": {Sign: "C", Line: 2},
	"baritone":      {Sign: "F", Line: 3},
}

// ParseClef resolves a standard clef name like "treble" or "bass".
func ParseClef(name string) (*Clef, error) {
	c, ok := clefNames[name]
	if !ok {
		return nil, fmt.Errorf("model: clef name %q not understood", name)
	}
	return &c, nil
}

func MustClef(name string) *Clef {
	c, err := ParseClef(name)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// KeySignature in circle-of-fifths form: positive Fifths for sharps,
// negative for flats.
type KeySignature struct {
	Fifths int
	Mode   string
}
