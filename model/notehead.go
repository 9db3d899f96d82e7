package model

import (
	"fmt"
	"strings"
)

var validNoteheads = map[string]bool{
	"normal": true, "diamond": true, "triangle": true, "slash": true,
	"cross": true, "x": true, "circle-x": true, "inverted triangle": true,
	"square": true, "arrow down": true, "arrow up": true, "circled": true,
	"slashed": true, "back slashed": true, "cluster": true,
	"circle dot": true, "left triangle": true, "rectangle": true,
	"do": true, "re": true, "mi": true, "fa": true, "fa up": true,
	"so": true, "la": true, "ti": true, "none": true,
}

// Notehead names a notehead style. Filled is a three-state flag:
// "yes", "no", or "" for unspecified.
type Notehead struct {
	Name   string
	Filled string
}

// ParseNotehead accepts any of the standard notehead types, optionally
// preceded by "filled" or "open", e.g. "open mi" or "filled triangle".
func ParseNotehead(s string) (*Notehead, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	filled := ""
	if rest := strings.TrimPrefix(name, "filled "); rest != name {
		name, filled = rest, "yes"
	} else if rest := strings.TrimPrefix(name, "open "); rest != name {
		name, filled = rest, "no"
	}
	if !validNoteheads[name] {
		return nil, fmt.Errorf("model: notehead %q not understood", s)
	}
	return &Notehead{Name: name, Filled: filled}, nil
}

func MustNotehead(s string) *Notehead {
	nh, err := ParseNotehead(s)
	if err != nil {
		panic(err.Error())
	}
	return nh
}
