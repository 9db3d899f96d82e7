package model

import (
	"github.com/google/uuid"
)

// Notation is the closed set of markings that live inside a note's
// notations element: StartSlur, StopSlur, StartGliss, StopGliss and
// Tag. Multi-gliss values are chord-level and are expanded into
// per-note gliss notations by Chord.SetNotations.
type Notation interface {
	notation()
}

// NewSlurID returns a fresh identifier for pairing a StartSlur with
// its StopSlur. Any string works; ids are renumbered into the 1..6
// range the format requires on export.
func NewSlurID() string {
	return uuid.New().String()
}

// StartSlur opens a slur. Matching start/stop pairs share an ID.
type StartSlur struct {
	ID string
}

// StopSlur closes the slur with the same ID.
type StopSlur struct {
	ID string
}

// StartGliss opens a glissando line with the given number.
type StartGliss struct {
	Number int
}

// StopGliss closes the glissando line with the same number.
type StopGliss struct {
	Number int
}

// Tag is a bare notation element with no attributes, e.g. "fermata".
type Tag struct {
	Name string
}

// StartMultiGliss assigns gliss numbers to consecutive chord members;
// nil entries leave that member unglissed.
type StartMultiGliss []*int

// StopMultiGliss closes the gliss lines opened by a StartMultiGliss.
type StopMultiGliss []*int

// GlissNumbers is a convenience for building multi-gliss number lists:
// non-positive values become nil entries.
func GlissNumbers(nums ...int) []*int {
	res := make([]*int, len(nums))
	for i := range nums {
		if nums[i] > 0 {
			n := nums[i]
			res[i] = &n
		}
	}
	return res
}

func (StartSlur) notation()       {}
func (StopSlur) notation()        {}
func (StartGliss) notation()      {}
func (StopGliss) notation()       {}
func (Tag) notation()             {}
func (StartMultiGliss) notation() {}
func (StopMultiGliss) notation()  {}
