package model

// ScoreContent is either a *Part or a *PartGroup.
type ScoreContent interface {
	scoreContent()
	// Parts flattens the content into its parts.
	Parts() []*Part
}

// Part is one instrument's sequence of measures.
type Part struct {
	Name     string
	Measures []*Measure
	// ID is assigned by the containing score on export.
	ID int
}

func NewPart(name string, measures ...*Measure) *Part {
	return &Part{Name: name, Measures: measures, ID: 1}
}

func (p *Part) Append(measures ...*Measure) {
	p.Measures = append(p.Measures, measures...)
}

func (p *Part) Parts() []*Part { return []*Part{p} }

func (p *Part) scoreContent() {}

// PartGroup is a run of related parts, usually connected with a
// bracket and shared barlines.
type PartGroup struct {
	Members         []*Part
	HasBracket      bool
	HasGroupBarLine bool
}

func NewPartGroup(parts ...*Part) *PartGroup {
	return &PartGroup{Members: parts, HasBracket: true, HasGroupBarLine: true}
}

func (g *PartGroup) Parts() []*Part { return g.Members }

func (g *PartGroup) scoreContent() {}

// Score is a full document: parts and part groups plus title-page
// metadata.
type Score struct {
	Contents []ScoreContent
	Title    string
	Composer string
}

func NewScore(title, composer string, contents ...ScoreContent) *Score {
	return &Score{Contents: contents, Title: title, Composer: composer}
}

func (s *Score) Append(content ScoreContent) {
	s.Contents = append(s.Contents, content)
}

// Parts flattens part groups, in document order.
func (s *Score) Parts() []*Part {
	var res []*Part
	for _, c := range s.Contents {
		res = append(res, c.Parts()...)
	}
	return res
}

// AssignPartIDs numbers the parts 1..n in document order.
func (s *Score) AssignPartIDs() {
	for i, part := range s.Parts() {
		part.ID = i + 1
	}
}
