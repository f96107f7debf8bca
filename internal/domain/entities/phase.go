package entities

import "github.com/shopspring/decimal"

// Measure is how a phase's progress is tracked: a continuous distance along
// the road or discrete locations on it.

type Measure string

const (
	MeasureLinear Measure = "LINEAR"
	MeasurePoint  Measure = "POINT"
)

// PhaseDefinition is the template identity a phase instance is stamped from.
// One definition backs many Phase instances (one per road section).
type PhaseDefinition struct {
	ID            string
	Name          string
	Measure       Measure
	TemplateID    string
	DefaultLayers []string
	DefaultChecks []string
}

// Phase is one instance of a definition on a road section.
//
// PointHasSides applies to POINT phases only: every point then carries an
// explicit carriageway side rather than being side-neutral.
type Phase struct {
	ID            string
	RoadSectionID string
	DefinitionID  string
	Name          string
	Measure       Measure
	PointHasSides bool
	Layers        []string
	Checks        []string
	Intervals     []Interval
}

// Interval is one designed stretch (or, for POINT phases, one location) of a
// phase. Ranges are stored ordered; consumers re-order on input rather than
// trust callers.
type Interval struct {
	StartPK      float64
	EndPK        float64
	Side         Side
	Spec         string
	BillQuantity *decimal.Decimal
	Layers       []string
}
