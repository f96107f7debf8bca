package entities

import "github.com/shopspring/decimal"

// Segment is a derived, ephemeral sub-range of a phase timeline carrying one
// status. Segments are rebuilt on every query and never persisted; the sets
// returned to callers never overlap and are gap-filled across the queried
// range.
type Segment struct {
	Start         float64
	End           float64
	Status        Status
	Spec          string
	BillQuantity  *decimal.Decimal
	PointHasSides bool
}

// SameRendering reports whether two segments would render identically, which
// is the merge condition for adjacent segments.
func (s Segment) SameRendering(o Segment) bool {
	return s.Status == o.Status &&
		s.Spec == o.Spec &&
		s.PointHasSides == o.PointHasSides &&
		decimalEqual(s.BillQuantity, o.BillQuantity)
}

func decimalEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// SideBooking is the computed commitment state of a (phase, range) pair.
// LockedSide is advisory: it steers the next submission toward the
// still-open side, it is not a mutex.
type SideBooking struct {
	Left       bool
	Right      bool
	Both       bool
	LockedSide *Side
}
