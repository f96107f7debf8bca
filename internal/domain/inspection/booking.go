package inspection

import (
	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/workflow"
)

// ResolveSideBooking computes which sides of a candidate range already carry
// a committed inspection and which side, if any, new submissions are steered
// toward.
//
// Only committed snapshots (scheduled or later) count; a pending record does
// not book a side. Once one side of a range is committed the locked side is
// the complementary, still-open one, so a second submission cannot silently
// duplicate the booked side. forcedSide is the explicit side of a
// point-with-sides phase and wins outright.
func ResolveSideBooking(forcedSide *entities.Side, start, end float64, snapshots []entities.InspectionSnapshot) entities.SideBooking {
	b := entities.SideBooking{}
	for _, sn := range snapshots {
		if !sn.Status.Committed() {
			continue
		}
		if !workflow.RangesOverlap(sn.StartPK, sn.EndPK, start, end) {
			continue
		}
		if sn.Side.Matches(entities.SideLeft) {
			b.Left = true
		}
		if sn.Side.Matches(entities.SideRight) {
			b.Right = true
		}
		if sn.Side.Matches(entities.SideBoth) {
			b.Both = true
		}
	}
	if b.Left && b.Right {
		b.Both = true
	}

	if forcedSide != nil {
		side := *forcedSide
		b.LockedSide = &side
		return b
	}

	if !b.Both {
		switch {
		case b.Left && !b.Right:
			side := entities.SideRight
			b.LockedSide = &side
		case b.Right && !b.Left:
			side := entities.SideLeft
			b.LockedSide = &side
		}
	}
	return b
}
