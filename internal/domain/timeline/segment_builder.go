package timeline

import (
	"sort"

	"roadinspect/internal/domain/entities"
)

// LinearTimeline is the per-side rendering view of a LINEAR phase.
type LinearTimeline struct {
	Left  []entities.Segment
	Right []entities.Segment
	Total float64
}

// PointTimeline is the rendering view of a POINT phase. Min/Max bound the
// rendering range only; points are discrete, so no gap filling happens.
type PointTimeline struct {
	Min    float64
	Max    float64
	Points []PointMarker
}

// PointMarker is one discrete inspection location.
type PointMarker struct {
	Segment entities.Segment
	Side    entities.Side
}

// BuildLinear converts a LINEAR phase's design intervals plus its inspection
// snapshots into two overlaid sub-timelines, one per carriageway side. A
// BOTH-side interval contributes an identical pending segment to both sides,
// and a BOTH-side snapshot counts toward both.
func BuildLinear(phase entities.Phase, roadLength float64, snapshots []entities.InspectionSnapshot) LinearTimeline {
	total := roadLength
	if total < 0 {
		total = 0
	}
	for _, iv := range phase.Intervals {
		_, hi := NormalizeRange(iv.StartPK, iv.EndPK)
		if hi > total {
			total = hi
		}
	}
	if total < 1 {
		total = 1
	}

	var left, right []entities.Segment
	for _, iv := range phase.Intervals {
		seg := designSegment(iv, phase.PointHasSides)
		switch iv.Side {
		case entities.SideLeft:
			left = append(left, seg)
		case entities.SideRight:
			right = append(right, seg)
		default:
			left = append(left, seg)
			right = append(right, seg)
		}
	}

	return LinearTimeline{
		Left:  Overlay(fillGaps(left, total), sideSlices(snapshots, entities.SideLeft)),
		Right: Overlay(fillGaps(right, total), sideSlices(snapshots, entities.SideRight)),
		Total: total,
	}
}

// BuildPoint collects a POINT phase's interval boundaries as discrete
// markers. With no intervals the rendering range falls back to the road
// section's start/end. Each marker's status is the reduction of the
// snapshots overlapping it on a matching side.
func BuildPoint(phase entities.Phase, fallbackStart, fallbackEnd float64, snapshots []entities.InspectionSnapshot) PointTimeline {
	if len(phase.Intervals) == 0 {
		lo, hi := NormalizeRange(fallbackStart, fallbackEnd)
		return PointTimeline{Min: lo, Max: hi}
	}

	tl := PointTimeline{}
	for i, iv := range phase.Intervals {
		lo, hi := NormalizeRange(iv.StartPK, iv.EndPK)
		if i == 0 || lo < tl.Min {
			tl.Min = lo
		}
		if i == 0 || hi > tl.Max {
			tl.Max = hi
		}

		seg := designSegment(iv, phase.PointHasSides)
		if best, ok := reduceSlices(pointSlices(snapshots, iv.Side, lo, hi)); ok {
			seg.Status = best.Status
		}
		tl.Points = append(tl.Points, PointMarker{Segment: seg, Side: iv.Side})
	}
	return tl
}

func designSegment(iv entities.Interval, pointHasSides bool) entities.Segment {
	lo, hi := NormalizeRange(iv.StartPK, iv.EndPK)
	return entities.Segment{
		Start:         lo,
		End:           hi,
		Status:        entities.StatusPending,
		Spec:          iv.Spec,
		BillQuantity:  iv.BillQuantity,
		PointHasSides: pointHasSides,
	}
}

// fillGaps sorts one side's design segments and fills the stretches this
// phase does not cover with non_design segments, across [0, total]. A
// non-covered stretch must render distinctly, never as pending work.
func fillGaps(design []entities.Segment, total float64) []entities.Segment {
	sort.Slice(design, func(i, j int) bool { return design[i].Start < design[j].Start })

	out := make([]entities.Segment, 0, len(design)*2+1)
	cursor := 0.0
	for _, seg := range design {
		if seg.Start-cursor >= Epsilon {
			out = append(out, nonDesignSegment(cursor, seg.Start, seg.PointHasSides))
		}
		out = append(out, seg)
		if seg.End > cursor {
			cursor = seg.End
		}
	}
	if total-cursor >= Epsilon {
		out = append(out, nonDesignSegment(cursor, total, false))
	}
	return out
}

func nonDesignSegment(start, end float64, pointHasSides bool) entities.Segment {
	return entities.Segment{
		Start:         start,
		End:           end,
		Status:        entities.StatusNonDesign,
		PointHasSides: pointHasSides,
	}
}

func sideSlices(snapshots []entities.InspectionSnapshot, side entities.Side) []entities.InspectionSnapshot {
	var out []entities.InspectionSnapshot
	for _, sn := range snapshots {
		if sn.Side.Matches(side) {
			out = append(out, sn)
		}
	}
	return out
}

func reduceSlices(slices []entities.InspectionSnapshot) (entities.InspectionSnapshot, bool) {
	var best entities.InspectionSnapshot
	found := false
	for _, sl := range slices {
		if !found || entities.BetterSnapshot(sl, best) {
			best = sl
			found = true
		}
	}
	return best, found
}

func pointSlices(snapshots []entities.InspectionSnapshot, side entities.Side, lo, hi float64) []entities.InspectionSnapshot {
	var out []entities.InspectionSnapshot
	for _, sn := range snapshots {
		if !sn.Side.Matches(side) && !side.Matches(sn.Side) {
			continue
		}
		slo, shi := NormalizeRange(sn.StartPK, sn.EndPK)
		if shi < lo || slo > hi {
			continue
		}
		out = append(out, sn)
	}
	return out
}
