package timeline

import (
	"sort"

	"roadinspect/internal/domain/entities"
)

// Overlay projects inspection slices onto a set of design segments and
// returns the merged, non-overlapping result.
//
// The sweep collects every segment and slice boundary into one breakpoint
// set, then resolves each consecutive [start, end) pair independently:
//   - sub-ranges outside any design segment are dropped;
//   - non_design segments pass through untouched, an inspection never
//     upgrades a gap;
//   - otherwise the best overlapping slice (entities.BetterSnapshot) decides
//     the status, falling back to the design segment's own status.
func Overlay(design []entities.Segment, slices []entities.InspectionSnapshot) []entities.Segment {
	if len(design) == 0 {
		return nil
	}

	breaks := make([]float64, 0, len(design)*2+len(slices)*2)
	for _, seg := range design {
		breaks = append(breaks, seg.Start, seg.End)
	}
	for _, sl := range slices {
		lo, hi := NormalizeRange(sl.StartPK, sl.EndPK)
		breaks = append(breaks, lo, hi)
	}
	breaks = dedupSorted(breaks)

	out := make([]entities.Segment, 0, len(breaks))
	for i := 0; i+1 < len(breaks); i++ {
		start, end := breaks[i], breaks[i+1]
		if end-start < Epsilon {
			continue
		}

		owner, ok := owningSegment(design, start, end)
		if !ok {
			continue
		}

		sub := entities.Segment{
			Start:         start,
			End:           end,
			Status:        owner.Status,
			Spec:          owner.Spec,
			BillQuantity:  owner.BillQuantity,
			PointHasSides: owner.PointHasSides,
		}
		if owner.Status != entities.StatusNonDesign {
			if best, ok := bestSlice(slices, start, end); ok {
				sub.Status = best.Status
			}
		}
		out = append(out, sub)
	}

	return MergeSegments(out)
}

// MergeSegments collapses adjacent segments that render identically and are
// contiguous. Idempotent: merging a merged set is a no-op.
func MergeSegments(segs []entities.Segment) []entities.Segment {
	if len(segs) == 0 {
		return nil
	}
	out := make([]entities.Segment, 0, len(segs))
	cur := segs[0]
	for _, seg := range segs[1:] {
		if cur.SameRendering(seg) && seg.Start-cur.End < Epsilon {
			cur.End = seg.End
			continue
		}
		out = append(out, cur)
		cur = seg
	}
	return append(out, cur)
}

func owningSegment(design []entities.Segment, start, end float64) (entities.Segment, bool) {
	for _, seg := range design {
		if start >= seg.Start-Epsilon && end <= seg.End+Epsilon {
			return seg, true
		}
	}
	return entities.Segment{}, false
}

func bestSlice(slices []entities.InspectionSnapshot, start, end float64) (entities.InspectionSnapshot, bool) {
	var best entities.InspectionSnapshot
	found := false
	for _, sl := range slices {
		lo, hi := NormalizeRange(sl.StartPK, sl.EndPK)
		if hi <= start+Epsilon || lo >= end-Epsilon {
			continue
		}
		if !found || entities.BetterSnapshot(sl, best) {
			best = sl
			found = true
		}
	}
	return best, found
}

func dedupSorted(vals []float64) []float64 {
	sort.Float64s(vals)
	out := vals[:0]
	for _, v := range vals {
		if len(out) == 0 || v-out[len(out)-1] >= Epsilon {
			out = append(out, v)
		}
	}
	return out
}
