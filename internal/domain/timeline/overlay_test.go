package timeline

import (
	"testing"
	"time"

	"roadinspect/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func seg(start, end float64, status entities.Status) entities.Segment {
	return entities.Segment{Start: start, End: end, Status: status}
}

func slice(start, end float64, status entities.Status, updatedAt time.Time) entities.InspectionSnapshot {
	return entities.InspectionSnapshot{StartPK: start, EndPK: end, Status: status, UpdatedAt: updatedAt}
}

func TestOverlay(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no slices keeps the design", func(t *testing.T) {
		design := []entities.Segment{seg(0, 400, entities.StatusPending), seg(400, 1000, entities.StatusNonDesign)}
		got := Overlay(design, nil)
		if diff := cmp.Diff(design, got); diff != "" {
			t.Fatalf("unexpected overlay (-want +got):\n%s", diff)
		}
	})

	t.Run("slice upgrades the overlapped sub-range only", func(t *testing.T) {
		design := []entities.Segment{seg(0, 1000, entities.StatusPending)}
		got := Overlay(design, []entities.InspectionSnapshot{slice(200, 600, entities.StatusApproved, base)})
		want := []entities.Segment{
			seg(0, 200, entities.StatusPending),
			seg(200, 600, entities.StatusApproved),
			seg(600, 1000, entities.StatusPending),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected overlay (-want +got):\n%s", diff)
		}
	})

	t.Run("slice never upgrades a non_design stretch", func(t *testing.T) {
		design := []entities.Segment{seg(0, 400, entities.StatusPending), seg(400, 1000, entities.StatusNonDesign)}
		got := Overlay(design, []entities.InspectionSnapshot{slice(0, 1000, entities.StatusApproved, base)})
		want := []entities.Segment{
			seg(0, 400, entities.StatusApproved),
			seg(400, 1000, entities.StatusNonDesign),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected overlay (-want +got):\n%s", diff)
		}
	})

	t.Run("higher priority wins over recency", func(t *testing.T) {
		design := []entities.Segment{seg(0, 400, entities.StatusPending)}
		slices := []entities.InspectionSnapshot{
			slice(0, 400, entities.StatusApproved, base),
			slice(0, 400, entities.StatusScheduled, base.Add(time.Hour)),
		}
		got := Overlay(design, slices)
		if len(got) != 1 || got[0].Status != entities.StatusApproved {
			t.Fatalf("expected one approved segment, got %+v", got)
		}
		// same outcome with the slices swapped
		got = Overlay(design, []entities.InspectionSnapshot{slices[1], slices[0]})
		if len(got) != 1 || got[0].Status != entities.StatusApproved {
			t.Fatalf("expected one approved segment after reorder, got %+v", got)
		}
	})

	t.Run("equal priority resolves by recency", func(t *testing.T) {
		design := []entities.Segment{seg(0, 400, entities.StatusPending)}
		got := Overlay(design, []entities.InspectionSnapshot{
			{StartPK: 0, EndPK: 400, Status: entities.StatusScheduled, UpdatedAt: base, CheckName: "old"},
			{StartPK: 0, EndPK: 400, Status: entities.StatusScheduled, UpdatedAt: base.Add(time.Hour), CheckName: "new"},
		})
		if len(got) != 1 || got[0].Status != entities.StatusScheduled {
			t.Fatalf("expected one scheduled segment, got %+v", got)
		}
	})

	t.Run("reordered slice bounds still overlay", func(t *testing.T) {
		design := []entities.Segment{seg(0, 400, entities.StatusPending)}
		got := Overlay(design, []entities.InspectionSnapshot{slice(400, 0, entities.StatusInProgress, base)})
		if len(got) != 1 || got[0].Status != entities.StatusInProgress {
			t.Fatalf("expected one in_progress segment, got %+v", got)
		}
	})

	t.Run("empty design yields nothing", func(t *testing.T) {
		if got := Overlay(nil, []entities.InspectionSnapshot{slice(0, 100, entities.StatusApproved, base)}); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestMergeSegments(t *testing.T) {
	t.Run("merges contiguous identical renderings", func(t *testing.T) {
		got := MergeSegments([]entities.Segment{
			seg(0, 200, entities.StatusApproved),
			seg(200, 400, entities.StatusApproved),
			seg(400, 600, entities.StatusPending),
		})
		want := []entities.Segment{
			seg(0, 400, entities.StatusApproved),
			seg(400, 600, entities.StatusPending),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected merge (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps a gap between identical renderings", func(t *testing.T) {
		in := []entities.Segment{seg(0, 100, entities.StatusPending), seg(300, 400, entities.StatusPending)}
		got := MergeSegments(in)
		if diff := cmp.Diff(in, got); diff != "" {
			t.Fatalf("unexpected merge (-want +got):\n%s", diff)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := MergeSegments([]entities.Segment{
			seg(0, 200, entities.StatusApproved),
			seg(200, 400, entities.StatusApproved),
		})
		twice := MergeSegments(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("merge not idempotent (-once +twice):\n%s", diff)
		}
	})

	t.Run("different spec blocks the merge", func(t *testing.T) {
		in := []entities.Segment{
			{Start: 0, End: 200, Status: entities.StatusPending, Spec: "CBR 15"},
			{Start: 200, End: 400, Status: entities.StatusPending, Spec: "CBR 20"},
		}
		got := MergeSegments(in)
		if len(got) != 2 {
			t.Fatalf("expected 2 segments, got %+v", got)
		}
	})
}
