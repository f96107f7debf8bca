package inspection

import (
	"testing"
	"time"

	"roadinspect/internal/domain/entities"
)

func committedSnap(start, end float64, side entities.Side, status entities.Status) entities.InspectionSnapshot {
	return entities.InspectionSnapshot{
		StartPK: start, EndPK: end, Side: side, Status: status,
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestResolveSideBooking(t *testing.T) {
	t.Run("no commitments leave everything open", func(t *testing.T) {
		b := ResolveSideBooking(nil, 0, 400, nil)
		if b.Left || b.Right || b.Both || b.LockedSide != nil {
			t.Fatalf("expected open booking, got %+v", b)
		}
	})

	t.Run("pending records never book", func(t *testing.T) {
		snaps := []entities.InspectionSnapshot{committedSnap(0, 400, entities.SideLeft, entities.StatusPending)}
		b := ResolveSideBooking(nil, 0, 400, snaps)
		if b.Left || b.LockedSide != nil {
			t.Fatalf("expected open booking, got %+v", b)
		}
	})

	t.Run("left commitment steers to the right", func(t *testing.T) {
		snaps := []entities.InspectionSnapshot{committedSnap(100, 120, entities.SideLeft, entities.StatusScheduled)}
		b := ResolveSideBooking(nil, 100, 120, snaps)
		if !b.Left || b.Right || b.Both {
			t.Fatalf("unexpected flags: %+v", b)
		}
		if b.LockedSide == nil || *b.LockedSide != entities.SideRight {
			t.Fatalf("expected locked side RIGHT, got %+v", b.LockedSide)
		}
	})

	t.Run("right commitment steers to the left", func(t *testing.T) {
		snaps := []entities.InspectionSnapshot{committedSnap(0, 400, entities.SideRight, entities.StatusInProgress)}
		b := ResolveSideBooking(nil, 0, 400, snaps)
		if b.LockedSide == nil || *b.LockedSide != entities.SideLeft {
			t.Fatalf("expected locked side LEFT, got %+v", b.LockedSide)
		}
	})

	t.Run("both sides committed leave no steer", func(t *testing.T) {
		snaps := []entities.InspectionSnapshot{
			committedSnap(0, 400, entities.SideLeft, entities.StatusScheduled),
			committedSnap(0, 400, entities.SideRight, entities.StatusScheduled),
		}
		b := ResolveSideBooking(nil, 0, 400, snaps)
		if !b.Left || !b.Right || !b.Both || b.LockedSide != nil {
			t.Fatalf("expected both booked without a steer, got %+v", b)
		}
		// order of the records does not change the outcome
		b = ResolveSideBooking(nil, 0, 400, []entities.InspectionSnapshot{snaps[1], snaps[0]})
		if !b.Both || b.LockedSide != nil {
			t.Fatalf("expected both booked after reorder, got %+v", b)
		}
	})

	t.Run("a both-side record books everything", func(t *testing.T) {
		snaps := []entities.InspectionSnapshot{committedSnap(0, 400, entities.SideBoth, entities.StatusApproved)}
		b := ResolveSideBooking(nil, 0, 400, snaps)
		if !b.Left || !b.Right || !b.Both || b.LockedSide != nil {
			t.Fatalf("expected full booking, got %+v", b)
		}
	})

	t.Run("non-overlapping commitments are ignored", func(t *testing.T) {
		snaps := []entities.InspectionSnapshot{committedSnap(500, 600, entities.SideLeft, entities.StatusScheduled)}
		b := ResolveSideBooking(nil, 0, 400, snaps)
		if b.Left || b.LockedSide != nil {
			t.Fatalf("expected open booking, got %+v", b)
		}
	})

	t.Run("touching ranges overlap", func(t *testing.T) {
		snaps := []entities.InspectionSnapshot{committedSnap(400, 600, entities.SideLeft, entities.StatusScheduled)}
		b := ResolveSideBooking(nil, 0, 400, snaps)
		if !b.Left {
			t.Fatalf("expected a touching range to book, got %+v", b)
		}
	})

	t.Run("forced side wins over the computed steer", func(t *testing.T) {
		forced := entities.SideLeft
		snaps := []entities.InspectionSnapshot{committedSnap(0, 400, entities.SideLeft, entities.StatusScheduled)}
		b := ResolveSideBooking(&forced, 0, 400, snaps)
		if b.LockedSide == nil || *b.LockedSide != entities.SideLeft {
			t.Fatalf("expected forced LEFT, got %+v", b.LockedSide)
		}
	})
}
