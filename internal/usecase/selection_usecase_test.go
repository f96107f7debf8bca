package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"roadinspect/internal/domain/entities"
	mock_interfaces "roadinspect/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSelectionUseCase_Evaluate(t *testing.T) {
	t.Run("phase not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		phaseRepo := mock_interfaces.NewMockIPhaseRepository(ctrl)
		uc := NewSelectionUseCase(testRegistry(t), phaseRepo, nil)

		phaseRepo.EXPECT().GetRoadSection(gomock.Any(), "rd-1").Return(testRoad(), nil)
		phaseRepo.EXPECT().GetPhase(gomock.Any(), "ph-x").Return(entities.Phase{}, nil)

		_, err := uc.Evaluate(context.Background(), EvaluateSelectionCommand{RoadSectionID: "rd-1", PhaseID: "ph-x"})
		if !errors.Is(err, ErrPhaseNotFound) {
			t.Fatalf("expected ErrPhaseNotFound, got %v", err)
		}
	})

	t.Run("empty selection offers every layer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		phaseRepo := mock_interfaces.NewMockIPhaseRepository(ctrl)
		inspRepo := mock_interfaces.NewMockIInspectionReadRepository(ctrl)
		uc := NewSelectionUseCase(testRegistry(t), phaseRepo, inspRepo)

		expectPhaseView(phaseRepo, inspRepo, linearPhase(), nil)

		view, err := uc.Evaluate(context.Background(), EvaluateSelectionCommand{
			RoadSectionID: "rd-1", PhaseID: "ph-1",
			Side: entities.SideBoth, StartPK: 0, EndPK: 400,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Layers) != 5 {
			t.Fatalf("expected 5 layer options, got %d", len(view.Layers))
		}
		for _, l := range view.Layers {
			if !l.Selectable || l.Selected || l.Locked {
				t.Fatalf("unexpected option on empty selection: %+v", l)
			}
		}
		if len(view.Checks) != 0 {
			t.Fatalf("expected no check options without layers, got %+v", view.Checks)
		}
		if len(view.Types) != 3 {
			t.Fatalf("expected default types, got %v", view.Types)
		}
	})

	t.Run("booking steers toward the open side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		phaseRepo := mock_interfaces.NewMockIPhaseRepository(ctrl)
		inspRepo := mock_interfaces.NewMockIInspectionReadRepository(ctrl)
		uc := NewSelectionUseCase(testRegistry(t), phaseRepo, inspRepo)

		snaps := []entities.InspectionSnapshot{{
			RoadSectionID: "rd-1", PhaseID: "ph-1",
			StartPK: 100, EndPK: 120, Side: entities.SideLeft,
			Status: entities.StatusScheduled, UpdatedAt: time.Now(),
		}}
		expectPhaseView(phaseRepo, inspRepo, linearPhase(), snaps)

		view, err := uc.Evaluate(context.Background(), EvaluateSelectionCommand{
			RoadSectionID: "rd-1", PhaseID: "ph-1",
			Side: entities.SideBoth, StartPK: 100, EndPK: 120,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.Booking.Left || view.Booking.Right {
			t.Fatalf("unexpected booking: %+v", view.Booking)
		}
		if view.Booking.LockedSide == nil || *view.Booking.LockedSide != entities.SideRight {
			t.Fatalf("expected locked side RIGHT, got %+v", view.Booking.LockedSide)
		}
	})

	t.Run("selected layers expose their checks minus exclusions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		phaseRepo := mock_interfaces.NewMockIPhaseRepository(ctrl)
		inspRepo := mock_interfaces.NewMockIInspectionReadRepository(ctrl)
		uc := NewSelectionUseCase(testRegistry(t), phaseRepo, inspRepo)

		expectPhaseView(phaseRepo, inspRepo, linearPhase(), nil)

		view, err := uc.Evaluate(context.Background(), EvaluateSelectionCommand{
			RoadSectionID: "rd-1", PhaseID: "ph-1",
			Side: entities.SideBoth, StartPK: 0, EndPK: 400,
			Layers:         []string{"subgrade preparation"},
			Checks:         []string{"proof rolling"},
			ExcludedChecks: []string{"compaction test"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Checks) != 1 {
			t.Fatalf("expected excluded check hidden, got %+v", view.Checks)
		}
		if view.Checks[0].Name != "proof rolling" || !view.Checks[0].Selected {
			t.Fatalf("unexpected check option: %+v", view.Checks[0])
		}
	})

	t.Run("fully booked layer is locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		phaseRepo := mock_interfaces.NewMockIPhaseRepository(ctrl)
		inspRepo := mock_interfaces.NewMockIInspectionReadRepository(ctrl)
		uc := NewSelectionUseCase(testRegistry(t), phaseRepo, inspRepo)

		// clearing and grubbing has a single check; booking it locks the layer.
		snaps := []entities.InspectionSnapshot{{
			RoadSectionID: "rd-1", PhaseID: "ph-1",
			StartPK: 0, EndPK: 400, Side: entities.SideBoth,
			Status: entities.StatusScheduled, LayerID: 101, CheckID: 1011, UpdatedAt: time.Now(),
		}}
		expectPhaseView(phaseRepo, inspRepo, linearPhase(), snaps)

		view, err := uc.Evaluate(context.Background(), EvaluateSelectionCommand{
			RoadSectionID: "rd-1", PhaseID: "ph-1",
			Side: entities.SideLeft, StartPK: 0, EndPK: 400,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var clearing *LayerOption
		for i := range view.Layers {
			if view.Layers[i].Name == "clearing and grubbing" {
				clearing = &view.Layers[i]
			}
		}
		if clearing == nil || !clearing.Locked {
			t.Fatalf("expected clearing and grubbing locked, got %+v", clearing)
		}
	})

	t.Run("point phase forces the queried side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		phaseRepo := mock_interfaces.NewMockIPhaseRepository(ctrl)
		inspRepo := mock_interfaces.NewMockIInspectionReadRepository(ctrl)
		uc := NewSelectionUseCase(testRegistry(t), phaseRepo, inspRepo)

		expectPhaseView(phaseRepo, inspRepo, pointPhase(), nil)

		view, err := uc.Evaluate(context.Background(), EvaluateSelectionCommand{
			RoadSectionID: "rd-1", PhaseID: "ph-2",
			Side: entities.SideLeft, StartPK: 150, EndPK: 150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.PointHasSides {
			t.Fatalf("expected per-side point phase")
		}
		if view.Booking.LockedSide == nil || *view.Booking.LockedSide != entities.SideLeft {
			t.Fatalf("expected forced LEFT, got %+v", view.Booking.LockedSide)
		}
	})
}
