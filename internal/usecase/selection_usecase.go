package usecase

import (
	"context"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/inspection"
	"roadinspect/internal/domain/timeline"
	"roadinspect/internal/domain/workflow"
	"roadinspect/internal/usecase/interfaces"
)

// ISelectionUseCase evaluates a caller's layer/check selection against the
// workflow rules and the current booking state. The result is advisory UI
// state; nothing is persisted.

type ISelectionUseCase interface {
	Evaluate(ctx context.Context, cmd EvaluateSelectionCommand) (SelectionView, error)
}

type EvaluateSelectionCommand struct {
	RoadSectionID  string
	PhaseID        string
	Side           entities.Side
	StartPK        float64
	EndPK          float64
	Layers         []string
	Checks         []string
	ExcludedChecks []string
}

type SelectionView struct {
	Booking       entities.SideBooking
	PointHasSides bool
	Layers        []LayerOption
	Checks        []CheckOption
	Types         []string
}

type LayerOption struct {
	Name       string
	Stage      int
	Selected   bool
	Selectable bool
	Locked     bool
}

type CheckOption struct {
	Name     string
	Types    []string
	Selected bool
}

type SelectionUseCase struct {
	registry  *workflow.Registry
	phaseRepo interfaces.IPhaseRepository
	inspRepo  interfaces.IInspectionReadRepository
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase(registry *workflow.Registry, phaseRepo interfaces.IPhaseRepository, inspRepo interfaces.IInspectionReadRepository) *SelectionUseCase {
	return &SelectionUseCase{registry: registry, phaseRepo: phaseRepo, inspRepo: inspRepo}
}

func (u *SelectionUseCase) Evaluate(ctx context.Context, cmd EvaluateSelectionCommand) (SelectionView, error) {
	view, err := loadPhaseView(ctx, u.registry, u.phaseRepo, u.inspRepo, cmd.RoadSectionID, cmd.PhaseID)
	if err != nil {
		return SelectionView{}, err
	}

	lo, hi := timeline.NormalizeRange(cmd.StartPK, cmd.EndPK)

	var forcedSide *entities.Side
	if view.pointHasSides {
		side := cmd.Side
		forcedSide = &side
	}
	booking := inspection.ResolveSideBooking(forcedSide, lo, hi, view.phaseSnapshots)

	state := workflow.SelectionState{
		Layers:         cmd.Layers,
		Checks:         cmd.Checks,
		ExcludedChecks: map[string]bool{},
	}
	for _, name := range cmd.ExcludedChecks {
		state.ExcludedChecks[entities.NormalizeName(name)] = true
	}

	out := SelectionView{
		Booking:       booking,
		PointHasSides: view.pointHasSides,
		Types:         workflow.OfferedTypes(view.template, cmd.Checks),
	}

	for _, layer := range view.template.Layers {
		out.Layers = append(out.Layers, LayerOption{
			Name:       layer.Name,
			Stage:      layer.Stage,
			Selected:   hasName(cmd.Layers, layer.Name),
			Selectable: workflow.LayerSelectable(view.template, cmd.Layers, layer.Name),
			Locked:     workflow.LayerLocked(layer, cmd.Side, lo, hi, view.phaseSnapshots),
		})
	}

	for _, check := range workflow.AllowedChecks(view.template, cmd.Layers) {
		if state.ExcludedChecks[entities.NormalizeName(check.Name)] {
			continue
		}
		out.Checks = append(out.Checks, CheckOption{
			Name:     check.Name,
			Types:    check.Types,
			Selected: hasName(cmd.Checks, check.Name),
		})
	}

	return out, nil
}

func hasName(names []string, name string) bool {
	n := entities.NormalizeName(name)
	for _, v := range names {
		if entities.NormalizeName(v) == n {
			return true
		}
	}
	return false
}
