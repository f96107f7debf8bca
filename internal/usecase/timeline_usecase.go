package usecase

import (
	"context"
	"errors"
	"strings"

	"roadinspect/internal/domain/entities"
	"roadinspect/internal/domain/inspection"
	"roadinspect/internal/domain/timeline"
	"roadinspect/internal/domain/workflow"
	"roadinspect/internal/usecase/interfaces"
)

var (
	ErrRoadSectionNotFound = errors.New("road section not found")
	ErrPhaseNotFound       = errors.New("phase not found")
	ErrTemplateNotFound    = errors.New("workflow template not found")
	ErrMeasureMismatch     = errors.New("phase measure mismatch")
)

// ITimelineUseCase exposes the derived progress views of a phase. Every call
// recomputes from a fresh snapshot of the collaborators' data; nothing here
// is cached or persisted.

type ITimelineUseCase interface {
	LinearTimeline(ctx context.Context, roadSectionID, phaseID string) (LinearTimelineResult, error)
	PointTimeline(ctx context.Context, roadSectionID, phaseID string) (PointTimelineResult, error)
	Progress(ctx context.Context, q ProgressQuery) (inspection.ProgressResult, error)
}

type LinearTimelineResult struct {
	Phase    entities.Phase
	Timeline timeline.LinearTimeline
}

type PointTimelineResult struct {
	Phase    entities.Phase
	Timeline timeline.PointTimeline
}

type ProgressQuery struct {
	RoadSectionID string
	PhaseID       string
	Side          entities.Side
	StartPK       float64
	EndPK         float64
	Layers        []string
}

type TimelineUseCase struct {
	registry  *workflow.Registry
	phaseRepo interfaces.IPhaseRepository
	inspRepo  interfaces.IInspectionReadRepository
}

var _ ITimelineUseCase = (*TimelineUseCase)(nil)

func NewTimelineUseCase(registry *workflow.Registry, phaseRepo interfaces.IPhaseRepository, inspRepo interfaces.IInspectionReadRepository) *TimelineUseCase {
	return &TimelineUseCase{registry: registry, phaseRepo: phaseRepo, inspRepo: inspRepo}
}

func (u *TimelineUseCase) LinearTimeline(ctx context.Context, roadSectionID, phaseID string) (LinearTimelineResult, error) {
	view, err := loadPhaseView(ctx, u.registry, u.phaseRepo, u.inspRepo, roadSectionID, phaseID)
	if err != nil {
		return LinearTimelineResult{}, err
	}
	if view.phase.Measure != entities.MeasureLinear {
		return LinearTimelineResult{}, ErrMeasureMismatch
	}

	return LinearTimelineResult{
		Phase:    view.phase,
		Timeline: timeline.BuildLinear(view.phase, view.road.Length, view.phaseSnapshots),
	}, nil
}

func (u *TimelineUseCase) PointTimeline(ctx context.Context, roadSectionID, phaseID string) (PointTimelineResult, error) {
	view, err := loadPhaseView(ctx, u.registry, u.phaseRepo, u.inspRepo, roadSectionID, phaseID)
	if err != nil {
		return PointTimelineResult{}, err
	}
	if view.phase.Measure != entities.MeasurePoint {
		return PointTimelineResult{}, ErrMeasureMismatch
	}

	return PointTimelineResult{
		Phase:    view.phase,
		Timeline: timeline.BuildPoint(view.phase, view.road.StartPK, view.road.EndPK, view.phaseSnapshots),
	}, nil
}

func (u *TimelineUseCase) Progress(ctx context.Context, q ProgressQuery) (inspection.ProgressResult, error) {
	view, err := loadPhaseView(ctx, u.registry, u.phaseRepo, u.inspRepo, q.RoadSectionID, q.PhaseID)
	if err != nil {
		return inspection.ProgressResult{}, err
	}

	lo, hi := timeline.NormalizeRange(q.StartPK, q.EndPK)
	return inspection.PercentComplete(view.template, view.phaseSnapshots, q.Side, lo, hi, q.Layers), nil
}

// phaseView is one consistent load of everything a derived computation
// needs: the road section, the phase with its template, and the road's
// snapshots already expanded with propagation-derived records.
type phaseView struct {
	road           entities.RoadSection
	phase          entities.Phase
	template       workflow.WorkflowTemplate
	pointHasSides  bool
	phaseSnapshots []entities.InspectionSnapshot
}

func loadPhaseView(
	ctx context.Context,
	registry *workflow.Registry,
	phaseRepo interfaces.IPhaseRepository,
	inspRepo interfaces.IInspectionReadRepository,
	roadSectionID, phaseID string,
) (phaseView, error) {
	roadSectionID = strings.TrimSpace(roadSectionID)
	phaseID = strings.TrimSpace(phaseID)
	if roadSectionID == "" {
		return phaseView{}, ErrRoadSectionNotFound
	}
	if phaseID == "" {
		return phaseView{}, ErrPhaseNotFound
	}

	road, err := phaseRepo.GetRoadSection(ctx, roadSectionID)
	if err != nil {
		return phaseView{}, err
	}
	if road.ID == "" {
		return phaseView{}, ErrRoadSectionNotFound
	}

	phase, err := phaseRepo.GetPhase(ctx, phaseID)
	if err != nil {
		return phaseView{}, err
	}
	if phase.ID == "" || phase.RoadSectionID != road.ID {
		return phaseView{}, ErrPhaseNotFound
	}

	templateID := ""
	if phase.DefinitionID != "" {
		def, err := phaseRepo.GetDefinition(ctx, phase.DefinitionID)
		if err != nil {
			return phaseView{}, err
		}
		templateID = def.TemplateID
	}
	tpl, ok := registry.TemplateForPhase(templateID, phase.Name)
	if !ok {
		return phaseView{}, ErrTemplateNotFound
	}

	snapshots, err := inspRepo.ListByRoadSection(ctx, road.ID)
	if err != nil {
		return phaseView{}, err
	}
	phases, err := phaseRepo.ListPhasesByRoadSection(ctx, road.ID)
	if err != nil {
		return phaseView{}, err
	}

	expanded := inspection.ExpandDerived(registry, phases, snapshots)

	pointHasSides := phase.PointHasSides ||
		(phase.Measure == entities.MeasurePoint && tpl.SideRule == workflow.SideRulePerSide)
	phase.PointHasSides = pointHasSides

	return phaseView{
		road:           road,
		phase:          phase,
		template:       tpl,
		pointHasSides:  pointHasSides,
		phaseSnapshots: inspection.FilterPhase(expanded, phase),
	}, nil
}
