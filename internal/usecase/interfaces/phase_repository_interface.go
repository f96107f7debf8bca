package interfaces

import (
	"context"

	"roadinspect/internal/domain/entities"
)

// IPhaseRepository abstracts the phase/definition read collaborator. The
// engine never writes these records.

type IPhaseRepository interface {
	GetRoadSection(ctx context.Context, id string) (entities.RoadSection, error)
	GetPhase(ctx context.Context, id string) (entities.Phase, error)
	GetDefinition(ctx context.Context, id string) (entities.PhaseDefinition, error)
	ListPhasesByRoadSection(ctx context.Context, roadSectionID string) ([]entities.Phase, error)
}
