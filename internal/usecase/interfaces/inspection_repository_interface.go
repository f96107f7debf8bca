package interfaces

import (
	"context"
	"strings"

	"roadinspect/internal/domain/entities"
)

// IInspectionReadRepository supplies the inspection snapshot list for a road
// section. The engine treats the returned list as an immutable snapshot for
// one computation pass.

type IInspectionReadRepository interface {
	ListByRoadSection(ctx context.Context, roadSectionID string) ([]entities.InspectionSnapshot, error)
}

// IInspectionWriteRepository accepts one submission's atomic entries. The
// batch is applied as a whole: either every entry is persisted or none is.

type IInspectionWriteRepository interface {
	CreateEntries(ctx context.Context, entries []entities.InspectionEntry) error
}

// WriteRejectedError is the structured failure a write collaborator returns
// when it declines a batch. Details are human-readable strings surfaced
// verbatim to the caller.
type WriteRejectedError struct {
	Details []string
}

func (e *WriteRejectedError) Error() string {
	if len(e.Details) == 0 {
		return "inspection batch rejected"
	}
	return "inspection batch rejected: " + strings.Join(e.Details, "; ")
}
