package request

import (
	"math"

	"roadinspect/internal/domain/entities"
)

// SelectionRequest is the payload for evaluating a layer/check selection
// against the workflow rules and current bookings.
type SelectionRequest struct {
	Side           string   `json:"side"`
	StartPK        *float64 `json:"start_pk"`
	EndPK          *float64 `json:"end_pk"`
	Layers         []string `json:"layers"`
	Checks         []string `json:"checks"`
	ExcludedChecks []string `json:"excluded_checks"`
}

func (r SelectionRequest) ResolveSide() entities.Side {
	return entities.ParseSide(r.Side)
}

// ResolveRange returns the candidate range; a missing bound resolves to 0.
func (r SelectionRequest) ResolveRange() (float64, float64) {
	return derefPK(r.StartPK, 0), derefPK(r.EndPK, 0)
}

func derefPK(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// missingPK marks an absent range bound so validation downstream can tell
// "not supplied" from a real zero.
func missingPK() float64 {
	return math.NaN()
}
