package entities

import "time"

// InspectionSnapshot is the latest known record for one
// (phase, layer, check, side, range) tuple, supplied by the read
// collaborator. The engine never mutates snapshots, only derives views.
//
// Layer and check may be referenced by numeric id, by name, or both; id wins
// when present and the name is the fallback.
type InspectionSnapshot struct {
	ID            string
	RoadSectionID string
	PhaseID       string
	PhaseName     string
	StartPK       float64
	EndPK         float64
	Side          Side
	Status        Status
	LayerID       int64
	LayerName     string
	CheckID       int64
	CheckName     string
	UpdatedAt     time.Time

	// Derived marks a snapshot synthesized by the cross-phase propagation
	// rule. Derived snapshots never reach the write collaborator.
	Derived bool
}

// BetterSnapshot is the one shared reduction rule for competing snapshots:
// higher status priority wins; on a tie the later UpdatedAt wins, and an
// equal UpdatedAt lets a later-processed record replace the earlier one.
func BetterSnapshot(a, b InspectionSnapshot) bool {
	pa, pb := a.Status.Priority(), b.Status.Priority()
	if pa != pb {
		return pa > pb
	}
	return !a.UpdatedAt.Before(b.UpdatedAt)
}

// InspectionEntry is one atomic record sent to the write collaborator. A
// submission expands into many entries, accepted or rejected as a whole.
type InspectionEntry struct {
	ID               string
	RoadSectionID    string
	PhaseID          string
	Side             Side
	StartPK          float64
	EndPK            float64
	LayerName        string
	CheckName        string
	Types            []string
	Remark           string
	AppointmentDate  time.Time
	Status           Status
	SubmissionNumber string
}
