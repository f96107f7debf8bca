package entities

// Status is the lifecycle of an inspection record. Ordering is the single
// source of truth for every merge/override decision in the engine.
//
// Domain notes:
//   - pending means "designed but nothing committed yet".
//   - non_design is a segment-only value: a stretch of road this phase does
//     not cover. It never appears on inspection records.

type Status string

const (
	StatusNonDesign  Status = "non_design"
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusSubmitted  Status = "submitted"
	StatusInProgress Status = "in_progress"
	StatusApproved   Status = "approved"
)

var statusPriority = map[Status]int{
	StatusNonDesign:  0,
	StatusPending:    1,
	StatusScheduled:  2,
	StatusSubmitted:  3,
	StatusInProgress: 4,
	StatusApproved:   5,
}

// Priority returns the merge priority of the status. Unknown statuses rank
// as pending so a malformed record can never outrank a committed one.
func (s Status) Priority() int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return statusPriority[StatusPending]
}

// Committed reports whether the status represents a booked inspection
// (scheduled or later), as opposed to merely designed work.
func (s Status) Committed() bool {
	return s.Priority() >= StatusScheduled.Priority()
}
