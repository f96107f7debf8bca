package entities

import "strings"

// Side is the carriageway side an interval or inspection applies to.

type Side string

const (
	SideLeft  Side = "LEFT"
	SideRight Side = "RIGHT"
	SideBoth  Side = "BOTH"
)

// ParseSide normalizes a raw side string. Anything unrecognized resolves to
// BOTH, which is the permissive default for side-neutral phases.
func ParseSide(raw string) Side {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LEFT", "L":
		return SideLeft
	case "RIGHT", "R":
		return SideRight
	default:
		return SideBoth
	}
}

// Matches reports whether a record carrying side s satisfies a query for
// querySide. The test is asymmetric: a BOTH record satisfies any query, but a
// BOTH query is only satisfied by a BOTH record.
func (s Side) Matches(querySide Side) bool {
	if s == SideBoth {
		return true
	}
	return s == querySide
}

// Opposite returns the complementary carriageway side. BOTH has no
// complement and is returned unchanged.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}
