package entities

import (
	"strconv"
	"strings"
)

// Identity names a workflow entity (phase, layer or check) either by its
// numeric id or, when no id is available, by its normalized name. Some
// inspection records reference layers/checks by name only, so every lookup
// that misses on the id key must be retried with the name key.

type identityKind int

const (
	identityUnknown identityKind = iota
	identityByID
	identityByName
)

type Identity struct {
	kind identityKind
	id   int64
	name string
}

func IdentityByID(id int64) Identity {
	if id == 0 {
		return Identity{}
	}
	return Identity{kind: identityByID, id: id}
}

func IdentityByName(name string) Identity {
	n := NormalizeName(name)
	if n == "" {
		return Identity{}
	}
	return Identity{kind: identityByName, name: n}
}

// ResolveIdentity builds an Identity preferring the numeric id and falling
// back to the normalized name.
func ResolveIdentity(id int64, name string) Identity {
	if id != 0 {
		return IdentityByID(id)
	}
	return IdentityByName(name)
}

func (i Identity) Known() bool {
	return i.kind != identityUnknown
}

// String renders the identity as a stable key component: "id:<v>",
// "name:<v>" or "unknown". Two different logical entities never collide.
func (i Identity) String() string {
	switch i.kind {
	case identityByID:
		return "id:" + strconv.FormatInt(i.id, 10)
	case identityByName:
		return "name:" + i.name
	default:
		return "unknown"
	}
}

// NormalizeName canonicalizes a display name for name-based matching:
// lower-cased, trimmed, inner whitespace collapsed to single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
