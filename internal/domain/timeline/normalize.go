package timeline

import (
	"math"
	"strconv"

	"roadinspect/internal/domain/entities"
)

// Epsilon below which two PK values are treated as the same point. Keeps
// segment counts proportional to real distinctions, not float arithmetic.
const Epsilon = 1e-6

// NormalizeRange canonicalizes a (start, end) pair: non-finite inputs coerce
// to 0 and the bounds are ordered. NormalizeRange(a, b) == NormalizeRange(b, a)
// for all inputs.
func NormalizeRange(a, b float64) (float64, float64) {
	if !isFinite(a) {
		a = 0
	}
	if !isFinite(b) {
		b = 0
	}
	if a > b {
		return b, a
	}
	return a, b
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// BaseStatusKey builds the side-less composite key for one
// (phase, layer, check, range) tuple. Reordered ranges produce the same key.
func BaseStatusKey(phase, layer, check entities.Identity, start, end float64) string {
	lo, hi := NormalizeRange(start, end)
	return phase.String() + "|" + layer.String() + "|" + check.String() +
		"|" + formatPK(lo) + "-" + formatPK(hi)
}

// StatusKey extends BaseStatusKey with the side component.
func StatusKey(phase, layer, check entities.Identity, start, end float64, side entities.Side) string {
	return BaseStatusKey(phase, layer, check, start, end) + "|" + string(side)
}

func formatPK(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
