package obst

import (
	"math"
	"strconv"
)

// InfinityGlyph is the display form of the +Inf working sentinel that the
// engine writes into cost[i][j] before evaluating candidates.
const InfinityGlyph = "∞"

// FormatCost renders a cost value for display: the positive-infinity
// sentinel becomes InfinityGlyph, every other value is rendered verbatim
// in the shortest representation that round-trips. Pure, no side effects.
func FormatCost(v float64) string {
	if math.IsInf(v, 1) {
		return InfinityGlyph
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
