// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package weights assigns the level-based weight schedules behind the two
// averages. Weights are computed for every unit, included or not, so
// downstream consumers can always inspect them.
package weights

import "github.com/joshunov/usyd-eihwam-calculator/pkg/types"

// eihwamWeight maps a unit level to its EIHWAM weight. 1000-level units
// carry no weight; levels above 4 are capped at 4. Unrecognized levels
// degrade to 0.
func eihwamWeight(level int) int {
	switch {
	case level == 2:
		return 2
	case level == 3:
		return 3
	case level >= 4:
		return 4
	default:
		return 0
	}
}

// wamWeight maps a unit level to its plain-WAM weight. Unlike the EIHWAM
// schedule, 1000-level units count with weight 1, as do unrecognized levels.
func wamWeight(level int) int {
	switch {
	case level == 2:
		return 2
	case level == 3:
		return 3
	case level >= 4:
		return 4
	default:
		return 1
	}
}

// Assign computes both weight fields for every unit and returns a new
// slice; the input is not modified. Thesis units carry double weight in
// both schedules.
func Assign(units []types.Unit) []types.Unit {
	out := make([]types.Unit, len(units))
	copy(out, units)

	for i := range out {
		w := eihwamWeight(out[i].Level)
		ww := wamWeight(out[i].Level)
		if out[i].IsThesis {
			w *= 2
			ww *= 2
		}
		out[i].Weight = w
		out[i].WAMWeight = ww
	}

	return out
}
