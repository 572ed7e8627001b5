// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes extraction, rules, weighting, and aggregation
// into a single transcript calculation. The flow is strictly forward: raw
// text to units, units to ruled units, ruled units to weighted units,
// weighted units to a result. Every stage is a pure function, so runs are
// independent and repeatable: the same text always yields the same result.
package pipeline

import (
	"github.com/joshunov/usyd-eihwam-calculator/internal/aggregate"
	"github.com/joshunov/usyd-eihwam-calculator/internal/classify"
	"github.com/joshunov/usyd-eihwam-calculator/internal/parse"
	"github.com/joshunov/usyd-eihwam-calculator/internal/rules"
	"github.com/joshunov/usyd-eihwam-calculator/internal/weights"
	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

// Run calculates the EIHWAM result for one block of transcript text. The
// strict extractor runs first; the flexible extractor is consulted only
// when the strict pass finds nothing at all. Zero extracted units is not
// an error: the result simply carries an empty unit list, zero averages,
// and Class III.
func Run(text string, thesis classify.ThesisSet) types.Result {
	units := parse.ExtractStrict(text, thesis)
	if len(units) == 0 {
		units = parse.ExtractFlexible(text, thesis)
	}

	units = rules.Apply(units)
	units = weights.Assign(units)

	eihwam := aggregate.EIHWAM(units)

	result := types.Result{
		Units:        units,
		EIHWAM:       eihwam,
		WAM:          aggregate.WAM(units),
		HonoursClass: aggregate.HonoursClass(eihwam),
		TotalUnits:   len(units),
	}
	for _, u := range units {
		if u.Included {
			result.IncludedUnits++
		} else {
			result.ExcludedUnits++
		}
	}

	return result
}
