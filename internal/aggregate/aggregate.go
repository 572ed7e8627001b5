// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate computes the two weighted averages and the honours
// classification from ruled, weighted units. Both averages are of the
// form sum(weight * credit points * mark) / sum(weight * credit points);
// they differ in which units qualify and which weight field is used.
package aggregate

import (
	"math"

	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

// EIHWAM computes the Engineering Integrated Honours WAM over the units
// that survived the rules: included, with a known mark and known positive
// credit points. Returns 0.0 when no unit qualifies or the weighted
// credit sum is zero.
func EIHWAM(units []types.Unit) float64 {
	var num, den float64
	for _, u := range units {
		if !u.Included || !u.HasMark() || !u.HasCreditPoints() || *u.CreditPoints <= 0 {
			continue
		}
		num += float64(u.Weight) * float64(*u.CreditPoints) * float64(*u.Mark)
		den += float64(u.Weight) * float64(*u.CreditPoints)
	}
	if den <= 0 {
		return 0.0
	}
	return round2(num / den)
}

// WAM computes the all-units weighted average. Inclusion flags are
// ignored: a 1000-level unit with a valid mark counts here even though
// the EIHWAM pool rejects it. Only a known mark and positive credit
// points gate membership.
func WAM(units []types.Unit) float64 {
	var num, den float64
	for _, u := range units {
		if !u.HasMark() || !u.HasCreditPoints() || *u.CreditPoints <= 0 {
			continue
		}
		num += float64(u.WAMWeight) * float64(*u.CreditPoints) * float64(*u.Mark)
		den += float64(u.WAMWeight) * float64(*u.CreditPoints)
	}
	if den <= 0 {
		return 0.0
	}
	return round2(num / den)
}

// HonoursClass maps an EIHWAM to its honours band. Band lower bounds are
// inclusive: exactly 75.00 is Class I.
func HonoursClass(eihwam float64) string {
	switch {
	case eihwam >= 75:
		return types.ClassI
	case eihwam >= 70:
		return types.ClassIIDiv1
	case eihwam >= 65:
		return types.ClassIIDiv2
	default:
		return types.ClassIII
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
