// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules applies the EIHWAM inclusion and exclusion rules to
// extracted units. The rules form an ordered decision list: the first
// rule whose predicate matches decides the unit and later rules are never
// consulted. The order is load-bearing: an AF grade, for example, zeroes
// the mark and stops evaluation before the 1000-level exclusion can fire,
// so an administratively failed 1000-level unit stays included.
package rules

import "github.com/joshunov/usyd-eihwam-calculator/pkg/types"

// Exclusion reasons reported on units the rules reject.
const (
	ReasonPassFailOnly = "Pass/Fail only unit"
	ReasonDiscontinued = "Discontinued unit"
	ReasonWithdrawn    = "Withdrawn unit"
	ReasonSatisfactory = "Satisfactory Requirements (PEP unit)"
	ReasonLowestLevel  = "1000-level unit (weight = 0)"
	ReasonMissingData  = "Missing credit points or mark"
	ReasonZeroCredit   = "0 credit point unit"
)

// Grade vocabularies consulted by the decision list.
var (
	passFailGrades  = map[string]bool{"P": true, "F": true, "CR": true, "NC": true}
	withdrawnGrades = map[string]bool{"W": true, "AW": true, "FW": true}
	adminFailGrades = map[string]bool{"AF": true, "DF": true}
)

// rule is one predicate-outcome pair in the decision list.
type rule struct {
	name    string
	matches func(types.Unit) bool
	apply   func(*types.Unit)
}

// exclude builds an outcome that marks the unit excluded with a reason.
func exclude(reason string) func(*types.Unit) {
	return func(u *types.Unit) {
		u.Included = false
		u.ExclusionReason = reason
	}
}

// decisionList holds the EIHWAM rules in evaluation order.
var decisionList = []rule{
	{
		name:    "pass/fail only",
		matches: func(u types.Unit) bool { return passFailGrades[u.Grade] && !u.HasMark() },
		apply:   exclude(ReasonPassFailOnly),
	},
	{
		name:    "discontinued",
		matches: func(u types.Unit) bool { return u.Grade == "DC" },
		apply:   exclude(ReasonDiscontinued),
	},
	{
		name:    "withdrawn",
		matches: func(u types.Unit) bool { return withdrawnGrades[u.Grade] },
		apply:   exclude(ReasonWithdrawn),
	},
	{
		name:    "satisfactory requirements",
		matches: func(u types.Unit) bool { return u.Grade == "SR" },
		apply:   exclude(ReasonSatisfactory),
	},
	{
		// Administrative fails stay in the average but count as 0.
		name:    "administrative fail",
		matches: func(u types.Unit) bool { return adminFailGrades[u.Grade] },
		apply: func(u *types.Unit) {
			zero := 0
			u.Mark = &zero
		},
	},
	{
		name:    "1000-level",
		matches: func(u types.Unit) bool { return u.Level == 1 },
		apply:   exclude(ReasonLowestLevel),
	},
	{
		name:    "missing data",
		matches: func(u types.Unit) bool { return !u.HasCreditPoints() || !u.HasMark() },
		apply:   exclude(ReasonMissingData),
	},
	{
		name:    "zero credit points",
		matches: func(u types.Unit) bool { return u.HasCreditPoints() && *u.CreditPoints == 0 },
		apply:   exclude(ReasonZeroCredit),
	},
}

// Apply evaluates the decision list over each unit and returns a new
// slice; the input is not modified. Units matching no rule stay included
// with no exclusion reason.
func Apply(units []types.Unit) []types.Unit {
	out := make([]types.Unit, len(units))
	copy(out, units)

	for i := range out {
		for _, r := range decisionList {
			if r.matches(out[i]) {
				r.apply(&out[i])
				break
			}
		}
	}

	return out
}
