// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Unit is one academic unit of study parsed from a transcript line.
// A Unit is created by the extractor, enriched by the rules and weighting
// stages (each returning a new value), and read by the aggregator. It
// lives for one calculation only.
type Unit struct {
	// Code is the unit identifier: 4 letters followed by 4 digits
	// (e.g. "ENGG1810"). Tokens not matching this shape never become Units.
	Code string `json:"code" yaml:"code"`

	// Title is the unit name as printed on the transcript. May be empty
	// when the fallback extractor cannot isolate it.
	Title string `json:"title" yaml:"title"`

	// CreditPoints is the credit value of the unit. Nil when no value
	// could be extracted from the line.
	CreditPoints *int `json:"credit_points" yaml:"credit_points"`

	// Mark is the numeric result in [0,100]. Nil for grade-only units.
	Mark *int `json:"mark" yaml:"mark"`

	// Grade is the short grade code ("HD", "CR", "AF", ...). Empty when absent.
	Grade string `json:"grade" yaml:"grade"`

	// Level is derived from the first digit of the code's numeric suffix
	// (ENGG1810 is a level-1 unit). 0 when the code shape is unrecognized.
	Level int `json:"level" yaml:"level"`

	// IsThesis marks codes listed in the thesis-unit set. Thesis units
	// carry double weight in both averages.
	IsThesis bool `json:"is_thesis" yaml:"is_thesis"`

	// Year and Session come from the strict transcript layout (e.g.
	// "2021", "S1C"). Empty for fallback-extracted units.
	Year    string `json:"year,omitempty" yaml:"year,omitempty"`
	Session string `json:"session,omitempty" yaml:"session,omitempty"`

	// Included reports whether the unit counts toward the EIHWAM. Set by
	// the rules stage, exactly once; false iff ExclusionReason is set.
	Included bool `json:"included_in_eihwam" yaml:"included_in_eihwam"`

	// ExclusionReason explains why the rules rejected the unit. Empty for
	// included units.
	ExclusionReason string `json:"exclusion_reason,omitempty" yaml:"exclusion_reason,omitempty"`

	// Weight is the EIHWAM weight (level-based; 1000-level units carry 0).
	Weight int `json:"weight" yaml:"weight"`

	// WAMWeight is the weight used for the plain WAM (1000-level units carry 1).
	WAMWeight int `json:"wam_weight" yaml:"wam_weight"`
}

// HasMark reports whether a mark was extracted for the unit.
func (u Unit) HasMark() bool { return u.Mark != nil }

// HasCreditPoints reports whether a credit-point value was extracted.
func (u Unit) HasCreditPoints() bool { return u.CreditPoints != nil }
