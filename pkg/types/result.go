// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Honours classes awarded from the EIHWAM bands. Band lower bounds are
// inclusive: an EIHWAM of exactly 75.00 is Class I.
const (
	ClassI      = "Class I"
	ClassIIDiv1 = "Class II Division 1"
	ClassIIDiv2 = "Class II Division 2"
	ClassIII    = "Class III"
)

// Result is the outcome of one transcript calculation: every extracted
// unit in transcript order plus the two averages, the honours class, and
// the inclusion counts. Immutable once returned; the display layer
// renders it and contributes nothing back.
type Result struct {
	// Units lists the extracted units enriched with rule outcomes and weights.
	Units []Unit `json:"units" yaml:"units"`

	// EIHWAM is the Engineering Integrated Honours Weighted Average Mark,
	// rounded to two decimal places. 0.0 when no unit qualified.
	EIHWAM float64 `json:"eihwam" yaml:"eihwam"`

	// WAM is the all-units weighted average mark, rounded to two decimal
	// places. Unlike the EIHWAM it counts 1000-level units.
	WAM float64 `json:"wam" yaml:"wam"`

	// HonoursClass is the honours band for the EIHWAM.
	HonoursClass string `json:"honours_class" yaml:"honours_class"`

	TotalUnits    int `json:"total_units" yaml:"total_units"`
	IncludedUnits int `json:"included_units" yaml:"included_units"`
	ExcludedUnits int `json:"excluded_units" yaml:"excluded_units"`
}
