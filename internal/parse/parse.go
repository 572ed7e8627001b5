// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse extracts unit records from raw transcript text. Two
// strategies are provided: a strict positional match for the standard
// Sydney Student layout, and a permissive per-token fallback for
// transcripts whose layout has drifted. Each strategy is a pure function
// over the text; the caller runs the strict one first and consults the
// fallback only when it finds nothing at all.
package parse

import (
	"strings"

	"github.com/joshunov/usyd-eihwam-calculator/internal/classify"
	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

// practicumPrefix marks professional-engagement (PEP) units, which report
// spurious credit-point values on some transcripts. Their credit points
// are forced to 0 regardless of what was matched.
const practicumPrefix = "ENGP"

// newUnit builds a Unit with its code-derived fields set. Level and
// thesis status never change after this point.
func newUnit(code string, thesis classify.ThesisSet) types.Unit {
	return types.Unit{
		Code:     code,
		Level:    classify.Level(code),
		IsThesis: thesis.Contains(code),
		Included: true,
	}
}

func intPtr(v int) *int { return &v }

func isPracticum(code string) bool {
	return strings.HasPrefix(code, practicumPrefix)
}
