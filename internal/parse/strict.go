// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/joshunov/usyd-eihwam-calculator/internal/classify"
	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

// strictLineRe matches one result line in the standard transcript layout:
// year, session, unit code, title, mark, grade, credit points.
// Example: 2021 S1C ENGG1810 Introduction to Engineering Computing 74.0 CR 6
var strictLineRe = regexp.MustCompile(
	`(\d{4})\s+([A-Z0-9]+)\s+([A-Z]{4}\d{4})\s+(.*?)\s+(\d+\.?\d*)\s+([A-Z]+)\s+(\d+)`,
)

// ExtractStrict scans text line by line with the strict positional
// pattern. Lines that do not match the full shape are skipped; there is
// no partial extraction under this strategy.
func ExtractStrict(text string, thesis classify.ThesisSet) []types.Unit {
	var units []types.Unit

	for _, line := range strings.Split(text, "\n") {
		m := strictLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		u := newUnit(m[3], thesis)
		u.Year = m[1]
		u.Session = m[2]
		u.Title = strings.TrimSpace(m[4])
		u.Grade = m[6]

		// The pattern guarantees both numeric fields parse.
		mark, _ := strconv.ParseFloat(m[5], 64)
		u.Mark = intPtr(int(mark))
		cp, _ := strconv.Atoi(m[7])
		u.CreditPoints = intPtr(cp)

		if isPracticum(u.Code) {
			u.CreditPoints = intPtr(0)
		}

		units = append(units, u)
	}

	return units
}
