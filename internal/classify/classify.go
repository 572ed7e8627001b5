// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify derives unit metadata from unit identifiers: the level
// encoded in the code's numeric suffix and membership in the thesis-unit set.
package classify

import "regexp"

// levelRe captures the first digit of the numeric suffix in a unit code
// like ENGG1810 or MATH2021.
var levelRe = regexp.MustCompile(`[A-Z]{4}(\d)\d{3}$`)

// Level returns the unit level encoded in the code: ENGG1810 is level 1,
// AMME3700 is level 3. Malformed codes degrade to level 0 rather than
// erroring; one unrecognizable identifier must never abort a whole run.
func Level(code string) int {
	m := levelRe.FindStringSubmatch(code)
	if m == nil {
		return 0
	}
	return int(m[1][0] - '0')
}
