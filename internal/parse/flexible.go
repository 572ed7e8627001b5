// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/joshunov/usyd-eihwam-calculator/internal/classify"
	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

var (
	// codeRe matches a standalone unit-code token.
	codeRe = regexp.MustCompile(`\b([A-Z]{4}\d{4})\b`)

	// creditRe matches the legal USYD credit-point values. The last match
	// on a line wins, since the value usually trails the line.
	creditRe = regexp.MustCompile(`\b(6|12|3|0)\b`)

	// markRe matches the first plausible mark token. A stray small
	// integer earlier in the line can win over the real mark; that
	// looseness is intentional and kept as-is.
	markRe = regexp.MustCompile(`\b(\d{1,2}\.\d|\d{1,2}|100)\b`)

	// gradeRes are tried in order: short codes first, then descriptive
	// words. The first vocabulary matching anywhere in the line wins.
	gradeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(HD|D|C|P|F|AF|DF|DC|CR|NC|W|AW|FW|SR|DI)\b`),
		regexp.MustCompile(`(?i)\b(High Distinction|Distinction|Credit|Pass|Fail)\b`),
		regexp.MustCompile(`(?i)\b(HD|D|C|P|F)\b`),
	}

	// leadingDashRe strips a leading dash or en-dash from a title.
	leadingDashRe = regexp.MustCompile(`^\s*[-–]\s*`)
)

// ExtractFlexible recovers units from transcripts the strict pattern does
// not recognize. Every unit-code token on a line is treated
// independently: the rest of the line is searched for a credit-point
// value, a mark in [0,100], and a grade, and the unit is kept only when a
// mark or grade was found. Precision is traded for recall; credit points
// may stay unknown.
func ExtractFlexible(text string, thesis classify.ThesisSet) []types.Unit {
	var units []types.Unit

	for _, line := range strings.Split(text, "\n") {
		for _, loc := range codeRe.FindAllStringSubmatchIndex(line, -1) {
			code := line[loc[2]:loc[3]]
			u := newUnit(code, thesis)

			if cps := creditRe.FindAllString(line, -1); len(cps) > 0 {
				cp, _ := strconv.Atoi(cps[len(cps)-1])
				u.CreditPoints = intPtr(cp)
			}
			if isPracticum(code) {
				u.CreditPoints = intPtr(0)
			}

			markLoc := markRe.FindStringSubmatchIndex(line)
			if markLoc != nil {
				v, _ := strconv.ParseFloat(line[markLoc[2]:markLoc[3]], 64)
				if v >= 0 && v <= 100 {
					u.Mark = intPtr(int(v))
				}
			}

			var gradeLoc []int
			for _, re := range gradeRes {
				if gl := re.FindStringSubmatchIndex(line); gl != nil {
					gradeLoc = gl
					u.Grade = strings.ToUpper(line[gl[2]:gl[3]])
					break
				}
			}

			u.Title = flexibleTitle(line, loc[1], markLoc, gradeLoc)

			if u.Mark != nil || u.Grade != "" {
				units = append(units, u)
			}
		}
	}

	return units
}

// flexibleTitle takes the text between the end of the code token and the
// start of whichever of the grade or mark matches was found, preferring
// the grade. A leading dash is stripped.
func flexibleTitle(line string, codeEnd int, markLoc, gradeLoc []int) string {
	end := len(line)
	switch {
	case gradeLoc != nil:
		end = gradeLoc[0]
	case markLoc != nil:
		end = markLoc[0]
	}
	// The grade or mark may sit before the code on cluttered lines.
	if end < codeEnd {
		end = codeEnd
	}

	title := strings.TrimSpace(line[codeEnd:end])
	return leadingDashRe.ReplaceAllString(title, "")
}
