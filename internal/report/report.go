// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a calculation result for the terminal: a summary
// block followed by a per-unit table. It consumes the result read-only
// and contributes nothing back to the calculation.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

// Options control which units appear in the unit table.
type Options struct {
	// ShowExcluded adds excluded units, with their reasons, to the table.
	ShowExcluded bool

	// IncludedOnly hides everything but units counted in the EIHWAM.
	// Takes precedence over ShowExcluded.
	IncludedOnly bool
}

// Write renders the result to w.
func Write(w io.Writer, result types.Result, opts Options) {
	writeSummary(w, result)
	writeTable(w, result, opts)

	if result.ExcludedUnits > 0 && !opts.ShowExcluded && !opts.IncludedOnly {
		fmt.Fprintf(w, "\n%d excluded unit(s) hidden; rerun with --show-excluded to see the reasons.\n",
			result.ExcludedUnits)
	}
}

func writeSummary(w io.Writer, result types.Result) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "\nEIHWAM: %.2f   Honours Class: %s\n", result.EIHWAM, result.HonoursClass)
	fmt.Fprintf(w, "WAM: %.2f\n", result.WAM)
	fmt.Fprintf(w, "Units: %d total, %d included, %d excluded\n\n",
		result.TotalUnits, result.IncludedUnits, result.ExcludedUnits)
}

func writeTable(w io.Writer, result types.Result, opts Options) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Unit Code", "Title", "Level", "Credit Points", "Mark", "Grade",
		"Weight", "Thesis", "Included", "Exclusion Reason",
	})

	for _, u := range result.Units {
		if !u.Included && !opts.ShowExcluded {
			continue
		}
		if opts.IncludedOnly && !u.Included {
			continue
		}
		table.Append(unitRow(u))
	}

	table.Render()
}

func unitRow(u types.Unit) []string {
	return []string{
		u.Code,
		u.Title,
		fmt.Sprintf("%d000", u.Level),
		optInt(u.CreditPoints),
		optInt(u.Mark),
		u.Grade,
		strconv.Itoa(u.Weight),
		yesNo(u.IsThesis),
		yesNo(u.Included),
		orNA(u.ExclusionReason),
	}
}

func optInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
