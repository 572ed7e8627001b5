// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

func intPtr(v int) *int { return &v }

func sampleResult() types.Result {
	return types.Result{
		Units: []types.Unit{
			{
				Code: "ENGG2112", Title: "Software Construction",
				CreditPoints: intPtr(6), Mark: intPtr(75), Grade: "D",
				Level: 2, Included: true, Weight: 2,
			},
			{
				Code: "ENGG1810", Title: "Introduction to Engineering Computing",
				CreditPoints: intPtr(6), Mark: intPtr(74), Grade: "CR",
				Level: 1, Included: false, ExclusionReason: "1000-level unit (weight = 0)",
			},
		},
		EIHWAM:        75.0,
		WAM:           74.5,
		HonoursClass:  types.ClassI,
		TotalUnits:    2,
		IncludedUnits: 1,
		ExcludedUnits: 1,
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, sampleResult(), Options{})

	out := buf.String()
	for _, want := range []string{
		"EIHWAM: 75.00",
		"WAM: 74.50",
		types.ClassI,
		"2 total, 1 included, 1 excluded",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteHidesExcludedByDefault(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, sampleResult(), Options{})

	out := buf.String()
	if strings.Contains(out, "ENGG1810") {
		t.Error("excluded unit should be hidden without ShowExcluded")
	}
	if !strings.Contains(out, "ENGG2112") {
		t.Error("included unit missing from table")
	}
	if !strings.Contains(out, "--show-excluded") {
		t.Error("hidden-units hint missing")
	}
}

func TestWriteShowExcluded(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, sampleResult(), Options{ShowExcluded: true})

	out := buf.String()
	if !strings.Contains(out, "ENGG1810") {
		t.Error("excluded unit missing with ShowExcluded")
	}
	if !strings.Contains(out, "1000-level unit") {
		t.Error("exclusion reason missing from table")
	}
	if strings.Contains(out, "--show-excluded") {
		t.Error("hint should not appear when excluded units are shown")
	}
}

func TestWriteIncludedOnlyWins(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, sampleResult(), Options{ShowExcluded: true, IncludedOnly: true})

	out := buf.String()
	if strings.Contains(out, "ENGG1810") {
		t.Error("IncludedOnly should override ShowExcluded")
	}
	if !strings.Contains(out, "ENGG2112") {
		t.Error("included unit missing from table")
	}
}

func TestUnitRowMissingValues(t *testing.T) {
	row := unitRow(types.Unit{Code: "MECH9999", Level: 9})
	if row[3] != "N/A" || row[4] != "N/A" {
		t.Errorf("nil credit points and mark should render as N/A, got %q and %q", row[3], row[4])
	}
	if row[9] != "N/A" {
		t.Errorf("empty exclusion reason should render as N/A, got %q", row[9])
	}
	if row[2] != "9000" {
		t.Errorf("level column = %q, want 9000", row[2])
	}
}
