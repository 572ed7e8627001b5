// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"testing"

	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

func intPtr(v int) *int { return &v }

// mkUnit builds a weighted unit the way the pipeline would hand it to the
// aggregator.
func mkUnit(level int, mark, cp int, included bool, weight, wamWeight int) types.Unit {
	return types.Unit{
		Level:        level,
		Mark:         intPtr(mark),
		CreditPoints: intPtr(cp),
		Included:     included,
		Weight:       weight,
		WAMWeight:    wamWeight,
	}
}

func TestEIHWAMWeightedAverage(t *testing.T) {
	units := []types.Unit{
		mkUnit(2, 70, 6, true, 2, 2),
		mkUnit(4, 80, 6, true, 4, 4),
	}
	// (2*6*70 + 4*6*80) / (2*6 + 4*6) = (840 + 1920) / 36 = 76.67
	if got := EIHWAM(units); got != 76.67 {
		t.Errorf("EIHWAM = %v, want 76.67", got)
	}
}

func TestEIHWAMRounding(t *testing.T) {
	units := []types.Unit{
		mkUnit(2, 74, 6, true, 2, 2),
		mkUnit(2, 74, 6, true, 2, 2),
		mkUnit(2, 75, 6, true, 2, 2),
	}
	// Mean of 74, 74, 75 under equal weights = 74.333... -> 74.33.
	if got := EIHWAM(units); got != 74.33 {
		t.Errorf("EIHWAM = %v, want 74.33", got)
	}
}

func TestEIHWAMIgnoresExcludedUnits(t *testing.T) {
	base := []types.Unit{
		mkUnit(2, 70, 6, true, 2, 2),
		mkUnit(2, 10, 6, false, 2, 2),
	}
	got := EIHWAM(base)
	if got != 70.0 {
		t.Fatalf("EIHWAM = %v, want 70", got)
	}

	// Changing the excluded unit's mark must not move the average.
	*base[1].Mark = 99
	if again := EIHWAM(base); again != got {
		t.Errorf("EIHWAM moved from %v to %v on an excluded unit's mark", got, again)
	}
}

func TestEIHWAMSkipsZeroCreditAndMissingData(t *testing.T) {
	units := []types.Unit{
		mkUnit(2, 70, 6, true, 2, 2),
		mkUnit(2, 95, 0, true, 2, 2),                               // zero credit points
		{Level: 2, Included: true, Weight: 2, WAMWeight: 2},        // no mark, no credit points
		{Level: 2, Mark: intPtr(95), Included: true, Weight: 2, WAMWeight: 2}, // no credit points
	}
	if got := EIHWAM(units); got != 70.0 {
		t.Errorf("EIHWAM = %v, want 70", got)
	}
	if got := WAM(units); got != 70.0 {
		t.Errorf("WAM = %v, want 70", got)
	}
}

func TestEIHWAMEmptyPool(t *testing.T) {
	if got := EIHWAM(nil); got != 0.0 {
		t.Errorf("EIHWAM = %v, want 0.0", got)
	}
	// A pool whose only member carries weight 0 has a zero denominator.
	units := []types.Unit{mkUnit(1, 80, 6, true, 0, 1)}
	if got := EIHWAM(units); got != 0.0 {
		t.Errorf("EIHWAM = %v, want 0.0 for zero denominator", got)
	}
}

func TestWAMCountsExcludedLowLevelUnits(t *testing.T) {
	units := []types.Unit{
		// 1000-level unit, excluded from the EIHWAM pool but valid for WAM.
		{
			Level: 1, Mark: intPtr(80), CreditPoints: intPtr(6),
			Included: false, ExclusionReason: "1000-level unit (weight = 0)",
			Weight: 0, WAMWeight: 1,
		},
		mkUnit(2, 70, 6, true, 2, 2),
	}

	if got := EIHWAM(units); got != 70.0 {
		t.Errorf("EIHWAM = %v, want 70", got)
	}
	// (1*6*80 + 2*6*70) / (1*6 + 2*6) = 1320 / 18 = 73.33
	if got := WAM(units); got != 73.33 {
		t.Errorf("WAM = %v, want 73.33", got)
	}
}

func TestHonoursClassBoundaries(t *testing.T) {
	tests := []struct {
		eihwam float64
		want   string
	}{
		{80.00, types.ClassI},
		{75.00, types.ClassI},
		{74.99, types.ClassIIDiv1},
		{70.00, types.ClassIIDiv1},
		{69.99, types.ClassIIDiv2},
		{65.00, types.ClassIIDiv2},
		{64.99, types.ClassIII},
		{0.00, types.ClassIII},
	}

	for _, tt := range tests {
		if got := HonoursClass(tt.eihwam); got != tt.want {
			t.Errorf("HonoursClass(%v) = %q, want %q", tt.eihwam, got, tt.want)
		}
	}
}
