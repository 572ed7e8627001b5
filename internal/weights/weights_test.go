// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weights

import (
	"testing"

	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

func TestAssignSchedules(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		isThesis   bool
		wantWeight int
		wantWAM    int
	}{
		{name: "level 1 carries no EIHWAM weight", level: 1, wantWeight: 0, wantWAM: 1},
		{name: "level 2", level: 2, wantWeight: 2, wantWAM: 2},
		{name: "level 3", level: 3, wantWeight: 3, wantWAM: 3},
		{name: "level 4", level: 4, wantWeight: 4, wantWAM: 4},
		{name: "level above 4 capped", level: 6, wantWeight: 4, wantWAM: 4},
		{name: "unknown level degrades", level: 0, wantWeight: 0, wantWAM: 1},
		{name: "thesis doubles both", level: 4, isThesis: true, wantWeight: 8, wantWAM: 8},
		{name: "thesis doubling at level 3", level: 3, isThesis: true, wantWeight: 6, wantWAM: 6},
		{name: "level 1 thesis keeps zero EIHWAM weight", level: 1, isThesis: true, wantWeight: 0, wantWAM: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Assign([]types.Unit{{Level: tt.level, IsThesis: tt.isThesis}})
			if len(out) != 1 {
				t.Fatalf("got %d units, want 1", len(out))
			}
			if out[0].Weight != tt.wantWeight {
				t.Errorf("weight = %d, want %d", out[0].Weight, tt.wantWeight)
			}
			if out[0].WAMWeight != tt.wantWAM {
				t.Errorf("wam weight = %d, want %d", out[0].WAMWeight, tt.wantWAM)
			}
		})
	}
}

func TestAssignCoversExcludedUnits(t *testing.T) {
	// Weights are computed universally so consumers can inspect them even
	// on excluded units.
	out := Assign([]types.Unit{{Level: 3, Included: false, ExclusionReason: "Withdrawn unit"}})
	if out[0].Weight != 3 || out[0].WAMWeight != 3 {
		t.Errorf("weights = %d/%d, want 3/3", out[0].Weight, out[0].WAMWeight)
	}
}

func TestAssignDoesNotMutateInput(t *testing.T) {
	in := []types.Unit{{Level: 2}}
	Assign(in)
	if in[0].Weight != 0 || in[0].WAMWeight != 0 {
		t.Errorf("input was mutated: %d/%d", in[0].Weight, in[0].WAMWeight)
	}
}
