// aviation/aviation_test.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	gomath "math"
	"testing"

	"github.com/gliderops/glidepath/math"
)

func TestWaypointArrayTotalDistance(t *testing.T) {
	wps := WaypointArray{
		{Position: math.MakePoint2LL(64, -22.6)},
		{Position: math.MakePoint2LL(64.1, -22.6)}, // ~6 nm north
		{Position: math.MakePoint2LL(64.2, -22.6)}, // ~6 nm further
	}

	d := wps.TotalDistance()
	expected := math.NMDistance2LL(wps[0].Position, wps[1].Position) +
		math.NMDistance2LL(wps[1].Position, wps[2].Position)
	if gomath.Abs(float64(d-expected)) > 1e-3 {
		t.Errorf("expected total %f, got %f", expected, d)
	}

	if d := (WaypointArray{}).TotalDistance(); d != 0 {
		t.Errorf("expected 0 for empty array, got %f", d)
	}
	if d := (WaypointArray{wps[0]}).TotalDistance(); d != 0 {
		t.Errorf("expected 0 for single waypoint, got %f", d)
	}
}

func TestStateKeyQuantization(t *testing.T) {
	base := AircraftState{
		Position: math.MakePoint2LL(64.05, -22.58),
		Altitude: 5000,
		Heading:  225,
		IAS:      68,
	}

	// States within the bin resolutions must collapse to the same key.
	near := base
	near.Position[0] += 0.0005
	near.Altitude += 10
	near.Heading += 1
	if base.Key(0.002, 50, 5) != near.Key(0.002, 50, 5) {
		t.Errorf("nearby states should share a key: %+v vs %+v", base.Key(0.002, 50, 5), near.Key(0.002, 50, 5))
	}

	// States well beyond a bin must not.
	far := base
	far.Position[0] += 0.01
	if base.Key(0.002, 50, 5) == far.Key(0.002, 50, 5) {
		t.Errorf("distant states should not share a key")
	}

	higher := base
	higher.Altitude += 500
	if base.Key(0.002, 50, 5) == higher.Key(0.002, 50, 5) {
		t.Errorf("states at different altitudes should not share a key")
	}

	// Heading quantization wraps: 359.9 and 0.1 are in adjacent-or-same bins,
	// but 0 and 180 never collide.
	turned := base
	turned.Heading = math.OppositeHeading(base.Heading)
	if base.Key(0.002, 50, 5) == turned.Key(0.002, 50, 5) {
		t.Errorf("opposite headings should not share a key")
	}
}
