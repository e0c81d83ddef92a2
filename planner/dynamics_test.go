// planner/dynamics_test.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	gomath "math"
	"testing"

	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/math"
)

func testState() av.AircraftState {
	return av.AircraftState{
		Position: math.MakePoint2LL(64.05, -22.58),
		Altitude: 5000,
		Heading:  0,
		IAS:      68,
	}
}

func TestExpandStateFar(t *testing.T) {
	cfg := DefaultConfig()
	state := testState()
	nmPerLongitude := math.NMPerLongitude(state.Position.Latitude())

	transitions := expandState(&cfg, state, 10, nmPerLongitude)
	if len(transitions) != 7 {
		t.Fatalf("expected 7 transitions for the wide turn set, got %d", len(transitions))
	}

	maxTurn := cfg.MaxTurnDeg(state.IAS)
	dist := cfg.StepDistanceNM(state.IAS)
	straightLoss := dist * math.NauticalMilesToFeet / cfg.GlideRatio

	var sawStraight bool
	for _, tr := range transitions {
		if math.Abs(tr.TurnDeg) > maxTurn+1e-3 {
			t.Errorf("turn %f exceeds maximum %f", tr.TurnDeg, maxTurn)
		}
		if gomath.Abs(float64(tr.DistanceNM-dist)) > 1e-4 {
			t.Errorf("expected step distance %f, got %f", dist, tr.DistanceNM)
		}
		if tr.To.Altitude >= state.Altitude {
			t.Errorf("altitude did not decrease: %f -> %f", state.Altitude, tr.To.Altitude)
		}
		if tr.To.IAS != state.IAS {
			t.Errorf("airspeed changed during expansion: %f -> %f", state.IAS, tr.To.IAS)
		}

		// Turning steps lose more altitude than straight ones.
		if tr.TurnDeg == 0 {
			sawStraight = true
			if gomath.Abs(float64(tr.AltitudeLostFt-straightLoss)) > 0.1 {
				t.Errorf("straight loss: expected %f, got %f", straightLoss, tr.AltitudeLostFt)
			}
		} else if tr.AltitudeLostFt <= straightLoss {
			t.Errorf("turn %f: altitude loss %f not greater than straight loss %f",
				tr.TurnDeg, tr.AltitudeLostFt, straightLoss)
		}

		// The projected position is one step away along roughly the average
		// of the old and new headings.
		if d := math.NMDistance2LL(state.Position, tr.To.Position); gomath.Abs(float64(d-dist)) > 0.01 {
			t.Errorf("turn %f: moved %f nm, expected %f", tr.TurnDeg, d, dist)
		}
		wantBearing := math.NormalizeHeading(state.Heading + tr.TurnDeg/2)
		bearing := math.Heading2LL(state.Position, tr.To.Position, nmPerLongitude)
		if math.HeadingDifference(bearing, wantBearing) > 1.5 {
			t.Errorf("turn %f: bearing %f, expected ~%f", tr.TurnDeg, bearing, wantBearing)
		}
	}
	if !sawStraight {
		t.Errorf("no straight transition in the candidate set")
	}
}

func TestExpandStateNear(t *testing.T) {
	cfg := DefaultConfig()
	state := testState()
	nmPerLongitude := math.NMPerLongitude(state.Position.Latitude())

	transitions := expandState(&cfg, state, 3, nmPerLongitude)
	if len(transitions) != 5 {
		t.Fatalf("expected 5 transitions for the narrow turn set, got %d", len(transitions))
	}

	// The narrow set halves the maximum turn for precision near the runway.
	halfMax := cfg.MaxTurnDeg(state.IAS) / 2
	for _, tr := range transitions {
		if math.Abs(tr.TurnDeg) > halfMax+1e-3 {
			t.Errorf("near-goal turn %f exceeds %f", tr.TurnDeg, halfMax)
		}
	}
}

func TestExpandStateAltitudeFloor(t *testing.T) {
	cfg := DefaultConfig()
	state := testState()
	state.Altitude = -400 // any step glides through the -500 ft floor

	if transitions := expandState(&cfg, state, 10, math.NMPerLongitude(64)); len(transitions) != 0 {
		t.Errorf("expected no transitions below the altitude floor, got %d", len(transitions))
	}
}

func TestTurnRadius(t *testing.T) {
	cfg := DefaultConfig()

	// 68 kt at 30 degrees of bank: R = v^2/(g tan(phi)) ~ 709 ft ~ 0.117 nm.
	r := cfg.TurnRadiusNM(68)
	if gomath.Abs(float64(r-0.117)) > 0.005 {
		t.Errorf("expected ~0.117 nm turn radius, got %f", r)
	}

	// Faster means wider.
	if cfg.TurnRadiusNM(100) <= r {
		t.Errorf("turn radius should grow with airspeed")
	}

	// At best-glide speed the 30 s step arc far exceeds the cap.
	if m := cfg.MaxTurnDeg(68); m != cfg.MaxTurnPerStepDeg {
		t.Errorf("expected max turn capped at %f, got %f", cfg.MaxTurnPerStepDeg, m)
	}
}
