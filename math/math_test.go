// math/math_test.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
	"testing"
)

func TestNMDistance2LL(t *testing.T) {
	// One degree of latitude is 60 nm, give or take the earth radius model.
	a := MakePoint2LL(0, 0)
	b := MakePoint2LL(1, 0)
	if d := NMDistance2LL(a, b); gomath.Abs(float64(d-60)) > 0.5 {
		t.Errorf("expected ~60 nm for 1 degree latitude, got %f", d)
	}

	// Distance is symmetric
	if d1, d2 := NMDistance2LL(a, b), NMDistance2LL(b, a); d1 != d2 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}

	if d := NMDistance2LL(a, a); d != 0 {
		t.Errorf("expected 0 distance to self, got %f", d)
	}
}

func TestNMPerLongitude(t *testing.T) {
	if nm := NMPerLongitude(0); gomath.Abs(float64(nm-60)) > 0.01 {
		t.Errorf("expected 60 nm/degree at equator, got %f", nm)
	}
	if nm := NMPerLongitude(60); gomath.Abs(float64(nm-30)) > 0.01 {
		t.Errorf("expected 30 nm/degree at 60N, got %f", nm)
	}
}

func TestHeading2LL(t *testing.T) {
	p := MakePoint2LL(64, -22.6)
	north := MakePoint2LL(64.1, -22.6)
	east := MakePoint2LL(64, -22.5)

	if h := Heading2LL(p, north, NMPerLongitude(64)); gomath.Abs(float64(h)) > 0.5 && gomath.Abs(float64(h-360)) > 0.5 {
		t.Errorf("expected ~0 heading due north, got %f", h)
	}
	if h := Heading2LL(p, east, NMPerLongitude(64)); gomath.Abs(float64(h-90)) > 0.5 {
		t.Errorf("expected ~90 heading due east, got %f", h)
	}
}

func TestOffset2LL(t *testing.T) {
	p := MakePoint2LL(64, -22.6)
	nmPerLongitude := NMPerLongitude(64)

	// Project and measure the round trip with the haversine distance.
	for _, hdg := range []float32{0, 45, 90, 135, 225, 300} {
		q := Offset2LL(p, hdg, 5, nmPerLongitude)
		if d := NMDistance2LL(p, q); gomath.Abs(float64(d-5)) > 0.05 {
			t.Errorf("heading %.0f: expected 5 nm offset, got %f", hdg, d)
		}
		if h := Heading2LL(p, q, nmPerLongitude); HeadingDifference(h, hdg) > 1 {
			t.Errorf("heading %.0f: projected point bears %f", hdg, h)
		}
	}
}

func TestNormalizeHeading(t *testing.T) {
	cases := [][2]float32{{-10, 350}, {370, 10}, {720, 0}, {180, 180}, {0, 0}}
	for _, c := range cases {
		if h := NormalizeHeading(c[0]); gomath.Abs(float64(h-c[1])) > 1e-3 {
			t.Errorf("NormalizeHeading(%f): expected %f, got %f", c[0], c[1], h)
		}
	}
}

func TestHeadingDifference(t *testing.T) {
	cases := [][3]float32{{350, 10, 20}, {0, 180, 180}, {90, 90, 0}, {10, 350, 20}, {359, 1, 2}}
	for _, c := range cases {
		if d := HeadingDifference(c[0], c[1]); gomath.Abs(float64(d-c[2])) > 1e-3 {
			t.Errorf("HeadingDifference(%f, %f): expected %f, got %f", c[0], c[1], c[2], d)
		}
	}
}

func TestHeadingSignedTurn(t *testing.T) {
	if turn := HeadingSignedTurn(0, 10); gomath.Abs(float64(turn-10)) > 1e-3 {
		t.Errorf("expected +10 turn, got %f", turn)
	}
	if turn := HeadingSignedTurn(0, 350); gomath.Abs(float64(turn+10)) > 1e-3 {
		t.Errorf("expected -10 turn, got %f", turn)
	}
	if turn := HeadingSignedTurn(270, 90); gomath.Abs(gomath.Abs(float64(turn))-180) > 1e-3 {
		t.Errorf("expected 180 turn magnitude, got %f", turn)
	}
}

func TestLL2NMRoundTrip(t *testing.T) {
	p := MakePoint2LL(64.05, -22.58)
	nmPerLongitude := NMPerLongitude(64.05)
	q := NM2LL(LL2NM(p, nmPerLongitude), nmPerLongitude)
	if gomath.Abs(float64(p[0]-q[0])) > 1e-4 || gomath.Abs(float64(p[1]-q[1])) > 1e-4 {
		t.Errorf("round trip mismatch: %v vs %v", p, q)
	}
}
