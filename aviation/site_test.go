// aviation/site_test.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/gliderops/glidepath/math"
)

func TestRunwayApproachOptions(t *testing.T) {
	site := &LandingSite{
		ID:       "rwy-test",
		Location: math.MakePoint2LL(64, -22.6),
		Runway:   &Runway{OrientationDeg: 90, LengthM: 1852, WidthM: 30}, // 1 nm long, east-west
	}

	options, err := site.ApproachOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 reciprocal options, got %d", len(options))
	}

	if gomath.Abs(float64(options[0].HeadingDeg-90)) > 0.1 {
		t.Errorf("first option heading: expected 90, got %f", options[0].HeadingDeg)
	}
	if gomath.Abs(float64(options[1].HeadingDeg-270)) > 0.1 {
		t.Errorf("second option heading: expected 270, got %f", options[1].HeadingDeg)
	}

	// Landing east (heading 90), the threshold is the west end.
	if options[0].Threshold.Longitude() >= site.Location.Longitude() {
		t.Errorf("east-landing threshold should be west of the center")
	}
	if options[1].Threshold.Longitude() <= site.Location.Longitude() {
		t.Errorf("west-landing threshold should be east of the center")
	}

	// Both thresholds are half the runway length from the center.
	for i, opt := range options {
		d := math.NMDistance2LL(site.Location, opt.Threshold)
		if gomath.Abs(float64(d-0.5)) > 0.02 {
			t.Errorf("option %d: threshold %f nm from center, expected 0.5", i, d)
		}
	}
}

func TestPolygonApproachOptions(t *testing.T) {
	// A thin field, long axis running roughly east-west.
	site := &LandingSite{
		ID: "field-test",
		Polygon: []math.Point2LL{
			math.MakePoint2LL(64.000, -22.60),
			math.MakePoint2LL(64.000, -22.55),
			math.MakePoint2LL(64.003, -22.55),
			math.MakePoint2LL(64.003, -22.60),
		},
	}

	options, err := site.ApproachOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}

	// The two options run the same axis in opposite directions.
	if d := math.HeadingDifference(options[0].HeadingDeg, math.OppositeHeading(options[1].HeadingDeg)); d > 0.5 {
		t.Errorf("options are not reciprocal: %f and %f", options[0].HeadingDeg, options[1].HeadingDeg)
	}

	// The axis endpoints are the two thresholds, and the axis is at least as
	// long as the east-west extent of the field.
	axis := math.NMDistance2LL(options[0].Threshold, options[1].Threshold)
	width := math.NMDistance2LL(site.Polygon[0], site.Polygon[1])
	if axis < width {
		t.Errorf("axis length %f shorter than field extent %f", axis, width)
	}
}

func TestInvalidGeometry(t *testing.T) {
	// No runway, no polygon
	bare := &LandingSite{ID: "bare", Location: math.MakePoint2LL(64, -22.6)}
	if _, err := bare.ApproachOptions(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}

	// Zero-length runway
	zero := &LandingSite{
		ID:       "zero",
		Location: math.MakePoint2LL(64, -22.6),
		Runway:   &Runway{OrientationDeg: 90},
	}
	if _, err := zero.ApproachOptions(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry for zero-length runway, got %v", err)
	}

	// Collinear polygon: no interior area
	line := &LandingSite{
		ID: "line",
		Polygon: []math.Point2LL{
			math.MakePoint2LL(64.000, -22.60),
			math.MakePoint2LL(64.001, -22.60),
			math.MakePoint2LL(64.002, -22.60),
		},
	}
	if _, err := line.ApproachOptions(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry for collinear polygon, got %v", err)
	}
}

func TestSiteCentroid(t *testing.T) {
	// Rectangular polygon: the centroid is the middle.
	site := &LandingSite{
		ID: "rect",
		Polygon: []math.Point2LL{
			math.MakePoint2LL(64.00, -22.60),
			math.MakePoint2LL(64.00, -22.56),
			math.MakePoint2LL(64.02, -22.56),
			math.MakePoint2LL(64.02, -22.60),
		},
	}
	c := site.Centroid()
	if d := math.NMDistance2LL(c, math.MakePoint2LL(64.01, -22.58)); d > 0.05 {
		t.Errorf("polygon centroid %s is %f nm from the rectangle center", c.DDString(), d)
	}

	// Runway sites report their surveyed center point.
	rwy := &LandingSite{
		ID:       "rwy",
		Location: math.MakePoint2LL(64, -22.6),
		Runway:   &Runway{OrientationDeg: 90, LengthM: 1000, WidthM: 30},
	}
	if c := rwy.Centroid(); c != rwy.Location {
		t.Errorf("runway centroid %s, expected the site location", c.DDString())
	}
}

func TestSiteElevation(t *testing.T) {
	site := &LandingSite{}
	if e := site.ElevationFt(); e != 0 {
		t.Errorf("expected 0 for unknown elevation, got %f", e)
	}

	elev := float32(100)
	site.ElevationM = &elev
	if e := site.ElevationFt(); gomath.Abs(float64(e-328.084)) > 0.01 {
		t.Errorf("expected 328.084 ft, got %f", e)
	}
}
