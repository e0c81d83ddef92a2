// aviation/site.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/gliderops/glidepath/math"

	"github.com/mmp/earcut-go"
)

// Runway describes an oriented rectangular landing surface.
type Runway struct {
	OrientationDeg float32 `json:"orientation_degrees"` // degrees true, one of the two landing directions
	LengthM        float32 `json:"length_m"`
	WidthM         float32 `json:"width_m"`
}

// LandingSite is a candidate landing surface supplied by the site-search
// collaborator. It is consumed read-only: either Runway gives an oriented
// rectangle centered on Location, or Polygon gives an arbitrary outline.
type LandingSite struct {
	ID         string          `json:"id"`
	Location   math.Point2LL   `json:"location"`
	ElevationM *float32        `json:"elevation_m,omitempty"` // nil if unknown
	Runway     *Runway         `json:"runway,omitempty"`
	Polygon    []math.Point2LL `json:"polygon,omitempty"`
}

func (s *LandingSite) ElevationFt() float32 {
	if s.ElevationM == nil {
		return 0
	}
	return *s.ElevationM * math.MetersToFeet
}

// ApproachOption is one landable direction onto a site: the threshold the
// aircraft crosses first and the heading flown on final.
type ApproachOption struct {
	Threshold  math.Point2LL
	HeadingDeg float32
}

// ApproachOptions returns the 1-2 landable directions for the site: the
// two reciprocal threshold/heading pairs for an oriented runway, or the
// endpoints of the longest interior axis for a polygon.
func (s *LandingSite) ApproachOptions() ([]ApproachOption, error) {
	if s.Runway != nil {
		return s.runwayOptions()
	}
	if len(s.Polygon) >= 3 {
		return s.polygonOptions()
	}
	return nil, ErrInvalidGeometry
}

func (s *LandingSite) runwayOptions() ([]ApproachOption, error) {
	rwy := s.Runway
	if rwy.LengthM <= 0 {
		return nil, ErrInvalidGeometry
	}

	nmPerLongitude := math.NMPerLongitude(s.Location.Latitude())
	halfNM := rwy.LengthM * math.MetersToNauticalMiles / 2
	hdg := math.NormalizeHeading(rwy.OrientationDeg)

	// Landing on heading hdg, the aircraft crosses the end that lies
	// opposite the direction of flight from the runway center.
	return []ApproachOption{
		{
			Threshold:  math.Offset2LL(s.Location, math.OppositeHeading(hdg), halfNM, nmPerLongitude),
			HeadingDeg: hdg,
		},
		{
			Threshold:  math.Offset2LL(s.Location, hdg, halfNM, nmPerLongitude),
			HeadingDeg: math.OppositeHeading(hdg),
		},
	}, nil
}

func (s *LandingSite) polygonOptions() ([]ApproachOption, error) {
	nmPerLongitude := math.NMPerLongitude(s.Polygon[0].Latitude())

	// Triangulate to reject degenerate outlines (collinear points, repeated
	// vertices) that would otherwise yield a zero-length landing axis.
	vertices := make([]earcut.Vertex, len(s.Polygon))
	for i, p := range s.Polygon {
		nm := math.LL2NM(p, nmPerLongitude)
		vertices[i].P = [2]float64{float64(nm[0]), float64(nm[1])}
	}

	var area float64
	for _, tri := range earcut.Triangulate(earcut.Polygon{Rings: [][]earcut.Vertex{vertices}}) {
		a, b, c := tri.Vertices[0].P, tri.Vertices[1].P, tri.Vertices[2].P
		area += ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])) / 2
	}
	if area < 0 {
		area = -area
	}
	if area < 1e-6 { // square nm
		return nil, ErrInvalidGeometry
	}

	// The landing axis is the longest segment between outline vertices.
	var pi, qi int
	var axisLen float32
	for i := range s.Polygon {
		for j := i + 1; j < len(s.Polygon); j++ {
			if d := math.NMDistance2LL(s.Polygon[i], s.Polygon[j]); d > axisLen {
				axisLen, pi, qi = d, i, j
			}
		}
	}
	if axisLen == 0 {
		return nil, ErrInvalidGeometry
	}

	p, q := s.Polygon[pi], s.Polygon[qi]
	return []ApproachOption{
		{Threshold: p, HeadingDeg: math.Heading2LL(p, q, nmPerLongitude)},
		{Threshold: q, HeadingDeg: math.Heading2LL(q, p, nmPerLongitude)},
	}, nil
}

// Centroid returns the area-weighted center of the site: the runway center
// for oriented runways, or the centroid of the triangulated polygon.
func (s *LandingSite) Centroid() math.Point2LL {
	if s.Runway != nil || len(s.Polygon) < 3 {
		return s.Location
	}

	nmPerLongitude := math.NMPerLongitude(s.Polygon[0].Latitude())
	vertices := make([]earcut.Vertex, len(s.Polygon))
	for i, p := range s.Polygon {
		nm := math.LL2NM(p, nmPerLongitude)
		vertices[i].P = [2]float64{float64(nm[0]), float64(nm[1])}
	}

	var cx, cy, area float64
	for _, tri := range earcut.Triangulate(earcut.Polygon{Rings: [][]earcut.Vertex{vertices}}) {
		a, b, c := tri.Vertices[0].P, tri.Vertices[1].P, tri.Vertices[2].P
		ta := ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])) / 2
		if ta < 0 {
			ta = -ta
		}
		cx += ta * (a[0] + b[0] + c[0]) / 3
		cy += ta * (a[1] + b[1] + c[1]) / 3
		area += ta
	}
	if area == 0 {
		return s.Location
	}
	return math.NM2LL([2]float32{float32(cx / area), float32(cy / area)}, nmPerLongitude)
}
