// aviation/aviation.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gliderops/glidepath/math"
)

// Errors used by the planning and guidance packages. Note that
// ErrNoPathFound and ErrNoApproachAvailable represent expected, recoverable
// outcomes: failing to reach one candidate landing site is normal and the
// caller is expected to try the next-ranked site.
var (
	ErrInvalidGeometry     = errors.New("invalid landing site geometry")
	ErrNoApproachAvailable = errors.New("no approach available for landing site")
	ErrNoPathFound         = errors.New("no path found to landing site")
)

// AircraftState describes the aircraft at one instant: both live telemetry
// snapshots and search nodes during path planning. It is a value type; a
// new state replaces the old one on every update.
type AircraftState struct {
	Position math.Point2LL `json:"position"`
	Altitude float32       `json:"altitude"` // feet MSL
	Heading  float32       `json:"heading"`  // degrees true
	IAS      float32       `json:"ias"`      // knots
}

func (s AircraftState) Summary() string {
	return fmt.Sprintf("pos %s heading %03d altitude %.0f ias %.1f",
		s.Position.DDString(), int(s.Heading), s.Altitude, s.IAS)
}

func (s AircraftState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("position", s.Position.DDString()),
		slog.Float64("heading", float64(s.Heading)),
		slog.Float64("altitude", float64(s.Altitude)),
		slog.Float64("ias", float64(s.IAS)))
}

// StateKey is a quantized, hashable version of an AircraftState. Raw
// float-valued states make poor map keys during search: near-identical
// states produced by repeated transformations would all be treated as
// distinct, inflating the search space. Binning position, altitude, and
// heading collapses them.
type StateKey struct {
	Lon, Lat int32
	Alt, Hdg int16
}

// Key quantizes the state onto a grid with the given resolutions:
// latLonRes in degrees, altRes in feet, hdgRes in degrees.
func (s AircraftState) Key(latLonRes, altRes, hdgRes float32) StateKey {
	bin := func(v, res float32) int32 {
		return int32(math.Floor(v/res + 0.5))
	}
	return StateKey{
		Lon: bin(s.Position.Longitude(), latLonRes),
		Lat: bin(s.Position.Latitude(), latLonRes),
		Alt: int16(bin(s.Altitude, altRes)),
		Hdg: int16(bin(math.NormalizeHeading(s.Heading), hdgRes)),
	}
}

// Waypoint is a planned point, produced by the planner/smoother and
// consumed by guidance and downstream control. Unlike AircraftState it
// carries no heading.
type Waypoint struct {
	Position math.Point2LL `json:"position"`
	Altitude float32       `json:"altitude"` // feet MSL
	Speed    float32       `json:"speed"`    // knots
	Notes    string        `json:"notes,omitempty"`
}

func (wp Waypoint) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("position", wp.Position.DDString()),
		slog.Float64("altitude", float64(wp.Altitude)),
		slog.Float64("speed", float64(wp.Speed)))
}

type WaypointArray []Waypoint

// TotalDistance returns the sum of the great-circle distances between
// consecutive waypoints, in nautical miles.
func (wps WaypointArray) TotalDistance() float32 {
	var d float32
	for i := 1; i < len(wps); i++ {
		d += math.NMDistance2LL(wps[i-1].Position, wps[i].Position)
	}
	return d
}

// FlightPath is a finished plan from the aircraft's position to touchdown.
// It is created once per planning call and immutable thereafter.
type FlightPath struct {
	Waypoints        WaypointArray
	TotalDistanceNM  float32
	EstimatedTimeMin float32
	Profile          string
	// Degraded is set when spline smoothing failed and the raw search
	// path was substituted; the path is still flyable, just less smooth.
	Degraded bool
}

func (fp *FlightPath) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("waypoints", len(fp.Waypoints)),
		slog.Float64("total_distance_nm", float64(fp.TotalDistanceNM)),
		slog.Float64("estimated_time_min", float64(fp.EstimatedTimeMin)),
		slog.String("profile", fp.Profile),
		slog.Bool("degraded", fp.Degraded))
}
