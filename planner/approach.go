// planner/approach.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"log/slog"

	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/log"
	"github.com/gliderops/glidepath/math"
)

// ApproachSelection is the chosen way onto a landing site: the final
// approach fix to plan toward, the touchdown threshold beyond it, and the
// final approach course.
type ApproachSelection struct {
	FAF        av.Waypoint
	Threshold  av.Waypoint
	HeadingDeg float32
	Waypoints  av.WaypointArray
	// OnFinal indicates the aircraft was already lined up on short final
	// when the selection was made; Waypoints is then the direct two-point
	// path [current position, threshold] and no FAF planning is needed.
	OnFinal bool
}

// selectApproach converts the site geometry into the best approach option
// for the current aircraft state, or an error if the site has no landable
// geometry.
func selectApproach(cfg *Config, lg *log.Logger, state av.AircraftState, site *av.LandingSite) (*ApproachSelection, error) {
	options, err := site.ApproachOptions()
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, av.ErrNoApproachAvailable
	}

	nmPerLongitude := math.NMPerLongitude(state.Position.Latitude())
	elevation := site.ElevationFt()

	thresholdWaypoint := func(opt av.ApproachOption) av.Waypoint {
		return av.Waypoint{
			Position: opt.Threshold,
			Altitude: elevation,
			Speed:    cfg.GlideSpeedKts,
			Notes:    "threshold",
		}
	}

	// If we are effectively already on short final for one of the options,
	// skip FAF construction entirely; planning a FAF from here would
	// produce a spurious go-around.
	for _, opt := range options {
		d := math.NMDistance2LL(state.Position, opt.Threshold)
		if d > cfg.OnFinalDistanceNM {
			continue
		}
		bearing := math.Heading2LL(state.Position, opt.Threshold, nmPerLongitude)
		if math.HeadingDifference(state.Heading, bearing) > cfg.OnFinalHeadingTolDeg ||
			math.HeadingDifference(state.Heading, opt.HeadingDeg) > cfg.OnFinalHeadingTolDeg {
			continue
		}

		thr := thresholdWaypoint(opt)
		lg.Debug("on final; returning direct path", slog.String("site", site.ID),
			slog.Float64("distance", float64(d)))
		return &ApproachSelection{
			FAF:        thr,
			Threshold:  thr,
			HeadingDeg: opt.HeadingDeg,
			Waypoints: av.WaypointArray{
				{Position: state.Position, Altitude: state.Altitude, Speed: state.IAS, Notes: "present position"},
				thr,
			},
			OnFinal: true,
		}, nil
	}

	glideslopeFtPerNM := math.Tan(math.Radians(cfg.GlideslopeDeg)) * math.NauticalMilesToFeet

	var best *ApproachSelection
	var bestScore float32
	for _, opt := range options {
		thr := thresholdWaypoint(opt)

		// Put the FAF further out when there is more altitude to lose,
		// within limits; its altitude then comes from the glideslope.
		altToLose := math.Max(state.Altitude-elevation, 0)
		fafDist := math.Clamp(0.25*altToLose/glideslopeFtPerNM, cfg.MinFAFDistanceNM, cfg.MaxFAFDistanceNM)
		faf := av.Waypoint{
			Position: math.Offset2LL(opt.Threshold, math.OppositeHeading(opt.HeadingDeg), fafDist, nmPerLongitude),
			Altitude: elevation + fafDist*glideslopeFtPerNM,
			Speed:    cfg.GlideSpeedKts,
			Notes:    "FAF",
		}

		distToFAF := math.NMDistance2LL(state.Position, faf.Position)
		score := distToFAF + math.NMDistance2LL(faf.Position, opt.Threshold) +
			math.HeadingDifference(state.Heading, opt.HeadingDeg)/180*3

		// Penalize options the aircraft cannot glide-reach at the
		// configured ratio.
		altAvailable := state.Altitude - faf.Altitude
		altNeeded := distToFAF * math.NauticalMilesToFeet / cfg.GlideRatio
		if altAvailable < altNeeded {
			score += (altNeeded - altAvailable) / 500
		}

		if best == nil || score < bestScore {
			best = &ApproachSelection{
				FAF:        faf,
				Threshold:  thr,
				HeadingDeg: opt.HeadingDeg,
				Waypoints:  av.WaypointArray{faf, thr},
			}
			bestScore = score
		}
	}

	lg.Debug("selected approach", slog.String("site", site.ID),
		slog.Float64("heading", float64(best.HeadingDeg)),
		slog.Float64("score", float64(bestScore)))
	return best, nil
}
