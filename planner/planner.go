// planner/planner.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"log/slog"
	"time"

	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/log"
	"github.com/gliderops/glidepath/math"

	"github.com/brunoga/deep"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// PathPlanner generates emergency glide paths to candidate landing sites.
//
// A PathPlanner holds mutable state (the runway-selection cache) and is
// designed for single-goroutine ownership: one control-loop task owns and
// calls into a given instance. There is no internal locking; callers that
// need concurrent planning should create one PathPlanner per goroutine.
type PathPlanner struct {
	cfg   Config
	lg    *log.Logger
	cache *expirable.LRU[string, cachedSelection]
}

// cachedSelection remembers where the aircraft was when an approach was
// chosen for a site. Selection runs every control tick in a live system,
// and near-tied options would otherwise oscillate as the aircraft moves;
// the cached choice is reused until the aircraft has moved or turned
// meaningfully.
type cachedSelection struct {
	selection ApproachSelection
	position  math.Point2LL
	heading   float32
}

func NewPathPlanner(cfg Config, lg *log.Logger) *PathPlanner {
	return &PathPlanner{
		cfg:   cfg,
		lg:    lg,
		cache: expirable.NewLRU[string, cachedSelection](16, nil, 15*time.Minute),
	}
}

// SelectApproach returns the best approach onto the site for the current
// aircraft state, reusing the previous selection while the aircraft remains
// within the configured displacement and heading-change thresholds.
func (p *PathPlanner) SelectApproach(state av.AircraftState, site *av.LandingSite) (*ApproachSelection, error) {
	if site.ID != "" {
		if entry, ok := p.cache.Get(site.ID); ok {
			if math.NMDistance2LL(entry.position, state.Position) <= p.cfg.CacheDistanceNM &&
				math.HeadingDifference(entry.heading, state.Heading) <= p.cfg.CacheHeadingDeg {
				sel := deep.MustCopy(entry.selection)
				return &sel, nil
			}
			p.cache.Remove(site.ID)
		}
	}

	sel, err := selectApproach(&p.cfg, p.lg, state, site)
	if err != nil {
		return nil, err
	}

	if site.ID != "" {
		p.cache.Add(site.ID, cachedSelection{
			selection: deep.MustCopy(*sel),
			position:  state.Position,
			heading:   state.Heading,
		})
	}
	return sel, nil
}

// ClearRunwayCache forces approach re-selection on the next planning call,
// e.g. after a manual site override.
func (p *PathPlanner) ClearRunwayCache() {
	p.cache.Purge()
}

// GeneratePathToSite produces a flyable path from the aircraft's current
// state to touchdown on the site. ErrNoApproachAvailable and ErrNoPathFound
// are expected, recoverable outcomes; the caller should try the next
// candidate site.
func (p *PathPlanner) GeneratePathToSite(state av.AircraftState, site *av.LandingSite) (*av.FlightPath, error) {
	sel, err := p.SelectApproach(state, site)
	if err != nil {
		return nil, err
	}
	return p.GeneratePathToFix(state, sel)
}

// GeneratePathToFix plans to a precomputed approach selection, bypassing
// site geometry analysis; this is the cheap re-planning path when the
// target has not changed.
func (p *PathPlanner) GeneratePathToFix(state av.AircraftState, sel *ApproachSelection) (*av.FlightPath, error) {
	if sel.OnFinal {
		wps := deep.MustCopy(sel.Waypoints)
		return finishPath(&p.cfg, wps, "direct-final", false), nil
	}

	nmPerLongitude := math.NMPerLongitude(state.Position.Latitude())
	heading := sel.HeadingDeg
	coarse := findPath(&p.cfg, p.lg, state, sel.FAF, &heading, nmPerLongitude)
	if coarse == nil {
		return nil, av.ErrNoPathFound
	}

	wps, degraded := smoothPath(&p.cfg, p.lg, coarse, nmPerLongitude)
	wps = append(wps, sel.Threshold)

	fp := finishPath(&p.cfg, wps, "best-glide", degraded)
	p.lg.Info("generated path", slog.Any("path", fp))
	return fp, nil
}

func finishPath(cfg *Config, wps av.WaypointArray, profile string, degraded bool) *av.FlightPath {
	total := wps.TotalDistance()
	return &av.FlightPath{
		Waypoints:        wps,
		TotalDistanceNM:  total,
		EstimatedTimeMin: total / cfg.GlideSpeedKts * 60,
		Profile:          profile,
		Degraded:         degraded,
	}
}
