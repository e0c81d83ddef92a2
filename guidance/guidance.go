// guidance/guidance.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package guidance tracks progress along a planned flight path in real
// time: given a fresh aircraft state each control tick, it reports which
// waypoint to fly toward now.
package guidance

import (
	"log/slog"

	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/log"
	"github.com/gliderops/glidepath/math"

	"github.com/brunoga/deep"
)

type State int

const (
	Idle     State = iota // no path loaded
	Tracking              // following the loaded path
	Complete              // all waypoints passed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Computer is the consumption-side state machine for a planned path. Like
// the planner, it is owned by a single control-loop goroutine and has no
// internal locking; UpdateAndGetTarget is cheap and intended to be called
// at 10-30 Hz.
type Computer struct {
	path            *av.FlightPath
	currentWaypoint int // invariant: 0 <= currentWaypoint <= len(path.Waypoints)
	captureRadiusNM float32
	lg              *log.Logger
}

func NewComputer(captureRadiusNM float32, lg *log.Logger) *Computer {
	return &Computer{captureRadiusNM: captureRadiusNM, lg: lg}
}

func (c *Computer) State() State {
	if c.path == nil {
		return Idle
	}
	if c.currentWaypoint >= len(c.path.Waypoints) {
		return Complete
	}
	return Tracking
}

// LoadNewPath starts tracking the given path from its first waypoint. The
// path is copied; the caller may discard its reference.
func (c *Computer) LoadNewPath(path *av.FlightPath) {
	c.path = deep.MustCopy(path)
	c.currentWaypoint = 0
	c.lg.Info("loaded new path", slog.Any("path", path), slog.String("state", c.State().String()))
}

// UpdateAndGetTarget advances past the current waypoint if the aircraft is
// within the capture radius and returns the waypoint to fly toward, or nil
// if no path is loaded or the path is complete. The index advances by at
// most one per call, even if several waypoints are within the capture
// radius at once.
func (c *Computer) UpdateAndGetTarget(state av.AircraftState) *av.Waypoint {
	if c.State() != Tracking {
		return nil
	}

	wp := c.path.Waypoints[c.currentWaypoint]
	if math.NMDistance2LL(state.Position, wp.Position) < c.captureRadiusNM {
		c.currentWaypoint++
		if c.currentWaypoint >= len(c.path.Waypoints) {
			c.lg.Info("path complete")
			return nil
		}
		wp = c.path.Waypoints[c.currentWaypoint]
	}

	return &wp
}

// CurrentWaypointIndex reports progress along the loaded path.
func (c *Computer) CurrentWaypointIndex() int {
	return c.currentWaypoint
}
