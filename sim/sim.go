// sim/sim.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sim provides a deliberately small point-mass model of a gliding
// aircraft, sufficient to close the loop between the planner and the
// guidance computer in tests and the demo binary. It is not a flight
// model: no wind, no stall, constant best-glide airspeed.
package sim

import (
	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/math"
	"github.com/gliderops/glidepath/planner"
)

type Aircraft struct {
	State av.AircraftState
	cfg   planner.Config
}

func NewAircraft(state av.AircraftState, cfg planner.Config) *Aircraft {
	return &Aircraft{State: state, cfg: cfg}
}

// TurnRateDegPerSec returns the standard-bank turn rate at the current
// airspeed.
func (ac *Aircraft) TurnRateDegPerSec() float32 {
	// omega = v / R for a coordinated turn.
	v := ac.State.IAS / 3600 // nm/s
	return math.Degrees(v / ac.cfg.TurnRadiusNM(ac.State.IAS))
}

// Step advances the aircraft by dt seconds, turning toward the target
// waypoint (if any) at no more than the standard-bank turn rate and
// descending at the glide ratio.
func (ac *Aircraft) Step(target *av.Waypoint, dt float32) {
	nmPerLongitude := math.NMPerLongitude(ac.State.Position.Latitude())

	if target != nil {
		bearing := math.Heading2LL(ac.State.Position, target.Position, nmPerLongitude)
		turn := math.HeadingSignedTurn(ac.State.Heading, bearing)
		maxTurn := ac.TurnRateDegPerSec() * dt
		turn = math.Clamp(turn, -maxTurn, maxTurn)
		ac.State.Heading = math.NormalizeHeading(ac.State.Heading + turn)
	}

	dist := ac.State.IAS * dt / 3600
	ac.State.Position = math.Offset2LL(ac.State.Position, ac.State.Heading, dist, nmPerLongitude)
	ac.State.Altitude -= dist * math.NauticalMilesToFeet / ac.cfg.GlideRatio
}
