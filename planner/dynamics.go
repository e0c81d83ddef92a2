// planner/dynamics.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/math"
)

// Transition is one physically-reachable step from a search state: the
// resulting state plus the cost-relevant quantities of getting there.
type Transition struct {
	To             av.AircraftState
	TurnDeg        float32 // signed; 0 for straight
	DistanceNM     float32
	AltitudeLostFt float32
}

// expandState enumerates the states reachable from state in one fixed time
// step at constant best-glide airspeed. Turn-angle candidates are adaptive:
// a wide set when far from the goal, a narrower set near it to keep the
// branching factor low while preserving precision close to the runway.
func expandState(cfg *Config, state av.AircraftState, distToGoalNM, nmPerLongitude float32) []Transition {
	maxTurn := cfg.MaxTurnDeg(state.IAS)

	var angles []float32
	if distToGoalNM > cfg.FarTurnRangeNM {
		angles = []float32{0, 15, -15, 30, -30, maxTurn, -maxTurn}
	} else {
		angles = []float32{0, 10, -10, maxTurn / 2, -maxTurn / 2}
	}

	dist := cfg.StepDistanceNM(state.IAS)
	baseLoss := dist * math.NauticalMilesToFeet / cfg.GlideRatio

	transitions := make([]Transition, 0, len(angles))
	for _, turn := range angles {
		if math.Abs(turn) > maxTurn {
			continue
		}
		if dup := func() bool {
			for _, tr := range transitions {
				if math.Abs(tr.TurnDeg-turn) < 1 {
					return true
				}
			}
			return false
		}(); dup {
			continue
		}

		// Turning costs altitude beyond the straight-glide loss; the drag
		// rises non-linearly with the bank required for the turn.
		loss := baseLoss * (1 + cfg.TurnDragFactor*math.Pow(math.Abs(turn)/90, 1.5))
		alt := state.Altitude - loss
		if alt < cfg.AltitudeFloorFt {
			continue
		}

		// Move along the average of the old and new headings; for a turning
		// step this approximates the curved ground track much better than a
		// chord along either heading.
		heading := math.NormalizeHeading(state.Heading + turn)
		moveHeading := math.NormalizeHeading(state.Heading + turn/2)
		pos := math.Offset2LL(state.Position, moveHeading, dist, nmPerLongitude)

		transitions = append(transitions, Transition{
			To: av.AircraftState{
				Position: pos,
				Altitude: alt,
				Heading:  heading,
				IAS:      state.IAS,
			},
			TurnDeg:        turn,
			DistanceNM:     dist,
			AltitudeLostFt: loss,
		})
	}
	return transitions
}
