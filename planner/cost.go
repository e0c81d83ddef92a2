// planner/cost.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/math"
)

// costModel evaluates transition costs and goal estimates for one search.
// When approachHeading is set, transitions whose heading lines up with the
// final approach course are discounted near the goal so the search prefers
// paths that roll out aligned with the runway instead of requiring a sharp
// final turn.
type costModel struct {
	cfg             *Config
	goal            av.Waypoint
	approachHeading *float32
	nmPerLongitude  float32
}

// idealAltitudeAt returns the altitude of a perfect glide arriving at the
// goal altitude from the given distance out.
func (cm *costModel) idealAltitudeAt(distToGoalNM float32) float32 {
	return cm.goal.Altitude + distToGoalNM*math.NauticalMilesToFeet/cm.cfg.GlideRatio
}

func (cm *costModel) moveCost(tr Transition) float32 {
	cfg := cm.cfg
	distToGoal := math.NMDistance2LL(tr.To.Position, cm.goal.Position)
	surplus := tr.To.Altitude - cm.idealAltitudeAt(distToGoal)

	turnPenalty := math.Abs(tr.TurnDeg) / 180 * cfg.TurnPenaltyFactor
	if surplus > cfg.HighAltSurplusFt {
		// Well above the glide ideal: turns burn altitude we need to shed
		// anyway, so stop discouraging them.
		turnPenalty *= cfg.HighAltTurnDiscount
	}

	// Penalize arriving below the ideal glide altitude. Excess altitude is
	// never rewarded directly; it only relaxes the turn penalty above.
	var altPenalty float32
	if surplus < 0 {
		altPenalty = -surplus / 1000 * cfg.AltitudePenaltyFactor
	}

	cost := tr.DistanceNM + turnPenalty + altPenalty

	if cm.approachHeading != nil && distToGoal < cfg.AlignDiscountRangeNM {
		align := 1 - math.HeadingDifference(tr.To.Heading, *cm.approachHeading)/180
		proximity := 1 - distToGoal/cfg.AlignDiscountRangeNM
		discount := math.Min(cfg.AlignDiscountCap, cfg.AlignDiscountFactor*align*proximity)
		cost = math.Max(cost-discount, 0.05*tr.DistanceNM)
	}

	return cost
}

func (cm *costModel) heuristic(s av.AircraftState) float32 {
	cfg := cm.cfg
	dist := math.NMDistance2LL(s.Position, cm.goal.Position)

	// The aircraft cannot descend more steeply than the glide ratio, so
	// losing the remaining altitude requires at least this much distance.
	var glideDist float32
	if excess := s.Altitude - cm.goal.Altitude; excess > 0 {
		glideDist = excess * cfg.GlideRatio * math.FeetToNauticalMiles
	}

	h := math.Max(dist, glideDist)

	if dist < cfg.AlignHeuristicRangeNM {
		// Bias toward states whose heading already points at the goal, so
		// the path naturally straightens out on the final bearing.
		bearing := math.Heading2LL(s.Position, cm.goal.Position, cm.nmPerLongitude)
		h += math.HeadingDifference(s.Heading, bearing) / 180 * cfg.HeadingAlignWeight
	}

	return h
}
