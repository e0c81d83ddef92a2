// planner/config.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"github.com/gliderops/glidepath/math"
)

// Config collects every tunable of the planning and guidance pipeline in
// one immutable struct that is constructed once and passed by reference.
type Config struct {
	// Aircraft glide performance
	GlideRatio    float32 // horizontal distance per unit altitude lost
	GlideSpeedKts float32 // best-glide airspeed
	BankAngleDeg  float32 // standard bank angle for turns

	// Search state expansion
	StepSeconds       float32 // time step for one expansion
	MaxTurnPerStepDeg float32 // hard cap regardless of turn radius
	TurnDragFactor    float32 // extra altitude loss scale for turning steps
	AltitudeFloorFt   float32 // candidates below this are discarded
	FarTurnRangeNM    float32 // beyond this, use the wide turn-angle set

	// A* search
	MaxIterations  int
	GoalDistanceNM float32
	GoalAltitudeFt float32

	// Cost and heuristic shaping
	TurnPenaltyFactor     float32
	HighAltTurnDiscount   float32 // turn penalty multiplier when well above glide ideal
	HighAltSurplusFt      float32
	AltitudePenaltyFactor float32
	HeadingAlignWeight    float32 // heuristic bearing-mismatch weight near the goal
	AlignHeuristicRangeNM float32
	AlignDiscountFactor   float32 // runway-alignment cost discount scale
	AlignDiscountCap      float32
	AlignDiscountRangeNM  float32

	// Approach geometry
	GlideslopeDeg        float32
	MinFAFDistanceNM     float32
	MaxFAFDistanceNM     float32
	OnFinalDistanceNM    float32
	OnFinalHeadingTolDeg float32

	// Smoothing
	SmoothResolution int

	// Guidance
	CaptureRadiusNM float32

	// Runway-selection cache invalidation
	CacheDistanceNM float32
	CacheHeadingDeg float32

	// Search-state quantization
	LatLonResDeg  float32
	AltitudeResFt float32
	HeadingResDeg float32
}

func DefaultConfig() Config {
	return Config{
		GlideRatio:    17,
		GlideSpeedKts: 68,
		BankAngleDeg:  30,

		StepSeconds:       30,
		MaxTurnPerStepDeg: 90,
		TurnDragFactor:    0.35,
		AltitudeFloorFt:   -500,
		FarTurnRangeNM:    5,

		MaxIterations:  75000,
		GoalDistanceNM: 0.5,
		GoalAltitudeFt: 500,

		TurnPenaltyFactor:     1,
		HighAltTurnDiscount:   0.3,
		HighAltSurplusFt:      1500,
		AltitudePenaltyFactor: 1,
		HeadingAlignWeight:    1,
		AlignHeuristicRangeNM: 20,
		AlignDiscountFactor:   0.5,
		AlignDiscountCap:      0.5,
		AlignDiscountRangeNM:  10,

		GlideslopeDeg:        3,
		MinFAFDistanceNM:     0.3,
		MaxFAFDistanceNM:     2,
		OnFinalDistanceNM:    0.4,
		OnFinalHeadingTolDeg: 25,

		SmoothResolution: 500,

		CaptureRadiusNM: 0.5,

		CacheDistanceNM: 1,
		CacheHeadingDeg: 30,

		LatLonResDeg:  0.002,
		AltitudeResFt: 50,
		HeadingResDeg: 5,
	}
}

// StepDistanceNM returns the distance covered in one expansion step at the
// given airspeed.
func (c *Config) StepDistanceNM(ias float32) float32 {
	return ias * c.StepSeconds / 3600
}

// TurnRadiusNM returns the minimum turn radius at the given airspeed for
// the configured standard bank angle: R = v^2 / (g tan(bank)).
func (c *Config) TurnRadiusNM(ias float32) float32 {
	const knotsToFps = 1.68781
	const g = 32.174 // ft/s^2
	v := ias * knotsToFps
	rft := v * v / (g * math.Tan(math.Radians(c.BankAngleDeg)))
	return rft * math.FeetToNauticalMiles
}

// MaxTurnDeg returns the maximum heading change achievable in one step at
// the given airspeed, bounded by the turn radius and the per-step cap.
func (c *Config) MaxTurnDeg(ias float32) float32 {
	arc := c.StepDistanceNM(ias) / c.TurnRadiusNM(ias) // radians
	return math.Min(math.Degrees(arc), c.MaxTurnPerStepDeg)
}
