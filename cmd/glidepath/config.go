// cmd/glidepath/config.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"github.com/gliderops/glidepath/planner"

	"github.com/spf13/viper"
)

// loadConfig builds the planner configuration from defaults plus an
// optional YAML file. Only the commonly-tuned knobs are exposed; the rest
// keep their planner.DefaultConfig values.
func loadConfig(path string) (planner.Config, string, error) {
	cfg := planner.DefaultConfig()

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("aircraft.glide_ratio", cfg.GlideRatio)
	v.SetDefault("aircraft.glide_speed_kts", cfg.GlideSpeedKts)
	v.SetDefault("aircraft.bank_angle_deg", cfg.BankAngleDeg)
	v.SetDefault("search.step_seconds", cfg.StepSeconds)
	v.SetDefault("search.max_iterations", cfg.MaxIterations)
	v.SetDefault("search.goal_distance_nm", cfg.GoalDistanceNM)
	v.SetDefault("search.goal_altitude_ft", cfg.GoalAltitudeFt)
	v.SetDefault("approach.glideslope_deg", cfg.GlideslopeDeg)
	v.SetDefault("smoothing.resolution", cfg.SmoothResolution)
	v.SetDefault("guidance.capture_radius_nm", cfg.CaptureRadiusNM)
	v.SetDefault("cache.distance_nm", cfg.CacheDistanceNM)
	v.SetDefault("cache.heading_deg", cfg.CacheHeadingDeg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, "", err
		}
	}

	cfg.GlideRatio = float32(v.GetFloat64("aircraft.glide_ratio"))
	cfg.GlideSpeedKts = float32(v.GetFloat64("aircraft.glide_speed_kts"))
	cfg.BankAngleDeg = float32(v.GetFloat64("aircraft.bank_angle_deg"))
	cfg.StepSeconds = float32(v.GetFloat64("search.step_seconds"))
	cfg.MaxIterations = v.GetInt("search.max_iterations")
	cfg.GoalDistanceNM = float32(v.GetFloat64("search.goal_distance_nm"))
	cfg.GoalAltitudeFt = float32(v.GetFloat64("search.goal_altitude_ft"))
	cfg.GlideslopeDeg = float32(v.GetFloat64("approach.glideslope_deg"))
	cfg.SmoothResolution = v.GetInt("smoothing.resolution")
	cfg.CaptureRadiusNM = float32(v.GetFloat64("guidance.capture_radius_nm"))
	cfg.CacheDistanceNM = float32(v.GetFloat64("cache.distance_nm"))
	cfg.CacheHeadingDeg = float32(v.GetFloat64("cache.heading_deg"))

	return cfg, v.GetString("log.level"), nil
}
