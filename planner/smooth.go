// planner/smooth.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/log"
	"github.com/gliderops/glidepath/math"

	"gonum.org/v1/gonum/interp"
)

// smoothPath fits splines through the coarse search output, which has
// instantaneous heading changes at each fixed-time-step point and so is not
// flyable as-is. The curve is parameterized by cumulative 3D arc length and
// resampled at the configured resolution. Longitude and latitude use Akima
// splines, which avoid the overshoot of a natural cubic near sharp turns;
// altitude uses a monotone (Fritsch-Butland) spline so a descending profile
// stays descending.
//
// The second return value reports degraded smoothing: if fitting fails for
// any reason the original coarse path is returned instead, and the caller
// still gets a usable plan.
func smoothPath(cfg *Config, lg *log.Logger, wps av.WaypointArray, nmPerLongitude float32) (av.WaypointArray, bool) {
	// Consecutive duplicate points would produce a non-increasing arc
	// length parameterization; drop them.
	deduped := wps[:0:0]
	for i, wp := range wps {
		if i > 0 {
			prev := deduped[len(deduped)-1]
			if wp.Position == prev.Position && wp.Altitude == prev.Altitude {
				continue
			}
		}
		deduped = append(deduped, wp)
	}

	if len(deduped) < 3 {
		return deduped, false
	}

	n := len(deduped)
	ss := make([]float64, n)
	lons := make([]float64, n)
	lats := make([]float64, n)
	alts := make([]float64, n)
	for i, wp := range deduped {
		if i > 0 {
			prev := deduped[i-1]
			nm0 := math.LL2NM(prev.Position, nmPerLongitude)
			nm1 := math.LL2NM(wp.Position, nmPerLongitude)
			dh := math.Distance2f(nm0, nm1)
			dv := (wp.Altitude - prev.Altitude) * math.FeetToNauticalMiles
			ds := float64(math.Sqrt(dh*dh + dv*dv))
			if ds <= 0 {
				ds = 1e-6
			}
			ss[i] = ss[i-1] + ds
		}
		lons[i] = float64(wp.Position.Longitude())
		lats[i] = float64(wp.Position.Latitude())
		alts[i] = float64(wp.Altitude)
	}

	var lonSpline, latSpline, altSpline interp.FittablePredictor
	if n >= 6 {
		lonSpline, latSpline = &interp.AkimaSpline{}, &interp.AkimaSpline{}
	} else {
		lonSpline, latSpline = &interp.PiecewiseLinear{}, &interp.PiecewiseLinear{}
	}
	altSpline = &interp.FritschButland{}

	for _, fit := range []struct {
		pred interp.FittablePredictor
		ys   []float64
	}{{lonSpline, lons}, {latSpline, lats}, {altSpline, alts}} {
		if err := fit.pred.Fit(ss, fit.ys); err != nil {
			lg.Warnf("spline fit failed, returning unsmoothed path: %v", err)
			return deduped, true
		}
	}

	total := ss[n-1]
	speed := deduped[0].Speed
	smoothed := make(av.WaypointArray, cfg.SmoothResolution)
	for i := range smoothed {
		s := total * float64(i) / float64(cfg.SmoothResolution-1)
		smoothed[i] = av.Waypoint{
			Position: math.Point2LL{float32(lonSpline.Predict(s)), float32(latSpline.Predict(s))},
			Altitude: float32(altSpline.Predict(s)),
			Speed:    speed,
		}
	}
	return smoothed, false
}
