// cmd/glidepath/main.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// glidepath plans an emergency glide path for an aircraft that has lost
// thrust: it reads a scenario (aircraft state plus candidate landing
// sites), plans toward each candidate in nearest-first order until one
// succeeds, and optionally flies the plan with the point-mass simulator.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/guidance"
	"github.com/gliderops/glidepath/log"
	"github.com/gliderops/glidepath/math"
	"github.com/gliderops/glidepath/planner"
	"github.com/gliderops/glidepath/sim"
	"github.com/gliderops/glidepath/util"

	"golang.org/x/sync/errgroup"
)

// Scenario is the on-disk input: a telemetry snapshot and the candidate
// sites from the landing-site search. Sites need not arrive in any
// particular order; they are ranked by distance before planning.
type Scenario struct {
	Aircraft av.AircraftState  `json:"aircraft"`
	Sites    []*av.LandingSite `json:"sites"`
}

// cachedPlan is what gets stored in the user cache dir per scenario, so a
// repeated run (e.g. re-flying the same scenario with -fly) can skip the
// planning step entirely.
type cachedPlan struct {
	SiteID string
	Path   *av.FlightPath
}

func main() {
	scenarioFile := flag.String("scenario", "", "scenario JSON file (required)")
	configFile := flag.String("config", "", "optional YAML configuration file")
	outFile := flag.String("out", "", "write the selected plan to this file (zstd msgpack)")
	fly := flag.Bool("fly", false, "fly the plan with the point-mass simulator")
	reuse := flag.Bool("reuse", false, "reuse a previously cached plan for this scenario, if any")
	flag.Parse()

	if *scenarioFile == "" {
		fmt.Fprintf(os.Stderr, "usage: glidepath -scenario file.json [-config file.yaml] [-out plan.bin] [-reuse] [-fly]\n")
		os.Exit(2)
	}

	cfg, level, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *configFile, err)
		os.Exit(1)
	}
	lg := log.New(level, "")

	var scenario Scenario
	b, err := os.ReadFile(*scenarioFile)
	if err == nil {
		err = json.Unmarshal(b, &scenario)
	}
	if err != nil {
		lg.Errorf("%s: %v", *scenarioFile, err)
		os.Exit(1)
	}
	if len(scenario.Sites) == 0 {
		lg.Errorf("%s: no landing sites in scenario", *scenarioFile)
		os.Exit(1)
	}

	cacheKey := filepath.Base(*scenarioFile) + ".plan"

	var fp *av.FlightPath
	var siteID string
	if *reuse {
		var cp cachedPlan
		if when, err := util.CacheRetrieveObject(cacheKey, &cp); err == nil {
			fp, siteID = cp.Path, cp.SiteID
			lg.Info("reusing cached plan", slog.String("site", siteID), slog.Time("planned", when))
		} else {
			lg.Infof("%s: no cached plan: %v", cacheKey, err)
		}
	}

	if fp == nil {
		rankSites(scenario.Aircraft, scenario.Sites)
		var site *av.LandingSite
		fp, site = planRankedSites(cfg, lg, scenario.Aircraft, scenario.Sites)
		if fp == nil {
			lg.Error("no viable landing site", slog.Int("candidates", len(scenario.Sites)))
			fmt.Println("no viable landing site")
			os.Exit(1)
		}
		siteID = site.ID

		if err := util.CacheStoreObject(cacheKey, cachedPlan{SiteID: siteID, Path: fp}); err != nil {
			lg.Warnf("%s: %v", cacheKey, err)
		}
	}

	fmt.Printf("site %s: %d waypoints, %.1f nm, %.1f min%s\n", siteID,
		len(fp.Waypoints), fp.TotalDistanceNM, fp.EstimatedTimeMin,
		util.Select(fp.Degraded, " (smoothing degraded)", ""))

	if *outFile != "" {
		if err := util.StoreObject(*outFile, fp); err != nil {
			lg.Errorf("%s: %v", *outFile, err)
			os.Exit(1)
		}
	}

	if *fly {
		flyPlan(cfg, lg, scenario.Aircraft, fp, siteID)
	}
}

// rankSites orders the candidates nearest-first by distance from the
// aircraft to each site's centroid, so planning tries the most promising
// sites before the long shots.
func rankSites(state av.AircraftState, sites []*av.LandingSite) {
	sort.SliceStable(sites, func(i, j int) bool {
		return math.NMDistance2LL(state.Position, sites[i].Centroid()) <
			math.NMDistance2LL(state.Position, sites[j].Centroid())
	})
}

// planRankedSites plans toward every candidate concurrently, one planner
// per goroutine, then picks the first success in rank order. Per-candidate
// failures are expected; only exhausting all candidates is reported.
func planRankedSites(cfg planner.Config, lg *log.Logger, state av.AircraftState,
	sites []*av.LandingSite) (*av.FlightPath, *av.LandingSite) {
	paths := make([]*av.FlightPath, len(sites))

	var eg errgroup.Group
	for i, site := range sites {
		eg.Go(func() error {
			p := planner.NewPathPlanner(cfg, lg.With(slog.String("site", site.ID)))
			fp, err := p.GeneratePathToSite(state, site)
			if err != nil {
				lg.Infof("site %s: %v", site.ID, err)
				return nil // keep evaluating the other candidates
			}
			paths[i] = fp
			return nil
		})
	}
	eg.Wait()

	for i, fp := range paths {
		if fp != nil {
			return fp, sites[i]
		}
	}
	return nil, nil
}

// flyPlan runs the closed loop: simulator ticks feed the guidance computer,
// whose target waypoints steer the simulator.
func flyPlan(cfg planner.Config, lg *log.Logger, state av.AircraftState, fp *av.FlightPath, siteID string) {
	gc := guidance.NewComputer(cfg.CaptureRadiusNM, lg)
	gc.LoadNewPath(fp)
	ac := sim.NewAircraft(state, cfg)

	const dt = 0.1 // 10 Hz
	var elapsed float32
	for gc.State() == guidance.Tracking && elapsed < 3600 {
		target := gc.UpdateAndGetTarget(ac.State)
		if target == nil {
			break
		}
		ac.Step(target, dt)
		elapsed += dt
	}

	threshold := fp.Waypoints[len(fp.Waypoints)-1]
	fmt.Printf("flew for %.0f s; %s; %.2f nm from threshold of %s\n", elapsed,
		ac.State.Summary(), math.NMDistance2LL(ac.State.Position, threshold.Position), siteID)
}
