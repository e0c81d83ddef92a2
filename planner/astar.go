// planner/astar.go
// Copyright(c) 2025-2026 glidepath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"container/heap"
	"log/slog"

	av "github.com/gliderops/glidepath/aviation"
	"github.com/gliderops/glidepath/log"
	"github.com/gliderops/glidepath/math"
)

type searchNode struct {
	state   av.AircraftState
	gScore  float32
	fScore  float32
	counter int // monotonic insertion order; tie-break for equal f
	index   int // heap bookkeeping
}

type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].fScore != h[j].fScore {
		return h[i].fScore < h[j].fScore
	}
	return h[i].counter < h[j].counter
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// findPath runs A* over the glide state-expansion graph from start to the
// goal waypoint. It returns the coarse waypoint sequence, or nil if the
// search exhausted its iteration budget or the open set without reaching
// the goal; that is an expected outcome, not an error.
func findPath(cfg *Config, lg *log.Logger, start av.AircraftState, goal av.Waypoint,
	approachHeading *float32, nmPerLongitude float32) av.WaypointArray {
	cm := &costModel{
		cfg:             cfg,
		goal:            goal,
		approachHeading: approachHeading,
		nmPerLongitude:  nmPerLongitude,
	}

	key := func(s av.AircraftState) av.StateKey {
		return s.Key(cfg.LatLonResDeg, cfg.AltitudeResFt, cfg.HeadingResDeg)
	}
	atGoal := func(s av.AircraftState) bool {
		return math.NMDistance2LL(s.Position, goal.Position) <= cfg.GoalDistanceNM &&
			math.Abs(s.Altitude-goal.Altitude) <= cfg.GoalAltitudeFt
	}

	gScore := map[av.StateKey]float32{key(start): 0}
	cameFrom := make(map[av.StateKey]av.AircraftState)

	counter := 0
	open := nodeHeap{&searchNode{state: start, gScore: 0, fScore: cm.heuristic(start)}}
	heap.Init(&open)

	iterations := 0
	for open.Len() > 0 {
		iterations++
		if iterations > cfg.MaxIterations {
			break
		}

		n := heap.Pop(&open).(*searchNode)
		nk := key(n.state)
		if g, ok := gScore[nk]; ok && n.gScore > g {
			continue // stale entry; a cheaper path to this state was found
		}

		if atGoal(n.state) {
			lg.Debug("path search succeeded", slog.Int("iterations", iterations),
				slog.Float64("cost", float64(n.gScore)))
			return reconstructPath(cameFrom, key, start, n.state)
		}

		distToGoal := math.NMDistance2LL(n.state.Position, goal.Position)
		for _, tr := range expandState(cfg, n.state, distToGoal, nmPerLongitude) {
			tk := key(tr.To)
			tentative := n.gScore + cm.moveCost(tr)
			if g, ok := gScore[tk]; ok && tentative >= g {
				continue
			}
			gScore[tk] = tentative
			cameFrom[tk] = n.state
			counter++
			heap.Push(&open, &searchNode{
				state:   tr.To,
				gScore:  tentative,
				fScore:  tentative + cm.heuristic(tr.To),
				counter: counter,
			})
		}
	}

	lg.Warn("path search failed", slog.Int("iterations", iterations),
		slog.Int("open", open.Len()), slog.Any("goal", goal))
	return nil
}

// reconstructPath walks the came-from chain from the final state back to
// the start, converting each search state to a waypoint, then reverses.
func reconstructPath(cameFrom map[av.StateKey]av.AircraftState, key func(av.AircraftState) av.StateKey,
	start, end av.AircraftState) av.WaypointArray {
	toWaypoint := func(s av.AircraftState) av.Waypoint {
		return av.Waypoint{Position: s.Position, Altitude: s.Altitude, Speed: s.IAS}
	}

	startKey := key(start)
	wps := av.WaypointArray{toWaypoint(end)}
	for s, k := end, key(end); k != startKey; k = key(s) {
		var ok bool
		if s, ok = cameFrom[k]; !ok {
			break
		}
		wps = append(wps, toWaypoint(s))
	}

	for i, j := 0, len(wps)-1; i < j; i, j = i+1, j-1 {
		wps[i], wps[j] = wps[j], wps[i]
	}
	return wps
}
