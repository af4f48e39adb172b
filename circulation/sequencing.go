package circulation

import (
	"errors"
	"fmt"

	"github.com/pensaer/geokernel/core"
	"github.com/pensaer/geokernel/dfs"
	"github.com/pensaer/geokernel/element"
)

// ErrSequenceCycle is returned when dfs.TopologicalSort reports a cycle in
// the element dependency graph, making a single build order impossible.
var ErrSequenceCycle = fmt.Errorf("circulation: element dependency graph has a cycle")

// dependencyGraph builds a directed core.Graph of "must be built before"
// edges over elems:
//
//   - every floor precedes every wall (a wall needs its slab poured first),
//   - a wall precedes any door/window whose HostWallID names it,
//   - every wall precedes every roof/ceiling (the envelope closes last).
//
// This mirrors the coarse staging a general contractor's schedule already
// imposes; it is not a full critical-path model.
func dependencyGraph(elems []element.Element) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range elems {
		_ = g.AddVertex(e.ID())
	}

	var floors, walls, envelope []element.Element
	hostOf := make(map[string]string) // opening id -> HostWallID

	for _, e := range elems {
		switch e.Kind() {
		case element.KindFloor:
			floors = append(floors, e)
		case element.KindWall:
			walls = append(walls, e)
		case element.KindRoof, element.KindCeiling:
			envelope = append(envelope, e)
		case element.KindDoor:
			if d, ok := e.(element.DoorElement); ok {
				hostOf[e.ID()] = d.HostWallID
			}
		case element.KindWindow:
			if w, ok := e.(element.WindowElement); ok {
				hostOf[e.ID()] = w.HostWallID
			}
		}
	}

	for _, f := range floors {
		for _, w := range walls {
			_, _ = g.AddEdge(f.ID(), w.ID(), 1)
		}
	}
	for _, w := range walls {
		for openingID, hostID := range hostOf {
			if hostID == w.ID() {
				_, _ = g.AddEdge(w.ID(), openingID, 1)
			}
		}
		for _, env := range envelope {
			_, _ = g.AddEdge(w.ID(), env.ID(), 1)
		}
	}

	return g
}

// BuildSequence returns a construction order for elems such that every
// element's prerequisites (floors before walls, walls before their
// openings and before the roof/ceiling that closes over them) come first,
// via dfs.TopologicalSort over the derived dependencyGraph.
func BuildSequence(elems []element.Element) ([]string, error) {
	g := dependencyGraph(elems)
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return nil, ErrSequenceCycle
		}
		return nil, err
	}
	return order, nil
}

// ValidateSequence reports whether elems' dependency graph contains a
// cycle, and if so returns each cycle found (as element id chains) via
// dfs.DetectCycles.
func ValidateSequence(elems []element.Element) (bool, [][]string, error) {
	g := dependencyGraph(elems)
	return dfs.DetectCycles(g)
}
