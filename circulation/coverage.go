package circulation

import (
	"fmt"

	"github.com/pensaer/geokernel/gridgraph"
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/topology"
)

// ErrDegenerateRoom is returned when a room has fewer than three boundary
// nodes and so cannot be rasterized as a polygon.
var ErrDegenerateRoom = fmt.Errorf("circulation: room has fewer than 3 boundary nodes")

// Rasterize samples every interior room of g onto a uniform grid of
// cellSizeMM square cells covering the floor's bounding box. A cell is
// "land" (value 1) when its center falls inside any interior room polygon,
// "water" (value 0) otherwise. The resulting grid feeds gridgraph's
// connected-component and minimal-bridging analysis.
func Rasterize(g *topology.Graph, cellSizeMM float64) (*gridgraph.GridGraph, error) {
	if cellSizeMM <= 0 {
		return nil, fmt.Errorf("circulation: cellSizeMM must be positive")
	}

	rooms := g.InteriorRooms()
	polys := make([]mathx.Polygon2, 0, len(rooms))
	var bbox mathx.BBox2
	first := true
	for _, r := range rooms {
		poly, err := roomPolygon(g, r)
		if err != nil {
			continue
		}
		polys = append(polys, poly)
		pb := poly.BBox()
		if first {
			bbox = pb
			first = false
		} else {
			bbox = bbox.Union(pb)
		}
	}
	if len(polys) == 0 {
		return nil, ErrNoNetwork
	}

	width := int((bbox.Max.X-bbox.Min.X)/cellSizeMM) + 1
	height := int((bbox.Max.Y-bbox.Min.Y)/cellSizeMM) + 1
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	values := make([][]int, height)
	for y := 0; y < height; y++ {
		row := make([]int, width)
		cy := bbox.Min.Y + (float64(y)+0.5)*cellSizeMM
		for x := 0; x < width; x++ {
			cx := bbox.Min.X + (float64(x)+0.5)*cellSizeMM
			center := mathx.Point2{X: cx, Y: cy}
			for _, poly := range polys {
				if poly.ContainsPoint(center) {
					row[x] = 1
					break
				}
			}
		}
		values[y] = row
	}

	return gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
}

// roomPolygon builds the closed 2D polygon traced by a room's boundary
// nodes, in boundary order.
func roomPolygon(g *topology.Graph, r *topology.TopoRoom) (mathx.Polygon2, error) {
	if len(r.BoundaryNodes) < 3 {
		return mathx.Polygon2{}, ErrDegenerateRoom
	}
	verts := make([]mathx.Point2, len(r.BoundaryNodes))
	for i, nid := range r.BoundaryNodes {
		n, ok := g.Node(nid)
		if !ok {
			return mathx.Polygon2{}, fmt.Errorf("circulation: room %s references unknown node %s", r.ID, nid)
		}
		verts[i] = n.Position
	}
	return mathx.NewPolygon2(verts)
}

// landIslands returns every connected island of land cells (Rasterize only
// ever emits the two values 0 and 1, so the single map key of interest is
// the land value itself).
func landIslands(gg *gridgraph.GridGraph) [][]gridgraph.Cell {
	return gg.ConnectedComponents()[gg.LandThreshold]
}

// CoverageIslands reports the connected components of built floor area: a
// fully interconnected plan rasterizes to exactly one island. More than one
// island flags rooms that only touch their neighbors corner-to-corner or
// are otherwise physically disjoint from the main footprint at this
// cell size.
func CoverageIslands(g *topology.Graph, cellSizeMM float64) (int, error) {
	gg, err := Rasterize(g, cellSizeMM)
	if err != nil {
		return 0, err
	}
	return len(landIslands(gg)), nil
}

// BridgeCells is the minimal set of water cells that, if converted to land,
// connects two disjoint floor islands, plus its size (the number of cells
// to convert). islandA and islandB index the islands reported by
// CoverageIslands, in the same rasterization order.
func BridgeCells(g *topology.Graph, cellSizeMM float64, islandA, islandB int) ([]gridgraph.Cell, int, error) {
	gg, err := Rasterize(g, cellSizeMM)
	if err != nil {
		return nil, 0, err
	}
	islands := landIslands(gg)
	if islandA < 0 || islandA >= len(islands) || islandB < 0 || islandB >= len(islands) {
		return nil, 0, gridgraph.ErrComponentIndex
	}

	return gg.ExpandIsland(islands[islandA], islands[islandB])
}
