package kernelexec

import (
	"fmt"

	"github.com/pensaer/geokernel/joins"
	"github.com/pensaer/geokernel/topology"
)

func defaultDispatch() map[string]handlerFunc {
	return map[string]handlerFunc{
		"add_wall":       handleAddWall,
		"move_node":      handleMoveNode,
		"delete_element": handleDeleteElement,
		"solve_joins":    handleSolveJoins,
	}
}

// handleAddWall implements `add_wall { start:[x,y], end:[x,y], height,
// thickness }`.
func handleAddWall(g *topology.Graph, params map[string]interface{}) (topology.Delta, interface{}, error) {
	start, err := paramPoint2(params, "start")
	if err != nil {
		return topology.Delta{}, nil, err
	}
	end, err := paramPoint2(params, "end")
	if err != nil {
		return topology.Delta{}, nil, err
	}
	height := paramFloat64Default(params, "height", 2700)
	thickness := paramFloat64Default(params, "thickness", 100)

	a := g.FindOrCreateNodeLocked(start)
	b := g.FindOrCreateNodeLocked(end)
	data := topology.EdgeData{Thickness: thickness, Height: height}
	id, err := g.AddEdgeBetweenNodesLocked(a, b, data)
	if err != nil {
		return topology.Delta{}, nil, err
	}

	var delta topology.Delta
	delta.Created = append(delta.Created, string(id))
	delta.AddAffected(a, b)
	return delta, nil, nil
}

// handleMoveNode implements `move_node { node_id, to:[x,y] }`.
func handleMoveNode(g *topology.Graph, params map[string]interface{}) (topology.Delta, interface{}, error) {
	nodeIDStr, err := paramString(params, "node_id")
	if err != nil {
		return topology.Delta{}, nil, err
	}
	to, err := paramPoint2(params, "to")
	if err != nil {
		return topology.Delta{}, nil, err
	}

	nodeID := topology.NodeId(nodeIDStr)
	if err := g.MoveNodeLocked(nodeID, to); err != nil {
		return topology.Delta{}, nil, err
	}

	var delta topology.Delta
	delta.Modified = append(delta.Modified, string(nodeID))
	delta.AddAffected(nodeID)
	return delta, nil, nil
}

// handleDeleteElement implements `delete_element { id }`. id is looked up
// first as an edge (wall), then as an orphan node.
func handleDeleteElement(g *topology.Graph, params map[string]interface{}) (topology.Delta, interface{}, error) {
	idStr, err := paramString(params, "id")
	if err != nil {
		return topology.Delta{}, nil, err
	}

	if e, ok := g.EdgeLocked(topology.EdgeId(idStr)); ok {
		affected := []topology.NodeId{e.StartNode, e.EndNode}
		if err := g.RemoveEdgeLocked(e.ID); err != nil {
			return topology.Delta{}, nil, err
		}
		var delta topology.Delta
		delta.Deleted = append(delta.Deleted, idStr)
		delta.AddAffected(affected...)
		return delta, nil, nil
	}

	if n, ok := g.NodeLocked(topology.NodeId(idStr)); ok {
		if n.Degree() != 0 {
			return topology.Delta{}, nil, topology.ErrNodeStillReferenced
		}
		var delta topology.Delta
		delta.Deleted = append(delta.Deleted, idStr)
		return delta, nil, nil
	}

	return topology.Delta{}, nil, fmt.Errorf("kernelexec: %w: id %q is neither an edge nor a node", ErrInvalidParam, idStr)
}

// handleSolveJoins implements `solve_joins {}`: a read-only recomputation of
// every wall join in the current model, returned as response data. It
// performs no structural mutation (the delta is empty), so healing after it
// is a no-op pass over an unaffected model.
func handleSolveJoins(g *topology.Graph, _ map[string]interface{}) (topology.Delta, interface{}, error) {
	var walls []joins.WallRef
	for _, e := range g.EdgesLocked() {
		sn, ok1 := g.NodeLocked(e.StartNode)
		en, ok2 := g.NodeLocked(e.EndNode)
		if !ok1 || !ok2 {
			continue
		}
		walls = append(walls, joins.WallRef{
			ID:        string(e.ID),
			Start:     sn.Position,
			End:       en.Position,
			Thickness: e.Data.Thickness,
		})
	}

	result := joins.DetectJoins(walls, joins.DefaultTolerances())
	return topology.Delta{}, result, nil
}
