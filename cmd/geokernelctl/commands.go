package main

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func printResponse(resp interface{}) error {
	raw, err := gojson.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}

var (
	wallHeight    float64
	wallThickness float64
)

var addWallCmd = &cobra.Command{
	Use:   "add-wall <x0> <y0> <x1> <y1>",
	Short: "Add a wall edge between two points",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseFloats(args)
		if err != nil {
			return err
		}
		params := map[string]interface{}{
			"start":     []float64{coords[0], coords[1]},
			"end":       []float64{coords[2], coords[3]},
			"height":    wallHeight,
			"thickness": wallThickness,
		}
		resp, _, err := runCommand(statePath, "add_wall", params, newLogger())
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var moveNodeCmd = &cobra.Command{
	Use:   "move-node <node-id> <x> <y>",
	Short: "Move an existing node to a new position",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseFloats(args[1:])
		if err != nil {
			return err
		}
		params := map[string]interface{}{
			"node_id": args[0],
			"to":      []float64{coords[0], coords[1]},
		}
		resp, _, err := runCommand(statePath, "move_node", params, newLogger())
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var deleteElementCmd = &cobra.Command{
	Use:   "delete-element <id>",
	Short: "Delete a wall edge or orphan node by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := map[string]interface{}{"id": args[0]}
		resp, _, err := runCommand(statePath, "delete_element", params, newLogger())
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

var solveJoinsCmd = &cobra.Command{
	Use:   "solve-joins",
	Short: "Recompute and print every wall join in the current model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, _, err := runCommand(statePath, "solve_joins", map[string]interface{}{}, newLogger())
		if err != nil {
			return err
		}
		return printResponse(resp)
	},
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		var v float64
		if _, err := fmt.Sscanf(a, "%g", &v); err != nil {
			return nil, fmt.Errorf("geokernelctl: %q is not a number", a)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	addWallCmd.Flags().Float64Var(&wallHeight, "height", 2700, "wall height in millimetres")
	addWallCmd.Flags().Float64Var(&wallThickness, "thickness", 100, "wall thickness in millimetres")
}
