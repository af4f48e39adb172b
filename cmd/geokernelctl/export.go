package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pensaer/geokernel/element"
	"github.com/pensaer/geokernel/ifcio"
	"github.com/pensaer/geokernel/mesh"
)

var exportOutPath string

var exportOBJCmd = &cobra.Command{
	Use:   "export-obj",
	Short: "Write the current model's walls and room floors as Wavefront OBJ",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(statePath, newLogger())
		if err != nil {
			return err
		}

		combined := mesh.Mesh{}
		for _, e := range g.Edges() {
			sn, ok1 := g.Node(e.StartNode)
			en, ok2 := g.Node(e.EndNode)
			if !ok1 || !ok2 {
				continue
			}
			wall := element.NewWallFromEdge(string(e.ID), sn.Position, en.Position, 0, e.Data)
			m, err := wall.ToMesh()
			if err != nil {
				return fmt.Errorf("geokernelctl: meshing wall %s: %w", e.ID, err)
			}
			appendMesh(&combined, m)
		}
		for _, r := range g.InteriorRooms() {
			room, err := element.NewRoomFromTopoRoom(string(r.ID), g, r, 0, 0)
			if err != nil {
				continue
			}
			m, err := room.ToMesh()
			if err != nil {
				continue
			}
			appendMesh(&combined, m)
		}

		out := os.Stdout
		if exportOutPath != "" {
			f, err := os.Create(exportOutPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return mesh.WriteOBJ(out, combined)
	},
}

var (
	ifcProjectName string
	ifcAuthor      string
)

var exportIFCCmd = &cobra.Command{
	Use:   "export-ifc",
	Short: "Write the current model as an IFC STEP file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(statePath, newLogger())
		if err != nil {
			return err
		}

		x := ifcio.NewExporter(ifcProjectName, ifcAuthor)
		for _, e := range g.Edges() {
			sn, ok1 := g.Node(e.StartNode)
			en, ok2 := g.Node(e.EndNode)
			if !ok1 || !ok2 {
				continue
			}
			x.AddWall(element.NewWallFromEdge(string(e.ID), sn.Position, en.Position, 0, e.Data))
		}
		for _, r := range g.InteriorRooms() {
			room, err := element.NewRoomFromTopoRoom(string(r.ID), g, r, 0, 0)
			if err != nil {
				continue
			}
			x.AddRoom(room)
		}

		content, err := x.Export()
		if err != nil {
			return err
		}

		if exportOutPath == "" {
			fmt.Print(content)
			return nil
		}
		return os.WriteFile(exportOutPath, []byte(content), 0o644)
	},
}

// appendMesh merges src into dst, offsetting each face's vertex and normal
// indices by dst's current sizes. mesh.Mesh's own append helpers are
// unexported (element.appendFlatTriangle takes the same approach), so
// callers outside the package build meshes by appending to its exported
// slices directly.
func appendMesh(dst *mesh.Mesh, src mesh.Mesh) {
	vOffset := len(dst.Vertices)
	nOffset := len(dst.Normals)
	dst.Vertices = append(dst.Vertices, src.Vertices...)
	dst.Normals = append(dst.Normals, src.Normals...)
	for _, f := range src.Faces {
		dst.Faces = append(dst.Faces, mesh.Face{
			Vertices: [3]int{f.Vertices[0] + vOffset, f.Vertices[1] + vOffset, f.Vertices[2] + vOffset},
			Normal:   f.Normal + nOffset,
		})
	}
}

func init() {
	exportOBJCmd.Flags().StringVarP(&exportOutPath, "out", "o", "", "output file (default: stdout)")
	exportIFCCmd.Flags().StringVarP(&exportOutPath, "out", "o", "", "output file (default: stdout)")
	exportIFCCmd.Flags().StringVar(&ifcProjectName, "project", "Untitled Project", "IFC project name")
	exportIFCCmd.Flags().StringVar(&ifcAuthor, "author", "geokernelctl", "IFC author name")
}
