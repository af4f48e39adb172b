package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ serializes m as Wavefront OBJ: one `v` line per vertex, one `vn`
// line per distinct face normal, then one `f` line per face referencing
// both (1-based, `f v1//vn1 v2//vn1 v3//vn1`). No texture coordinates are
// written since this package never produces any.
func WriteOBJ(w io.Writer, m Mesh) error {
	bw := bufio.NewWriter(w)

	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, n := range m.Normals {
		if _, err := fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		vn := f.Normal + 1
		if _, err := fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
			f.Vertices[0]+1, vn, f.Vertices[1]+1, vn, f.Vertices[2]+1, vn); err != nil {
			return err
		}
	}
	return bw.Flush()
}
