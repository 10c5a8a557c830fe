// Package wireframe projects line meshes to screen space with gg3d
// matrices. It is shared by the demo programs.
package wireframe

import "github.com/gogpu/gg3d"

// Segment is a line segment in screen pixels, origin at the top-left.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// Mesh is a set of vertices joined by edges.
type Mesh struct {
	Vertices []gg3d.Vec3f
	Edges    [][2]int
}

// Cube returns an axis-aligned cube of the given edge length centered on
// the origin.
func Cube(size float32) Mesh {
	h := size / 2
	verts := make([]gg3d.Vec3f, 0, 8)
	for i := range 8 {
		v := gg3d.Splat(-h)
		if i&1 != 0 {
			v.X = h
		}
		if i&2 != 0 {
			v.Y = h
		}
		if i&4 != 0 {
			v.Z = h
		}
		verts = append(verts, v)
	}

	// Vertices differing in exactly one bit share an edge.
	edges := make([][2]int, 0, 12)
	for a := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if b := a | bit; b != a {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	return Mesh{Vertices: verts, Edges: edges}
}

// Project transforms every edge by mvp and maps it to a width x height
// viewport. mvp must produce [-1, 1] clip depth (gg3d.Perspective).
// Edges with an endpoint behind the camera or outside the depth range are
// dropped rather than clipped.
func (m Mesh) Project(mvp gg3d.Mat4f, width, height int) []Segment {
	w, h := float32(width), float32(height)
	out := make([]Segment, 0, len(m.Edges))
	for _, e := range m.Edges {
		x0, y0, ok0 := project(mvp, m.Vertices[e[0]], w, h)
		x1, y1, ok1 := project(mvp, m.Vertices[e[1]], w, h)
		if !ok0 || !ok1 {
			continue
		}
		out = append(out, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
	}
	return out
}

func project(mvp gg3d.Mat4f, v gg3d.Vec3f, w, h float32) (x, y float32, ok bool) {
	c := mvp.MulVec4([4]float32{v.X, v.Y, v.Z, 1})
	if c[3] <= 0 {
		return 0, 0, false
	}
	ndc := gg3d.V3(c[0], c[1], c[2]).Div(c[3])
	if ndc.Z < -1 || ndc.Z > 1 || !ndc.IsFinite() {
		return 0, 0, false
	}
	return (ndc.X + 1) / 2 * w, (1 - ndc.Y) / 2 * h, true
}
