// Package geometry builds indexed triangle meshes on the CPU.
//
// Vertices are interleaved as position(3) normal(3) uv(2), matching the
// attribute layout the renderer binds.
package geometry

import (
	stdmath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// FloatsPerVertex is the stride of Geometry.Vertices in float32s.
const FloatsPerVertex = 8

// Geometry is an indexed triangle list. It is immutable once built; the
// renderer uploads it lazily and keys its GPU buffers on the pointer.
type Geometry struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / FloatsPerVertex
}

// Position returns vertex i's position.
func (g *Geometry) Position(i int) math.Vec3 {
	o := i * FloatsPerVertex
	return math.V3(g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2])
}

// Normal returns vertex i's normal.
func (g *Geometry) Normal(i int) math.Vec3 {
	o := i*FloatsPerVertex + 3
	return math.V3(g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2])
}

func (g *Geometry) push(p, n math.Vec3, u, v float32) {
	g.Vertices = append(g.Vertices, p.X, p.Y, p.Z, n.X, n.Y, n.Z, u, v)
}

// Sphere builds a UV sphere centred on the origin. The texture seam runs
// along -X and v=1 is the north pole.
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)
	g := &Geometry{Name: "sphere"}

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		sinT, cosT := stdmath.Sincos(v * stdmath.Pi)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			sinP, cosP := stdmath.Sincos(u * 2 * stdmath.Pi)
			n := math.V3(float32(-cosP*sinT), float32(cosT), float32(sinP*sinT))
			g.push(n.Scale(radius), n, float32(u), float32(1-v))
		}
	}

	row := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}

// boxFaces lists each face's normal and the two in-plane axes (u, v) such
// that u x v == normal.
var boxFaces = [6][3]math.Vec3{
	{{X: 1}, {Z: -1}, {Y: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {X: 1}, {Z: -1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: -1}, {Y: 1}},
}

// Box builds an axis-aligned box centred on the origin with 24 vertices so
// each face has flat normals.
func Box(width, height, depth float32) *Geometry {
	g := &Geometry{Name: "box"}
	half := math.V3(width/2, height/2, depth/2)
	mul := func(a, b math.Vec3) math.Vec3 { return math.V3(a.X*b.X, a.Y*b.Y, a.Z*b.Z) }

	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(g.VertexCount())
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := n.Add(u.Scale(c[0])).Add(v.Scale(c[1]))
			g.push(mul(p, half), n, (c[0]+1)/2, (c[1]+1)/2)
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// Plane builds a quad in the XY plane facing +Z.
func Plane(width, height float32) *Geometry {
	g := &Geometry{Name: "plane"}
	n := math.V3(0, 0, 1)
	w, h := width/2, height/2
	g.push(math.V3(-w, -h, 0), n, 0, 0)
	g.push(math.V3(w, -h, 0), n, 1, 0)
	g.push(math.V3(w, h, 0), n, 1, 1)
	g.push(math.V3(-w, h, 0), n, 0, 1)
	g.Indices = []uint32{0, 1, 2, 0, 2, 3}
	return g
}

// BoxEdges returns the 12 edges of a box as pairs of endpoints, for drawing
// with a segment line.
func BoxEdges(width, height, depth float32) []math.Vec3 {
	w, h, d := width/2, height/2, depth/2
	c := [8]math.Vec3{
		{X: -w, Y: -h, Z: -d}, {X: w, Y: -h, Z: -d}, {X: w, Y: h, Z: -d}, {X: -w, Y: h, Z: -d},
		{X: -w, Y: -h, Z: d}, {X: w, Y: -h, Z: d}, {X: w, Y: h, Z: d}, {X: -w, Y: h, Z: d},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]math.Vec3, 0, 24)
	for _, e := range edges {
		out = append(out, c[e[0]], c[e[1]])
	}
	return out
}

// Ellipse samples n points on an axis-aligned ellipse in the XZ plane.
// The first point lies on +X; the curve is closed by the caller.
func Ellipse(center math.Vec3, radiusX, radiusZ float32, n int) []math.Vec3 {
	if n <= 0 {
		return nil
	}
	pts := make([]math.Vec3, n)
	for i := range pts {
		a := 2 * stdmath.Pi * float64(i) / float64(n)
		s, c := stdmath.Sincos(a)
		pts[i] = center.Add(math.V3(radiusX*float32(c), 0, radiusZ*float32(s)))
	}
	return pts
}
