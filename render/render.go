// Package render converts conduit quad meshes to triangle soup and writes
// binary STL for downstream tooling.
package render

import (
	"github.com/fabworks/conduit"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the triangle's unit normal following the right-hand rule
// over the vertex order.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if the triangle has two vertices within tol of
// each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return equalWithin(t.V[0], t.V[1], tol) ||
		equalWithin(t.V[1], t.V[2], tol) ||
		equalWithin(t.V[2], t.V[0], tol)
}

func equalWithin(a, b r3.Vec, tol float64) bool {
	d := r3.Sub(a, b)
	return d.X <= tol && d.X >= -tol &&
		d.Y <= tol && d.Y >= -tol &&
		d.Z <= tol && d.Z >= -tol
}

// Triangulate fans each mesh face into triangles, preserving winding. Quads
// yield two triangles each.
func Triangulate(m *conduit.Mesh) ([]Triangle3, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	tris := make([]Triangle3, 0, 2*m.NumFaces())
	offset := 0
	for _, count := range m.FaceCounts {
		face := m.FaceIndices[offset : offset+count]
		for i := 1; i < count-1; i++ {
			tris = append(tris, Triangle3{V: [3]r3.Vec{
				m.Points[face[0]],
				m.Points[face[i]],
				m.Points[face[i+1]],
			}})
		}
		offset += count
	}
	return tris, nil
}
