package conduit

import "gonum.org/v1/gonum/spatial/r3"

// Mesh is a polygonal mesh as flat buffers: a dense point array, the vertex
// count of each face and the flattened face-vertex indices into Points.
// Every face this engine emits is a quad. Invariants:
// sum(FaceCounts) == len(FaceIndices) and every index < len(Points).
type Mesh struct {
	Points      []r3.Vec
	FaceCounts  []int
	FaceIndices []int
}

// NumFaces returns the number of faces in the mesh.
func (m *Mesh) NumFaces() int { return len(m.FaceCounts) }

// Validate checks the mesh buffer invariants.
func (m *Mesh) Validate() error {
	total := 0
	for _, c := range m.FaceCounts {
		if c < 3 {
			return ErrMsg("face with fewer than 3 vertices")
		}
		total += c
	}
	if total != len(m.FaceIndices) {
		return ErrMsg("face counts do not sum to index buffer length")
	}
	for _, idx := range m.FaceIndices {
		if idx < 0 || idx >= len(m.Points) {
			return ErrMsg("face index out of range")
		}
	}
	return nil
}

// AppendBlock appends an additive point/face block (flange, stiffener) to
// the mesh, rebasing the block's indices onto the current point buffer.
// Existing points and faces are never moved or reordered.
func (m *Mesh) AppendBlock(points []r3.Vec, faceIndices, faceCounts []int) {
	base := len(m.Points)
	m.Points = append(m.Points, points...)
	for _, idx := range faceIndices {
		m.FaceIndices = append(m.FaceIndices, idx+base)
	}
	m.FaceCounts = append(m.FaceCounts, faceCounts...)
}

// Transformed returns a copy of the mesh with the placement applied to every
// point. Topology buffers are shared semantically but copied so the result
// is independent of the receiver.
func (m *Mesh) Transformed(pl Placement) *Mesh {
	out := &Mesh{
		Points:      make([]r3.Vec, len(m.Points)),
		FaceCounts:  append([]int(nil), m.FaceCounts...),
		FaceIndices: append([]int(nil), m.FaceIndices...),
	}
	for i, p := range m.Points {
		out.Points[i] = pl.Transform(p)
	}
	return out
}

// stitchRings lofts an ordered ring sequence into an open tube: one quad per
// ring point between every pair of consecutive rings, wrapping around the
// ring. Each ring owns its points; no vertex welding is performed.
func stitchRings(rings []Ring) *Mesh {
	n := len(rings[0])
	m := &Mesh{}
	for _, ring := range rings {
		m.Points = append(m.Points, ring...)
	}
	for r := 0; r < len(rings)-1; r++ {
		base := r * n
		next := (r + 1) * n
		for i := 0; i < n; i++ {
			iNext := (i + 1) % n
			m.FaceIndices = append(m.FaceIndices,
				base+i, next+i, next+iNext, base+iNext)
			m.FaceCounts = append(m.FaceCounts, 4)
		}
	}
	return m
}
