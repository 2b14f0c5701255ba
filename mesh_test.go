package conduit

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// A straight rectangular run is two rings and one quad per side; a straight
// round run is one quad per circumferential segment.
func TestFaceCountLaw(t *testing.T) {
	rect, err := Generate(Params{
		Shape: Rectangular, System: Duct,
		Width: 20, Height: 10, Length: 24, Segments: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := rect.Mesh.NumFaces(); got != 4 {
		t.Errorf("straight rectangular duct has %d faces, want 4", got)
	}
	if got := len(rect.Mesh.Points); got != 8 {
		t.Errorf("straight rectangular duct has %d points, want 8", got)
	}

	for _, segments := range []int{3, 8, 24} {
		round, err := Generate(Params{
			Shape: Round, System: Duct,
			Diameter: 12, Length: 24, Segments: segments,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := round.Mesh.NumFaces(); got != segments {
			t.Errorf("straight round duct with %d segments has %d faces", segments, got)
		}
	}
}

func TestMeshInvariants(t *testing.T) {
	for _, p := range roundTripParams() {
		p.AddFlanges = true
		res, err := Generate(p)
		if err != nil {
			t.Fatal(err)
		}
		if err := res.Mesh.Validate(); err != nil {
			t.Errorf("%s: %v", p.Tag(), err)
		}
		for _, c := range res.Mesh.FaceCounts {
			if c != 4 {
				t.Errorf("%s: non-quad face with %d vertices", p.Tag(), c)
			}
		}
	}
}

func TestAppendBlockRebasesIndices(t *testing.T) {
	m := stitchRings([]Ring{rectRing(0, 2, 2), rectRing(1, 2, 2)})
	points := len(m.Points)
	faces := m.NumFaces()
	m.AppendBlock(
		[]r3.Vec{{X: 9}, {Y: 9}, {Z: 9}, {X: 9, Y: 9}},
		[]int{0, 1, 2, 3},
		[]int{4},
	)
	if m.NumFaces() != faces+1 || len(m.Points) != points+4 {
		t.Fatal("block not appended")
	}
	appended := m.FaceIndices[len(m.FaceIndices)-4:]
	for i, idx := range appended {
		if idx != points+i {
			t.Errorf("appended index %d not rebased: got %d, want %d", i, idx, points+i)
		}
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestStitchRingsSharesAdjacentRings(t *testing.T) {
	rings := []Ring{
		roundRing(0, 12, 8),
		roundRing(10, 12, 8),
		roundRing(20, 12, 8),
	}
	m := stitchRings(rings)
	if got := m.NumFaces(); got != 16 {
		t.Fatalf("3-ring 8-segment tube has %d faces, want 16", got)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	// Quads between ring pairs reference both rings, nothing else.
	for f := 0; f < m.NumFaces(); f++ {
		pair := f / 8
		lo, hi := pair*8, (pair+2)*8
		for _, idx := range m.FaceIndices[f*4 : f*4+4] {
			if idx < lo || idx >= hi {
				t.Errorf("face %d index %d outside ring pair [%d,%d)", f, idx, lo, hi)
			}
		}
	}
}
