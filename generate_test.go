package conduit

import (
	"math"
	"testing"

	"github.com/fabworks/conduit/config"
	"github.com/fabworks/conduit/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"zero width", Params{Shape: Rectangular, Height: 10, Length: 24}},
		{"negative height", Params{Shape: Rectangular, Width: 20, Height: -1, Length: 24}},
		{"zero diameter", Params{Shape: Round, Length: 24}},
		{"zero length straight", Params{Shape: Rectangular, Width: 20, Height: 10}},
		{"zero bend radius", Params{Shape: Rectangular, Width: 20, Height: 10, BendAngle: 90}},
		{"negative bend radius", Params{Shape: Round, Diameter: 12, BendAngle: 45, BendRadius: -18}},
		{"segments below 3", Params{Shape: Round, Diameter: 12, Length: 24, Segments: 2}},
		{"unknown shape", Params{Length: 24}},
	}
	for _, c := range cases {
		if _, err := Generate(c.p); err == nil {
			t.Errorf("%s: accepted", c.name)
		}
	}
}

// Invalid parameters must fail before any geometry work, never panic.
func TestInvalidParametersDoNotPanic(t *testing.T) {
	defer func() {
		if a := recover(); a != nil {
			t.Fatalf("validation panicked: %v", a)
		}
	}()
	Generate(Params{Shape: Rectangular, Width: -1, Height: -1, Length: -1})
	Generate(Params{Shape: Round, Diameter: 0, BendAngle: 360, BendRadius: 0})
}

func TestDefaultSegments(t *testing.T) {
	res, err := Generate(Params{Shape: Round, System: Duct, Diameter: 12, Length: 24})
	if err != nil {
		t.Fatal(err)
	}
	want := config.Default().DefaultSegments
	if res.Record.Segments != want {
		t.Errorf("defaulted segments got %d, want %d", res.Record.Segments, want)
	}
	if got := res.Mesh.NumFaces(); got != want {
		t.Errorf("straight round duct has %d faces, want %d", got, want)
	}
}

func TestStraightRunPorts(t *testing.T) {
	res, err := Generate(Params{
		Shape: Rectangular, System: Duct,
		Width: 20, Height: 10, Length: 48,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !d3.EqualWithin(res.Start.Frame.Pos, r3.Vec{}, tolerance) {
		t.Errorf("start port at %v, want origin", res.Start.Frame.Pos)
	}
	if !d3.EqualWithin(res.Start.Frame.Flow, r3.Vec{X: -1}, tolerance) {
		t.Errorf("start port flow %v, want -X", res.Start.Frame.Flow)
	}
	if !d3.EqualWithin(res.End.Frame.Pos, r3.Vec{X: 48}, tolerance) {
		t.Errorf("end port at %v, want {48 0 0}", res.End.Frame.Pos)
	}
	if !d3.EqualWithin(res.End.Frame.Flow, r3.Vec{X: 1}, tolerance) {
		t.Errorf("end port flow %v, want +X", res.End.Frame.Flow)
	}
	if res.Start.Shape != Rectangular || res.Start.Width != 20 || res.Start.Height != 10 {
		t.Errorf("start port opening %+v", res.Start)
	}
	if res.Start.Type != "HVAC" {
		t.Errorf("port type %q, want HVAC", res.Start.Type)
	}
}

// Bent-run end ports sit one lead length beyond the bend exit, facing along
// the exit tangent.
func TestBentRunPorts(t *testing.T) {
	fab := config.Default()
	res, err := New(fab, nil).Generate(Params{
		Shape: Rectangular, System: Duct,
		Width: 20, Height: 10, BendRadius: 30, BendAngle: 90, Segments: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	wantStart := r3.Vec{X: -fab.LeadLength}
	if !d3.EqualWithin(res.Start.Frame.Pos, wantStart, tolerance) {
		t.Errorf("start port at %v, want %v", res.Start.Frame.Pos, wantStart)
	}
	wantEnd := r3.Vec{X: 30, Z: 30 + fab.LeadLength}
	if !d3.EqualWithin(res.End.Frame.Pos, wantEnd, tolerance) {
		t.Errorf("end port at %v, want %v", res.End.Frame.Pos, wantEnd)
	}
	if !d3.EqualWithin(res.End.Frame.Flow, r3.Vec{Z: 1}, tolerance) {
		t.Errorf("end port flow %v, want +Z", res.End.Frame.Flow)
	}
}

func TestRoundBentRunPorts(t *testing.T) {
	fab := config.Default()
	res, err := New(fab, nil).Generate(Params{
		Shape: Round, System: Pipe,
		Diameter: 12, BendRadius: 18, BendAngle: 90, Segments: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	wantEnd := r3.Vec{X: 18, Y: 18 + fab.LeadLength}
	if !d3.EqualWithin(res.End.Frame.Pos, wantEnd, tolerance) {
		t.Errorf("end port at %v, want %v", res.End.Frame.Pos, wantEnd)
	}
	if !d3.EqualWithin(res.End.Frame.Flow, r3.Vec{Y: 1}, tolerance) {
		t.Errorf("end port flow %v, want +Y", res.End.Frame.Flow)
	}
	if res.End.Shape != Round || res.End.Diameter != 12 {
		t.Errorf("end port opening %+v", res.End)
	}
}

// The bend tessellation scales with the swept angle and never drops below
// the fabrication floor.
func TestRoundBendRingCount(t *testing.T) {
	fab := config.Default()
	g := New(fab, nil)

	shallow, err := g.Generate(Params{
		Shape: Round, System: Duct,
		Diameter: 12, BendRadius: 18, BendAngle: 5, Segments: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	full, err := g.Generate(Params{
		Shape: Round, System: Duct,
		Diameter: 12, BendRadius: 18, BendAngle: 90, Segments: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if full.Mesh.NumFaces() <= shallow.Mesh.NumFaces() {
		t.Error("90 degree bend not tessellated finer than 5 degree bend")
	}
	// 5 degrees at 16 segments rounds down to 0 bend spans; the floor keeps
	// the bend smooth.
	minFaces := 16 * fab.MinBendRings
	if got := shallow.Mesh.NumFaces(); got < minFaces {
		t.Errorf("shallow bend has %d faces, want at least %d", got, minFaces)
	}
}

// Each wall ring of a bent rectangular run keeps its transverse extent; the
// warp bends the centerline without squeezing the cross-section.
func TestBentRectCrossSection(t *testing.T) {
	res, err := Generate(Params{
		Shape: Rectangular, System: Duct,
		Width: 20, Height: 10, BendRadius: 30, BendAngle: 90, Segments: 20,
		AddFlanges: false,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(res.Mesh.Points); i += 4 {
		ring := res.Mesh.Points[i : i+4]
		d := r3.Norm(r3.Sub(ring[0], ring[3]))
		if math.Abs(d-10) > tolerance {
			t.Errorf("ring at %d: height %g, want 10", i, d)
		}
	}
}
