package conduit

import (
	"testing"

	"github.com/fabworks/conduit/config"
	"gonum.org/v1/gonum/spatial/r3"
)

// roundTripParams covers all four sweep paths; the shared reference cases for
// the regeneration and mesh invariant tests.
func roundTripParams() []Params {
	return []Params{
		{
			Shape: Rectangular, System: Duct,
			Width: 20, Height: 10, Length: 48, Segments: 20,
		},
		{
			Shape: Rectangular, System: Duct,
			Width: 20, Height: 10, BendRadius: 30, BendAngle: 90, Segments: 20,
		},
		{
			Shape: Round, System: Duct,
			Diameter: 12, Length: 36, Segments: 24,
		},
		{
			Shape: Round, System: Pipe,
			Diameter: 12, BendRadius: 18, BendAngle: 45, Segments: 16,
		},
	}
}

func sameMesh(a, b *Mesh) bool {
	if len(a.Points) != len(b.Points) ||
		len(a.FaceIndices) != len(b.FaceIndices) ||
		len(a.FaceCounts) != len(b.FaceCounts) {
		return false
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			return false
		}
	}
	for i := range a.FaceIndices {
		if a.FaceIndices[i] != b.FaceIndices[i] {
			return false
		}
	}
	for i := range a.FaceCounts {
		if a.FaceCounts[i] != b.FaceCounts[i] {
			return false
		}
	}
	return true
}

// Regenerating from a stored record reproduces the original buffers
// bit-identically.
func TestRoundTripIdentical(t *testing.T) {
	gen := New(config.Default(), nil)
	store := NewStore(gen)
	for _, p := range roundTripParams() {
		p.AddFlanges = true
		want, err := gen.Generate(p)
		if err != nil {
			t.Fatal(err)
		}
		rec := store.Write(p)
		got, _, err := store.Regenerate(rec, IdentityPlacement())
		if err != nil {
			t.Fatalf("%s: %v", rec.Tag, err)
		}
		if !sameMesh(want.Mesh, got.Mesh) {
			t.Errorf("%s: regenerated mesh differs from original", rec.Tag)
		}
		if got.Record != want.Record {
			t.Errorf("%s: record changed across round trip", rec.Tag)
		}
	}
}

// Regeneration never touches the scene placement.
func TestRegeneratePreservesPlacement(t *testing.T) {
	store := NewStore(New(config.Default(), nil))
	rec := store.Write(roundTripParams()[0])
	pl := NewPlacement(DtoR(30), r3.Vec{Z: 1}, r3.Vec{X: 100, Y: -4, Z: 9})
	_, out, err := store.Regenerate(rec, pl)
	if err != nil {
		t.Fatal(err)
	}
	if out.Translation != pl.Translation {
		t.Errorf("placement translation changed: %v", out.Translation)
	}
	probe := r3.Vec{X: 1, Y: 2, Z: 3}
	if pl.Transform(probe) != out.Transform(probe) {
		t.Error("placement rotation changed")
	}
}

func TestRecordTags(t *testing.T) {
	cases := []struct {
		p   Params
		tag string
	}{
		{Params{Shape: Rectangular, System: Duct, Width: 1, Height: 1, Length: 1}, "duct_straight"},
		{Params{Shape: Rectangular, System: Duct, Width: 1, Height: 1, BendRadius: 1, BendAngle: 90}, "duct_bent"},
		{Params{Shape: Round, System: Duct, Diameter: 1, Length: 1}, "duct_round_straight"},
		{Params{Shape: Round, System: Duct, Diameter: 1, BendRadius: 1, BendAngle: 45}, "duct_round_bent"},
		{Params{Shape: Round, System: Pipe, Diameter: 1, Length: 1}, "pipe_straight"},
		{Params{Shape: Round, System: Pipe, Diameter: 1, BendRadius: 1, BendAngle: 45}, "pipe_bent"},
	}
	for _, c := range cases {
		if got := c.p.Tag(); got != c.tag {
			t.Errorf("got tag %q, want %q", got, c.tag)
		}
		back, err := Record{Tag: c.tag}.Params()
		if err != nil {
			t.Fatalf("%s: %v", c.tag, err)
		}
		if back.Shape != c.p.Shape || back.System != c.p.System {
			t.Errorf("%s: shape/system did not survive the tag", c.tag)
		}
	}
}

func TestReadUnknownTag(t *testing.T) {
	store := NewStore(New(config.Default(), nil))
	if _, err := store.Read(Record{Tag: "duct_spiral"}); err == nil {
		t.Error("unknown generator type accepted")
	}
	if _, err := store.ReadMetadata(map[string]any{KeyGeneratorType: "duct_spiral"}); err == nil {
		t.Error("unknown generator type accepted from metadata")
	}
	if _, err := store.ReadMetadata(map[string]any{KeyWidth: 20.0}); err == nil {
		t.Error("metadata without generator type accepted")
	}
}

// Records written before versioning carry neither segments nor the flange
// toggle; reading them applies the documented defaults.
func TestReadMetadataLegacyDefaults(t *testing.T) {
	store := NewStore(New(config.Default(), nil))
	rec, err := store.ReadMetadata(map[string]any{
		KeyGeneratorType: "duct_straight",
		KeyWidth:         20.0,
		KeyHeight:        10.0,
		KeyLength:        48.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Version != 0 {
		t.Errorf("legacy record version got %d, want 0", rec.Version)
	}
	if rec.Segments != config.Default().DefaultSegments {
		t.Errorf("legacy segments got %d, want %d", rec.Segments, config.Default().DefaultSegments)
	}
	if !rec.AddFlanges {
		t.Error("legacy record did not default to flanges on")
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	store := NewStore(New(config.Default(), nil))
	want := store.Write(roundTripParams()[1])
	got, err := store.ReadMetadata(want.Metadata())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("metadata round trip changed the record:\n got %+v\nwant %+v", got, want)
	}
}
