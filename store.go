package conduit

import "fmt"

// Metadata keys persisted with the generated mesh. They are the only state
// that outlives a generation call; regeneration reads them back into Params.
const (
	KeyVersion       = "generatorVersion"
	KeyGeneratorType = "generatorType"
	KeyWidth         = "width"
	KeyHeight        = "height"
	KeyDiameter      = "diameter"
	KeyLength        = "length"
	KeyRadius        = "radius"
	KeyAngle         = "angle"
	KeySegments      = "segments"
	KeyAddFlanges    = "add_flanges"
)

// recordVersion is written into every new record. Older (unversioned)
// records read back with defined defaults, see ReadMetadata.
const recordVersion = 1

// Record is the immutable parameter mirror persisted alongside the mesh.
// Writing a record and regenerating from it reproduces bit-identical
// point/face buffers for identical parameters.
type Record struct {
	Version    int
	Tag        string // shape/system/bend discriminant, e.g. "duct_round_bent"
	Width      float64
	Height     float64
	Diameter   float64
	Length     float64
	Radius     float64
	Angle      float64
	Segments   int
	AddFlanges bool
}

func recordOf(p Params) Record {
	return Record{
		Version:    recordVersion,
		Tag:        p.Tag(),
		Width:      p.Width,
		Height:     p.Height,
		Diameter:   p.Diameter,
		Length:     p.Length,
		Radius:     p.BendRadius,
		Angle:      p.BendAngle,
		Segments:   p.Segments,
		AddFlanges: p.AddFlanges,
	}
}

// Metadata flattens the record into the key/value pairs handed to the scene
// writer.
func (r Record) Metadata() map[string]any {
	return map[string]any{
		KeyVersion:       r.Version,
		KeyGeneratorType: r.Tag,
		KeyWidth:         r.Width,
		KeyHeight:        r.Height,
		KeyDiameter:      r.Diameter,
		KeyLength:        r.Length,
		KeyRadius:        r.Radius,
		KeyAngle:         r.Angle,
		KeySegments:      r.Segments,
		KeyAddFlanges:    r.AddFlanges,
	}
}

// Params reconstructs the generation parameters from the record.
func (r Record) Params() (Params, error) {
	p := Params{
		Width:      r.Width,
		Height:     r.Height,
		Diameter:   r.Diameter,
		Length:     r.Length,
		BendRadius: r.Radius,
		BendAngle:  r.Angle,
		Segments:   r.Segments,
		AddFlanges: r.AddFlanges,
	}
	switch r.Tag {
	case "duct_straight", "duct_bent":
		p.Shape, p.System = Rectangular, Duct
	case "duct_round_straight", "duct_round_bent":
		p.Shape, p.System = Round, Duct
	case "pipe_straight", "pipe_bent":
		p.Shape, p.System = Round, Pipe
	default:
		return Params{}, fmt.Errorf("unknown generator type %q", r.Tag)
	}
	return p, nil
}

// Store reads and writes regeneration records and re-runs the pipeline from
// stored parameters.
type Store struct {
	gen *Generator
}

// NewStore returns a Store backed by gen.
func NewStore(gen *Generator) *Store {
	return &Store{gen: gen}
}

// Write returns the record to persist for p.
func (s *Store) Write(p Params) Record {
	p.applyDefaults(s.gen.fab)
	return recordOf(p)
}

// Read reconstructs parameters from a stored record.
func (s *Store) Read(rec Record) (Params, error) {
	return rec.Params()
}

// ReadMetadata reconstructs a record from scene metadata. Fields absent from
// older records take defined defaults: segments from the fabrication
// defaults, add_flanges true.
func (s *Store) ReadMetadata(md map[string]any) (Record, error) {
	tag, ok := md[KeyGeneratorType].(string)
	if !ok || tag == "" {
		return Record{}, ErrMsg("record has no generator type")
	}
	rec := Record{
		Version:    mdInt(md, KeyVersion, 0),
		Tag:        tag,
		Width:      mdFloat(md, KeyWidth, 0),
		Height:     mdFloat(md, KeyHeight, 0),
		Diameter:   mdFloat(md, KeyDiameter, 0),
		Length:     mdFloat(md, KeyLength, 0),
		Radius:     mdFloat(md, KeyRadius, 0),
		Angle:      mdFloat(md, KeyAngle, 0),
		Segments:   mdInt(md, KeySegments, s.gen.fab.DefaultSegments),
		AddFlanges: mdBool(md, KeyAddFlanges, true),
	}
	if _, err := rec.Params(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Regenerate re-runs the full pipeline with the stored parameters. The
// external world placement passes through unchanged: regeneration is
// placement-preserving, geometry edits never move the object in the scene.
func (s *Store) Regenerate(rec Record, placement Placement) (*Result, Placement, error) {
	p, err := s.Read(rec)
	if err != nil {
		return nil, placement, err
	}
	res, err := s.gen.Generate(p)
	if err != nil {
		return nil, placement, err
	}
	return res, placement, nil
}

func mdFloat(md map[string]any, key string, def float64) float64 {
	switch v := md[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	default:
		return def
	}
}

func mdInt(md map[string]any, key string, def int) int {
	switch v := md[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

func mdBool(md map[string]any, key string, def bool) bool {
	if v, ok := md[key].(bool); ok {
		return v
	}
	return def
}
