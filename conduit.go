// Package conduit generates watertight quad meshes for straight and bent
// rectangular or round duct and pipe runs, along with connection flanges,
// mid-span stiffeners and oriented port frames at each open end. Geometry is
// regenerated from scratch on every call; the only persistent state is the
// parameter record (see Record) whose round-trip reproduces identical
// point/face buffers.
package conduit

import "github.com/fabworks/conduit/config"

// Shape selects the conduit cross-section.
type Shape int

const (
	_ Shape = iota
	Rectangular
	Round
)

func (s Shape) String() (str string) {
	switch s {
	case Rectangular:
		str = "rectangular"
	case Round:
		str = "round"
	default:
		str = "unknown"
	}
	return str
}

// System classifies the run for downstream metadata. It never changes
// geometry: pipes and round ducts share the same generators.
type System int

const (
	_ System = iota
	Duct
	Pipe
)

func (s System) String() (str string) {
	switch s {
	case Duct:
		str = "duct"
	case Pipe:
		str = "pipe"
	default:
		str = "unknown"
	}
	return str
}

// Params are the engineering inputs of one generation call. All lengths are
// in the same linear unit. A run is straight when BendAngle == 0 and bent
// otherwise; Length applies to straight runs, BendRadius/BendAngle to bent
// ones.
type Params struct {
	Shape  Shape
	System System
	// Rectangular cross-section dimensions.
	Width, Height float64
	// Round cross-section dimension.
	Diameter float64
	// Total length of a straight run.
	Length float64
	// Centerline radius of the bend.
	BendRadius float64
	// Bend angle in degrees. Zero selects the straight generators.
	BendAngle float64
	// Tessellation count: rings along a rectangular bend, points around a
	// round circumference.
	Segments   int
	AddFlanges bool
}

// Bent reports whether the bent-run generators apply.
func (p Params) Bent() bool { return p.BendAngle != 0 }

func (p Params) validate() error {
	switch p.Shape {
	case Rectangular:
		if p.Width <= 0 || p.Height <= 0 {
			return ErrMsg("width/height <= 0")
		}
	case Round:
		if p.Diameter <= 0 {
			return ErrMsg("diameter <= 0")
		}
	default:
		return ErrMsg("unknown shape")
	}
	if p.System != Duct && p.System != Pipe {
		return ErrMsg("unknown system")
	}
	if p.Segments < 3 {
		return ErrMsg("segments < 3")
	}
	if p.Bent() {
		if p.BendRadius <= 0 {
			return ErrMsg("bend radius <= 0")
		}
	} else if p.Length <= 0 {
		return ErrMsg("length <= 0")
	}
	return nil
}

// kind is the closed variant the string discriminants resolve to. It is
// computed once per generation call and never re-checked per ring.
type kind int

const (
	kindRectStraight kind = iota
	kindRectBent
	kindRoundStraight
	kindRoundBent
)

func (p Params) kind() kind {
	if p.Shape == Round {
		if p.Bent() {
			return kindRoundBent
		}
		return kindRoundStraight
	}
	if p.Bent() {
		return kindRectBent
	}
	return kindRectStraight
}

// Tag returns the stored discriminant identifying shape, system and
// bend-vs-straight, e.g. "duct_bent" or "pipe_straight".
func (p Params) Tag() string {
	suffix := "straight"
	if p.Bent() {
		suffix = "bent"
	}
	switch p.kind() {
	case kindRoundStraight, kindRoundBent:
		if p.System == Pipe {
			return "pipe_" + suffix
		}
		return "duct_round_" + suffix
	default:
		return "duct_" + suffix
	}
}

// applyDefaults fills unset tessellation from fabrication defaults.
func (p *Params) applyDefaults(fab config.Fabrication) {
	if p.Segments == 0 {
		p.Segments = fab.DefaultSegments
	}
	if p.System == 0 {
		p.System = Duct
	}
}
