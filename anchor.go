package conduit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AnchorFrame is an orthonormal mating frame at an open conduit end. Flow is
// the outward flow axis; Right and Up complete the basis. The frame is
// exposed by reference for the external mating subsystem; it is not part of
// the mesh.
type AnchorFrame struct {
	Pos   r3.Vec
	Flow  r3.Vec
	Right r3.Vec
	Up    r3.Vec
}

// NewAnchorFrame constructs the frame at pos whose first axis is the
// normalized outward direction. The up reference is world +Z, falling back
// to +Y when the direction is close to vertical; the remaining axes are
// re-orthogonalized by cross products.
func NewAnchorFrame(pos, dir r3.Vec) AnchorFrame {
	flow := r3.Unit(dir)
	up := r3.Vec{Z: 1}
	if math.Abs(r3.Dot(flow, up)) > 0.99 {
		up = r3.Vec{Y: 1}
	}
	right := r3.Unit(r3.Cross(up, flow))
	up = r3.Unit(r3.Cross(flow, right))
	return AnchorFrame{Pos: pos, Flow: flow, Right: right, Up: up}
}

// Port is a mating interface at an open end: the anchor frame plus the port
// classification the mating subsystem matches on.
type Port struct {
	Frame AnchorFrame
	Type  string // connection family, e.g. "HVAC"
	Shape Shape
	// Rectangular port opening.
	Width, Height float64
	// Round port opening.
	Diameter float64
}

func rectPort(pos, dir r3.Vec, width, height float64) Port {
	return Port{
		Frame:  NewAnchorFrame(pos, dir),
		Type:   "HVAC",
		Shape:  Rectangular,
		Width:  width,
		Height: height,
	}
}

func roundPort(pos, dir r3.Vec, diameter float64) Port {
	return Port{
		Frame:    NewAnchorFrame(pos, dir),
		Type:     "HVAC",
		Shape:    Round,
		Diameter: diameter,
	}
}
