package conduit

import "gonum.org/v1/gonum/spatial/r3"

// Placement is a rigid world transform (rotation then translation) owned by
// the surrounding scene. Generation always produces local geometry;
// regeneration hands the placement back unchanged so parameter edits never
// move the object in the scene.
type Placement struct {
	Rotation    r3.Rotation
	Translation r3.Vec
}

// IdentityPlacement returns the placement that leaves geometry untouched.
func IdentityPlacement() Placement {
	return Placement{Rotation: r3.NewRotation(0, r3.Vec{Z: 1})}
}

// NewPlacement returns a placement rotating by alpha radians about axis and
// translating by t.
func NewPlacement(alpha float64, axis, t r3.Vec) Placement {
	return Placement{Rotation: r3.NewRotation(alpha, axis), Translation: t}
}

// Transform applies the placement to a point.
func (pl Placement) Transform(p r3.Vec) r3.Vec {
	return r3.Add(pl.Rotation.Rotate(p), pl.Translation)
}
