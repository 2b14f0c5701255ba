package conduit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// bendMap is the closed-form three-region map for rectangular bends. It
// takes a point in parametric space (X: flow coordinate t, Y: height offset,
// Z: width offset) and returns the world-space point. The bend turns in the
// flow/width (X-Z) plane; height passes through unchanged.
//
// Regions:
//
//	t < 0      lead-in straight, t is world distance along -X
//	0 <= t <=1 the bend, theta = t*angle, r = radius + w
//	t > 1      lead-out straight, extruded along the exit tangent
//
// The lead-in formula keeps the lateral offset at -w so that it matches the
// bend formula at theta=0: radius - (radius+w)*cos(0) = -w. That identity is
// what keeps the three regions C0-continuous.
type bendMap struct {
	radius float64 // centerline bend radius, > 0
	angle  float64 // total bend angle in radians
}

func (b bendMap) warp(p r3.Vec) r3.Vec {
	t := p.X
	h := p.Y
	w := p.Z
	var x, z float64
	switch {
	case t < 0:
		x = t
		z = -w
	case t > 1:
		r := b.radius + w
		exitX := r * math.Sin(b.angle)
		exitZ := b.radius - r*math.Cos(b.angle)
		dist := t - 1
		x = exitX + math.Cos(b.angle)*dist
		z = exitZ + math.Sin(b.angle)*dist
	default:
		theta := t * b.angle
		r := b.radius + w
		x = r * math.Sin(theta)
		z = b.radius - r*math.Cos(theta)
	}
	return r3.Vec{X: x, Y: h, Z: z}
}

// centerlineExit returns the world position and unit tangent of the bend
// centerline at its exit (theta = angle). Used to place the trailing anchor.
func (b bendMap) centerlineExit() (pos, tangent r3.Vec) {
	pos = r3.Vec{
		X: b.radius * math.Sin(b.angle),
		Z: b.radius - b.radius*math.Cos(b.angle),
	}
	tangent = r3.Vec{X: math.Cos(b.angle), Z: math.Sin(b.angle)}
	return pos, tangent
}

// roundCenterline samples the bent round centerline at bend angle theta.
// Round bends turn in the X-Y plane with a fixed Z-up sweep frame.
func roundCenterline(bendRadius, theta float64) (center, forward r3.Vec) {
	center = r3.Vec{
		X: bendRadius * math.Sin(theta),
		Y: bendRadius - bendRadius*math.Cos(theta),
	}
	forward = r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	return center, forward
}
