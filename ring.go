package conduit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ring is one ordered cross-section slice of the conduit. Point order is
// significant: it fixes face winding and is preserved by every transform.
// Rectangular rings hold 4 corners ordered TL, TR, BR, BL; round rings hold
// one point per circumferential segment.
type Ring []r3.Vec

// rectRing returns the four corners of a rectangular cross-section at flow
// coordinate t. The local frame is X flow, Y height, Z width, so a ring at
// t=0 lies entirely in the X=0 plane.
func rectRing(t, width, height float64) Ring {
	halfW := width / 2
	halfH := height / 2
	return Ring{
		{X: t, Y: halfH, Z: -halfW},  // TL
		{X: t, Y: halfH, Z: halfW},   // TR
		{X: t, Y: -halfH, Z: halfW},  // BR
		{X: t, Y: -halfH, Z: -halfW}, // BL
	}
}

// roundRing returns segments points evenly spaced around a circle of the
// given diameter, lying in the plane perpendicular to the flow axis at flow
// coordinate t.
func roundRing(t, diameter float64, segments int) Ring {
	radius := diameter / 2
	ring := make(Ring, segments)
	for i := 0; i < segments; i++ {
		phi := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = r3.Vec{X: t, Y: radius * math.Cos(phi), Z: radius * math.Sin(phi)}
	}
	return ring
}

// frameRing sweeps a circular ring of the given radius around center,
// oriented so forward is the ring normal. The frame is re-orthogonalized:
// right = unit(forward x up), up' = right x forward.
func frameRing(center, forward, up r3.Vec, radius float64, segments int) Ring {
	right := r3.Unit(r3.Cross(forward, up))
	actualUp := r3.Cross(right, forward)
	ring := make(Ring, segments)
	for i := 0; i < segments; i++ {
		phi := 2 * math.Pi * float64(i) / float64(segments)
		offset := r3.Add(
			r3.Scale(radius*math.Cos(phi), actualUp),
			r3.Scale(radius*math.Sin(phi), right),
		)
		ring[i] = r3.Add(center, offset)
	}
	return ring
}
