package conduit

import "gonum.org/v1/gonum/spatial/r3"

// sweep builds the ordered ring sequence along the full conduit. Bent runs
// get a short straight lead-in and lead-out at each end (for flange welding)
// around the tessellated bend; straight runs need no intermediate rings
// because their sides are planar, so they get exactly two.
type sweep struct {
	leadLength   float64 // length of each straight end section on bent runs
	leadRings    int     // rings per straight end section
	minBendRings int     // lower bound on bend tessellation for round runs
}

func warpRing(ring Ring, b bendMap) Ring {
	out := make(Ring, len(ring))
	for i, p := range ring {
		out[i] = b.warp(p)
	}
	return out
}

// rectStraight returns the two rings of a straight rectangular run.
func (s sweep) rectStraight(width, height, length float64) []Ring {
	return []Ring{
		rectRing(0, width, height),
		rectRing(length, width, height),
	}
}

// rectBent returns lead-in, bend and lead-out rings for a rectangular bend.
// Rings are built in parametric space and pushed through the bend map, so
// the lead sections stay aligned with the bend entry and exit by
// construction.
func (s sweep) rectBent(width, height, radius, angleDeg float64, segments int) []Ring {
	b := bendMap{radius: radius, angle: DtoR(angleDeg)}
	rings := make([]Ring, 0, 2*s.leadRings+segments+1)
	for i := 0; i < s.leadRings; i++ {
		t := -s.leadLength * (1 - float64(i)/float64(s.leadRings-1))
		rings = append(rings, warpRing(rectRing(t, width, height), b))
	}
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		rings = append(rings, warpRing(rectRing(t, width, height), b))
	}
	for i := 0; i < s.leadRings; i++ {
		t := 1 + s.leadLength*float64(i)/float64(s.leadRings-1)
		rings = append(rings, warpRing(rectRing(t, width, height), b))
	}
	return rings
}

// roundStraight returns the two rings of a straight round run.
func (s sweep) roundStraight(diameter, length float64, segments int) []Ring {
	return []Ring{
		roundRing(0, diameter, segments),
		roundRing(length, diameter, segments),
	}
}

// bendRingCount returns the ring tessellation along a round bend. Sharper
// bends get proportionally more rings, never fewer than the configured
// minimum.
func (s sweep) bendRingCount(segments int, angleDeg float64) int {
	n := int(float64(segments) * angleDeg / 90)
	if n < s.minBendRings {
		n = s.minBendRings
	}
	return n
}

// roundBent sweeps circular rings along the bent round centerline. The bend
// turns in the X-Y plane with a fixed Z-up frame; the straight end sections
// use the entry and exit tangents.
func (s sweep) roundBent(diameter, radius, angleDeg float64, segments int) []Ring {
	ductRadius := diameter / 2
	angle := DtoR(angleDeg)
	up := r3.Vec{Z: 1}
	bendRings := s.bendRingCount(segments, angleDeg)

	rings := make([]Ring, 0, 2*s.leadRings+bendRings+1)
	for i := 0; i < s.leadRings; i++ {
		t := -s.leadLength * (1 - float64(i)/float64(s.leadRings-1))
		center := r3.Vec{X: t}
		rings = append(rings, frameRing(center, r3.Vec{X: 1}, up, ductRadius, segments))
	}
	for i := 0; i <= bendRings; i++ {
		theta := angle * float64(i) / float64(bendRings)
		center, forward := roundCenterline(radius, theta)
		rings = append(rings, frameRing(center, forward, up, ductRadius, segments))
	}
	exit, tangent := roundCenterline(radius, angle)
	for i := 0; i < s.leadRings; i++ {
		t := s.leadLength * float64(i) / float64(s.leadRings-1)
		center := r3.Add(exit, r3.Scale(t, tangent))
		rings = append(rings, frameRing(center, tangent, up, ductRadius, segments))
	}
	return rings
}
