package conduit

import (
	"github.com/fabworks/conduit/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Flange geometry. Both variants are pure functions of the end ring and the
// flange dimensions; they return an additive block the caller appends to the
// running mesh. Degenerate rings (zero-area, coincident points) panic; the
// generation pipeline recovers, logs and omits the block.

const degenerateTol = 1e-12

// unitOrPanic normalizes v, panicking when the vector is too short to carry
// a direction.
func unitOrPanic(v r3.Vec, what string) r3.Vec {
	n := r3.Norm(v)
	if n <= degenerateTol {
		panic("degenerate " + what)
	}
	return r3.Scale(1/n, v)
}

// angleFlange builds an angle-iron flange on a 4-corner end ring: a face
// plate flush with the duct opening plus a mitered web frame hugging the
// duct wall. The outward direction of each edge is the unit vector from the
// ring centroid to the edge midpoint, which is outward regardless of
// winding; each corner offsets by the sum of its two adjacent edge
// directions, mitering the corner. isStart flips the plate normal so flanges
// at either end face away from the duct body.
func angleFlange(ring Ring, leg, thickness float64, isStart bool) (points []r3.Vec, faceIndices, faceCounts []int) {
	tl, tr, br, bl := ring[0], ring[1], ring[2], ring[3]

	rightVec := r3.Sub(tr, tl)
	downVec := r3.Sub(bl, tl)
	normal := unitOrPanic(r3.Cross(rightVec, downVec), "ring normal")
	if !isStart {
		normal = r3.Scale(-1, normal)
	}

	center := d3.Set(ring).Centroid()
	outward := func(a, b r3.Vec) r3.Vec {
		mid := r3.Scale(0.5, r3.Add(a, b))
		return unitOrPanic(r3.Sub(mid, center), "edge direction")
	}
	perpTop := outward(tl, tr)
	perpRight := outward(tr, br)
	perpBottom := outward(br, bl)
	perpLeft := outward(bl, tl)

	miter := func(corner, pa, pb r3.Vec, dist float64) r3.Vec {
		return r3.Add(corner, r3.Scale(dist, r3.Add(pa, pb)))
	}

	// Face plate: inner ring at the opening, outer ring mitered out by the
	// leg length, extruded by thickness along the plate normal.
	tlOuter := miter(tl, perpTop, perpLeft, leg)
	trOuter := miter(tr, perpTop, perpRight, leg)
	brOuter := miter(br, perpBottom, perpRight, leg)
	blOuter := miter(bl, perpBottom, perpLeft, leg)

	f := len(points)
	points = append(points, tl, tr, br, bl)                     // inner front 0-3
	points = append(points, tlOuter, trOuter, brOuter, blOuter) // outer front 4-7
	backOffset := r3.Scale(thickness, normal)
	for i := 0; i < 8; i++ { // back ring 8-15
		points = append(points, r3.Add(points[f+i], backOffset))
	}

	quad := func(a, b, c, d int) {
		faceIndices = append(faceIndices, a, b, c, d)
	}
	// Front face (the mating surface).
	quad(f+0, f+4, f+5, f+1)
	quad(f+1, f+5, f+6, f+2)
	quad(f+2, f+6, f+7, f+3)
	quad(f+3, f+7, f+4, f+0)
	// Back face, winding reversed.
	quad(f+8, f+9, f+13, f+12)
	quad(f+9, f+10, f+14, f+13)
	quad(f+10, f+11, f+15, f+14)
	quad(f+11, f+8, f+12, f+15)
	// Outer rim.
	quad(f+4, f+12, f+13, f+5)
	quad(f+5, f+13, f+14, f+6)
	quad(f+6, f+14, f+15, f+7)
	quad(f+7, f+15, f+12, f+4)
	// Inner rim, against the duct wall.
	quad(f+0, f+1, f+9, f+8)
	quad(f+1, f+2, f+10, f+9)
	quad(f+2, f+3, f+11, f+10)
	quad(f+3, f+0, f+8, f+11)

	// Web frame: a thin continuous frame on the duct wall running from the
	// back of the face plate out to the leg length, mitered like the plate.
	tlWeb := miter(tl, perpTop, perpLeft, thickness)
	trWeb := miter(tr, perpTop, perpRight, thickness)
	brWeb := miter(br, perpBottom, perpRight, thickness)
	blWeb := miter(bl, perpBottom, perpLeft, thickness)

	startDepth := r3.Scale(thickness, normal)
	endDepth := r3.Scale(leg, normal)

	w := len(points)
	for _, p := range []r3.Vec{tl, tr, br, bl} { // web start inner 0-3
		points = append(points, r3.Add(p, startDepth))
	}
	for _, p := range []r3.Vec{tlWeb, trWeb, brWeb, blWeb} { // web start outer 4-7
		points = append(points, r3.Add(p, startDepth))
	}
	for _, p := range []r3.Vec{tl, tr, br, bl} { // web end inner 8-11
		points = append(points, r3.Add(p, endDepth))
	}
	for _, p := range []r3.Vec{tlWeb, trWeb, brWeb, blWeb} { // web end outer 12-15
		points = append(points, r3.Add(p, endDepth))
	}

	// Outer surface.
	quad(w+4, w+12, w+13, w+5)
	quad(w+5, w+13, w+14, w+6)
	quad(w+6, w+14, w+15, w+7)
	quad(w+7, w+15, w+12, w+4)
	// Inner surface against the duct.
	quad(w+0, w+1, w+9, w+8)
	quad(w+1, w+2, w+10, w+9)
	quad(w+2, w+3, w+11, w+10)
	quad(w+3, w+0, w+8, w+11)
	// End cap at the web tail.
	quad(w+8, w+9, w+13, w+12)
	quad(w+9, w+10, w+14, w+13)
	quad(w+10, w+11, w+15, w+14)
	quad(w+11, w+8, w+12, w+15)

	faceCounts = make([]int, len(faceIndices)/4)
	for i := range faceCounts {
		faceCounts[i] = 4
	}
	return points, faceIndices, faceCounts
}

// companionFlange builds an annular companion flange on a round end ring:
// each ring point is pushed radially out from the ring centroid to the
// flange outer radius and the resulting annulus is extruded by thickness.
// Four logical surfaces, N quads each: front, back, outer rim, inner rim.
func companionFlange(ring Ring, diameter, flangeWidth, thickness float64, isStart bool) (points []r3.Vec, faceIndices, faceCounts []int) {
	segments := len(ring)
	ductRadius := diameter / 2
	outerRadius := ductRadius + flangeWidth

	center := d3.Set(ring).Centroid()
	e1 := r3.Sub(ring[1], ring[0])
	e2 := r3.Sub(ring[2], ring[1])
	normal := unitOrPanic(r3.Cross(e1, e2), "ring normal")
	if isStart {
		normal = r3.Scale(-1, normal)
	}

	outer := make([]r3.Vec, segments)
	for i, p := range ring {
		dir := unitOrPanic(r3.Sub(p, center), "radial direction")
		outer[i] = r3.Add(center, r3.Scale(outerRadius, dir))
	}

	backOffset := r3.Scale(thickness, normal)
	points = append(points, ring...)  // inner front
	points = append(points, outer...) // outer front
	for _, p := range ring {          // inner back
		points = append(points, r3.Add(p, backOffset))
	}
	for _, p := range outer { // outer back
		points = append(points, r3.Add(p, backOffset))
	}

	for i := 0; i < segments; i++ {
		iNext := (i + 1) % segments
		innerF := i
		innerFNext := iNext
		outerF := segments + i
		outerFNext := segments + iNext
		innerB := 2*segments + i
		innerBNext := 2*segments + iNext
		outerB := 3*segments + i
		outerBNext := 3*segments + iNext

		faceIndices = append(faceIndices, innerF, outerF, outerFNext, innerFNext)
		faceIndices = append(faceIndices, innerB, innerBNext, outerBNext, outerB)
		faceIndices = append(faceIndices, outerF, outerB, outerBNext, outerFNext)
		faceIndices = append(faceIndices, innerF, innerFNext, innerBNext, innerB)
	}

	faceCounts = make([]int, len(faceIndices)/4)
	for i := range faceCounts {
		faceCounts[i] = 4
	}
	return points, faceIndices, faceCounts
}

// stiffener builds a mid-span reinforcement ring for long straight
// rectangular runs: angle-iron geometry with its face plate at the given
// flow position and the web apron running toward the trailing end.
func stiffener(startRing Ring, atX float64, leg, thickness float64) (points []r3.Vec, faceIndices, faceCounts []int) {
	points, faceIndices, faceCounts = angleFlange(startRing, leg, thickness, true)
	offset := r3.Vec{X: atX}
	for i := range points {
		points[i] = r3.Add(points[i], offset)
	}
	return points, faceIndices, faceCounts
}
