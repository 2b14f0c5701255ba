package conduit

import "math"

const tolerance = 1e-9

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / math.Pi) * radians
}
