package grisu

import "math"

// ReduceAngle maps an angle in radians to the interval [0, 2pi).
// Exact multiples of 2pi reduce to 0, never to 2pi.
func ReduceAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle == 0 || angle == 2*math.Pi {
		return 0
	}
	return angle
}

// TransformCoord converts an azimuth angle and a ground position from the
// CORSIKA frame (x north, y west, z up, azimuth counterclockwise) to the
// kascade frame (x east, y south, z down, azimuth clockwise).
// Angles in radians.
func TransformCoord(az, x, y float64) (float64, float64, float64) {
	az = ReduceAngle(1.5*math.Pi - ReduceAngle(az))
	return az, -y, -x
}
