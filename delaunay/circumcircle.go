package delaunay

import "math"

// circumcircle returns the center and squared radius of the unique circle
// through a, b and c. Everything is computed relative to a, so the 2x2 system
// for the center reduces to a single division by the cross product of the two
// edge vectors out of a. That cross product goes to zero as the points
// approach collinearity, and there is no guard here: with exactly collinear
// input the result is infinite or NaN. Callers run the result through
// degenerateCircle before trusting it.
func circumcircle(a, b, c Point) (center Point, rSquared float64) {
	ba := b.Sub(a)
	ca := c.Sub(a)
	baMag := ba.Mag()
	caMag := ca.Mag()

	denom := 0.5 / (ba.X*ca.Y - ba.Y*ca.X)

	rel := Point{
		X: (ca.Y*baMag - ba.Y*caMag) * denom,
		Y: (ba.X*caMag - ca.X*baMag) * denom,
	}
	return a.Add(rel), rel.Mag()
}

// degenerateCircle reports whether a computed circumcircle is unusable: a NaN
// or infinite result from collinear input, or a radius so large that the
// cached squared-distance test would be comparing noise. A NaN radius would
// otherwise poison every later in-circle comparison, since NaN compares false
// against everything.
func degenerateCircle(center Point, rSquared, maxRSquared float64) bool {
	if math.IsNaN(rSquared) || math.IsInf(rSquared, 0) {
		return true
	}
	if math.IsNaN(center.X) || math.IsNaN(center.Y) {
		return true
	}
	return rSquared > maxRSquared
}
