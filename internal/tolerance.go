package internal

import "github.com/ungerik/go3d/float64/vec3"

// PointEpsilon is the distance under which two positions are the same
// point. Terrain seams are stored with bit-identical copies, so this only
// has to absorb float noise from importers.
const PointEpsilon = 1e-5

// Determine if two points coincide
//
// **params**
// + first point
// + second point
// + distance under which the points are considered equal
//
// **returns**
// + whether the squared distance between the points is below eps squared
func Coincident(a, b *vec3.T, eps float64) bool {
	return vec3.SquareDistance(a, b) < eps*eps
}
