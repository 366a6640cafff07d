package skirt

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
//
// **returns**
// + This BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point {
		this.Min[i] = math.Min(this.Min[i], val)
		this.Max[i] = math.Max(this.Max[i], val)
	}

	return this
}

func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

// IsEmpty reports whether no point was added yet.
func (this *BoundingBox) IsEmpty() bool {
	return !this.initialized
}

// Determines if point is inside the bounding box grown by tol on every side
func (this *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !this.initialized {
		return false
	}

	for i, val := range point {
		if val < this.Min[i]-tol || val > this.Max[i]+tol {
			return false
		}
	}

	return true
}
