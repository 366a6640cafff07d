package skirt

import (
	"fmt"

	. "github.com/ZoserLock/skirt/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Loop is a closed polygon: the last point connects back to the first.
type Loop []vec3.T

func (this Loop) Len() int {
	return len(this)
}

// Segment returns the side starting at point a, wrapping at the end.
func (this Loop) Segment(a int) (from, to vec3.T) {
	return this[a], this[(a+1)%len(this)]
}

// Cumulative side lengths around the loop
//
// **returns**
// + the arc length at each point, then the perimeter (len(loop)+1 values)
func (this Loop) ArcLengths() []float64 {
	if len(this) == 0 {
		return nil
	}

	arcs := make([]float64, len(this)+1)

	var lsum float64
	for a := range this {
		from, to := this.Segment(a)
		lsum += vec3.Distance(&from, &to)
		arcs[a+1] = lsum
	}

	return arcs
}

// index of the first point within eps of p, or -1
func (this Loop) index(p *vec3.T, eps float64) int {
	for i := range this {
		if Coincident(&this[i], p, eps) {
			return i
		}
	}
	return -1
}

func (this Loop) Perimeter() float64 {
	arcs := this.ArcLengths()
	if arcs == nil {
		return 0
	}
	return arcs[len(arcs)-1]
}

// ExtractLoop returns the boundary of src as one closed loop of positions.
//
// Boundary edges are the edges used by exactly one triangle. Duplicated
// vertices along UV seams make interior edges look like boundary edges, so
// any boundary edge with a coincident twin is dropped together with the
// twin. This assumes at most one twin per edge; meshes with several
// boundary loops or stacked seams fail rather than produce a wrong loop.
func ExtractLoop(src Source, opts Options) (Loop, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	points, edges, err := boundaryEdges(src, opts.Epsilon)
	if err != nil {
		return nil, err
	}

	if len(edges) < 3 {
		return nil, fmt.Errorf("%w: %d left after seam removal", ErrInsufficientBoundaryEdges, len(edges))
	}

	return traceLoop(points, edges, opts.Epsilon)
}

// BoundaryEdges returns the boundary edges of src that survive seam
// removal, in the order they are walked from.
func BoundaryEdges(src Source, opts Options) ([]Edge, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	_, edges, err := boundaryEdges(src, opts.Epsilon)
	return edges, err
}

func boundaryEdges(src Source, eps float64) ([]vec3.T, []Edge, error) {
	points, triangles, err := readSource(src)
	if err != nil {
		return nil, nil, err
	}

	counts := CountEdges(triangles)
	candidates := counts.Boundary()
	edges := dropSeamTwins(points, candidates, eps)

	Logger().Debug("skirt: boundary edges",
		"edges", counts.Len(),
		"candidates", len(candidates),
		"seamEdges", len(candidates)-len(edges),
	)

	return points, edges, nil
}

func readSource(src Source) ([]vec3.T, []int, error) {
	if src == nil || !src.Readable() {
		return nil, nil, ErrMeshNotReadable
	}

	points, triangles := src.Vertices(), src.Triangles()
	if len(triangles)%3 != 0 {
		return nil, nil, fmt.Errorf("%w: %d triangle indices is not a multiple of 3", ErrMeshNotReadable, len(triangles))
	}
	for i, iPt := range triangles {
		if iPt < 0 || iPt >= len(points) {
			return nil, nil, fmt.Errorf("%w: index %d at %d out of range for %d vertices", ErrMeshNotReadable, iPt, i, len(points))
		}
	}

	return points, triangles, nil
}

// dropSeamTwins removes every edge whose endpoints coincide with the
// endpoints of another edge, in either orientation, along with that edge.
func dropSeamTwins(points []vec3.T, edges []Edge, eps float64) []Edge {
	same := func(i, j int) bool {
		return Coincident(&points[i], &points[j], eps)
	}

	twin := make([]bool, len(edges))
	for i, e1 := range edges {
		for j, e2 := range edges {
			if i == j {
				continue
			}

			if (same(e1[0], e2[0]) || same(e1[0], e2[1])) &&
				(same(e1[1], e2[0]) || same(e1[1], e2[1])) {
				twin[i] = true
				twin[j] = true
				break
			}
		}
	}

	kept := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if !twin[i] {
			kept = append(kept, e)
		}
	}

	return kept
}

// traceLoop walks the edges by position starting from the first endpoint
// of edges[0]. Each pass scans the whole list and may walk several edges.
// At most 2*len(edges) passes are allowed. A walk that comes back to a
// position it already holds is branching, not a simple loop.
func traceLoop(points []vec3.T, edges []Edge, eps float64) (Loop, error) {
	start := edges[0]
	current := points[start[0]]

	visited := make([]bool, len(edges))
	visited[0] = true
	numVisited := 1

	loop := make(Loop, 1, len(edges))
	loop[0] = current

	maxPasses := 2 * len(edges)
	passes := 0

	for numVisited < len(edges) {
		passes++

		for i, e := range edges {
			if visited[i] {
				continue
			}

			switch {
			case Coincident(&current, &points[e[0]], eps):
				current = points[e[1]]
			case Coincident(&current, &points[e[1]], eps):
				current = points[e[0]]
			default:
				continue
			}

			if loop.index(&current, eps) >= 0 {
				return nil, fmt.Errorf("%w: boundary branches at %v", ErrTraversalGaveUp, current)
			}

			visited[i] = true
			numVisited++
			loop = append(loop, current)
		}

		if numVisited == len(edges) {
			break
		}

		if passes >= maxPasses {
			return nil, fmt.Errorf("%w: %d of %d edges walked after %d passes", ErrTraversalGaveUp, numVisited, len(edges), passes)
		}
	}

	// the start edge itself closes the loop
	if !Coincident(&current, &points[start[1]], eps) {
		return nil, fmt.Errorf("%w: walk ended away from its start", ErrTraversalGaveUp)
	}

	Logger().Debug("skirt: boundary loop", "points", len(loop), "passes", passes)

	return loop, nil
}
