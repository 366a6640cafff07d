package skirt_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ZoserLock/skirt"
)

// grid builds a w x h terrain of unit cells in the xz plane at height
// y = x + z. Triangles are wound so their face normals point up, as the
// terrain importer emits them.
func grid(t *testing.T, w, h int) *skirt.Mesh {
	t.Helper()

	at := func(i, j int) int { return j*(w+1) + i }

	var points []vec3.T
	for j := 0; j <= h; j++ {
		for i := 0; i <= w; i++ {
			points = append(points, vec3.T{float64(i), float64(i + j), float64(j)})
		}
	}

	var indices []int
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			a, b, c, d := at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)
			indices = append(indices, a, c, b, a, d, c)
		}
	}

	mesh, err := skirt.NewMesh(points, indices)
	require.NoError(t, err)

	return mesh
}

// unitSquare is a flat square made of 2 triangles sharing the diagonal 0-2.
func unitSquare(t *testing.T) *skirt.Mesh {
	t.Helper()

	mesh, err := skirt.NewMesh([]vec3.T{
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 1},
		{0, 0, 1},
	}, []int{0, 2, 1, 0, 3, 2})
	require.NoError(t, err)

	return mesh
}

// seamStrip is two unit squares side by side whose shared side at x = 1 is
// stored twice, as an importer does along a UV seam.
func seamStrip(t *testing.T) *skirt.Mesh {
	t.Helper()

	mesh, err := skirt.NewMesh([]vec3.T{
		{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1},
		{1, 0, 0}, {2, 0, 0}, {2, 0, 1}, {1, 0, 1},
	}, []int{
		0, 2, 1, 0, 3, 2,
		4, 6, 5, 4, 7, 6,
	})
	require.NoError(t, err)

	return mesh
}

// cube is a closed box with no boundary at all.
func cube(t *testing.T) *skirt.Mesh {
	t.Helper()

	mesh, err := skirt.NewMesh([]vec3.T{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}, []int{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	})
	require.NoError(t, err)

	return mesh
}

// gpuOnly is a source whose geometry cannot be read back.
type gpuOnly struct{}

func (gpuOnly) Readable() bool     { return false }
func (gpuOnly) Vertices() []vec3.T { return nil }
func (gpuOnly) Triangles() []int   { return nil }

// rawSource serves raw buffers without the checks NewMesh does.
type rawSource struct {
	points  []vec3.T
	indices []int
}

func (s rawSource) Readable() bool     { return true }
func (s rawSource) Vertices() []vec3.T { return s.points }
func (s rawSource) Triangles() []int   { return s.indices }

// isEdge reports whether a and b are the endpoint positions of some
// triangle side of mesh.
func isEdge(mesh *skirt.Mesh, a, b vec3.T) bool {
	for _, face := range mesh.Faces {
		for k := range face {
			p, q := mesh.Points[face[k]], mesh.Points[face[(k+1)%3]]
			if (p == a && q == b) || (p == b && q == a) {
				return true
			}
		}
	}
	return false
}
