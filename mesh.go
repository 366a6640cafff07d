package skirt

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

type Tri [3]int

type UV [2]float64

// Mesh is an indexed triangle mesh. Normals and UVs, when present, run
// parallel to Points.
type Mesh struct {
	Faces   []Tri
	Points  []vec3.T
	Normals []vec3.T
	UVs     []UV
}

// Source is the geometry the border generator reads from. A source that
// keeps its geometry on the GPU only reports Readable() == false.
type Source interface {
	Readable() bool

	// Vertices returns the vertex positions.
	Vertices() []vec3.T

	// Triangles returns the triangle index list, three indices per triangle.
	Triangles() []int
}

func newMesh(numPoints, numFaces int) *Mesh {
	return &Mesh{
		Faces:   make([]Tri, 0, numFaces),
		Points:  make([]vec3.T, 0, numPoints),
		Normals: make([]vec3.T, 0, numPoints),
		UVs:     make([]UV, 0, numPoints),
	}
}

// NewMesh builds a mesh from positions and a flat triangle index list.
func NewMesh(points []vec3.T, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMeshNotReadable, len(indices))
	}

	mesh := &Mesh{
		Faces:  make([]Tri, len(indices)/3),
		Points: points,
	}
	for i := range mesh.Faces {
		mesh.Faces[i] = Tri{indices[3*i], indices[3*i+1], indices[3*i+2]}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	return mesh, nil
}

func (this *Mesh) Readable() bool {
	return this != nil
}

func (this *Mesh) Vertices() []vec3.T {
	return this.Points
}

func (this *Mesh) Triangles() []int {
	indices := make([]int, 0, 3*len(this.Faces))
	for _, face := range this.Faces {
		indices = append(indices, face[:]...)
	}

	return indices
}

// Validate checks that every face references an existing point and that
// the optional attribute slices match the point count.
func (this *Mesh) Validate() error {
	for i, face := range this.Faces {
		for _, iPt := range face {
			if iPt < 0 || iPt >= len(this.Points) {
				return fmt.Errorf("%w: face %d references point %d of %d", ErrMeshNotReadable, i, iPt, len(this.Points))
			}
		}
	}

	if this.Normals != nil && len(this.Normals) != len(this.Points) {
		return fmt.Errorf("%w: %d normals for %d points", ErrMeshNotReadable, len(this.Normals), len(this.Points))
	}
	if this.UVs != nil && len(this.UVs) != len(this.Points) {
		return fmt.Errorf("%w: %d uvs for %d points", ErrMeshNotReadable, len(this.UVs), len(this.Points))
	}

	return nil
}

// FaceNormal returns the unit normal of face i, following its winding
// v0 -> v1 -> v2.
func (this *Mesh) FaceNormal(i int) vec3.T {
	face := &this.Faces[i]
	origin := &this.Points[face[0]]

	e1 := vec3.Sub(&this.Points[face[1]], origin)
	e2 := vec3.Sub(&this.Points[face[2]], origin)
	n := vec3.Cross(&e1, &e2)

	return n.Normalized()
}

// BoundingBox returns the axis-aligned bounds of every point of the mesh.
func (this *Mesh) BoundingBox() BoundingBox {
	bb := BoundingBox{}
	bb.AddRange(this.Points)

	return bb
}
