package skirt

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Extrude builds the skirt below a boundary loop: one quad per loop side,
// from the side down to opts.Floor.
//
// Quads do not share vertices. Each quad carries its own flat normal,
// normalize(next-current) x down, so the wall is faceted. UV u is the arc
// length along the loop and v is the vertex height, so a texture tiles
// continuously around the skirt.
//
// **params**
// + a closed loop of at least 3 points
// + options giving the floor height and vertical axis
//
// **returns**
// + a mesh of 4n points and 2n faces for an n-point loop
func Extrude(loop Loop, opts Options) (*Mesh, error) {
	if len(loop) < 3 {
		return nil, fmt.Errorf("%w: loop has %d points", ErrInsufficientBoundaryEdges, len(loop))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := len(loop)
	down := opts.Axis.Down()
	arcs := loop.ArcLengths()
	mesh := newMesh(4*n, 2*n)

	for a := range loop {
		top0, top1 := loop.Segment(a)
		bottom0, bottom1 := opts.drop(top0), opts.drop(top1)

		// corners in order: top current, bottom current, bottom next, top next
		corners := [4]vec3.T{top0, bottom0, bottom1, top1}

		move := vec3.Sub(&top1, &top0)
		move.Normalize()
		normal := vec3.Cross(&move, &down)

		u0, u1 := arcs[a], arcs[a+1]
		us := [4]float64{u0, u0, u1, u1}

		index := len(mesh.Points)
		for i := range corners {
			mesh.Points = append(mesh.Points, corners[i])
			mesh.Normals = append(mesh.Normals, normal)
			mesh.UVs = append(mesh.UVs, UV{us[i], opts.height(&corners[i])})
		}

		mesh.Faces = append(mesh.Faces,
			Tri{index + 1, index + 0, index + 3},
			Tri{index + 1, index + 3, index + 2},
		)
	}

	return mesh, nil
}
