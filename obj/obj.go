// Package obj reads and writes the subset of Wavefront OBJ used for
// terrain meshes and their skirts.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	g3nobj "github.com/g3n/engine/loader/obj"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ZoserLock/skirt"
)

var ErrSyntax = errors.New("obj: syntax error")

// File is a decoded OBJ file.
type File struct {
	Name         string
	MaterialLibs []string
	Materials    []string
	Mesh         *skirt.Mesh
}

// g3n stores indices above this for absent vt and vn entries.
const absentIndex = math.MaxInt32

// a face corner: position, texture coordinate and normal indices, -1 when absent
type faceVert [3]int

type builder struct {
	dec *g3nobj.Decoder

	// output vertex for each distinct corner
	verts map[faceVert]int
	mesh  *skirt.Mesh
}

// Decode parses an OBJ stream into a single mesh. Every object of the file
// goes into that mesh and polygons are triangulated as fans. A position
// referenced with different texture coordinates or normals becomes several
// vertices, as in any GPU-ready mesh, so UV seams show up as duplicated
// vertices. Coordinates are read as float32.
func Decode(r io.Reader) (*File, error) {
	// material definitions are not needed, only their names
	dec, err := g3nobj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	b := &builder{
		dec:   dec,
		verts: make(map[faceVert]int),
		mesh:  &skirt.Mesh{},
	}

	file := &File{
		Name: "untitled",
		Mesh: b.mesh,
	}
	if dec.Matlib != "" {
		file.MaterialLibs = []string{dec.Matlib}
	}

	used := make(map[string]bool)
	for i := range dec.Objects {
		object := &dec.Objects[i]
		if i == 0 && object.Name != "" {
			file.Name = object.Name
		}

		for j := range object.Faces {
			face := &object.Faces[j]
			if err := b.face(face); err != nil {
				return nil, fmt.Errorf("object %q face %d: %w", object.Name, j, err)
			}

			// only names given by usemtl, not the loader's fallback
			if _, ok := dec.Materials[face.Material]; ok && !used[face.Material] {
				used[face.Material] = true
				file.Materials = append(file.Materials, face.Material)
			}
		}
	}

	if len(dec.Uvs) == 0 {
		b.mesh.UVs = nil
	}
	if len(dec.Normals) == 0 {
		b.mesh.Normals = nil
	}

	for _, w := range dec.Warnings {
		skirt.Logger().Debug("obj: loader warning", "warning", w)
	}
	skirt.Logger().Debug("obj: decoded",
		"name", file.Name,
		"positions", len(dec.Vertices)/3,
		"vertices", len(b.mesh.Points),
		"faces", len(b.mesh.Faces),
	)

	return file, nil
}

func (this *builder) face(face *g3nobj.Face) error {
	if len(face.Vertices) < 3 {
		return fmt.Errorf("%w: face with %d vertices", ErrSyntax, len(face.Vertices))
	}

	corners := make([]int, len(face.Vertices))
	for i := range face.Vertices {
		fv, err := this.faceVert(face, i)
		if err != nil {
			return err
		}
		corners[i] = this.vertex(fv)
	}

	for i := 1; i+1 < len(corners); i++ {
		this.mesh.Faces = append(this.mesh.Faces, skirt.Tri{corners[0], corners[i], corners[i+1]})
	}

	return nil
}

func (this *builder) faceVert(face *g3nobj.Face, corner int) (faceVert, error) {
	fv := faceVert{-1, -1, -1}

	numPositions := len(this.dec.Vertices) / 3
	pos := face.Vertices[corner]
	if pos < 0 || pos >= numPositions {
		return fv, fmt.Errorf("%w: position %d out of range for %d positions", ErrSyntax, pos+1, numPositions)
	}
	fv[0] = pos

	attrs := [2]struct {
		indices []int
		count   int
		name    string
	}{
		{face.Uvs, len(this.dec.Uvs) / 2, "texture coordinate"},
		{face.Normals, len(this.dec.Normals) / 3, "normal"},
	}
	for k, attr := range attrs {
		if corner >= len(attr.indices) || attr.indices[corner] >= absentIndex {
			continue
		}

		idx := attr.indices[corner]
		if idx < 0 || idx >= attr.count {
			return fv, fmt.Errorf("%w: %s %d out of range for %d", ErrSyntax, attr.name, idx+1, attr.count)
		}
		fv[k+1] = idx
	}

	return fv, nil
}

func (this *builder) vertex(fv faceVert) int {
	if i, ok := this.verts[fv]; ok {
		return i
	}

	mesh := this.mesh
	i := len(mesh.Points)
	this.verts[fv] = i

	p := this.dec.Vertices[3*fv[0]:]
	mesh.Points = append(mesh.Points, vec3.T{float64(p[0]), float64(p[1]), float64(p[2])})

	var uv skirt.UV
	if fv[1] >= 0 {
		t := this.dec.Uvs[2*fv[1]:]
		uv = skirt.UV{float64(t[0]), float64(t[1])}
	}
	mesh.UVs = append(mesh.UVs, uv)

	var n vec3.T
	if fv[2] >= 0 {
		v := this.dec.Normals[3*fv[2]:]
		n = vec3.T{float64(v[0]), float64(v[1]), float64(v[2])}
	}
	mesh.Normals = append(mesh.Normals, n)

	return i
}

// Encode writes mesh as one OBJ object drawn with material.
func Encode(w io.Writer, name string, mesh *skirt.Mesh, material skirt.Material) error {
	if err := mesh.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# generated by skirt")
	if material.Library != "" {
		fmt.Fprintf(bw, "mtllib %s\n", material.Library)
	}
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for _, p := range mesh.Points {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p[0]), formatFloat(p[1]), formatFloat(p[2]))
	}
	for _, uv := range mesh.UVs {
		fmt.Fprintf(bw, "vt %s %s\n", formatFloat(uv[0]), formatFloat(uv[1]))
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", formatFloat(n[0]), formatFloat(n[1]), formatFloat(n[2]))
	}

	if material.Name != "" {
		fmt.Fprintf(bw, "usemtl %s\n", material.Name)
	}

	hasUV, hasNormal := len(mesh.UVs) > 0, len(mesh.Normals) > 0
	for _, face := range mesh.Faces {
		bw.WriteString("f")
		for _, i := range face {
			// attributes are parallel to points, so one index serves all three
			i++
			switch {
			case hasUV && hasNormal:
				fmt.Fprintf(bw, " %d/%d/%d", i, i, i)
			case hasUV:
				fmt.Fprintf(bw, " %d/%d", i, i)
			case hasNormal:
				fmt.Fprintf(bw, " %d//%d", i, i)
			default:
				fmt.Fprintf(bw, " %d", i)
			}
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

func WriteFile(path, name string, mesh *skirt.Mesh, material skirt.Material) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, name, mesh, material); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
