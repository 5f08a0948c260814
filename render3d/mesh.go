package render3d

import (
	"fmt"
	"github.com/Yeicor/winhelp"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fogleman/fauxgl"
	"path/filepath"
	"strings"
)

// LoadMesh reads a triangle mesh, picking the format from the file extension (.stl, .obj or .ply).
func LoadMesh(path string) (*fauxgl.Mesh, error) {
	var mesh *fauxgl.Mesh
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		mesh, err = fauxgl.LoadSTL(path)
	case ".obj":
		mesh, err = fauxgl.LoadOBJ(path)
	case ".ply":
		mesh, err = fauxgl.LoadPLY(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load mesh %s: %w", path, err)
	}
	winhelp.LogDebug("loaded mesh %s with %d triangles", path, len(mesh.Triangles))
	return mesh, nil
}

// FromMesh converts every mesh triangle into a face of colour c. Lines of the mesh are ignored.
func FromMesh(m *fauxgl.Mesh, c winhelp.RGB) Object {
	o := Object{Faces: make([]Face, 0, len(m.Triangles))}
	for _, t := range m.Triangles {
		o.Faces = append(o.Faces, NewFace([]v3.Vec{
			fromFauxglVector(t.V1.Position),
			fromFauxglVector(t.V2.Position),
			fromFauxglVector(t.V3.Position),
		}, c))
	}
	return o
}

// FromSDF meshes a signed distance field with uniform marching cubes (cells along the longest axis of the
// bounding box) and converts the triangles into faces of colour c.
func FromSDF(s sdf.SDF3, cells int, c winhelp.RGB) Object {
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	o := Object{Faces: make([]Face, 0, len(triangles))}
	for _, tri := range triangles {
		o.Faces = append(o.Faces, NewFace([]v3.Vec{tri[0], tri[1], tri[2]}, c))
	}
	return o
}

func fromFauxglVector(v fauxgl.Vector) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}
