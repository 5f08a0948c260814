// Package scenefile reads 3D scenes described in TOML and keeps them live-reloaded while they are being edited.
//
// Example:
//
//	fov = 500.0
//	background = [30.0, 30.0, 40.0]
//
//	[camera]
//	position = [0.0, 0.0, -5.0]
//
//	[shading]
//	light = [-1.0, -1.0, 1.0]
//	ambient = 0.2
//
//	[[object]]
//	kind = "cube"
//	size = 1.0
//	colour = [255.0, 0.0, 0.0]
package scenefile

import (
	"fmt"
	"github.com/Yeicor/winhelp"
	"github.com/Yeicor/winhelp/render3d"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fogleman/fauxgl"
	"github.com/pelletier/go-toml/v2"
	"os"
	"path/filepath"
)

// Object kinds
const (
	KindCube   = "cube"
	KindBox    = "box"
	KindSphere = "sphere"
	KindMesh   = "mesh"
)

const (
	defaultFOV   = 500
	defaultCells = 24
)

// File is the decoded scene description.
type File struct {
	FOV        float64    `toml:"fov"`
	Background [3]float64 `toml:"background"`
	Camera     Camera     `toml:"camera"`
	Wireframe  *Wireframe `toml:"wireframe"`
	Shading    *Shading   `toml:"shading"`
	Objects    []Object   `toml:"object"`

	dir string // Base directory for relative mesh paths
}

// Camera places the renderer camera. With Orbit set, position and rotation are ignored and the camera frames every
// object instead.
type Camera struct {
	Position [3]float64 `toml:"position"`
	Rotation [3]float64 `toml:"rotation"`
	Orbit    bool       `toml:"orbit"`
}

type Wireframe struct {
	Colour    [3]float64 `toml:"colour"`
	Thickness float64    `toml:"thickness"`
}

type Shading struct {
	Light   [3]float64 `toml:"light"`
	Ambient float64    `toml:"ambient"`
}

// Object is one [[object]] entry. Size is the half extent for cubes, boxes and spheres (the radius), and a scale for
// meshes. Cells is the marching cubes resolution of boxes and spheres. Fit rescales meshes into [-1, 1] first.
type Object struct {
	Kind   string     `toml:"kind"`
	Size   float64    `toml:"size"`
	Colour [3]float64 `toml:"colour"`
	Offset [3]float64 `toml:"offset"`
	Path   string     `toml:"path"`
	Cells  int        `toml:"cells"`
	Round  float64    `toml:"round"`
	Fit    bool       `toml:"fit"`
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if f.FOV == 0 {
		f.FOV = defaultFOV
	}
	for i := range f.Objects {
		o := &f.Objects[i]
		switch o.Kind {
		case KindCube, KindBox, KindSphere:
		case KindMesh:
			if o.Path == "" {
				return nil, fmt.Errorf("object %d: mesh without path", i)
			}
		default:
			return nil, fmt.Errorf("object %d: unknown kind %q", i, o.Kind)
		}
		if o.Size == 0 {
			o.Size = 1
		}
		if o.Cells <= 0 {
			o.Cells = defaultCells
		}
	}
	return f, nil
}

// Load reads and parses a scene file. Mesh paths are relative to the file's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// BackgroundColour returns the colour the surface should be cleared with.
func (f *File) BackgroundColour() winhelp.RGB {
	return toRGB(f.Background)
}

// Build creates a renderer for the scene, meshing every object.
func (f *File) Build() (*render3d.Renderer, error) {
	opts := []render3d.Option{
		render3d.OptCamera(toVec(f.Camera.Position), toVec(f.Camera.Rotation)),
	}
	if f.Wireframe != nil {
		opts = append(opts, render3d.OptWireframe(toRGB(f.Wireframe.Colour), max(f.Wireframe.Thickness, 1)))
	}
	if f.Shading != nil {
		opts = append(opts, render3d.OptFlatShading(toVec(f.Shading.Light), f.Shading.Ambient))
	}
	r := render3d.NewRenderer(f.FOV, opts...)
	for i, o := range f.Objects {
		obj, err := f.buildObject(o)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, o.Kind, err)
		}
		r.Objects = append(r.Objects, render3d.Translate(obj, toVec(o.Offset)))
	}
	if f.Camera.Orbit {
		render3d.OrbitAround(r.Objects...).Apply(r)
	}
	return r, nil
}

func (f *File) buildObject(o Object) (render3d.Object, error) {
	c := toRGB(o.Colour)
	switch o.Kind {
	case KindCube:
		return render3d.Cube(o.Size, c), nil
	case KindBox:
		box, err := sdf.Box3D(v3.Vec{X: 2 * o.Size, Y: 2 * o.Size, Z: 2 * o.Size}, o.Round)
		if err != nil {
			return render3d.Object{}, err
		}
		return render3d.FromSDF(box, o.Cells, c), nil
	case KindSphere:
		sphere, err := sdf.Sphere3D(o.Size)
		if err != nil {
			return render3d.Object{}, err
		}
		return render3d.FromSDF(sphere, o.Cells, c), nil
	case KindMesh:
		path := o.Path
		if !filepath.IsAbs(path) && f.dir != "" {
			path = filepath.Join(f.dir, path)
		}
		mesh, err := render3d.LoadMesh(path)
		if err != nil {
			return render3d.Object{}, err
		}
		if o.Fit {
			mesh.BiUnitCube()
		}
		mesh.Transform(fauxgl.Scale(fauxgl.V(o.Size, o.Size, o.Size)))
		return render3d.FromMesh(mesh, c), nil
	}
	return render3d.Object{}, fmt.Errorf("unknown kind %q", o.Kind)
}

func toVec(a [3]float64) v3.Vec {
	return v3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func toRGB(a [3]float64) winhelp.RGB {
	return winhelp.RGB{R: a[0], G: a[1], B: a[2]}
}
