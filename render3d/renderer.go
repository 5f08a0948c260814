package render3d

import (
	"github.com/Yeicor/winhelp"
	"github.com/barkimedes/go-deepcopy"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"math"
	"slices"
)

// zEpsilon replaces a camera-space Z of exactly 0 so the perspective division stays finite.
const zEpsilon = 0.0001

//-----------------------------------------------------------------------------
// CONFIGURATION
//-----------------------------------------------------------------------------

// Option configures a Renderer.
type Option func(r *Renderer)

// OptCamera sets the initial camera position and Euler rotation (radians, applied X then Y then Z).
func OptCamera(pos, rot v3.Vec) Option {
	return func(r *Renderer) {
		r.CameraPos = pos
		r.CameraRot = rot
	}
}

// OptWireframe outlines every face after filling it.
func OptWireframe(colour winhelp.RGB, thickness float64) Option {
	return func(r *Renderer) {
		r.wireframe = &wireframe{colour: colour, thickness: thickness}
	}
}

// OptOrigin sets where camera-space (0, 0) lands on the surface. By default it is the surface centre.
func OptOrigin(origin v2.Vec) Option {
	return func(r *Renderer) {
		r.origin = &origin
	}
}

// OptFlatShading scales each face colour by how much it faces the light: ambient + (1-ambient)*|normal·light|.
// Both sides of a face are lit, as faces have no winding convention.
func OptFlatShading(light v3.Vec, ambient float64) Option {
	return func(r *Renderer) {
		r.shading = &shading{light: light.Normalize(), ambient: math.Max(0, math.Min(1, ambient))}
	}
}

type wireframe struct {
	colour    winhelp.RGB
	thickness float64
}

type shading struct {
	light   v3.Vec
	ambient float64
}

//-----------------------------------------------------------------------------
// RENDERER
//-----------------------------------------------------------------------------

// Renderer owns the scene objects and the camera. Callers animate by mutating the exported fields between frames.
type Renderer struct {
	Objects   []Object
	CameraPos v3.Vec
	CameraRot v3.Vec
	// FOV is a projection distance multiplier, not an angle. Values <= 0 give inverted or degenerate projections.
	FOV float64

	wireframe *wireframe
	origin    *v2.Vec
	shading   *shading
}

// NewRenderer creates an empty scene with the camera at the origin looking down +Z.
func NewRenderer(fov float64, opts ...Option) *Renderer {
	r := &Renderer{FOV: fov}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddObject adds a deep copy of o to the scene. Later changes to o do not affect the scene.
func (r *Renderer) AddObject(o Object) {
	r.Objects = append(r.Objects, deepcopy.MustAnything(o).(Object))
}

// RotateEuler applies the camera rotation to p: around X, then Y, then Z.
func (r *Renderer) RotateEuler(p v3.Vec) v3.Vec {
	sx, cx := math.Sincos(r.CameraRot.X)
	sy, cy := math.Sincos(r.CameraRot.Y)
	sz, cz := math.Sincos(r.CameraRot.Z)

	p = v3.Vec{X: p.X, Y: p.Y*cx - p.Z*sx, Z: p.Y*sx + p.Z*cx}
	p = v3.Vec{X: p.X*cy + p.Z*sy, Y: p.Y, Z: -p.X*sy + p.Z*cy}
	p = v3.Vec{X: p.X*cz - p.Y*sz, Y: p.X*sz + p.Y*cz, Z: p.Z}
	return p
}

// To2D projects a world point to camera-space screen coordinates (not offset by the origin).
func (r *Renderer) To2D(p v3.Vec) v2.Vec {
	c := r.RotateEuler(p.Sub(r.CameraPos))
	if c.Z == 0 {
		c.Z = zEpsilon
	}
	return v2.Vec{X: c.X / c.Z * r.FOV, Y: c.Y / c.Z * r.FOV}
}

// FaceLines2D projects the face into its closed loop of segments (last point wraps to the first).
func (r *Renderer) FaceLines2D(f *Face) []winhelp.Segment {
	if len(f.Points) < 2 {
		return nil
	}
	projected := make([]v2.Vec, len(f.Points))
	for i, p := range f.Points {
		projected[i] = r.To2D(p)
	}
	lines := make([]winhelp.Segment, len(projected))
	for i := range projected {
		lines[i] = winhelp.Segment{projected[i], projected[(i+1)%len(projected)]}
	}
	return lines
}

// SortedFaces returns every face of every object in painting order: descending AvgZ, ties kept in scene order.
func (r *Renderer) SortedFaces() []*Face {
	var faces []*Face
	for i := range r.Objects {
		for j := range r.Objects[i].Faces {
			faces = append(faces, &r.Objects[i].Faces[j])
		}
	}
	slices.SortStableFunc(faces, func(a, b *Face) int {
		switch {
		case a.AvgZ > b.AvgZ:
			return -1
		case a.AvgZ < b.AvgZ:
			return 1
		default:
			return 0
		}
	})
	return faces
}

// Render paints the scene onto s, back to front. The caller is expected to clear s beforehand.
func (r *Renderer) Render(s *winhelp.Surface) {
	origin := v2.Vec{X: float64(s.Size.X) / 2, Y: float64(s.Size.Y) / 2}
	if r.origin != nil {
		origin = *r.origin
	}
	for _, face := range r.SortedFaces() {
		lines := r.FaceLines2D(face)
		if lines == nil {
			continue
		}
		for i := range lines {
			lines[i][0] = lines[i][0].Add(origin)
			lines[i][1] = lines[i][1].Add(origin)
		}
		winhelp.Polygon(s, lines, r.shade(face))
		if r.wireframe != nil {
			for _, l := range lines {
				winhelp.Line(s, l[0], l[1], r.wireframe.colour, r.wireframe.thickness)
			}
		}
	}
}

func (r *Renderer) shade(f *Face) winhelp.RGB {
	if r.shading == nil {
		return f.Colour
	}
	n, ok := f.normal()
	if !ok {
		return f.Colour
	}
	intensity := r.shading.ambient + (1-r.shading.ambient)*math.Abs(n.Dot(r.shading.light))
	return f.Colour.Scale(intensity)
}
