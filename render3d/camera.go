package render3d

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"math"
)

// Orbit is a camera that looks at Center from Dist away. Pitch and Yaw (radians) become CameraRot.X and
// CameraRot.Y, so the view never rolls.
type Orbit struct {
	Center     v3.Vec
	Pitch, Yaw float64
	Dist       float64
}

// OrbitAround builds an orbit that frames the bounding box of the given objects, seen from 45º up and right.
func OrbitAround(objects ...Object) Orbit {
	bb, ok := Bounds(objects...)
	if !ok {
		return Orbit{Dist: 5}
	}
	return Orbit{
		Center: bb.Center(),
		Pitch:  math.Pi / 4,
		Yaw:    -math.Pi / 4,
		Dist:   math.Max(bb.Size().Length()*1.5, 1e-3),
	}
}

// Apply moves the renderer camera to the orbit position.
func (o Orbit) Apply(r *Renderer) {
	sp, cp := math.Sincos(o.Pitch)
	sy, cy := math.Sincos(o.Yaw)
	// Offset from camera to center such that RotateEuler maps it onto +Z
	d := v3.Vec{X: -sy, Y: cy * sp, Z: cy * cp}.MulScalar(o.Dist)
	r.CameraPos = o.Center.Sub(d)
	r.CameraRot = v3.Vec{X: o.Pitch, Y: o.Yaw}
}

// OptOrbit configures the initial camera as an orbit.
func OptOrbit(o Orbit) Option {
	return func(r *Renderer) {
		o.Apply(r)
	}
}

// Bounds returns the bounding box of all face points, or false if there are none.
func Bounds(objects ...Object) (sdf.Box3, bool) {
	var bb sdf.Box3
	found := false
	for _, o := range objects {
		for _, f := range o.Faces {
			for _, p := range f.Points {
				if !found {
					bb = sdf.Box3{Min: p, Max: p}
					found = true
					continue
				}
				bb.Min = bb.Min.Min(p)
				bb.Max = bb.Max.Max(p)
			}
		}
	}
	return bb, found
}
