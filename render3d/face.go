// Package render3d is a painter's algorithm renderer: faces are projected with a pinhole camera, sorted back to
// front and filled with the winhelp polygon scanline filler. There is no clipping and no depth buffer.
package render3d

import (
	"github.com/Yeicor/winhelp"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Face is a closed planar loop of points with a flat colour.
type Face struct {
	Points []v3.Vec
	Colour winhelp.RGB
	// AvgZ is the mean Z of the points when the face was built. It is not relative to the camera.
	AvgZ float64
}

// NewFace builds a face and computes its AvgZ.
func NewFace(points []v3.Vec, colour winhelp.RGB) Face {
	f := Face{Points: points, Colour: colour}
	f.RecalcAvgZ()
	return f
}

// RecalcAvgZ recomputes AvgZ from the current points (0 for an empty face).
func (f *Face) RecalcAvgZ() {
	if len(f.Points) == 0 {
		f.AvgZ = 0
		return
	}
	sum := 0.0
	for _, p := range f.Points {
		sum += p.Z
	}
	f.AvgZ = sum / float64(len(f.Points))
}

// normal returns the unit normal of the plane through the first three points, or false if there are fewer or they
// are collinear.
func (f *Face) normal() (v3.Vec, bool) {
	if len(f.Points) < 3 {
		return v3.Vec{}, false
	}
	n := f.Points[1].Sub(f.Points[0]).Cross(f.Points[2].Sub(f.Points[0]))
	length := n.Length()
	if length == 0 {
		return v3.Vec{}, false
	}
	return n.DivScalar(length), true
}

// Object is one renderable mesh: a bag of faces.
type Object struct {
	Faces []Face
}
