package render3d

import (
	"github.com/Yeicor/winhelp"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Cube builds an axis aligned cube spanning [-size, size] on every axis (so its edge is 2*size long):
// front (-Z), back (+Z), left, right, bottom and top faces, in that order.
func Cube(size float64, c winhelp.RGB) Object {
	s := size
	quad := func(pts ...v3.Vec) Face {
		return NewFace(pts, c)
	}
	return Object{Faces: []Face{
		quad(v3.Vec{X: -s, Y: -s, Z: -s}, v3.Vec{X: s, Y: -s, Z: -s}, v3.Vec{X: s, Y: s, Z: -s}, v3.Vec{X: -s, Y: s, Z: -s}),
		quad(v3.Vec{X: -s, Y: -s, Z: s}, v3.Vec{X: s, Y: -s, Z: s}, v3.Vec{X: s, Y: s, Z: s}, v3.Vec{X: -s, Y: s, Z: s}),
		quad(v3.Vec{X: -s, Y: -s, Z: -s}, v3.Vec{X: -s, Y: s, Z: -s}, v3.Vec{X: -s, Y: s, Z: s}, v3.Vec{X: -s, Y: -s, Z: s}),
		quad(v3.Vec{X: s, Y: -s, Z: -s}, v3.Vec{X: s, Y: s, Z: -s}, v3.Vec{X: s, Y: s, Z: s}, v3.Vec{X: s, Y: -s, Z: s}),
		quad(v3.Vec{X: -s, Y: -s, Z: -s}, v3.Vec{X: s, Y: -s, Z: -s}, v3.Vec{X: s, Y: -s, Z: s}, v3.Vec{X: -s, Y: -s, Z: s}),
		quad(v3.Vec{X: -s, Y: s, Z: -s}, v3.Vec{X: s, Y: s, Z: -s}, v3.Vec{X: s, Y: s, Z: s}, v3.Vec{X: -s, Y: s, Z: s}),
	}}
}

// Translate returns a copy of o moved by d, with every AvgZ recomputed.
func Translate(o Object, d v3.Vec) Object {
	out := Object{Faces: make([]Face, len(o.Faces))}
	for i, f := range o.Faces {
		points := make([]v3.Vec, len(f.Points))
		for j, p := range f.Points {
			points[j] = p.Add(d)
		}
		out.Faces[i] = NewFace(points, f.Colour)
	}
	return out
}
