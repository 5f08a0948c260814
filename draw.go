package winhelp

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	"math"
	"slices"
)

// Segment is a 2D line segment, the unit of polygon boundaries and wireframes.
type Segment [2]v2.Vec

// PutPixel writes one opaque pixel, silently clipped to the surface.
func PutPixel(s *Surface, x, y int, c RGB) {
	if !s.Contains(x, y) {
		return
	}
	s.Pixels[y*s.Size.X+x] = PackRGB(c)
}

// PutPixelAlpha composites one packed pixel onto the surface (integer blending, destination left opaque).
func PutPixelAlpha(s *Surface, x, y int, src uint32) {
	if !s.Contains(x, y) {
		return
	}
	dst := &s.Pixels[y*s.Size.X+x]

	srcA := (src >> 24) & 0xFF
	if srcA == 255 {
		*dst = src
		return
	}
	if srcA == 0 {
		return
	}
	invA := 255 - srcA

	r := (((src>>16)&0xFF)*srcA + ((*dst>>16)&0xFF)*invA) / 255
	g := (((src>>8)&0xFF)*srcA + ((*dst>>8)&0xFF)*invA) / 255
	b := ((src&0xFF)*srcA + (*dst&0xFF)*invA) / 255
	*dst = 0xFF<<24 | r<<16 | g<<8 | b
}

// Blit composites source onto target pixel by pixel through PutPixelAlpha (for text and pre-rendered images).
func Blit(target, source *Surface, position v2.Vec) {
	px, py := int(position.X), int(position.Y)
	for y := 0; y < source.Size.Y; y++ {
		for x := 0; x < source.Size.X; x++ {
			PutPixelAlpha(target, px+x, py+y, source.Pixels[y*source.Size.X+x])
		}
	}
}

// Line draws a Bresenham line between the truncated endpoints. With thickness > 1 every stepped point paints a
// square block centered on it (a cheap approximation of a thick line). Endpoints far outside the surface are
// clipped first, so the walk never leaves the visible area by more than one block. Lines with a non-finite
// endpoint are skipped.
func Line(s *Surface, start, end v2.Vec, c RGB, thickness float64) {
	half := int(thickness * 0.5)
	margin := float64(half + 1)
	lo := v2.Vec{X: -margin, Y: -margin}
	hi := v2.Vec{X: float64(s.Size.X) + margin, Y: float64(s.Size.Y) + margin}
	if !insideBox(start, lo, hi) || !insideBox(end, lo, hi) {
		var ok bool
		if start, end, ok = clipSegment(start, end, lo, hi); !ok {
			return
		}
	}

	x0, y0 := int(start.X), int(start.Y)
	x1, y1 := int(end.X), int(end.Y)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	for {
		for ty := -half; ty <= half; ty++ {
			for tx := -half; tx <= half; tx++ {
				PutPixel(s, x0+tx, y0+ty, c)
			}
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func insideBox(p, lo, hi v2.Vec) bool {
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// clipSegment clips a..b to the box [lo, hi] (Liang-Barsky). Each clipped point is measured from the nearer
// endpoint, so a far endpoint doesn't cost precision near the box. It returns false if nothing is left.
func clipSegment(a, b, lo, hi v2.Vec) (v2.Vec, v2.Vec, bool) {
	for _, v := range [4]float64{a.X, a.Y, b.X, b.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return a, b, false
		}
	}
	t0, t1, ok := clipParams(a, b, lo, hi)
	if !ok {
		return a, b, false
	}
	u0, u1, ok := clipParams(b, a, lo, hi)
	if !ok {
		return a, b, false
	}
	start := along(a, b, t0)
	if u1 < t0 {
		start = along(b, a, u1)
	}
	end := along(b, a, u0)
	if t1 < u0 {
		end = along(a, b, t1)
	}
	return clampVec(start, lo, hi), clampVec(end, lo, hi), true
}

// clipParams returns the parameter range [t0, t1] of a+(b-a)t that lies inside the box.
func clipParams(a, b, lo, hi v2.Vec) (t0, t1 float64, ok bool) {
	d := b.Sub(a)
	t0, t1 = 0, 1
	for _, pq := range [4][2]float64{{-d.X, a.X - lo.X}, {d.X, hi.X - a.X}, {-d.Y, a.Y - lo.Y}, {d.Y, hi.Y - a.Y}} {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return t0, t1, true
}

func along(from, to v2.Vec, t float64) v2.Vec {
	if t == 0 {
		return from
	}
	return from.Add(to.Sub(from).MulScalar(t))
}

func clampVec(p, lo, hi v2.Vec) v2.Vec {
	return v2.Vec{X: math.Min(math.Max(p.X, lo.X), hi.X), Y: math.Min(math.Max(p.Y, lo.Y), hi.Y)}
}

// Rect draws a rectangle. Filled mode paints the truncated [pos, pos+size) area, growing down from pos (to grow a
// bar up from a baseline, pass pos.Y = base - height); outlined mode runs Line along the four edges.
func Rect(s *Surface, pos, size v2.Vec, c RGB, filled bool, thickness float64) {
	if !filled {
		topRight := v2.Vec{X: pos.X + size.X, Y: pos.Y}
		bottomRight := v2.Vec{X: pos.X + size.X, Y: pos.Y + size.Y}
		bottomLeft := v2.Vec{X: pos.X, Y: pos.Y + size.Y}
		Line(s, pos, topRight, c, thickness)
		Line(s, topRight, bottomRight, c, thickness)
		Line(s, bottomRight, bottomLeft, c, thickness)
		Line(s, bottomLeft, pos, c, thickness)
		return
	}
	px, py := int(pos.X), int(pos.Y)
	w, h := int(size.X), int(size.Y)
	value := PackRGB(c)
	for y := py; y < py+h; y++ {
		for x := px; x < px+w; x++ {
			if s.Contains(x, y) {
				s.Pixels[y*s.Size.X+x] = value
			}
		}
	}
}

// Circle paints every integer offset within radius of center. The outline is the one pixel ring
// (radius-1)² <= d² <= radius², not a parametric walk.
func Circle(s *Surface, center v2.Vec, radius int, c RGB, filled bool) {
	cx, cy := int(center.X), int(center.Y)
	outer := radius * radius
	inner := (radius - 1) * (radius - 1)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			dist2 := x*x + y*y
			if dist2 > outer {
				continue
			}
			if !filled && dist2 < inner {
				continue
			}
			PutPixel(s, cx+x, cy+y, c)
		}
	}
}

// Polygon fills the area bounded by edges with the even-odd rule (scanline fill). Each segment covers the
// half-open row range [minY, maxY), so shared vertices are not counted twice. Spans are half-open too, which
// makes the fill of a rectangle outline match Rect(filled). An unpaired last intersection is ignored.
func Polygon(s *Surface, edges []Segment, c RGB) {
	if len(edges) == 0 {
		return
	}
	minY, maxY := edges[0][0].Y, edges[0][0].Y
	for _, seg := range edges {
		minY = math.Min(minY, math.Min(seg[0].Y, seg[1].Y))
		maxY = math.Max(maxY, math.Max(seg[0].Y, seg[1].Y))
	}
	// Rows outside the surface contribute nothing. Bounds are clamped before converting, far vertices don't fit an int
	yStart := floorClamp(minY, 0, s.Size.Y)
	yEnd := floorClamp(maxY, -1, s.Size.Y-1)

	value := PackRGB(c)
	intersections := make([]float64, 0, len(edges))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)
		intersections = intersections[:0]
		for _, seg := range edges {
			a, b := seg[0], seg[1]
			if a.Y > b.Y {
				a, b = b, a
			}
			if fy < a.Y || fy >= b.Y {
				continue
			}
			intersections = append(intersections, a.X+(fy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		slices.Sort(intersections)
		row := s.Pixels[y*s.Size.X : (y+1)*s.Size.X]
		for i := 0; i+1 < len(intersections); i += 2 {
			xFrom := floorClamp(intersections[i], 0, s.Size.X)
			xTo := floorClamp(intersections[i+1], 0, s.Size.X)
			for x := xFrom; x < xTo; x++ {
				row[x] = value
			}
		}
	}
}

// floorClamp floors v into [lo, hi]. NaN gives lo.
func floorClamp(v float64, lo, hi int) int {
	if !(v > float64(lo)) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return int(math.Floor(v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
