// seehuhn.de/go/pixel - integer rasterisation and clipping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pixel converts lines, circles and polygons into sets of pixels,
// and clips geometry against rectangles and convex polygons before it is
// rasterised.
//
// All algorithms write through a [Surface]; nothing is read back. Output
// is aliased: every pixel is either written with the given colour or left
// alone.
package pixel

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Surface is the pixel grid written by the rasterisers.
//
// Set must silently ignore coordinates outside Bounds. Every draw.Image
// from the standard library satisfies this interface.
type Surface interface {
	Set(x, y int, c color.Color)
	Bounds() image.Rectangle
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B vec.Vec2
}

// Seg is a shorthand for constructing a Segment.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: vec.Vec2{X: x1, Y: y1}, B: vec.Vec2{X: x2, Y: y2}}
}

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

// Pixels returns the endpoints rounded to the nearest pixel.
func (s Segment) Pixels() (image.Point, image.Point) {
	return roundPoint(s.A), roundPoint(s.B)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y)
}

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() vec.Vec2 {
	return vec.Vec2{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// Transform maps both endpoints through m.
func (s Segment) Transform(m matrix.Matrix) Segment {
	return Segment{A: apply(m, s.A), B: apply(m, s.B)}
}

// Circle is a circle with integer centre and radius.
// A radius of zero denotes a single pixel.
type Circle struct {
	Center image.Point
	Radius int
}

// Polygon is a closed sequence of vertices. Edge i connects vertex i to
// vertex (i+1) mod n; the closing vertex is not repeated.
type Polygon []vec.Vec2

// Poly builds a polygon from a flat list of x, y coordinates.
// A trailing odd coordinate is ignored.
func Poly(xy ...float64) Polygon {
	p := make(Polygon, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		p = append(p, vec.Vec2{X: xy[i], Y: xy[i+1]})
	}
	return p
}

// SignedArea returns the shoelace area of the polygon. The result is
// positive when the vertices run counter-clockwise in a y-up coordinate
// system.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a, b := p[i], p[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Bounds returns the smallest rectangle containing all vertices.
// The zero rectangle is returned for an empty polygon.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// Transform returns a new polygon with every vertex mapped through m.
func (p Polygon) Transform(m matrix.Matrix) Polygon {
	q := make(Polygon, len(p))
	for i, v := range p {
		q[i] = apply(m, v)
	}
	return q
}

// RectPolygon returns the four corners of r as a counter-clockwise polygon,
// suitable as a clip region for [SutherlandHodgman].
func RectPolygon(r rect.Rect) Polygon {
	return Polygon{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
}

// Star returns the five vertices of a regular pentagram in drawing order
// (every second point of a regular pentagon). The first vertex lies at
// angle startDeg, measured in degrees from the positive x-axis.
func Star(center vec.Vec2, radius, startDeg float64) Polygon {
	var corners [5]vec.Vec2
	start := startDeg * math.Pi / 180
	for i := range corners {
		phi := start + float64(i)*2*math.Pi/5
		corners[i] = vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		}
	}
	star := make(Polygon, 0, 5)
	for _, i := range []int{0, 2, 4, 1, 3} {
		star = append(star, corners[i])
	}
	return star
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func roundPoint(v vec.Vec2) image.Point {
	return image.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
