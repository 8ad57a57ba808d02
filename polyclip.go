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

package pixel

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// ClipPolygon restricts subject to the convex polygon clip, using the
// Sutherland-Hodgman algorithm. See [SutherlandHodgman] for details.
//
// Polygons with fewer than three vertices are invalid input.
func (r *Rasteriser) ClipPolygon(subject, clip Polygon) (Polygon, error) {
	if err := ValidatePolygon(subject); err != nil {
		return nil, r.reject("clip polygon: subject", err)
	}
	if err := ValidatePolygon(clip); err != nil {
		return nil, r.reject("clip polygon: clip region", err)
	}
	res := sutherlandHodgman(subject, clip, &r.work, &r.next)
	if len(res) < 3 {
		return nil, nil
	}
	return slices.Clone(res), nil
}

// ClippedFill clips subject to the convex polygon clip and fills the
// visible part with colour c.
func (r *Rasteriser) ClippedFill(subject, clip Polygon, c color.Color) error {
	visible, err := r.ClipPolygon(subject, clip)
	if err != nil || visible == nil {
		return err
	}
	return r.Fill(visible, c)
}

// SutherlandHodgman clips subject against every edge of the convex
// polygon clip in turn. The vertices of clip may run in either direction.
//
// The result is empty if subject lies entirely outside clip, or if
// fewer than three vertices remain. Subject polygons need not be convex;
// for non-convex subjects the result may contain edges running along
// the clip boundary.
func SutherlandHodgman(subject, clip Polygon) Polygon {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}
	var bufA, bufB Polygon
	res := sutherlandHodgman(subject, clip, &bufA, &bufB)
	if len(res) < 3 {
		return nil
	}
	return res
}

// sutherlandHodgman runs the clipping passes, alternating between the two
// scratch buffers. The result aliases one of the buffers.
func sutherlandHodgman(subject, clip Polygon, bufA, bufB *Polygon) Polygon {
	ccw := clip.SignedArea() >= 0

	in := append((*bufA)[:0], subject...)
	out := (*bufB)[:0]
	n := len(clip)
	for i := range n {
		a, b := clip[i], clip[(i+1)%n]

		out = out[:0]
		for j, p := range in {
			q := in[(j+1)%len(in)]
			pIn := isInside(a, b, p, ccw)
			qIn := isInside(a, b, q, ccw)
			switch {
			case pIn && qIn:
				out = append(out, q)
			case qIn:
				out = append(out, intersect(p, q, a, b), q)
			case pIn:
				out = append(out, intersect(p, q, a, b))
			}
		}
		in, out = out, in

		if len(in) == 0 {
			Logger().Debug("polygon clipped away", "clipEdge", i)
			break
		}
	}

	*bufA, *bufB = in, out
	return in
}

// isInside reports whether p lies on the inner side of the directed clip
// edge a→b, or on the edge itself. For counter-clockwise clip polygons
// the inside is to the left of the edge.
func isInside(a, b, p vec.Vec2, ccw bool) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if ccw {
		return cross >= 0
	}
	return cross <= 0
}

// intersect returns the intersection of the line through p and q with
// the line through a and b. The lines are written as A*x + B*y = C and
// solved by Cramer's rule. Parallel lines yield p.
func intersect(p, q, a, b vec.Vec2) vec.Vec2 {
	a1 := q.Y - p.Y
	b1 := p.X - q.X
	c1 := a1*p.X + b1*p.Y

	a2 := b.Y - a.Y
	b2 := a.X - b.X
	c2 := a2*a.X + b2*a.Y

	det := a1*b2 - a2*b1
	if det == 0 {
		return p
	}
	return vec.Vec2{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
}
