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
	"fmt"
	"image"
	"image/color"
	"math"
)

// LineAlgorithm selects how a segment is converted to pixels.
type LineAlgorithm int

const (
	// LineDDA steps along the dominant axis in L = max(|dx|,|dy|) equal
	// floating-point increments and writes L+1 samples.
	LineDDA LineAlgorithm = iota

	// LineBresenham is the integer-only midpoint algorithm.
	LineBresenham

	// LineBresenhamFloat uses the Bresenham stepping rule with a
	// floating-point decision variable. Its output may differ from
	// LineBresenham where the decision value is exactly zero, because
	// the accumulated slope is subject to rounding.
	LineBresenhamFloat
)

func (a LineAlgorithm) String() string {
	switch a {
	case LineDDA:
		return "dda"
	case LineBresenham:
		return "bresenham"
	case LineBresenhamFloat:
		return "bresenham-float"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

// Line rasterises s with colour c. The endpoints are first rounded to
// the nearest pixel; both end pixels are always written, and a
// degenerate segment writes exactly one pixel.
func (r *Rasteriser) Line(s Segment, c color.Color, alg LineAlgorithm) error {
	p0, p1 := s.Pixels()
	switch alg {
	case LineDDA:
		lineDDA(r.Dst, p0, p1, c)
	case LineBresenham:
		lineBresenham(r.Dst, p0, p1, c)
	case LineBresenhamFloat:
		lineBresenhamFloat(r.Dst, p0, p1, c)
	default:
		return r.reject("line", fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm))
	}
	return nil
}

// Polyline draws the edges between consecutive points. If closed is set
// and there are more than two points, the last point is joined to the
// first.
func (r *Rasteriser) Polyline(pts []image.Point, closed bool, c color.Color, alg LineAlgorithm) error {
	if alg < LineDDA || alg > LineBresenhamFloat {
		return r.reject("polyline", fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm))
	}
	if len(pts) == 1 {
		r.Dst.Set(pts[0].X, pts[0].Y, c)
		return nil
	}
	for i := 1; i < len(pts); i++ {
		if err := r.Line(segmentOf(pts[i-1], pts[i]), c, alg); err != nil {
			return err
		}
	}
	if closed && len(pts) > 2 {
		return r.Line(segmentOf(pts[len(pts)-1], pts[0]), c, alg)
	}
	return nil
}

// Outline draws the boundary of p, rounding each vertex to the nearest
// pixel.
func (r *Rasteriser) Outline(p Polygon, c color.Color, alg LineAlgorithm) error {
	pts := make([]image.Point, len(p))
	for i, v := range p {
		pts[i] = roundPoint(v)
	}
	return r.Polyline(pts, true, c, alg)
}

// LinePixels returns the pixels written by alg for s, in write order.
func LinePixels(s Segment, alg LineAlgorithm) []image.Point {
	rec := NewRecorder(unbounded)
	r := NewRasteriser(rec)
	r.Line(s, color.Black, alg)
	return rec.Writes()
}

// lineDDA implements the digital differential analyser. Sample i lies
// at p0 + i*(dx/L, dy/L); it is offset by half a pixel in the direction
// of travel and truncated towards p0, so that integer endpoints are hit
// exactly.
func lineDDA(dst Surface, p0, p1 image.Point, c color.Color) {
	if p0 == p1 {
		dst.Set(p0.X, p0.Y, c)
		return
	}

	L := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y))
	dx := float64(p1.X-p0.X) / float64(L)
	dy := float64(p1.Y-p0.Y) / float64(L)

	x := float64(p0.X) + 0.5*float64(sign(dx))
	y := float64(p0.Y) + 0.5*float64(sign(dy))
	for range L + 1 {
		dst.Set(ddaSample(x, dx), ddaSample(y, dy), c)
		x += dx
		y += dy
	}
}

// ddaSample converts an offset DDA coordinate to a pixel index.
func ddaSample(v, step float64) int {
	if step < 0 {
		return int(math.Ceil(v))
	}
	return int(math.Floor(v))
}

// lineBresenham implements the integer Bresenham algorithm. The octant is
// normalised so that the loop always advances the major axis; the minor
// axis steps whenever the decision variable is non-negative.
func lineBresenham(dst Surface, p0, p1 image.Point, c color.Color) {
	if p0 == p1 {
		dst.Set(p0.X, p0.Y, c)
		return
	}

	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	sx, sy := sign(dx), sign(dy)
	dx, dy = abs(dx), abs(dy)

	steep := dy > dx
	if steep {
		dx, dy = dy, dx
	}

	f := 2*dy - dx
	x, y := p0.X, p0.Y
	for range dx {
		dst.Set(x, y, c)
		if f >= 0 {
			if steep {
				x += sx
			} else {
				y += sy
			}
			f -= 2 * dx
		}
		if steep {
			y += sy
		} else {
			x += sx
		}
		f += 2 * dy
	}
	dst.Set(p1.X, p1.Y, c)
}

// lineBresenhamFloat follows the same stepping rule as lineBresenham, but
// with the decision variable slope-1/2 kept as a float64.
func lineBresenhamFloat(dst Surface, p0, p1 image.Point, c color.Color) {
	if p0 == p1 {
		dst.Set(p0.X, p0.Y, c)
		return
	}

	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	sx, sy := sign(dx), sign(dy)
	dx, dy = abs(dx), abs(dy)

	steep := dy > dx
	if steep {
		dx, dy = dy, dx
	}

	slope := float64(dy) / float64(dx)
	f := slope - 0.5
	x, y := p0.X, p0.Y
	for range dx {
		dst.Set(x, y, c)
		if f >= 0 {
			if steep {
				x += sx
			} else {
				y += sy
			}
			f -= 1
		}
		if steep {
			y += sy
		} else {
			x += sx
		}
		f += slope
	}
	dst.Set(p1.X, p1.Y, c)
}

func segmentOf(a, b image.Point) Segment {
	return Seg(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
}
