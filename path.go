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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path returns p as a closed path, for use with other seehuhn.de/go
// packages.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p) == 0 {
			return
		}
		var buf [1]vec.Vec2
		buf[0] = p[0]
		if !yield(path.CmdMoveTo, buf[:]) {
			return
		}
		for _, v := range p[1:] {
			buf[0] = v
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// PolygonsFromPath converts every subpath of p into a polygon. Subpaths
// are implicitly closed. Curves are replaced by line segments which
// deviate from the curve by at most flatness; if flatness is not
// positive, [DefaultFlatness] is used. Subpaths with fewer than three
// vertices are dropped.
func PolygonsFromPath(p path.Path, flatness float64) []Polygon {
	if !(flatness > 0) {
		flatness = DefaultFlatness
	}

	var res []Polygon
	var cur Polygon
	var current, start vec.Vec2
	emit := func(_, to vec.Vec2) {
		cur = append(cur, to)
	}
	// A drawing command after ClosePath starts a new subpath at the
	// start point of the closed one.
	open := func() {
		if len(cur) == 0 {
			cur = append(cur, current)
		}
	}
	flush := func() {
		if n := len(cur); n > 1 && cur[n-1] == cur[0] {
			cur = cur[:n-1]
		}
		if len(cur) >= 3 {
			res = append(res, cur)
		}
		cur = nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			start = current
			cur = append(cur, current)
		case path.CmdLineTo:
			open()
			current = pts[0]
			cur = append(cur, current)
		case path.CmdQuadTo:
			open()
			flattenQuadratic(current, pts[0], pts[1], flatness, emit)
			current = pts[1]
		case path.CmdCubeTo:
			open()
			flattenCubic(current, pts[0], pts[1], pts[2], flatness, emit)
			current = pts[2]
		case path.CmdClose:
			flush()
			current = start
		}
	}
	flush()
	return res
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and calls emit for each of them.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the deviation from the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > flatness {
		n = int(math.Ceil(math.Sqrt(dev / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments and calls emit for each of them. The number of segments is
// given by Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
