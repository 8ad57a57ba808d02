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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: polygon(10, 50, 32, 10, 54, 50), Simple: true},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: rectangle(10, 10, 44, 44), Simple: true},
	},
	{
		Name:   "concave",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: polygon(8, 8, 56, 8, 56, 56, 32, 24, 8, 56), Simple: true},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: fivePointStar(32, 32, 25)},
	},
	{
		Name:   "subpixel_rectangle",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: rectangle(20.25, 20.5, 40.75, 41.5), Simple: true},
	},
	{
		Name:   "rotated_square",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: rectangle(-16, -16, 16, 16), Simple: true},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "scaled_triangle",
		Width:  128,
		Height: 128,
		Op:     Fill{Path: polygon(0, 0, 20, 0, 10, 16), Simple: true},
		CTM:    matrix.Scale(5, 5).Translate(14, 14),
	},
	{
		Name:   "blob",
		Width:  64,
		Height: 64,
		Op:     Fill{Path: blob(32, 32, 24), Simple: true},
	},
	{
		Name:   "off_canvas",
		Width:  32,
		Height: 32,
		Op:     Fill{Path: polygon(-20, -10, 50, 4, 20, 60), Simple: true},
	},
}

// polygon builds a closed path through the given x, y coordinates.
func polygon(xy ...float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(xy[0], xy[1])}) {
			return
		}
		for i := 2; i+1 < len(xy); i += 2 {
			if !yield(path.CmdLineTo, []vec.Vec2{pt(xy[i], xy[i+1])}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(x1, y1, x2, y1, x2, y2, x1, y2)
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// blob builds a rounded convex shape from four cubic Bézier arcs.
func blob(cx, cy, r float64) path.Path {
	const k = 0.5522847498
	kr := k * r
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx, cy-r)}) {
			return
		}
		arcs := [][]vec.Vec2{
			{pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)},
			{pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)},
			{pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)},
			{pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)},
		}
		for _, arc := range arcs {
			if !yield(path.CmdCubeTo, arc) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
