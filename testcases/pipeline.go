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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pixel"
)

// spiky is a non-convex, ten-vertex star.
var spiky = pixel.Poly(
	30, 10, 35, 25, 50, 25, 38, 33, 45, 48,
	30, 38, 15, 48, 22, 33, 10, 25, 25, 25,
)

var pipelineCases = []TestCase{
	{
		Name:   "star_in_window",
		Width:  80,
		Height: 60,
		Op: ClipFill{
			Subject: spiky,
			Clip:    pixel.RectPolygon(rect.Rect{LLx: 20, LLy: 15, URx: 50, URy: 40}),
		},
	},
	{
		Name:   "star_in_triangle_reversed",
		Width:  80,
		Height: 60,
		Op: ClipFill{
			Subject: spiky,
			Clip:    pixel.Poly(30, 5, 5, 50, 55, 50),
		},
	},
	{
		Name:   "triangle_inside",
		Width:  64,
		Height: 64,
		Op: ClipFill{
			Subject: pixel.Poly(20, 20, 40, 24, 28, 44),
			Clip:    pixel.RectPolygon(rect.Rect{LLx: 4, LLy: 4, URx: 60, URy: 60}),
		},
	},
	{
		Name:   "disjoint",
		Width:  64,
		Height: 64,
		Op: ClipFill{
			Subject: pixel.Poly(2, 2, 10, 2, 6, 10),
			Clip:    pixel.RectPolygon(rect.Rect{LLx: 30, LLy: 30, URx: 60, URy: 60}),
		},
	},
	{
		Name:   "hexagon_outline",
		Width:  64,
		Height: 64,
		Op: Outline{
			Polygon: pixel.Poly(32, 4, 56, 18, 56, 46, 32, 60, 8, 46, 8, 18),
			Alg:     pixel.LineBresenham,
		},
	},
}
