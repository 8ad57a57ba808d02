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

// window is the clip rectangle shared by the line clipping cases.
var window = rect.Rect{LLx: 12, LLy: 12, URx: 52, URy: 52}

// crossing contains segments in every relation to window: inside,
// outside, crossing one or two boundaries, through corners, and
// axis-parallel.
var crossing = []pixel.Segment{
	pixel.Seg(20, 20, 40, 44),  // inside
	pixel.Seg(2, 2, 8, 60),     // left of window
	pixel.Seg(0, 32, 63, 32),   // horizontal, both sides
	pixel.Seg(32, 0, 32, 63),   // vertical, both sides
	pixel.Seg(0, 0, 63, 63),    // diagonal through corners
	pixel.Seg(4, 40, 40, 62),   // corner cut
	pixel.Seg(30, 30, 62, 10),  // one end inside
	pixel.Seg(0, 20, 20, 0),    // outside corner, not trivially rejected
	pixel.Seg(60, 56, 60, 2),   // right of window
	pixel.Seg(12, 12, 52, 12),  // on the boundary
	pixel.Seg(40, 40, 40, 40),  // point inside
	pixel.Seg(-10, 70, 70, -6), // long diagonal
}

var clipCases = []TestCase{
	{
		Name:   "outcode",
		Width:  64,
		Height: 64,
		Op: ClipLine{
			Segments: crossing,
			Clip:     window,
			ClipAlg:  pixel.ClipOutcode,
			LineAlg:  pixel.LineBresenham,
		},
	},
	{
		Name:   "midpoint",
		Width:  64,
		Height: 64,
		Op: ClipLine{
			Segments: crossing,
			Clip:     window,
			ClipAlg:  pixel.ClipMidpoint,
			LineAlg:  pixel.LineBresenham,
		},
	},
	{
		Name:   "degenerate_window",
		Width:  64,
		Height: 64,
		Op: ClipLine{
			Segments: crossing,
			Clip:     rect.Rect{LLx: 32, LLy: 12, URx: 32, URy: 52},
			ClipAlg:  pixel.ClipOutcode,
			LineAlg:  pixel.LineDDA,
		},
	},
}
