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

	"seehuhn.de/go/pixel"
)

var lineCases = []TestCase{
	{
		Name:   "pentagram_dda",
		Width:  64,
		Height: 64,
		Op:     Outline{Polygon: pixel.Star(pt(32, 32), 28, -90), Alg: pixel.LineDDA},
	},
	{
		Name:   "pentagram_bresenham",
		Width:  64,
		Height: 64,
		Op:     Outline{Polygon: pixel.Star(pt(32, 32), 28, -90), Alg: pixel.LineBresenham},
	},
	{
		Name:   "pentagram_bresenham_float",
		Width:  64,
		Height: 64,
		Op:     Outline{Polygon: pixel.Star(pt(32, 32), 28, -90), Alg: pixel.LineBresenhamFloat},
	},
	{
		Name:   "fan_dda",
		Width:  64,
		Height: 64,
		Op:     Line{Segments: fan(32, 32, 30, 16), Alg: pixel.LineDDA},
	},
	{
		Name:   "fan_bresenham",
		Width:  64,
		Height: 64,
		Op:     Line{Segments: fan(32, 32, 30, 16), Alg: pixel.LineBresenham},
	},
	{
		Name:   "fan_bresenham_float",
		Width:  64,
		Height: 64,
		Op:     Line{Segments: fan(32, 32, 30, 16), Alg: pixel.LineBresenhamFloat},
	},
	{
		Name:   "axis_aligned",
		Width:  64,
		Height: 64,
		Op: Line{
			Segments: []pixel.Segment{
				pixel.Seg(4, 8, 60, 8),
				pixel.Seg(60, 16, 4, 16),
				pixel.Seg(8, 4, 8, 60),
				pixel.Seg(16, 60, 16, 4),
			},
			Alg: pixel.LineBresenham,
		},
	},
	{
		Name:   "degenerate",
		Width:  16,
		Height: 16,
		Op: Line{
			Segments: []pixel.Segment{pixel.Seg(7, 7, 7, 7)},
			Alg:      pixel.LineDDA,
		},
	},
	{
		Name:   "partly_outside",
		Width:  32,
		Height: 32,
		Op: Line{
			Segments: []pixel.Segment{pixel.Seg(-20, -4, 50, 30)},
			Alg:      pixel.LineBresenham,
		},
	},
}

// fan returns n segments from (cx, cy) to points on a circle of radius r,
// covering all eight octants.
func fan(cx, cy, r float64, n int) []pixel.Segment {
	segs := make([]pixel.Segment, n)
	for i := range n {
		phi := float64(i) * 2 * math.Pi / float64(n)
		segs[i] = pixel.Seg(cx, cy, cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return segs
}
