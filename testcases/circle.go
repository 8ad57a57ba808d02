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
	"image"

	"seehuhn.de/go/pixel"
)

var circleCases = []TestCase{
	{
		Name:   "concentric_midpoint",
		Width:  64,
		Height: 64,
		Op:     Circle{Circles: concentric(32, 32, 0, 5, 12, 29), Alg: pixel.CircleMidpoint},
	},
	{
		Name:   "concentric_parametric",
		Width:  64,
		Height: 64,
		Op:     Circle{Circles: concentric(32, 32, 0, 5, 12, 29), Alg: pixel.CircleParametric},
	},
	{
		Name:   "concentric_implicit",
		Width:  64,
		Height: 64,
		Op:     Circle{Circles: concentric(32, 32, 0, 5, 12, 29), Alg: pixel.CircleImplicit},
	},
	{
		Name:   "corner_midpoint",
		Width:  32,
		Height: 32,
		Op:     Circle{Circles: concentric(0, 0, 20), Alg: pixel.CircleMidpoint},
	},
	{
		Name:   "corner_implicit",
		Width:  32,
		Height: 32,
		Op:     Circle{Circles: concentric(31, 31, 20), Alg: pixel.CircleImplicit},
	},
	{
		Name:   "large_parametric",
		Width:  256,
		Height: 256,
		Op:     Circle{Circles: concentric(128, 128, 120), Alg: pixel.CircleParametric},
	},
}

// concentric returns circles with a common centre.
func concentric(cx, cy int, radii ...int) []pixel.Circle {
	res := make([]pixel.Circle, len(radii))
	for i, r := range radii {
		res[i] = pixel.Circle{Center: image.Pt(cx, cy), Radius: r}
	}
	return res
}
