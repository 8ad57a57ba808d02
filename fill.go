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
	"math"
	"slices"
)

// Fill paints the interior of p with colour c, using the even-odd rule.
//
// Every integer scanline y inside both the vertical extent of p and the
// bounds of the surface is intersected with the edges of p. An edge
// contributes a crossing if one endpoint lies strictly above y and the
// other on or below it, so that a scanline through a vertex is counted
// once. The sorted crossings are taken in pairs, and pixels x with
// floor(x0) <= x < x1 are painted for each pair (x0, x1). An unpaired
// last crossing is ignored.
//
// Polygons with fewer than three vertices are invalid input.
func (r *Rasteriser) Fill(p Polygon, c color.Color) error {
	if err := ValidatePolygon(p); err != nil {
		return r.reject("fill", err)
	}

	bounds := r.Dst.Bounds()
	box := p.Bounds()
	yMin := max(int(math.Ceil(box.LLy)), bounds.Min.Y)
	yMax := min(int(math.Floor(box.URy)), bounds.Max.Y-1)

	n := len(p)
	for y := yMin; y <= yMax; y++ {
		yf := float64(y)

		xs := r.xs[:0]
		for i := range n {
			p1, p2 := p[i], p[(i+1)%n]
			if (p1.Y < yf && p2.Y >= yf) || (p2.Y < yf && p1.Y >= yf) {
				xs = append(xs, p1.X+(yf-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y))
			}
		}
		r.xs = xs
		if len(xs) < 2 {
			continue
		}
		slices.Sort(xs)
		if len(xs)%2 != 0 {
			Logger().Debug("odd number of scanline crossings", "y", y, "n", len(xs))
		}

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Floor(xs[i])), bounds.Min.X)
			x1 := xs[i+1]
			for x := x0; float64(x) < x1 && x < bounds.Max.X; x++ {
				r.Dst.Set(x, y, c)
			}
		}
	}
	return nil
}
