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

// CircleAlgorithm selects how a circle is converted to pixels.
type CircleAlgorithm int

const (
	// CircleMidpoint is the integer midpoint (Bresenham) circle
	// algorithm. Its output has the full 8-fold symmetry of the circle.
	CircleMidpoint CircleAlgorithm = iota

	// CircleParametric samples (a + r cos t, b + r sin t) for t in
	// [0, 2π) at the fixed step [Rasteriser.AngleStep]. Large radii may
	// leave gaps; small radii write pixels many times.
	CircleParametric

	// CircleImplicit solves the circle equation for y at every integer x
	// in [a-r, a+r], then for x at every integer y in [b-r, b+r]. Pixels
	// near the diagonals are written by both passes.
	CircleImplicit
)

func (a CircleAlgorithm) String() string {
	switch a {
	case CircleMidpoint:
		return "midpoint"
	case CircleParametric:
		return "parametric"
	case CircleImplicit:
		return "implicit"
	default:
		return fmt.Sprintf("CircleAlgorithm(%d)", int(a))
	}
}

// Circle rasterises the outline of ci with colour c.
// A negative radius is invalid input.
func (r *Rasteriser) Circle(ci Circle, c color.Color, alg CircleAlgorithm) error {
	if err := ValidateCircle(ci); err != nil {
		return r.reject("circle", err)
	}
	switch alg {
	case CircleMidpoint:
		circleMidpoint(r.Dst, ci, c)
	case CircleParametric:
		circleParametric(r.Dst, ci, c, r.AngleStep)
	case CircleImplicit:
		circleImplicit(r.Dst, ci, c)
	default:
		return r.reject("circle", fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm))
	}
	return nil
}

// CirclePixels returns the pixels written by alg for ci, in write order.
// Pixels written more than once appear more than once.
func CirclePixels(ci Circle, alg CircleAlgorithm) []image.Point {
	rec := NewRecorder(unbounded)
	r := NewRasteriser(rec)
	r.Circle(ci, color.Black, alg)
	return rec.Writes()
}

func circleMidpoint(dst Surface, ci Circle, c color.Color) {
	a, b := ci.Center.X, ci.Center.Y
	x, y := 0, ci.Radius
	d := 3 - 2*ci.Radius

	for x <= y {
		dst.Set(a+x, b+y, c)
		dst.Set(a-x, b+y, c)
		dst.Set(a+x, b-y, c)
		dst.Set(a-x, b-y, c)
		dst.Set(a+y, b+x, c)
		dst.Set(a-y, b+x, c)
		dst.Set(a+y, b-x, c)
		dst.Set(a-y, b-x, c)

		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

func circleParametric(dst Surface, ci Circle, c color.Color, step float64) {
	if !(step > 0) {
		step = DefaultAngleStep
	}
	a, b := float64(ci.Center.X), float64(ci.Center.Y)
	rad := float64(ci.Radius)

	n := math.Ceil(2 * math.Pi / step)
	switch {
	case n > maxParametricSamples:
		Logger().Debug("angle step too small", "step", step, "samples", maxParametricSamples)
		n = maxParametricSamples
		step = 2 * math.Pi / n
	case n < 1:
		n = 1
		step = 2 * math.Pi
	}

	for i := range int(n) {
		t := float64(i) * step
		x := int(math.Round(a + rad*math.Cos(t)))
		y := int(math.Round(b + rad*math.Sin(t)))
		dst.Set(x, y, c)
	}
}

// maxParametricSamples bounds the number of angles visited by
// CircleParametric. At this resolution neighbouring samples are less
// than a pixel apart for radii up to about 10000.
const maxParametricSamples = 1 << 16

func circleImplicit(dst Surface, ci Circle, c color.Color) {
	a, b, rad := ci.Center.X, ci.Center.Y, ci.Radius
	r2 := float64(rad) * float64(rad)

	// columns: y = b ± sqrt(r² - (x-a)²)
	for x := a - rad; x <= a+rad; x++ {
		h := math.Sqrt(r2 - float64((x-a)*(x-a)))
		dst.Set(x, int(math.Round(float64(b)+h)), c)
		dst.Set(x, int(math.Round(float64(b)-h)), c)
	}

	// rows: x = a ± sqrt(r² - (y-b)²), closing the gaps near the poles
	for y := b - rad; y <= b+rad; y++ {
		w := math.Sqrt(r2 - float64((y-b)*(y-b)))
		dst.Set(int(math.Round(float64(a)+w)), y, c)
		dst.Set(int(math.Round(float64(a)-w)), y, c)
	}
}
