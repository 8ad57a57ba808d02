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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// TestCase defines a single rasterisation scenario.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // what to draw
	CTM    matrix.Matrix // applied to segments and polygons (zero-value means no transform)
}

// Operation is the kernel operation exercised by a test case.
type Operation interface {
	isOperation()
}

// Line rasterises each segment with the given algorithm.
type Line struct {
	Segments []pixel.Segment
	Alg      pixel.LineAlgorithm
}

func (Line) isOperation() {}

// Outline draws the closed outline of a polygon.
type Outline struct {
	Polygon pixel.Polygon
	Alg     pixel.LineAlgorithm
}

func (Outline) isOperation() {}

// Circle rasterises each circle with the given algorithm.
// Circles are not affected by the CTM.
type Circle struct {
	Circles []pixel.Circle
	Alg     pixel.CircleAlgorithm
}

func (Circle) isOperation() {}

// ClipLine clips each segment to Clip and rasterises the visible parts.
type ClipLine struct {
	Segments []pixel.Segment
	Clip     rect.Rect
	ClipAlg  pixel.ClipAlgorithm
	LineAlg  pixel.LineAlgorithm
}

func (ClipLine) isOperation() {}

// Fill fills every subpath of Path with the even-odd scanline filler.
// Simple is set if the path has no self-intersections.
type Fill struct {
	Path   path.Path
	Simple bool
}

func (Fill) isOperation() {}

// ClipFill clips Subject to the convex polygon Clip and fills the result.
type ClipFill struct {
	Subject pixel.Polygon
	Clip    pixel.Polygon
}

func (ClipFill) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
