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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Validation errors. They are only returned when [Rasteriser.Strict] is
// set; otherwise invalid input draws nothing.
var (
	ErrTooFewVertices   = errors.New("polygon needs at least 3 vertices")
	ErrNegativeRadius   = errors.New("negative circle radius")
	ErrInvalidClip      = errors.New("invalid clip rectangle")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// ValidatePolygon checks that p has enough vertices to enclose an area.
func ValidatePolygon(p Polygon) error {
	if len(p) < 3 {
		return fmt.Errorf("%d vertices: %w", len(p), ErrTooFewVertices)
	}
	return nil
}

// ValidateCircle checks that the radius of c is non-negative.
func ValidateCircle(c Circle) error {
	if c.Radius < 0 {
		return fmt.Errorf("radius %d: %w", c.Radius, ErrNegativeRadius)
	}
	return nil
}

// ValidateClip checks that clip satisfies LLx <= URx and LLy <= URy.
// Zero-area rectangles are valid.
func ValidateClip(clip rect.Rect) error {
	if !(clip.LLx <= clip.URx && clip.LLy <= clip.URy) {
		return fmt.Errorf("[%g,%g]x[%g,%g]: %w",
			clip.LLx, clip.URx, clip.LLy, clip.URy, ErrInvalidClip)
	}
	return nil
}
