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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pixel"
)

// Render draws tc into dst using colour c. The rasteriser runs in strict
// mode, so that malformed test cases are reported.
func Render(tc TestCase, dst pixel.Surface, c color.Color) error {
	r := pixel.NewRasteriser(dst)
	r.Strict = true

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	switch op := tc.Op.(type) {
	case Line:
		for _, s := range op.Segments {
			if err := r.Line(s.Transform(ctm), c, op.Alg); err != nil {
				return err
			}
		}
	case Outline:
		return r.Outline(op.Polygon.Transform(ctm), c, op.Alg)
	case Circle:
		for _, ci := range op.Circles {
			if err := r.Circle(ci, c, op.Alg); err != nil {
				return err
			}
		}
	case ClipLine:
		for _, s := range op.Segments {
			err := r.ClippedLine(s.Transform(ctm), op.Clip, op.ClipAlg, op.LineAlg, c)
			if err != nil {
				return err
			}
		}
	case Fill:
		for _, p := range pixel.PolygonsFromPath(op.Path, r.Flatness) {
			if err := r.Fill(p.Transform(ctm), c); err != nil {
				return err
			}
		}
	case ClipFill:
		return r.ClippedFill(op.Subject.Transform(ctm), op.Clip.Transform(ctm), c)
	default:
		return fmt.Errorf("unsupported operation %T", tc.Op)
	}
	return nil
}
