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

	"seehuhn.de/go/geom/rect"
)

// Kernel is the set of operations offered by a [Rasteriser]. There is one
// method per algorithm family; the concrete algorithm is chosen by the
// enum argument.
type Kernel interface {
	Line(s Segment, c color.Color, alg LineAlgorithm) error
	Circle(ci Circle, c color.Color, alg CircleAlgorithm) error
	ClipLine(s Segment, clip rect.Rect, alg ClipAlgorithm) (Segment, bool)
	ClipPolygon(subject, clip Polygon) (Polygon, error)
	Fill(p Polygon, c color.Color) error
}

var _ Kernel = (*Rasteriser)(nil)

// Rasteriser draws into a Surface. Create one instance per surface and
// reuse it; internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use. Callers drawing into the
// same surface from several goroutines must serialise the calls.
type Rasteriser struct {
	// Dst receives all pixel writes. Its bounds limit the scanlines
	// visited by Fill; all other operations work in unbounded
	// coordinates and rely on Dst to drop out-of-range writes.
	Dst Surface

	// Epsilon is the resolution of midpoint subdivision clipping, in
	// pixels. Sub-segments shorter than this are treated as points.
	// Must be positive.
	Epsilon float64

	// AngleStep is the fixed angular increment, in radians, used by
	// CircleParametric. Must be positive. Steps which would need more
	// than 65536 samples per circle are enlarged to that limit.
	AngleStep float64

	// Flatness is the curve approximation tolerance used when paths
	// are converted to polygons. Must be positive.
	Flatness float64

	// Strict makes invalid input (too few polygon vertices, negative
	// radius, inverted clip rectangles, unknown algorithms) return an
	// error before anything is drawn. When Strict is false, such input
	// is silently treated as empty.
	Strict bool

	xs   []float64 // scanline crossings
	work Polygon   // polygon clipping, current vertex list
	next Polygon   // polygon clipping, output vertex list
}

// NewRasteriser returns a Rasteriser writing to dst, with default values
// for all parameters.
func NewRasteriser(dst Surface) *Rasteriser {
	return &Rasteriser{
		Dst:       dst,
		Epsilon:   DefaultEpsilon,
		AngleStep: DefaultAngleStep,
		Flatness:  DefaultFlatness,
	}
}

// Reset rebinds the rasteriser to a new surface and restores the default
// parameters. Internal buffers are retained.
func (r *Rasteriser) Reset(dst Surface) {
	r.Dst = dst
	r.Epsilon = DefaultEpsilon
	r.AngleStep = DefaultAngleStep
	r.Flatness = DefaultFlatness
	r.Strict = false
}

// reject handles invalid input. In strict mode the error is returned,
// otherwise it is logged and swallowed.
func (r *Rasteriser) reject(op string, err error) error {
	if r.Strict {
		return err
	}
	Logger().Debug("input ignored", "op", op, "err", err)
	return nil
}

// Default values for rasteriser parameters.
const (
	// DefaultEpsilon is the default resolution for midpoint subdivision
	// clipping: half a pixel.
	DefaultEpsilon = 0.5

	// DefaultAngleStep is the default angular step of the parametric
	// circle algorithm, in radians.
	DefaultAngleStep = 0.001

	// DefaultFlatness is the default curve flattening tolerance in
	// pixels.
	DefaultFlatness = 0.25
)
