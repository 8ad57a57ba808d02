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
	"image/color"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// RegionCode classifies a point relative to the four half-planes bounding
// a clip rectangle. The zero value means the point is inside.
type RegionCode uint8

// Region bits. Bottom and Top refer to the y < LLy and y > URy
// half-planes respectively.
const (
	Left RegionCode = 1 << iota
	Right
	Bottom
	Top
)

func (c RegionCode) String() string {
	if c == 0 {
		return "inside"
	}
	var parts []string
	for _, b := range []struct {
		bit  RegionCode
		name string
	}{{Top, "top"}, {Bottom, "bottom"}, {Right, "right"}, {Left, "left"}} {
		if c&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}

// Outcode returns the region code of p relative to clip.
// Points on the boundary are inside.
func Outcode(p vec.Vec2, clip rect.Rect) RegionCode {
	var code RegionCode
	if p.X < clip.LLx {
		code |= Left
	} else if p.X > clip.URx {
		code |= Right
	}
	if p.Y < clip.LLy {
		code |= Bottom
	} else if p.Y > clip.URy {
		code |= Top
	}
	return code
}

// ClipAlgorithm selects how a segment is clipped to a rectangle.
type ClipAlgorithm int

const (
	// ClipOutcode is the Cohen-Sutherland algorithm. Intersections are
	// exact up to floating-point rounding.
	ClipOutcode ClipAlgorithm = iota

	// ClipMidpoint clips by recursive bisection. Boundary crossings are
	// located to within [Rasteriser.Epsilon].
	ClipMidpoint
)

func (a ClipAlgorithm) String() string {
	switch a {
	case ClipOutcode:
		return "outcode"
	case ClipMidpoint:
		return "midpoint"
	default:
		return fmt.Sprintf("ClipAlgorithm(%d)", int(a))
	}
}

// ClipLine restricts s to clip. The boolean result is false if no part
// of s lies inside clip; in this case the returned segment is the zero
// value.
func (r *Rasteriser) ClipLine(s Segment, clip rect.Rect, alg ClipAlgorithm) (Segment, bool) {
	switch alg {
	case ClipOutcode:
		return ClipCohenSutherland(s, clip)
	case ClipMidpoint:
		return ClipMidpointSubdivision(s, clip, r.Epsilon)
	default:
		Logger().Debug("unknown clip algorithm", "alg", alg)
		return Segment{}, false
	}
}

// ClippedLine clips s to clip using clipAlg and rasterises the visible
// part, if any, using lineAlg.
func (r *Rasteriser) ClippedLine(s Segment, clip rect.Rect, clipAlg ClipAlgorithm, lineAlg LineAlgorithm, c color.Color) error {
	if err := ValidateClip(clip); err != nil {
		return r.reject("clipped line", err)
	}
	if clipAlg != ClipOutcode && clipAlg != ClipMidpoint {
		return r.reject("clipped line", fmt.Errorf("%v: %w", clipAlg, ErrUnknownAlgorithm))
	}
	visible, ok := r.ClipLine(s, clip, clipAlg)
	if !ok {
		return nil
	}
	return r.Line(visible, c, lineAlg)
}

// ClipCohenSutherland clips s to clip using region codes.
//
// While neither trivial acceptance (both codes zero) nor trivial
// rejection (codes share a bit) applies, an endpoint outside the
// rectangle is moved onto the boundary of its highest priority region,
// in the order top, bottom, right, left.
func ClipCohenSutherland(s Segment, clip rect.Rect) (Segment, bool) {
	if ValidateClip(clip) != nil {
		return Segment{}, false
	}

	a, b := s.A, s.B
	codeA, codeB := Outcode(a, clip), Outcode(b, clip)
	for range maxOutcodeIterations + 1 {
		if codeA|codeB == 0 {
			return Segment{A: a, B: b}, true
		}
		if codeA&codeB != 0 {
			return Segment{}, false
		}

		out := codeA
		if out == 0 {
			out = codeB
		}

		// The other endpoint is not in region out, so the delta used as
		// divisor below is non-zero.
		var p vec.Vec2
		switch {
		case out&Top != 0:
			p = vec.Vec2{X: a.X + (b.X-a.X)*(clip.URy-a.Y)/(b.Y-a.Y), Y: clip.URy}
		case out&Bottom != 0:
			p = vec.Vec2{X: a.X + (b.X-a.X)*(clip.LLy-a.Y)/(b.Y-a.Y), Y: clip.LLy}
		case out&Right != 0:
			p = vec.Vec2{X: clip.URx, Y: a.Y + (b.Y-a.Y)*(clip.URx-a.X)/(b.X-a.X)}
		default:
			p = vec.Vec2{X: clip.LLx, Y: a.Y + (b.Y-a.Y)*(clip.LLx-a.X)/(b.X-a.X)}
		}

		if out == codeA {
			a = p
			codeA = Outcode(a, clip)
		} else {
			b = p
			codeB = Outcode(b, clip)
		}
	}

	Logger().Debug("outcode clipping did not converge",
		"a", s.A, "b", s.B, "codeA", codeA, "codeB", codeB)
	return Segment{}, false
}

// ClipMidpointSubdivision clips s to clip by recursive bisection.
//
// Halves which are trivially inside or trivially outside are resolved
// directly; other halves are bisected again until they are shorter than
// eps, at which point they are replaced by their midpoint. The resulting
// endpoints therefore lie within about eps of the exact intersections.
// If eps is not positive, [DefaultEpsilon] is used.
func ClipMidpointSubdivision(s Segment, clip rect.Rect, eps float64) (Segment, bool) {
	if ValidateClip(clip) != nil {
		return Segment{}, false
	}
	if !(eps > 0) {
		eps = DefaultEpsilon
	}
	return clipMidpoint(s, clip, eps, 0)
}

func clipMidpoint(s Segment, clip rect.Rect, eps float64, depth int) (Segment, bool) {
	codeA, codeB := Outcode(s.A, clip), Outcode(s.B, clip)
	if codeA|codeB == 0 {
		return s, true
	}
	if codeA&codeB != 0 {
		return Segment{}, false
	}

	m := s.Midpoint()
	if s.Length() < eps || depth >= maxSubdivisionDepth || math.IsNaN(m.X) || math.IsNaN(m.Y) {
		if Outcode(m, clip) == 0 {
			return Segment{A: m, B: m}, true
		}
		return Segment{}, false
	}

	first, okFirst := clipMidpoint(Segment{A: s.A, B: m}, clip, eps, depth+1)
	second, okSecond := clipMidpoint(Segment{A: m, B: s.B}, clip, eps, depth+1)
	switch {
	case okFirst && okSecond:
		return Segment{A: first.A, B: second.B}, true
	case okFirst:
		return first, true
	case okSecond:
		return second, true
	default:
		return Segment{}, false
	}
}

// ClipPolyline clips the open polyline through pts to clip. The result
// contains one polyline for every maximal run which stays inside the
// rectangle. Runs with fewer than two points are dropped.
func ClipPolyline(pts []vec.Vec2, clip rect.Rect) [][]vec.Vec2 {
	var parts [][]vec.Vec2
	connected := false
	for i := 1; i < len(pts); i++ {
		vis, ok := ClipCohenSutherland(Segment{A: pts[i-1], B: pts[i]}, clip)
		if !ok {
			connected = false
			continue
		}
		if !connected || vis.A != pts[i-1] {
			parts = append(parts, []vec.Vec2{vis.A})
		}
		last := len(parts) - 1
		parts[last] = append(parts[last], vis.B)
		connected = vis.B == pts[i]
	}
	return parts
}

// Numerical limits for the line clippers.
const (
	// maxOutcodeIterations bounds the Cohen-Sutherland loop: every
	// endpoint crosses each of the four boundaries at most once.
	maxOutcodeIterations = 8

	// maxSubdivisionDepth bounds midpoint recursion for segments which
	// are extremely long compared to epsilon.
	maxSubdivisionDepth = 64
)
