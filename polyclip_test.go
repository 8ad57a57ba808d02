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
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
)

func TestClipPolygonSelf(t *testing.T) {
	square := Poly(0, 0, 10, 0, 10, 10, 0, 10)
	reversed := slices.Clone(square)
	slices.Reverse(reversed)

	for _, clip := range []Polygon{square, reversed} {
		got := SutherlandHodgman(square, clip)
		assert.ElementsMatch(t, square, got)
	}
}

func TestClipPolygonInside(t *testing.T) {
	tri := Poly(20, 20, 40, 24, 28, 44)
	clip := RectPolygon(rect.Rect{LLx: 4, LLy: 4, URx: 60, URy: 60})
	got := SutherlandHodgman(tri, clip)
	assert.ElementsMatch(t, tri, got)
}

func TestClipPolygonOutside(t *testing.T) {
	tri := Poly(20, 20, 40, 24, 28, 44)
	clip := RectPolygon(rect.Rect{LLx: 50, LLy: 0, URx: 60, URy: 10})
	assert.Nil(t, SutherlandHodgman(tri, clip))

	r := NewRasteriser(NewRecorder(unbounded))
	got, err := r.ClipPolygon(tri, clip)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClipPolygonArea(t *testing.T) {
	square := Poly(0, 0, 10, 0, 10, 10, 0, 10)
	big := Poly(-5, -5, 20, -5, 20, 20, -5, 20)
	triangle := Poly(0, 0, 10, 0, 0, 10)
	reversedTriangle := Poly(0, 10, 10, 0, 0, 0)
	lShape := Poly(0, 0, 10, 0, 10, 4, 4, 4, 4, 10, 0, 10)

	cases := []struct {
		name          string
		subject, clip Polygon
		area          float64
	}{
		{"half square", square, RectPolygon(rect.Rect{LLx: 5, LLy: 0, URx: 15, URy: 10}), 50},
		{"corner", square, RectPolygon(rect.Rect{LLx: 5, LLy: 5, URx: 15, URy: 15}), 25},
		{"triangle window", big, triangle, 50},
		{"clockwise window", big, reversedTriangle, 50},
		{"concave subject", lShape, RectPolygon(rect.Rect{LLx: 2, LLy: 2, URx: 12, URy: 12}), 28},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SutherlandHodgman(tc.subject, tc.clip)
			require.NotNil(t, got)
			assert.InDelta(t, tc.area, math.Abs(got.SignedArea()), 1e-9)

			box := tc.clip.Bounds()
			for _, v := range got {
				assert.True(t, v.X >= box.LLx-1e-9 && v.X <= box.URx+1e-9, "%v", v)
				assert.True(t, v.Y >= box.LLy-1e-9 && v.Y <= box.URy+1e-9, "%v", v)
			}
		})
	}
}

func TestClipPolygonTooFewVertices(t *testing.T) {
	tri := Poly(0, 0, 10, 0, 0, 10)
	line := Poly(0, 0, 10, 10)
	assert.Nil(t, SutherlandHodgman(line, tri))
	assert.Nil(t, SutherlandHodgman(tri, line))

	r := NewRasteriser(NewRecorder(unbounded))
	got, err := r.ClipPolygon(line, tri)
	assert.NoError(t, err)
	assert.Nil(t, got)

	r.Strict = true
	_, err = r.ClipPolygon(line, tri)
	assert.True(t, errors.Is(err, ErrTooFewVertices))
	_, err = r.ClipPolygon(tri, line)
	assert.True(t, errors.Is(err, ErrTooFewVertices))
}

func TestClipPolygonResultsIndependent(t *testing.T) {
	r := NewRasteriser(NewRecorder(unbounded))
	clip := RectPolygon(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})

	first, err := r.ClipPolygon(Poly(-5, -5, 5, -5, 5, 5, -5, 5), clip)
	require.NoError(t, err)
	want := slices.Clone(first)

	_, err = r.ClipPolygon(Poly(3, 3, 20, 3, 20, 20), clip)
	require.NoError(t, err)
	assert.Equal(t, want, first)
}

func TestClippedFill(t *testing.T) {
	rec := NewRecorder(unbounded)
	r := NewRasteriser(rec)
	square := Poly(0, 0, 10, 0, 10, 10, 0, 10)
	clip := RectPolygon(rect.Rect{LLx: 5, LLy: 0, URx: 15, URy: 10})
	require.NoError(t, r.ClippedFill(square, clip, color.Black))

	assert.Len(t, rec.Pixels(), 50)
	for _, p := range rec.Pixels() {
		assert.True(t, p.X >= 5 && p.X < 10 && p.Y >= 1 && p.Y <= 10, "%v", p)
	}

	rec.Reset()
	far := RectPolygon(rect.Rect{LLx: 50, LLy: 50, URx: 60, URy: 60})
	require.NoError(t, r.ClippedFill(square, far, color.Black))
	assert.Zero(t, rec.Len())
}
