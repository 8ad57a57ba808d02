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
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"
)

// unbounded covers every coordinate the algorithms can produce for
// reasonable input.
var unbounded = image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)

// Recorder is a Surface which remembers every write instead of storing
// colours. Writes outside the bounds are dropped, as required of all
// surfaces.
type Recorder struct {
	bounds image.Rectangle
	writes []image.Point
	colors []color.Color
}

// NewRecorder returns an empty Recorder with the given bounds.
func NewRecorder(bounds image.Rectangle) *Recorder {
	return &Recorder{bounds: bounds}
}

// Set implements the Surface interface.
func (r *Recorder) Set(x, y int, c color.Color) {
	p := image.Point{X: x, Y: y}
	if !p.In(r.bounds) {
		return
	}
	r.writes = append(r.writes, p)
	r.colors = append(r.colors, c)
}

// Bounds implements the Surface interface.
func (r *Recorder) Bounds() image.Rectangle {
	return r.bounds
}

// Writes returns all recorded writes in order, including repeats.
// The slice is owned by the Recorder and valid until the next Reset.
func (r *Recorder) Writes() []image.Point {
	return r.writes
}

// Len returns the number of recorded writes.
func (r *Recorder) Len() int {
	return len(r.writes)
}

// At returns the colour of the last write to p, or nil if p was never
// written.
func (r *Recorder) At(p image.Point) color.Color {
	for i := len(r.writes) - 1; i >= 0; i-- {
		if r.writes[i] == p {
			return r.colors[i]
		}
	}
	return nil
}

// Pixels returns the distinct written pixels, sorted by row and then by
// column.
func (r *Recorder) Pixels() []image.Point {
	pix := slices.Clone(r.writes)
	slices.SortFunc(pix, comparePoints)
	return slices.Compact(pix)
}

// PixelSet returns the distinct written pixels as a set.
func (r *Recorder) PixelSet() map[image.Point]bool {
	set := make(map[image.Point]bool, len(r.writes))
	for _, p := range r.writes {
		set[p] = true
	}
	return set
}

// Contains reports whether p has been written.
func (r *Recorder) Contains(p image.Point) bool {
	return slices.Contains(r.writes, p)
}

// Reset forgets all recorded writes.
func (r *Recorder) Reset() {
	r.writes = r.writes[:0]
	r.colors = r.colors[:0]
}

func comparePoints(a, b image.Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
