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

// Command genpdf writes one PDF file per test case to testdata/pdf.
// Each page shows the pixels set by the kernel as white unit squares on a
// black background, overlaid with the input geometry in grey.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

const outDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	rec := pixel.NewRecorder(image.Rect(0, 0, tc.Width, tc.Height))
	if err := testcases.Render(tc, rec, image.White); err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	pix := rec.Pixels()
	if len(pix) > 0 {
		page.SetFillColor(color.DeviceGray(1))
		for _, p := range pix {
			page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		}
		page.Fill()
	}

	// Geometry is drawn through pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.2)
	segs, polys := geometry(tc)
	for _, s := range segs {
		page.MoveTo(s.A.X, s.A.Y)
		page.LineTo(s.B.X, s.B.Y)
	}
	for _, p := range polys {
		page.MoveTo(p[0].X, p[0].Y)
		for _, v := range p[1:] {
			page.LineTo(v.X, v.Y)
		}
		page.ClosePath()
	}
	if len(segs)+len(polys) > 0 {
		page.Stroke()
	}

	return page.Close()
}

// geometry returns the input geometry of tc in device coordinates.
// Empty polygons are omitted.
func geometry(tc testcases.TestCase) (segs []pixel.Segment, polys []pixel.Polygon) {
	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		for _, s := range op.Segments {
			segs = append(segs, s.Transform(ctm))
		}
	case testcases.Outline:
		polys = append(polys, op.Polygon.Transform(ctm))
	case testcases.Circle:
		for _, ci := range op.Circles {
			polys = append(polys, circlePolygon(ci))
		}
	case testcases.ClipLine:
		for _, s := range op.Segments {
			segs = append(segs, s.Transform(ctm))
		}
		polys = append(polys, pixel.RectPolygon(op.Clip))
	case testcases.Fill:
		for _, p := range pixel.PolygonsFromPath(op.Path, pixel.DefaultFlatness) {
			polys = append(polys, p.Transform(ctm))
		}
	case testcases.ClipFill:
		polys = append(polys, op.Subject.Transform(ctm), op.Clip.Transform(ctm))
	}

	polys = slices.DeleteFunc(polys, func(p pixel.Polygon) bool {
		return len(p) == 0
	})
	return segs, polys
}

// circlePolygon approximates ci by a regular 64-gon.
func circlePolygon(ci pixel.Circle) pixel.Polygon {
	const n = 64
	p := make(pixel.Polygon, n)
	for i := range p {
		phi := float64(i) * 2 * math.Pi / n
		p[i].X = float64(ci.Center.X) + float64(ci.Radius)*math.Cos(phi)
		p[i].Y = float64(ci.Center.Y) + float64(ci.Radius)*math.Sin(phi)
	}
	return p
}
