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

// Command export writes all test cases, together with the pixels produced
// for them, to testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string   `json:"name"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Op        string   `json:"op"`
	Algorithm string   `json:"algorithm,omitempty"`
	Pixels    [][2]int `json:"pixels"`
	Writes    int      `json:"writes"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Algorithm = op.Alg.String()
	case testcases.Outline:
		jtc.Op = "outline"
		jtc.Algorithm = op.Alg.String()
	case testcases.Circle:
		jtc.Op = "circle"
		jtc.Algorithm = op.Alg.String()
	case testcases.ClipLine:
		jtc.Op = "clip_line"
		jtc.Algorithm = op.ClipAlg.String() + "+" + op.LineAlg.String()
	case testcases.Fill:
		jtc.Op = "fill"
	case testcases.ClipFill:
		jtc.Op = "clip_fill"
	}

	rec := pixel.NewRecorder(image.Rect(0, 0, tc.Width, tc.Height))
	if err := testcases.Render(tc, rec, color.Black); err != nil {
		return jtc, err
	}
	jtc.Writes = rec.Len()
	jtc.Pixels = [][2]int{}
	for _, p := range rec.Pixels() {
		jtc.Pixels = append(jtc.Pixels, [2]int{p.X, p.Y})
	}
	return jtc, nil
}
