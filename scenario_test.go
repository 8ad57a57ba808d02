package pixel_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestScenarios(t *testing.T) {
	seen := map[string]bool{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			require.True(t, validName.MatchString(tc.Name), "invalid name %q", tc.Name)
			require.False(t, seen[name], "duplicate test case %q", name)
			seen[name] = true

			t.Run(name, func(t *testing.T) {
				bounds := image.Rect(0, 0, tc.Width, tc.Height)
				rec := pixel.NewRecorder(bounds)
				require.NoError(t, testcases.Render(tc, rec, color.White))

				if tc.Name == "disjoint" {
					assert.Zero(t, rec.Len())
					return
				}
				assert.NotZero(t, rec.Len())
				for _, p := range rec.Writes() {
					assert.True(t, p.In(bounds), "%v", p)
				}
			})
		}
	}
}

// TestFillAgainstVector compares the scanline filler with the anti-aliased
// rasteriser from golang.org/x/image/vector. The reference is shifted down
// by half a pixel, so that pixel row y of the reference is centred on
// scanline y.
func TestFillAgainstVector(t *testing.T) {
	for _, tc := range testcases.All["fill"] {
		op := tc.Op.(testcases.Fill)
		if !op.Simple {
			continue
		}

		ctm := tc.CTM
		if ctm == (matrix.Matrix{}) {
			ctm = matrix.Identity
		}
		var polys []pixel.Polygon
		for _, p := range pixel.PolygonsFromPath(op.Path, pixel.DefaultFlatness) {
			polys = append(polys, p.Transform(ctm))
		}
		if !fitsCanvas(polys, tc.Width, tc.Height) {
			continue
		}

		t.Run(tc.Name, func(t *testing.T) {
			w, h := tc.Width, tc.Height
			actual := image.NewGray(image.Rect(0, 0, w, h))
			require.NoError(t, testcases.Render(tc, actual, color.White))

			z := vector.NewRasterizer(w, h)
			for _, p := range polys {
				z.MoveTo(float32(p[0].X), float32(p[0].Y+0.5))
				for _, v := range p[1:] {
					z.LineTo(float32(v.X), float32(v.Y+0.5))
				}
				z.ClosePath()
			}
			expected := image.NewAlpha(image.Rect(0, 0, w, h))
			z.Draw(expected, expected.Bounds(), image.Opaque, image.Point{})

			if err := compareCoverage(tc.Name, expected, actual, polys); err != nil {
				t.Error(err)
			}
		})
	}
}

func fitsCanvas(polys []pixel.Polygon, w, h int) bool {
	for _, p := range polys {
		b := p.Bounds()
		if b.LLx < 0 || b.LLy < 0 || b.URx > float64(w) || b.URy+0.5 > float64(h) {
			return false
		}
	}
	return true
}

// compareCoverage checks an aliased fill against a coverage image.
// Pixels which are almost fully covered must be set, and the number of
// set pixels must match the covered area up to one pixel per unit of
// boundary length.
func compareCoverage(name string, expected *image.Alpha, actual *image.Gray, polys []pixel.Polygon) error {
	var perimeter float64
	vertices := 0
	for _, p := range polys {
		for i := range p {
			perimeter += pixel.Segment{A: p[i], B: p[(i+1)%len(p)]}.Length()
		}
		vertices += len(p)
	}

	var area float64
	painted, missing := 0, 0
	b := expected.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := expected.AlphaAt(x, y).A
			set := actual.GrayAt(x, y).Y != 0
			area += float64(a) / 255
			if set {
				painted++
			} else if a > 239 {
				missing++
			}
		}
	}

	var err error
	switch {
	case missing > vertices:
		err = fmt.Errorf("%d covered pixels not set (max allowed: %d)", missing, vertices)
	case math.Abs(float64(painted)-area) > perimeter+float64(vertices)+4:
		err = fmt.Errorf("%d pixels set for area %.1f (perimeter %.1f)", painted, area, perimeter)
	}
	if err != nil {
		writeDiffImage(name, expected, actual)
	}
	return err
}

// writeDiffImage saves expected (red) and actual (green) coverage to
// debug/, magnified so that individual pixels are visible.
func writeDiffImage(name string, expected *image.Alpha, actual *image.Gray) {
	const zoom = 8

	os.MkdirAll("debug", 0755)

	b := expected.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.RGBA{
				R: expected.AlphaAt(x, y).A, // expected in red
				G: actual.GrayAt(x, y).Y,    // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	big := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, b, xdraw.Src, nil)

	f, err := os.Create(filepath.Join("debug", "fill_"+name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, big)
}
