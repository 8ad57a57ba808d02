package pixel

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillDisc benchmarks the scanline filler on a flattened disc.
func BenchmarkFillDisc(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			r := NewRasteriser(dst)

			center := float64(size) / 2
			radius := float64(size) * 0.45
			disc := PolygonsFromPath(makeDiscPath(center, center, radius), DefaultFlatness)[0]

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Fill(disc, color.Opaque)
			}
		})
	}
}

// BenchmarkVectorDisc benchmarks x/image/vector drawing the same disc.
func BenchmarkVectorDisc(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			radius := float32(size) * 0.45

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, radius)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkLine(b *testing.B) {
	dst := image.NewAlpha(image.Rect(0, 0, 512, 512))
	r := NewRasteriser(dst)
	segs := make([]Segment, 64)
	for i := range segs {
		phi := float64(i) * 2 * math.Pi / float64(len(segs))
		segs[i] = Seg(256, 256, 256+250*math.Cos(phi), 256+250*math.Sin(phi))
	}

	for _, alg := range []LineAlgorithm{LineDDA, LineBresenham, LineBresenhamFloat} {
		b.Run(alg.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				for _, s := range segs {
					r.Line(s, color.Opaque, alg)
				}
			}
		})
	}
}

func BenchmarkCircle(b *testing.B) {
	dst := image.NewAlpha(image.Rect(0, 0, 512, 512))
	r := NewRasteriser(dst)
	ci := Circle{Center: image.Pt(256, 256), Radius: 200}

	for _, alg := range []CircleAlgorithm{CircleMidpoint, CircleParametric, CircleImplicit} {
		b.Run(alg.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				r.Circle(ci, color.Opaque, alg)
			}
		})
	}
}

func BenchmarkClip(b *testing.B) {
	window := rect.Rect{LLx: 100, LLy: 100, URx: 400, URy: 400}
	segs := make([]Segment, 64)
	for i := range segs {
		phi := float64(i) * 2 * math.Pi / float64(len(segs))
		segs[i] = Seg(256-300*math.Cos(phi), 256-300*math.Sin(phi), 256+300*math.Cos(phi), 256+300*math.Sin(phi))
	}
	r := NewRasteriser(NewRecorder(unbounded))

	for _, alg := range []ClipAlgorithm{ClipOutcode, ClipMidpoint} {
		b.Run(alg.String(), func(b *testing.B) {
			for b.Loop() {
				for _, s := range segs {
					r.ClipLine(s, window, alg)
				}
			}
		})
	}

	b.Run("polygon", func(b *testing.B) {
		disc := PolygonsFromPath(makeDiscPath(256, 256, 200), DefaultFlatness)[0]
		clip := RectPolygon(window)
		b.ReportAllocs()
		for b.Loop() {
			r.ClipPolygon(disc, clip)
		}
	})
}

// makeDiscPath creates a circle path from four cubic Bézier arcs.
func makeDiscPath(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// Magic number for circular arc approximation with cubic Bézier
		const k = 0.5522847498
		kr := k * r

		var buf [3]vec.Vec2

		buf[0] = vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// addCircleToVector adds the same circle to a vector.Rasterizer.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
