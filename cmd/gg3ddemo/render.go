package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/internal/wireframe"
	"golang.org/x/image/vector"
)

var (
	background = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	lineColor  = color.RGBA{R: 120, G: 200, B: 255, A: 255}
)

// lineWidth is the stroke width in pixels.
const lineWidth = 2

// renderPNG draws the projected cube and writes it to path.
func renderPNG(path string, cam gg3d.Camera[float32], width, height int) error {
	img := drawWireframe(cam, width, height)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// drawWireframe rasterizes the cube edges as thin quads.
func drawWireframe(cam gg3d.Camera[float32], width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	segs := wireframe.Cube(1.5).Project(cam.ViewProjection(), width, height)
	gg3d.Logger().Debug("wireframe projected", "segments", len(segs))

	src := image.NewUniform(lineColor)
	z := vector.NewRasterizer(width, height)
	for _, s := range segs {
		if !strokeSegment(z, s, lineWidth) {
			continue
		}
		z.Draw(img, img.Bounds(), src, image.Point{})
		z.Reset(width, height)
	}
	return img
}

// strokeSegment adds a quad of the given width around s to z. It reports
// false for zero-length segments.
func strokeSegment(z *vector.Rasterizer, s wireframe.Segment, width float32) bool {
	dx, dy := s.X1-s.X0, s.Y1-s.Y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return false
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	z.MoveTo(s.X0+nx, s.Y0+ny)
	z.LineTo(s.X1+nx, s.Y1+ny)
	z.LineTo(s.X1-nx, s.Y1-ny)
	z.LineTo(s.X0-nx, s.Y0-ny)
	z.ClosePath()
	return true
}
