package slicon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

const (
	overlayMarginRatio = 0.06
	overlayRadiusRatio = 0.08
)

// RoundedRect is a rectangle with rounded corners. A zero Fill and Stroke
// make it invisible.
type RoundedRect struct {
	Rect        image.Rectangle
	Radius      int
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth int
}

// overlayRect returns the decorative frame inset from the canvas edges.
// It carries neither fill nor stroke.
func overlayRect(size int) RoundedRect {
	margin := int(math.Round(float64(size) * overlayMarginRatio))
	radius := int(math.Round(float64(size) * overlayRadiusRatio))
	return RoundedRect{
		Rect:   image.Rect(margin, margin, size-margin, size-margin),
		Radius: radius,
	}
}

// Draw rasterizes r onto dst.
func (r RoundedRect) Draw(dst draw.Image) {
	if r.Fill == nil && r.Stroke == nil {
		return
	}
	if r.Rect.Empty() {
		return
	}
	b := dst.Bounds()
	if r.Fill != nil {
		z := vector.NewRasterizer(b.Dx(), b.Dy())
		r.addPath(z, 0, false)
		z.Draw(dst, b, image.NewUniform(r.Fill), b.Min)
	}
	if r.Stroke != nil {
		w := r.StrokeWidth
		if w <= 0 {
			w = 1
		}
		z := vector.NewRasterizer(b.Dx(), b.Dy())
		r.addPath(z, 0, false)
		// inner path wound the other way cuts the hole
		r.addPath(z, w, true)
		z.Draw(dst, b, image.NewUniform(r.Stroke), b.Min)
	}
}

func (r RoundedRect) addPath(z *vector.Rasterizer, inset int, reverse bool) {
	x0, y0 := float32(r.Rect.Min.X+inset), float32(r.Rect.Min.Y+inset)
	x1, y1 := float32(r.Rect.Max.X-inset), float32(r.Rect.Max.Y-inset)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	rad := float32(r.Radius - inset)
	if rad < 0 {
		rad = 0
	}
	if half := (x1 - x0) / 2; rad > half {
		rad = half
	}
	if half := (y1 - y0) / 2; rad > half {
		rad = half
	}
	z.MoveTo(x0+rad, y0)
	if !reverse {
		z.LineTo(x1-rad, y0)
		z.QuadTo(x1, y0, x1, y0+rad)
		z.LineTo(x1, y1-rad)
		z.QuadTo(x1, y1, x1-rad, y1)
		z.LineTo(x0+rad, y1)
		z.QuadTo(x0, y1, x0, y1-rad)
		z.LineTo(x0, y0+rad)
		z.QuadTo(x0, y0, x0+rad, y0)
	} else {
		z.QuadTo(x0, y0, x0, y0+rad)
		z.LineTo(x0, y1-rad)
		z.QuadTo(x0, y1, x0+rad, y1)
		z.LineTo(x1-rad, y1)
		z.QuadTo(x1, y1, x1, y1-rad)
		z.LineTo(x1, y0+rad)
		z.QuadTo(x1, y0, x1-rad, y0)
	}
	z.ClosePath()
}
