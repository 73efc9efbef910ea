package slicon

import (
	"image"
	"image/color"
	"image/draw"
)

// Each channel is base + span*(row/size), dark teal at the top to light teal/blue at the bottom.
var (
	gradientBase = [3]float64{14, 165, 164}
	gradientSpan = [3]float64{200, 50, 160}
)

// GradientColor returns the background color of row i on a canvas of the given size.
// Channels are truncated to integers and clamped to [0, 255]; the blue channel
// saturates in the lower part of the canvas.
func GradientColor(i, size int) color.RGBA {
	t := float64(i) / float64(size)
	var c [3]uint8
	for k := range c {
		c[k] = clampChannel(int(gradientBase[k] + gradientSpan[k]*t))
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}

// fillGradient paints every row of dst as a solid opaque line.
func fillGradient(dst draw.Image) {
	b := dst.Bounds()
	size := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := image.Rect(b.Min.X, y, b.Max.X, y+1)
		draw.Draw(dst, row, image.NewUniform(GradientColor(y-b.Min.Y, size)), image.Point{}, draw.Src)
	}
}
