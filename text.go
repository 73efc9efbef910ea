package slicon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Label is the text drawn on every icon.
const Label = "SL"

type textBox struct {
	w, h int
}

// measureText returns the size of the box s occupies when drawn with face.
// The ink bounding box is preferred. Faces reporting an empty box are measured
// by advance width and line height.
func measureText(face font.Face, s string) textBox {
	b, _ := font.BoundString(face, s)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	if w > 0 && h > 0 {
		return textBox{w: w, h: h}
	}
	m := face.Metrics()
	return textBox{
		w: font.MeasureString(face, s).Ceil(),
		h: (m.Ascent + m.Descent).Ceil(),
	}
}

// textOrigin returns the point at which s is anchored on dst: the measured
// box is centered and the point is the left end of the ascender line.
func textOrigin(bounds image.Rectangle, tb textBox) image.Point {
	return image.Pt(
		bounds.Min.X+(bounds.Dx()-tb.w)/2,
		bounds.Min.Y+(bounds.Dy()-tb.h)/2,
	)
}

// drawCenteredText draws s with its pen origin at the left of the origin
// point and its baseline one ascent below it.
func drawCenteredText(dst draw.Image, face font.Face, s string, c color.Color) {
	p := textOrigin(dst.Bounds(), measureText(face, s))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.X, p.Y).Add(fixed.Point26_6{Y: face.Metrics().Ascent}),
	}
	d.DrawString(s)
}
