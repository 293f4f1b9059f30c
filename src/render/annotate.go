package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FootnoteText is stamped on raster charts so nobody mistakes the example values for measurements.
const FootnoteText = "Example values, replace with actual data"

// drawFootnote draws a small note onto the provided image near the bottom-right.
func drawFootnote(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 4
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 90, G: 90, B: 90, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Max.X - tw - 10
	if x < b.Min.X+pad {
		x = b.Min.X + pad
	}
	y := b.Max.Y - 6
	// light backing so the note stays readable over grid lines
	bg := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 220})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
