package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Meme draws top and bottom captions onto a copy of img. Captions are
// upper-cased and rendered white with a black outline.
func Meme(img image.Image, top, bottom string) image.Image {
	out := toRGBA(img)
	bounds := out.Bounds()

	top = strings.ToUpper(strings.TrimSpace(top))
	bottom = strings.ToUpper(strings.TrimSpace(bottom))

	face := basicfont.Face7x13
	if top != "" {
		drawCaption(out, face, top, bounds.Min.Y+face.Height+4)
	}
	if bottom != "" {
		drawCaption(out, face, bottom, bounds.Max.Y-6)
	}
	return out
}

func drawCaption(dst draw.Image, face font.Face, text string, baseline int) {
	bounds := dst.Bounds()
	width := font.MeasureString(face, text).Ceil()
	x := bounds.Min.X + (bounds.Dx()-width)/2
	if x < bounds.Min.X {
		x = bounds.Min.X
	}

	// Outline first, offset in the four diagonal directions.
	for _, offset := range []image.Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		drawString(dst, face, text, x+offset.X, baseline+offset.Y, color.Black)
	}
	drawString(dst, face, text, x, baseline, color.White)
}

func drawString(dst draw.Image, face font.Face, text string, x, y int, c color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}
