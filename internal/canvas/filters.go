package canvas

import (
	"image"
	"image/color"
)

// Adjustments describes photo editor settings. Brightness ranges over
// -100..100, contrast and saturation are percentages where 100 means
// unchanged, and blur is a box radius in pixels.
type Adjustments struct {
	Brightness int
	Contrast   int
	Saturation int
	Blur       int
}

// Adjust applies the adjustments in order: brightness, contrast,
// saturation, then blur.
func Adjust(img image.Image, adj Adjustments) image.Image {
	out := toRGBA(img)
	if adj.Brightness != 0 {
		out = brightness(out, adj.Brightness)
	}
	if adj.Contrast != 100 && adj.Contrast != 0 {
		out = contrast(out, adj.Contrast)
	}
	if adj.Saturation != 100 && adj.Saturation != 0 {
		out = saturation(out, adj.Saturation)
	}
	if adj.Blur > 0 {
		out = boxBlur(out, adj.Blur)
	}
	return out
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		clone := image.NewRGBA(rgba.Bounds())
		copy(clone.Pix, rgba.Pix)
		return clone
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func brightness(img *image.RGBA, delta int) *image.RGBA {
	shift := float64(delta) * 255 / 100
	return mapPixels(img, func(r, g, b float64) (float64, float64, float64) {
		return r + shift, g + shift, b + shift
	})
}

func contrast(img *image.RGBA, percent int) *image.RGBA {
	factor := float64(percent) / 100
	return mapPixels(img, func(r, g, b float64) (float64, float64, float64) {
		return (r-128)*factor + 128, (g-128)*factor + 128, (b-128)*factor + 128
	})
}

func saturation(img *image.RGBA, percent int) *image.RGBA {
	factor := float64(percent) / 100
	return mapPixels(img, func(r, g, b float64) (float64, float64, float64) {
		gray := 0.299*r + 0.587*g + 0.114*b
		return gray + (r-gray)*factor, gray + (g-gray)*factor, gray + (b-gray)*factor
	})
}

func mapPixels(img *image.RGBA, fn func(r, g, b float64) (float64, float64, float64)) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			r, g, b := fn(float64(c.R), float64(c.G), float64(c.B))
			out.SetRGBA(x, y, color.RGBA{clamp(r), clamp(g), clamp(b), c.A})
		}
	}
	return out
}

func boxBlur(img *image.RGBA, radius int) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sumR, sumG, sumB, sumA, count float64
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					px, py := x+dx, y+dy
					if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
						continue
					}
					c := img.RGBAAt(px, py)
					sumR += float64(c.R)
					sumG += float64(c.G)
					sumB += float64(c.B)
					sumA += float64(c.A)
					count++
				}
			}
			out.SetRGBA(x, y, color.RGBA{
				clamp(sumR / count),
				clamp(sumG / count),
				clamp(sumB / count),
				clamp(sumA / count),
			})
		}
	}
	return out
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
