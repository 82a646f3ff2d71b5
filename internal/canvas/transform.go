package canvas

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"filevora/internal/services"
)

// Resize scales img to w by h using Catmull-Rom interpolation.
func Resize(img image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, services.Wrap(services.ErrValidation, "image-resizer", "resize", "target dimensions must be positive", nil)
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out, nil
}

// Crop extracts rect from img. The rectangle is interpreted in the image's
// coordinate space and must fall inside its bounds.
func Crop(img image.Image, rect image.Rectangle) (image.Image, error) {
	if rect.Empty() {
		return nil, services.Wrap(services.ErrValidation, "crop-image", "crop", "crop rectangle is empty", nil)
	}
	if !rect.In(img.Bounds()) {
		return nil, services.Wrap(services.ErrValidation, "crop-image", "crop", "crop rectangle exceeds image bounds", nil)
	}
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	xdraw.Copy(out, image.Point{}, img, rect, xdraw.Src, nil)
	return out, nil
}

// Rotate turns img clockwise by a right angle. Only 90, 180, and 270 are
// accepted.
func Rotate(img image.Image, angle int) (image.Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var out *image.RGBA
	switch angle {
	case 90:
		out = image.NewRGBA(image.Rect(0, 0, h, w))
	case 180:
		out = image.NewRGBA(image.Rect(0, 0, w, h))
	case 270:
		out = image.NewRGBA(image.Rect(0, 0, h, w))
	default:
		return nil, services.Wrap(services.ErrValidation, "rotate-image", "rotate", fmt.Sprintf("angle must be 90, 180, or 270, got %d", angle), nil)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			switch angle {
			case 90:
				out.Set(h-1-y, x, c)
			case 180:
				out.Set(w-1-x, h-1-y, c)
			case 270:
				out.Set(y, w-1-x, c)
			}
		}
	}
	return out, nil
}
