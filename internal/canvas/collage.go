package canvas

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"filevora/internal/services"
)

// Slots returns the layout rectangles for count images on a w by h canvas.
// Supported layouts: one full frame, two side-by-side halves, a full-height
// left panel with two stacked right panels, and a two-by-two grid.
func Slots(count, w, h int) ([]image.Rectangle, error) {
	switch count {
	case 1:
		return []image.Rectangle{image.Rect(0, 0, w, h)}, nil
	case 2:
		return []image.Rectangle{
			image.Rect(0, 0, w/2, h),
			image.Rect(w/2, 0, w, h),
		}, nil
	case 3:
		return []image.Rectangle{
			image.Rect(0, 0, w/2, h),
			image.Rect(w/2, 0, w, h/2),
			image.Rect(w/2, h/2, w, h),
		}, nil
	case 4:
		return []image.Rectangle{
			image.Rect(0, 0, w/2, h/2),
			image.Rect(w/2, 0, w, h/2),
			image.Rect(0, h/2, w/2, h),
			image.Rect(w/2, h/2, w, h),
		}, nil
	default:
		return nil, services.Wrap(services.ErrValidation, "collage-maker", "layout", fmt.Sprintf("collage supports 1 to 4 images, got %d", count), nil)
	}
}

// Collage composes the images onto a w by h canvas. Each image is cropped
// with CoverFit so its slot is filled without distortion.
func Collage(images []image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, services.Wrap(services.ErrValidation, "collage-maker", "compose", "canvas dimensions must be positive", nil)
	}
	slots, err := Slots(len(images), w, h)
	if err != nil {
		return nil, err
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, img := range images {
		slot := slots[i]
		bounds := img.Bounds()
		crop := CoverFit(bounds.Dx(), bounds.Dy(), slot.Dx(), slot.Dy()).Add(bounds.Min)
		xdraw.CatmullRom.Scale(out, slot, img, crop, xdraw.Src, nil)
	}
	return out, nil
}
