package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"filevora/internal/services"
)

func solid(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCoverFitWideImage(t *testing.T) {
	// 200x100 source into a square slot: crop the sides.
	crop := CoverFit(200, 100, 50, 50)
	if crop.Dx() != 100 || crop.Dy() != 100 {
		t.Fatalf("unexpected crop size %v", crop)
	}
	if crop.Min.X != 50 || crop.Min.Y != 0 {
		t.Fatalf("crop should center horizontally, got %v", crop)
	}
}

func TestCoverFitTallImage(t *testing.T) {
	// 100x200 source into a square slot: crop top and bottom.
	crop := CoverFit(100, 200, 50, 50)
	if crop.Dx() != 100 || crop.Dy() != 100 {
		t.Fatalf("unexpected crop size %v", crop)
	}
	if crop.Min.X != 0 || crop.Min.Y != 50 {
		t.Fatalf("crop should center vertically, got %v", crop)
	}
}

func TestCoverFitMatchingRatio(t *testing.T) {
	crop := CoverFit(100, 50, 200, 100)
	if crop != image.Rect(0, 0, 100, 50) {
		t.Fatalf("matching ratio should keep the full image, got %v", crop)
	}
}

func TestCoverFitDegenerateInput(t *testing.T) {
	if crop := CoverFit(0, 100, 50, 50); !crop.Empty() {
		t.Fatalf("expected empty crop, got %v", crop)
	}
}

func TestSlotsLayouts(t *testing.T) {
	for count := 1; count <= 4; count++ {
		slots, err := Slots(count, 400, 400)
		if err != nil {
			t.Fatalf("Slots(%d): %v", count, err)
		}
		if len(slots) != count {
			t.Fatalf("Slots(%d) returned %d rects", count, len(slots))
		}
		for _, slot := range slots {
			if !slot.In(image.Rect(0, 0, 400, 400)) {
				t.Fatalf("slot %v outside canvas", slot)
			}
		}
	}
	if _, err := Slots(5, 400, 400); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for 5 images, got %v", err)
	}
}

func TestSlotsThreeImageLayout(t *testing.T) {
	slots, err := Slots(3, 400, 400)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if slots[0] != image.Rect(0, 0, 200, 400) {
		t.Fatalf("first slot should span the full left half, got %v", slots[0])
	}
	if slots[1] != image.Rect(200, 0, 400, 200) || slots[2] != image.Rect(200, 200, 400, 400) {
		t.Fatalf("right slots should stack, got %v %v", slots[1], slots[2])
	}
}

func TestCollageComposes(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	out, err := Collage([]image.Image{solid(100, 100, red), solid(100, 100, blue)}, 200, 100)
	if err != nil {
		t.Fatalf("Collage: %v", err)
	}
	left := out.At(50, 50).(color.RGBA)
	right := out.At(150, 50).(color.RGBA)
	if left.R < 200 || right.B < 200 {
		t.Fatalf("unexpected composition: left=%v right=%v", left, right)
	}
}

func TestResize(t *testing.T) {
	out, err := Resize(solid(100, 100, color.RGBA{G: 255, A: 255}), 25, 50)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if out.Bounds().Dx() != 25 || out.Bounds().Dy() != 50 {
		t.Fatalf("unexpected bounds %v", out.Bounds())
	}
	if _, err := Resize(solid(10, 10, color.RGBA{}), 0, 10); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCrop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	img.SetRGBA(30, 30, color.RGBA{R: 255, A: 255})
	out, err := Crop(img, image.Rect(20, 20, 60, 60))
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Fatalf("unexpected bounds %v", out.Bounds())
	}
	if c := out.At(10, 10).(color.RGBA); c.R != 255 {
		t.Fatalf("crop lost pixel content: %v", c)
	}
	if _, err := Crop(img, image.Rect(50, 50, 200, 200)); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected out-of-bounds error, got %v", err)
	}
}

func TestRotate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{B: 255, A: 255})

	out, err := Rotate(img, 90)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if out.Bounds().Dx() != 1 || out.Bounds().Dy() != 2 {
		t.Fatalf("90 degree rotation should swap dimensions, got %v", out.Bounds())
	}
	if c := out.At(0, 0).(color.RGBA); c.R != 255 {
		t.Fatalf("unexpected top pixel after rotation: %v", c)
	}

	out, err = Rotate(img, 180)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if c := out.At(0, 0).(color.RGBA); c.B != 255 {
		t.Fatalf("unexpected pixel after 180 rotation: %v", c)
	}

	if _, err := Rotate(img, 45); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for 45 degrees, got %v", err)
	}
}

func TestAdjustBrightness(t *testing.T) {
	img := solid(4, 4, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	out := Adjust(img, Adjustments{Brightness: 20, Contrast: 100, Saturation: 100})
	c := out.At(1, 1).(color.RGBA)
	if c.R <= 100 {
		t.Fatalf("brightness should lift channels, got %v", c)
	}
	out = Adjust(img, Adjustments{Brightness: -20, Contrast: 100, Saturation: 100})
	c = out.At(1, 1).(color.RGBA)
	if c.R >= 100 {
		t.Fatalf("negative brightness should lower channels, got %v", c)
	}
}

func TestAdjustSaturationToGray(t *testing.T) {
	img := solid(4, 4, color.RGBA{R: 200, G: 20, B: 20, A: 255})
	out := Adjust(img, Adjustments{Brightness: 0, Contrast: 100, Saturation: 1})
	c := out.At(1, 1).(color.RGBA)
	if diff := int(c.R) - int(c.G); diff > 10 || diff < -10 {
		t.Fatalf("low saturation should converge channels, got %v", c)
	}
}

func TestAdjustBlurSmooths(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	img.SetRGBA(2, 2, color.RGBA{R: 255, A: 255})
	out := Adjust(img, Adjustments{Contrast: 100, Saturation: 100, Blur: 1})
	center := out.At(2, 2).(color.RGBA)
	if center.R >= 255 {
		t.Fatalf("blur should spread intensity, got %v", center)
	}
	neighbor := out.At(1, 2).(color.RGBA)
	if neighbor.R == 0 {
		t.Fatalf("blur should bleed into neighbors, got %v", neighbor)
	}
}

func TestMemeAltersPixels(t *testing.T) {
	img := solid(200, 100, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	out := Meme(img, "top text", "bottom text")
	changed := false
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !changed; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if out.At(x, y) != img.At(x, y) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Fatal("captions should draw onto the image")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := solid(10, 10, color.RGBA{R: 10, G: 200, B: 30, A: 255})
	for _, format := range []string{"png", "jpeg", "gif", "bmp", "tiff"} {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format, 90); err != nil {
			t.Fatalf("Encode %s: %v", format, err)
		}
		decoded, _, err := Decode(&buf)
		if err != nil {
			t.Fatalf("Decode %s: %v", format, err)
		}
		if decoded.Bounds().Dx() != 10 {
			t.Fatalf("unexpected bounds for %s: %v", format, decoded.Bounds())
		}
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, solid(2, 2, color.RGBA{A: 255}), "webp", 90)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
