package canvas

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"filevora/internal/services"

	_ "golang.org/x/image/webp"
)

// Encode writes img to w in the named format. Quality only applies to JPEG
// and defaults to 85 when out of range. WEBP can be decoded but not
// encoded.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return services.Wrap(services.ErrValidation, "", "encode", fmt.Sprintf("unsupported output format %q", format), nil)
	}
}

// Decode reads an image in any registered format, including WEBP.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", services.Wrap(services.ErrValidation, "", "decode", "file is not a supported image", err)
	}
	return img, format, nil
}
