package canvas

import "image"

// CoverFit returns the source crop that fills a slot of the given aspect
// ratio without distortion. The crop is centered on the longer axis.
func CoverFit(srcW, srcH, slotW, slotH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || slotW <= 0 || slotH <= 0 {
		return image.Rectangle{}
	}
	ratio := float64(slotW) / float64(slotH)
	imgRatio := float64(srcW) / float64(srcH)

	var sx, sy, sw, sh float64
	if imgRatio > ratio {
		sh = float64(srcH)
		sw = sh * ratio
		sx = (float64(srcW) - sw) / 2
		sy = 0
	} else {
		sw = float64(srcW)
		sh = sw / ratio
		sx = 0
		sy = (float64(srcH) - sh) / 2
	}
	return image.Rect(int(sx), int(sy), int(sx+sw), int(sy+sh))
}
