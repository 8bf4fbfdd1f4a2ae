package video

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// resizeToWidth scales img uniformly so its width becomes width, preserving
// aspect ratio. A non-positive width or a frame already at the target width
// is returned unchanged.
func resizeToWidth(img *image.RGBA, width int) *image.RGBA {
	b := img.Bounds()
	if width <= 0 || b.Dx() == width || b.Dx() == 0 {
		return img
	}
	scale := float64(width) / float64(b.Dx())
	height := int(math.Round(float64(b.Dy()) * scale))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
