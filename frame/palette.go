package frame

import (
	"image"
	"image/color/palette"
	"image/draw"
)

// Quantize renders src into a 256-color paletted frame suitable for GIF
// encoding, dithering with Floyd-Steinberg error diffusion.
func Quantize(src *image.RGBA) *image.Paletted {
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, src.Bounds(), src, src.Bounds().Min)
	return dst
}
