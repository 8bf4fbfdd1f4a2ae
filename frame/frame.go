// Package frame normalizes rendered episode frames into the canonical 8-bit
// RGBA representation used by the GIF writer and the annotator.
//
// Training environments hand back frames in whichever numeric shape their
// renderer produces: float channels in [0,1] or bytes in [0,255]. Everything
// downstream works on *image.RGBA, so this package owns the one conversion
// point. Conversions always copy; caller-owned buffers are never aliased or
// mutated.
package frame

import (
	"image"
	"image/color"
	"image/draw"
)

// Float is an RGB frame whose channels are float64 intensities in [0,1].
// Out-of-range values are clamped on read, never rejected. Pix is laid out
// row-major, three values per pixel (R, G, B).
type Float struct {
	W, H int
	Pix  []float64
}

// NewFloat allocates a zeroed float frame of the given dimensions.
func NewFloat(w, h int) *Float {
	return &Float{W: w, H: h, Pix: make([]float64, w*h*3)}
}

// ColorModel implements image.Image.
func (f *Float) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (f *Float) Bounds() image.Rectangle { return image.Rect(0, 0, f.W, f.H) }

// At implements image.Image, clamping each channel to [0,1] and scaling to
// 8-bit. Truncation matches the writer contract: byte = floor(255 * clamped).
func (f *Float) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return color.RGBA{}
	}
	i := (y*f.W + x) * 3
	return color.RGBA{
		R: channelByte(f.Pix[i]),
		G: channelByte(f.Pix[i+1]),
		B: channelByte(f.Pix[i+2]),
		A: 0xff,
	}
}

// Set stores one pixel. Values outside [0,1] are kept as-is and clamped on
// read.
func (f *Float) Set(x, y int, r, g, b float64) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := (y*f.W + x) * 3
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v * 255)
}

// ToRGBA returns an 8-bit copy of img. An input that is already *image.RGBA
// passes through with its pixel bytes copied verbatim; anything else is
// redrawn through the image's own color conversion (which, for Float frames,
// clamps and scales).
func ToRGBA(img image.Image) *image.RGBA {
	if src, ok := img.(*image.RGBA); ok {
		return Clone(src)
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Clone returns a deep copy of src sharing no pixel storage.
func Clone(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
