// Package annotate draws an episode banner onto recorded frames: a
// semi-opaque black strip near the top edge with the label text centered in
// white on top of it.
//
// Banner is pure. Input frames are cloned before drawing, so a caller can
// keep the originals around (the assembler relies on this when the same
// decoded frames back several outputs).
package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// basePixelSize is the face size at FontScale 1.0.
	basePixelSize = 22
	// rectPadding is applied on all four sides of the measured text box.
	rectPadding = 8
	// topMargin separates the text baseline from the top frame edge.
	topMargin = 10
	// bannerAlpha blends the backing rectangle at 60% black.
	bannerAlpha = 153
)

// Options controls banner rendering.
type Options struct {
	// FontScale scales the label face relative to the 22px base. Zero or
	// negative means 1.0.
	FontScale float64
	// Thickness selects the face weight; values of two and above render
	// bold. Zero means the default of two.
	Thickness int
}

func (o Options) normalized() Options {
	if o.FontScale <= 0 {
		o.FontScale = 1.0
	}
	if o.Thickness == 0 {
		o.Thickness = 2
	}
	return o
}

// Banner returns a copy of frames with text drawn onto each one. Frames keep
// their dimensions and channel order; the backing rectangle is clamped to
// frame bounds, so labels wider than the frame still render without error.
func Banner(frames []*image.RGBA, text string, opts Options) ([]*image.RGBA, error) {
	opts = opts.normalized()
	face, err := faceFor(opts.FontScale, opts.Thickness >= 2)
	if err != nil {
		return nil, err
	}

	textW := font.MeasureString(face, text).Ceil()
	textH := face.Metrics().Ascent.Ceil()

	out := make([]*image.RGBA, 0, len(frames))
	for _, src := range frames {
		img := cloneRGBA(src)
		b := img.Bounds()
		w, h := b.Dx(), b.Dy()

		x := (w - textW) / 2
		y := textH + topMargin

		rect := image.Rect(
			max(x-rectPadding, 0),
			max(y-textH-rectPadding, 0),
			min(x+textW+rectPadding, w),
			min(y+rectPadding, h),
		).Add(b.Min)
		draw.Draw(img, rect, image.NewUniform(color.RGBA{A: bannerAlpha}), image.Point{}, draw.Over)

		d := font.Drawer{
			Dst:  img,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(b.Min.X+x, b.Min.Y+y),
		}
		d.DrawString(text)

		out = append(out, img)
	}
	return out, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

var (
	fontsOnce   sync.Once
	fontsErr    error
	regularFont *opentype.Font
	boldFont    *opentype.Font

	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

type faceKey struct {
	size float64
	bold bool
}

func faceFor(scale float64, bold bool) (font.Face, error) {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	if fontsErr != nil {
		return nil, fontsErr
	}

	key := faceKey{size: basePixelSize * scale, bold: bold}
	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[key]; ok {
		return face, nil
	}

	src := regularFont
	if bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faces[key] = face
	return face, nil
}
