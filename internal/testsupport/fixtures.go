// Package testsupport provides fixture helpers shared across package tests.
package testsupport

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

// SolidFrame returns a w x h frame filled with c.
func SolidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// SolidFrames returns n identical solid-color frames as []image.Image.
func SolidFrames(n, w, h int, c color.RGBA) []image.Image {
	frames := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, SolidFrame(w, h, c))
	}
	return frames
}

// WriteGIF writes an animated GIF with the requested number of solid gray
// frames to path, creating parent directories as needed.
func WriteGIF(t testing.TB, path string, frames, w, h int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	anim := &gif.GIF{}
	for i := 0; i < frames; i++ {
		p := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
		gray := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
		draw.Draw(p, p.Bounds(), &image.Uniform{C: gray}, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, 5)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, anim); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}
