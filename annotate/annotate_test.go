package annotate

import (
	"image"
	"image/color"
	"testing"

	"trainreel/internal/testsupport"
)

func TestBannerLeavesInputUntouched(t *testing.T) {
	src := testsupport.SolidFrame(64, 48, color.RGBA{R: 10, G: 200, B: 30, A: 255})
	before := append([]uint8(nil), src.Pix...)

	out, err := Banner([]*image.RGBA{src}, "Episode 1", Options{})
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("frame count = %d", len(out))
	}
	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatal("input frame mutated in place")
		}
	}
}

func TestBannerKeepsDimensions(t *testing.T) {
	src := testsupport.SolidFrame(100, 80, color.RGBA{B: 255, A: 255})
	out, err := Banner([]*image.RGBA{src}, "Episode 42", Options{FontScale: 1.5, Thickness: 1})
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if got := out[0].Bounds(); got != src.Bounds() {
		t.Fatalf("bounds changed: %v != %v", got, src.Bounds())
	}
}

func TestBannerDarkensRectangleAndDrawsWhite(t *testing.T) {
	src := testsupport.SolidFrame(120, 60, color.RGBA{R: 250, G: 250, B: 250, A: 255})
	out, err := Banner([]*image.RGBA{src}, "Episode 7", Options{})
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	img := out[0]

	// The banner strip must contain blended pixels darker than the pristine
	// background and bright glyph pixels on top of them.
	darkened := false
	white := false
	for y := 0; y < 45; y++ {
		for x := 0; x < 120; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 150 {
				darkened = true
			}
			if c.R > 230 && c.G > 230 && c.B > 230 && c != src.RGBAAt(x, y) {
				white = true
			}
		}
	}
	if !darkened {
		t.Fatal("no blended banner pixels found")
	}
	if !white {
		t.Fatal("no bright text pixels found")
	}

	// Bottom rows stay untouched.
	if got := img.RGBAAt(60, 55); got != src.RGBAAt(60, 55) {
		t.Fatalf("pixel outside the banner changed: %v", got)
	}
}

func TestBannerClampsOversizedText(t *testing.T) {
	src := testsupport.SolidFrame(20, 16, color.RGBA{R: 40, G: 40, B: 40, A: 255})
	out, err := Banner([]*image.RGBA{src}, "Episode 1000000 of a very long run", Options{FontScale: 2})
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if got := out[0].Bounds(); got != src.Bounds() {
		t.Fatalf("bounds changed under oversized text: %v", got)
	}
}

func TestBannerEmptyInput(t *testing.T) {
	out, err := Banner(nil, "Episode 1", Options{})
	if err != nil {
		t.Fatalf("Banner: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no frames, got %d", len(out))
	}
}
