package frame

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFloatClampsAndScales(t *testing.T) {
	f := NewFloat(2, 1)
	f.Set(0, 0, 0.5, -0.25, 1.75)
	f.Set(1, 0, 0, 1, 0.999)

	got := ToRGBA(f)

	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{R: 127, G: 0, B: 255, A: 255}},
		{1, 0, color.RGBA{R: 0, G: 255, B: 254, A: 255}},
	}
	for _, tc := range cases {
		c := got.RGBAAt(tc.x, tc.y)
		if c != tc.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, c, tc.want)
		}
	}
}

func TestFloatRoundTripWithinRoundingTolerance(t *testing.T) {
	f := NewFloat(16, 1)
	for x := 0; x < 16; x++ {
		v := float64(x) / 15
		f.Set(x, 0, v, v, v)
	}

	got := ToRGBA(f)
	for x := 0; x < 16; x++ {
		v := float64(x) / 15
		want := math.Round(255 * v)
		if diff := math.Abs(float64(got.RGBAAt(x, 0).R) - want); diff > 1 {
			t.Fatalf("channel at x=%d is %d, want %v within 1", x, got.RGBAAt(x, 0).R, want)
		}
	}
}

func TestToRGBAPassthroughIsByteIdentical(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}

	got := ToRGBA(src)
	if len(got.Pix) != len(src.Pix) {
		t.Fatalf("pixel buffer length changed: %d != %d", len(got.Pix), len(src.Pix))
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("byte %d differs: %d != %d", i, got.Pix[i], src.Pix[i])
		}
	}
}

func TestToRGBACopiesRatherThanAliases(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 10, A: 255})

	got := ToRGBA(src)
	got.SetRGBA(0, 0, color.RGBA{R: 200, A: 255})

	if src.RGBAAt(0, 0).R != 10 {
		t.Fatal("caller-owned frame was mutated through the copy")
	}
}

func TestFloatOutOfBoundsAccess(t *testing.T) {
	f := NewFloat(1, 1)
	if c := f.At(5, 5); c != (color.RGBA{}) {
		t.Fatalf("out-of-bounds read returned %v", c)
	}
	f.Set(5, 5, 1, 1, 1) // must not panic
}
