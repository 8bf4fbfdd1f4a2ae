package video

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"

	"trainreel/frame"
)

// decodeFrames reads every frame of the GIF at path as full 8-bit frames.
// GIF frames may cover only the changed region of the canvas, so each one is
// composited over the running canvas before being snapshotted.
func decodeFrames(path string) ([]*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode gif %s: %w", path, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("decode gif %s: no frames", path)
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	frames := make([]*image.RGBA, 0, len(g.Image))
	for _, src := range g.Image {
		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)
		frames = append(frames, frame.Clone(canvas))
	}
	return frames, nil
}
