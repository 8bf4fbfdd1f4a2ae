// Package trainreel records reinforcement-learning training episodes as
// animated GIFs and assembles them into one labelled summary video.
//
// The flat functions here mirror the two entry points callers use during and
// after a training run:
//
//	path, err := trainreel.SaveGIF(frames, "ep42")
//	...
//	out, err := trainreel.CreateVideoFromGIFs(ctx, "recordings", "training_summary.mp4")
//
// SaveGIF is called once per episode and drops one GIF into the recordings
// folder. CreateVideoFromGIFs is called once at the end of training; it reads
// every recording back, stamps an "Episode N" banner onto each frame, and
// concatenates the clips into a single MP4 via ffmpeg. The recording and
// video packages expose the same operations with more control.
package trainreel

import (
	"context"
	"image"
	"log/slog"

	"trainreel/internal/services"
	"trainreel/recording"
	"trainreel/video"
)

// ErrNotFound tags assembly failures where the recordings folder is missing
// or holds no GIF files. Check with errors.Is.
var ErrNotFound = services.ErrNotFound

const (
	// DefaultFolder is where recordings land when no folder is configured.
	DefaultFolder = "recordings"
	// DefaultOutputFile is the summary video path when none is configured.
	DefaultOutputFile = "training_summary.mp4"
	// DefaultFPS is the playback rate used for both GIFs and the summary.
	DefaultFPS = 20
)

// RecordOption adjusts SaveGIF behavior.
type RecordOption func(*recordConfig)

type recordConfig struct {
	folder string
	fps    int
}

// WithFolder changes the destination folder for the episode GIF.
func WithFolder(folder string) RecordOption {
	return func(c *recordConfig) { c.folder = folder }
}

// WithFPS changes the GIF playback rate.
func WithFPS(fps int) RecordOption {
	return func(c *recordConfig) { c.fps = fps }
}

// SaveGIF writes frames as one animated GIF named after episodeName inside
// the recordings folder and returns the file path. Frames may be 8-bit images
// or frame.Float values with channels in [0,1]; everything is normalized to
// 8-bit before encoding. The folder and missing parents are created on
// demand and an existing recording with the same name is overwritten.
func SaveGIF(frames []image.Image, episodeName string, opts ...RecordOption) (string, error) {
	cfg := recordConfig{folder: DefaultFolder, fps: DefaultFPS}
	for _, opt := range opts {
		opt(&cfg)
	}
	return recording.SaveGIF(frames, episodeName, cfg.folder, cfg.fps)
}

// AssembleOption adjusts CreateVideoFromGIFs behavior.
type AssembleOption func(*video.Options)

// WithAssembleFPS sets the summary video frame rate.
func WithAssembleFPS(fps int) AssembleOption {
	return func(o *video.Options) { o.FPS = fps }
}

// WithResizeWidth rescales every clip to the given width, preserving aspect
// ratio.
func WithResizeWidth(width int) AssembleOption {
	return func(o *video.Options) { o.ResizeWidth = width }
}

// WithLogger routes assembler progress into the given structured logger.
func WithLogger(logger *slog.Logger) AssembleOption {
	return func(o *video.Options) { o.Logger = logger }
}

// CreateVideoFromGIFs reads every .gif recording in gifFolder, annotates each
// clip with its episode label, concatenates the clips in episode order, and
// encodes one MP4 at outputFile, which is returned. Empty arguments fall back
// to DefaultFolder and DefaultOutputFile. A missing or empty folder fails
// with ErrNotFound before any output is written.
func CreateVideoFromGIFs(ctx context.Context, gifFolder, outputFile string, opts ...AssembleOption) (string, error) {
	if gifFolder == "" {
		gifFolder = DefaultFolder
	}
	if outputFile == "" {
		outputFile = DefaultOutputFile
	}
	options := video.Options{FPS: DefaultFPS}
	for _, opt := range opts {
		opt(&options)
	}
	return video.NewAssembler(options).Assemble(ctx, gifFolder, outputFile)
}
