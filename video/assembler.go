// Package video assembles every episode recording in a folder into one
// labelled summary video.
//
// The assembler decodes each GIF in episode order, stamps an "Episode N"
// banner onto every frame, optionally rescales to a uniform width, then feeds
// the concatenated frame sequence to ffmpeg for H.264 encoding. Everything
// runs synchronously; peak memory holds one decoded recording at a time plus
// the on-disk frame sequence.
package video

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"trainreel/annotate"
	"trainreel/internal/logging"
	"trainreel/internal/services"
	"trainreel/recording"
)

// Options configures an Assembler.
type Options struct {
	// FPS is the playback rate of the summary video. Zero means 20.
	FPS int
	// ResizeWidth, when positive, rescales every clip to this width while
	// preserving aspect ratio. Zero disables resizing.
	ResizeWidth int
	// FontScale and Thickness are passed through to the banner renderer.
	FontScale float64
	Thickness int
	// FFmpegBinary overrides the encoder binary. Empty means "ffmpeg".
	FFmpegBinary string
	// Runner overrides command execution; tests use this to avoid ffmpeg.
	Runner Runner
	// Logger receives structured progress records. Nil means silent.
	Logger *slog.Logger
	// OnProgress, when set, is called after each recording is prepared with
	// the number done so far and the total.
	OnProgress func(done, total int)
}

// Assembler builds summary videos from recorded episode GIFs.
type Assembler struct {
	opts   Options
	logger *slog.Logger
	run    Runner
}

// NewAssembler constructs an assembler, filling unset options with defaults.
func NewAssembler(opts Options) *Assembler {
	if opts.FPS <= 0 {
		opts.FPS = 20
	}
	if opts.FFmpegBinary == "" {
		opts.FFmpegBinary = FFmpegCommand
	}
	run := opts.Runner
	if run == nil {
		run = runCommand
	}
	return &Assembler{
		opts:   opts,
		logger: logging.NewComponentLogger(opts.Logger, "video"),
		run:    run,
	}
}

// Assemble reads every recording in gifDir, annotates and concatenates them
// in episode order, and encodes the result to outputFile, which is returned.
// A missing folder or one without recordings fails with a not-found error
// before any output is written. Decode and encode failures propagate with
// their cause intact; a failed encode may leave a partial output file behind.
func (a *Assembler) Assemble(ctx context.Context, gifDir, outputFile string) (string, error) {
	ctx = services.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, a.logger)

	files, err := recording.Discover(gifDir)
	if err != nil {
		return "", err
	}
	logger.Info("assembling summary video",
		logging.Int("recordings", len(files)),
		logging.String("output", outputFile),
		logging.Int("fps", a.opts.FPS),
	)

	workDir, err := os.MkdirTemp("", "trainreel-*")
	if err != nil {
		return "", fmt.Errorf("create frame workdir: %w", err)
	}
	defer os.RemoveAll(workDir)

	seq := 0
	for i, f := range files {
		rctx := services.WithRecording(ctx, f.Name)
		rlog := logging.WithContext(rctx, a.logger)

		frames, err := decodeFrames(f.Path)
		if err != nil {
			return "", err
		}

		label := "Episode " + f.Label
		annotated, err := annotate.Banner(frames, label, annotate.Options{
			FontScale: a.opts.FontScale,
			Thickness: a.opts.Thickness,
		})
		if err != nil {
			return "", fmt.Errorf("annotate %s: %w", f.Name, err)
		}

		for _, fr := range annotated {
			if a.opts.ResizeWidth > 0 {
				fr = resizeToWidth(fr, a.opts.ResizeWidth)
			}
			seq++
			if err := writePNG(filepath.Join(workDir, fmt.Sprintf(framePattern, seq)), fr); err != nil {
				return "", err
			}
		}

		rlog.Debug("recording prepared",
			logging.String(logging.FieldEpisodeLabel, f.Label),
			logging.Int(logging.FieldFrameCount, len(annotated)),
		)
		if a.opts.OnProgress != nil {
			a.opts.OnProgress(i+1, len(files))
		}
	}

	if err := encodeVideo(ctx, a.run, a.opts.FFmpegBinary, workDir, a.opts.FPS, outputFile); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "video", "encode", "ffmpeg failed", err)
	}

	logger.Info("summary video written",
		logging.Int(logging.FieldFrameCount, seq),
		logging.String("output", outputFile),
	)
	return outputFile, nil
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
