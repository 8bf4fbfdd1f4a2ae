package video

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FFmpegCommand is the binary used when Options.FFmpegBinary is empty.
const FFmpegCommand = "ffmpeg"

// Runner executes an external command and returns its combined output. Tests
// substitute a fake to capture the invocation without requiring ffmpeg.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	return cmd.CombinedOutput()
}

// framePattern is the printf-style name the assembler writes the image
// sequence under and ffmpeg reads it back with.
const framePattern = "frame%06d.png"

// encodeArgs builds the ffmpeg invocation that turns the image sequence in
// framesDir into an H.264 MP4 at outPath.
func encodeArgs(framesDir string, fps int, outPath string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-framerate", strconv.Itoa(fps),
		"-i", filepath.Join(framesDir, framePattern),
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outPath,
	}
}

func encodeVideo(ctx context.Context, run Runner, binary, framesDir string, fps int, outPath string) error {
	if output, err := run(ctx, binary, encodeArgs(framesDir, fps, outPath)...); err != nil {
		return fmt.Errorf("ffmpeg encode: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
