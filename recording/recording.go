// Package recording persists per-episode frame sequences as animated GIF
// files and enumerates them back for assembly.
//
// One episode is one file: dir/<episodeName>.gif, written once during
// training and never mutated afterwards. Discovery is non-recursive and
// treats every .gif entry as a recording regardless of how it was named;
// ordering comes from the numeric sort key in package episode with directory
// enumeration order breaking ties.
package recording

import (
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"trainreel/episode"
	"trainreel/frame"
	"trainreel/internal/services"
)

// File is one discovered episode recording.
type File struct {
	// Name is the bare filename, Path the full path inside the scanned dir.
	Name string
	Path string
	// SortKey is the integer episode number recordings are ordered by.
	// Unparseable names all carry 0 and keep their enumeration order.
	SortKey int
	// Label is the best-effort display string for the on-frame banner.
	Label string
}

// SaveGIF encodes frames as one animated GIF at dir/<episodeName>.gif played
// back at fps and returns the written path. The directory and any missing
// parents are created; an existing file at the target path is overwritten.
// Frames are normalized to 8-bit before encoding; encoding and IO failures
// propagate with their cause intact.
func SaveGIF(frames []image.Image, episodeName, dir string, fps int) (string, error) {
	if len(frames) == 0 {
		return "", services.Wrap(services.ErrValidation, "recording", "save gif", "no frames to encode", nil)
	}
	if fps <= 0 {
		return "", services.Wrap(services.ErrValidation, "recording", "save gif", "fps must be positive", nil)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	anim := &gif.GIF{LoopCount: 0}
	delay := delayHundredths(fps)
	for _, fr := range frames {
		anim.Image = append(anim.Image, frame.Quantize(frame.ToRGBA(fr)))
		anim.Delay = append(anim.Delay, delay)
	}

	path := filepath.Join(dir, episodeName+".gif")
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := gif.EncodeAll(out, anim); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Discover lists the .gif entries of dir (extension matched case
// insensitively, subdirectories not descended into) sorted ascending by
// episode number. A missing directory or a directory without any recordings
// yields a not-found error before any work happens.
func Discover(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "recording", "discover", "gif folder does not exist: "+dir, err)
		}
		return nil, err
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".gif") {
			continue
		}
		files = append(files, File{
			Name:    name,
			Path:    filepath.Join(dir, name),
			SortKey: episode.Number(name),
			Label:   episode.Label(name),
		})
	}
	if len(files) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "recording", "discover", "no gif files found in "+dir, nil)
	}

	slices.SortStableFunc(files, func(a, b File) int { return a.SortKey - b.SortKey })
	return files, nil
}

// delayHundredths converts fps into the GIF per-frame delay unit (hundredths
// of a second), rounding to the nearest representable rate.
func delayHundredths(fps int) int {
	d := (100 + fps/2) / fps
	if d < 1 {
		d = 1
	}
	return d
}
