package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("exists should be false for a missing file")
	}
	if path == "" {
		t.Fatal("resolved path should be reported even when missing")
	}
	if cfg.Video.FPS != 20 || cfg.Paths.RecordingsDir != "recordings" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
recordings_dir = "runs/gifs"

[video]
fps = 30
resize_width = 640
ffmpeg_binary = "  "

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists should be true")
	}
	if cfg.Paths.RecordingsDir != "runs/gifs" {
		t.Fatalf("recordings_dir = %q", cfg.Paths.RecordingsDir)
	}
	if cfg.Video.FPS != 30 || cfg.Video.ResizeWidth != 640 {
		t.Fatalf("video section = %+v", cfg.Video)
	}
	if cfg.Video.FFmpegBinary != "ffmpeg" {
		t.Fatalf("blank ffmpeg_binary should fall back, got %q", cfg.Video.FFmpegBinary)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("format not lowered: %q", cfg.Logging.Format)
	}
	if cfg.Paths.OutputFile != "training_summary.mp4" {
		t.Fatalf("unset output_file should default, got %q", cfg.Paths.OutputFile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantSub string
	}{
		{"zero fps", "[video]\nfps = 0\n", "video.fps"},
		{"negative width", "[video]\nresize_width = -2\n", "video.resize_width"},
		{"bad format", "[logging]\nformat = \"yaml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"bad scale", "[banner]\nfont_scale = -1.0\n", "banner.font_scale"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("want error mentioning %q, got %v", tc.wantSub, err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandPath("~/videos")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != filepath.Join(home, "videos") {
		t.Fatalf("expandPath = %q", got)
	}
	if got, _ := expandPath("relative/dir"); got != "relative/dir" {
		t.Fatalf("relative path changed: %q", got)
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if *cfg != Default() {
		t.Fatalf("sample config drifted from defaults:\n%+v\n%+v", *cfg, Default())
	}
}
