package recording

import (
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"trainreel/internal/services"
	"trainreel/internal/testsupport"
)

func TestSaveGIFCreatesMissingParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "recordings")
	frames := testsupport.SolidFrames(3, 8, 6, color.RGBA{R: 200, A: 255})

	path, err := SaveGIF(frames, "ep1", dir, 20)
	if err != nil {
		t.Fatalf("SaveGIF: %v", err)
	}
	if path != filepath.Join(dir, "ep1.gif") {
		t.Fatalf("unexpected path %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(decoded.Image) != 3 {
		t.Fatalf("frame count = %d, want 3", len(decoded.Image))
	}
	for i, d := range decoded.Delay {
		if d != 5 { // 20 fps => 5 hundredths per frame
			t.Fatalf("delay[%d] = %d, want 5", i, d)
		}
	}
}

func TestSaveGIFOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	frames := testsupport.SolidFrames(2, 4, 4, color.RGBA{G: 128, A: 255})

	first, err := SaveGIF(frames, "ep2", dir, 10)
	if err != nil {
		t.Fatalf("first SaveGIF: %v", err)
	}
	second, err := SaveGIF(frames, "ep2", dir, 10)
	if err != nil {
		t.Fatalf("second SaveGIF: %v", err)
	}
	if first != second {
		t.Fatalf("paths differ: %q vs %q", first, second)
	}
}

func TestSaveGIFRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := SaveGIF(nil, "ep1", dir, 20); err == nil {
		t.Fatal("expected error for empty frame slice")
	}
	frames := testsupport.SolidFrames(1, 2, 2, color.RGBA{A: 255})
	if _, err := SaveGIF(frames, "ep1", dir, 0); err == nil {
		t.Fatal("expected error for zero fps")
	}
}

func TestDiscoverSortsNumerically(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ep2.gif", "ep10.gif", "ep1.gif"} {
		testsupport.WriteGIF(t, filepath.Join(dir, name), 1, 4, 4)
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	got := make([]string, 0, len(files))
	for _, f := range files {
		got = append(got, f.Name)
	}
	want := []string{"ep1.gif", "ep2.gif", "ep10.gif"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDiscoverStableForUnparseableNames(t *testing.T) {
	dir := t.TempDir()
	// All three sort as key 0 and must keep enumeration order.
	for _, name := range []string{"alpha.gif", "beta.gif", "gamma.gif"} {
		testsupport.WriteGIF(t, filepath.Join(dir, name), 1, 4, 4)
	}
	testsupport.WriteGIF(t, filepath.Join(dir, "ep1.gif"), 1, 4, 4)

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	got := make([]string, 0, len(files))
	for _, f := range files {
		got = append(got, f.Name)
	}
	want := []string{"alpha.gif", "beta.gif", "gamma.gif", "ep1.gif"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDiscoverIgnoresNonGIFAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteGIF(t, filepath.Join(dir, "EP3.GIF"), 1, 4, 4)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	testsupport.WriteGIF(t, filepath.Join(dir, "nested", "ep9.gif"), 1, 4, 4)

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || files[0].Name != "EP3.GIF" {
		t.Fatalf("unexpected discoveries: %+v", files)
	}
	if files[0].SortKey != 3 || files[0].Label != "3" {
		t.Fatalf("key/label = %d/%q", files[0].SortKey, files[0].Label)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing")); !services.IsNotFound(err) {
		t.Fatalf("missing dir: got %v", err)
	}

	empty := t.TempDir()
	if err := os.WriteFile(filepath.Join(empty, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Discover(empty); !services.IsNotFound(err) {
		t.Fatalf("empty dir: got %v", err)
	}
}
