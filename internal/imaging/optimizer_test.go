package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeNoisePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestOptimizePassthroughUnderBudget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "note.png")
	writeNoisePNG(t, src, 20, 20)

	o := NewOptimizer(1<<20, 1024, 60, nil)
	res, err := o.Optimize(src, filepath.Join(dir, "out.jpg"))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if res.Path != src {
		t.Errorf("path = %q, want original %q", res.Path, src)
	}
	if res.Rewritten || res.Resized {
		t.Errorf("expected untouched passthrough, got %+v", res)
	}
	if res.FinalBytes != res.OriginalBytes {
		t.Errorf("bytes changed on passthrough: %+v", res)
	}
}

func TestOptimizeResizesOverBudget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "note.png")
	writeNoisePNG(t, src, 400, 200)

	dst := filepath.Join(dir, "out.jpg")
	o := NewOptimizer(1000, 100, 60, nil) // tiny budget forces the re-encode
	res, err := o.Optimize(src, dst)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if res.Path != dst {
		t.Errorf("path = %q, want %q", res.Path, dst)
	}
	if !res.Resized || !res.Rewritten {
		t.Errorf("expected resized rewrite, got %+v", res)
	}
	if res.FinalBytes >= res.OriginalBytes {
		t.Errorf("no shrink: %+v", res)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("output dims = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}

func TestOptimizeMissingSource(t *testing.T) {
	o := NewOptimizer(0, 0, 0, nil)
	if _, err := o.Optimize("/nonexistent/file.png", "/tmp/out.jpg"); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestArtifactNames(t *testing.T) {
	got := OptimizedName("/data/uploads/dn_123.png")
	want := filepath.Join("/data/uploads", "ocr_ready_dn_123.jpg")
	if got != want {
		t.Errorf("OptimizedName = %q, want %q", got, want)
	}

	got = PageOptimizedName("/data/scratch/cap1", 7)
	want = filepath.Join("/data/scratch/cap1", "page_7_optimized.jpg")
	if got != want {
		t.Errorf("PageOptimizedName = %q, want %q", got, want)
	}
}
