package subframe

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"frame-30", "frame-30"},
		{"Subframe — Canvas", "Subframe___Canvas"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"a/b\\c", "a_b_c"},
		{"v1.2", "v1.2"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0,      // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	got := img.Pix[0:4]
	if got[0] != 255 || got[1] != 127 || got[2] != 0 || got[3] != 128 {
		t.Errorf("half-transparent = %v, want [255 127 0 128]", got)
	}
	got = img.Pix[4:8]
	if got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("opaque = %v, want unchanged", got)
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	img := unpremultiply([]byte{1, 2, 3, 255, 4, 5, 6, 255}, 2, 1)

	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 2x1", b)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	img := unpremultiply(make([]byte, 4), 1, 1)
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	pixels := []byte{
		128, 0, 0, 128,
		0, 255, 0, 255,
	}
	path, err := saveScreenshot(pixels, 2, 1, dir, "Canvas Subframe")
	if err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not in %q", path, dir)
	}
	if !strings.HasSuffix(path, "_Canvas_Subframe.png") {
		t.Errorf("path %q should end with the sanitized label", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("pixel 0 = %v, want straight alpha {255 0 0 128}", got)
	}
}
