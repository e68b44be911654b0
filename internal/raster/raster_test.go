package raster

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "short caption",
			width: 40,
			want:  []string{"short caption"},
		},
		{
			name:  "wraps at word boundary",
			text:  "one two three four",
			width: 9,
			want:  []string{"one two", "three", "four"},
		},
		{
			name:  "keeps existing newlines",
			text:  "first line\nsecond line",
			width: 40,
			want:  []string{"first line", "second line"},
		},
		{
			name:  "overlong word stays unbroken",
			text:  "a reallyreallylongword b",
			width: 10,
			want:  []string{"a", "reallyreallylongword", "b"},
		},
		{
			name:  "blank line preserved",
			text:  "above\n\nbelow",
			width: 40,
			want:  []string{"above", "", "below"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Wrap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "frame.png")

	// Empty font path exercises the default typeface fallback
	r := New(640, 480, 32, 40, "")
	if err := r.Rasterize("Hello there. This is a test sentence that is long enough.", outPath); err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("frame not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("frame is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 640 || bounds.Dy() != 480 {
		t.Errorf("frame size = %dx%d, want 640x480", bounds.Dx(), bounds.Dy())
	}
}

func TestRasterizeMissingFontFallsBack(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "frame.png")

	r := New(320, 240, 24, 40, "no/such/font.ttf")
	if err := r.Rasterize("caption", outPath); err != nil {
		t.Fatalf("Rasterize() with missing font should fall back, got error = %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("frame not written: %v", err)
	}
}
