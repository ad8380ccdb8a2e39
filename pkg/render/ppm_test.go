package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/projectile/pkg/math3d"
)

func sampleCanvas() *Canvas {
	c := NewCanvas(5, 3)
	c.WritePixel(0, 0, math3d.RGB(1.5, 0, 0))
	c.WritePixel(2, 1, math3d.RGB(0, 0.5, 0))
	c.WritePixel(4, 2, math3d.RGB(-0.5, 0, 1))
	return c
}

func TestCanvasToPPMGolden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "canvas_5x3.ppm"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	got := sampleCanvas().ToPPM()
	if got != string(want) {
		t.Errorf("ToPPM() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCanvasToPPMLayout(t *testing.T) {
	ppm := sampleCanvas().ToPPM()
	if !strings.HasSuffix(ppm, "\n") {
		t.Error("PPM should end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(ppm, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows", len(lines))
	}
	if lines[0] != "P3 5 3 255" {
		t.Errorf("header = %q, want %q", lines[0], "P3 5 3 255")
	}
	for i, row := range lines[1:] {
		if n := len(strings.Fields(row)); n != 15 {
			t.Errorf("row %d has %d values, want 15", i, n)
		}
		if strings.HasSuffix(row, " ") {
			t.Errorf("row %d has trailing whitespace", i)
		}
	}
}

func TestPPMRoundTrip(t *testing.T) {
	src := NewCanvas(7, 4)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			src.WritePixel(x, y, math3d.RGB(float64(x)/6, float64(y)/3, 0.25))
		}
	}
	var buf bytes.Buffer
	if err := src.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	got, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if got.Width != src.Width || got.Height != src.Height {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width, got.Height, src.Width, src.Height)
	}
	for i := range src.Pixels {
		r1, g1, b1 := src.Pixels[i].Bytes()
		r2, g2, b2 := got.Pixels[i].Bytes()
		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Errorf("pixel %d = %d,%d,%d, want %d,%d,%d", i, r2, g2, b2, r1, g1, b1)
		}
	}
}

func TestReadPPMMultilineHeader(t *testing.T) {
	in := "P3\n# made by hand\n2 1\n15\n15 0 0   0 0 15 # trailing\n"
	c, err := ReadPPM(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if c.Width != 2 || c.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", c.Width, c.Height)
	}
	if c.PixelAt(0, 0) != math3d.Red || c.PixelAt(1, 0) != math3d.Blue {
		t.Errorf("pixels = %v %v, want red blue", c.PixelAt(0, 0), c.PixelAt(1, 0))
	}
}

func TestReadPPMErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"binary magic", "P6 1 1 255\n", ErrBadMagic},
		{"empty", "", nil},
		{"bad width", "P3 x 1 255\n", ErrBadHeader},
		{"zero height", "P3 1 0 255\n", ErrBadHeader},
		{"missing maxval", "P3 1 1", ErrBadHeader},
		{"short data", "P3 2 1 255\n0 0 0 255\n", ErrShortData},
		{"huge size", "P3 4000000000 4000000000 255\n0 0 0\n", ErrBadHeader},
		{"wide row", "P3 16385 1 255\n0 0 0\n", ErrBadHeader},
		{"too many pixels", "P3 16384 16384 255\n0 0 0\n", ErrBadHeader},
		{"maxval too large", "P3 1 1 65536\n0 0 0\n", ErrBadHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPPM(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoadPPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := sampleCanvas().SavePPM(path); err != nil {
		t.Fatalf("SavePPM: %v", err)
	}
	c, err := LoadPPM(path)
	if err != nil {
		t.Fatalf("LoadPPM: %v", err)
	}
	if c.PixelAt(4, 2) != math3d.Blue {
		t.Errorf("PixelAt(4, 2) = %v, want blue", c.PixelAt(4, 2))
	}
	if _, err := LoadPPM(filepath.Join(t.TempDir(), "missing.ppm")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPPM(missing) err = %v, want ErrNotExist", err)
	}
}

func TestCanvasSavePNG(t *testing.T) {
	c := NewCanvas(100, 100)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			c.WritePixel(x, y, math3d.RGB(float64(x)/100, float64(y)/100, 0.5))
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("File not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("File is empty")
	}
}
