package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/projectile/pkg/math3d"
)

// PPMMaxValue is the channel maximum written in every PPM header.
const PPMMaxValue = 255

// Largest image ReadPPM accepts, per side and in total pixels.
const (
	MaxPPMSide   = 1 << 14
	MaxPPMPixels = 1 << 26
)

var (
	// ErrBadMagic is returned when the input does not start with "P3".
	ErrBadMagic = errors.New("not a plain PPM (P3) file")
	// ErrBadHeader is returned for a missing, malformed or oversized
	// width, height or maxval.
	ErrBadHeader = errors.New("invalid PPM header")
	// ErrShortData is returned when the input ends before every pixel is read.
	ErrShortData = errors.New("PPM pixel data truncated")
)

// ToPPM serializes the canvas as plain PPM text.
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	sb.Grow(len("P3  255\n") + 20 + c.Width*c.Height*12)
	// strings.Builder never returns a write error.
	_ = c.WritePPM(&sb)
	return sb.String()
}

// WritePPM writes the canvas as plain PPM. The header is a single line
// "P3 <width> <height> 255"; each following line is one row of pixels,
// each pixel three space-separated channel values in 0..255.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3 %d %d %d\n", c.Width, c.Height, PPMMaxValue)

	buf := make([]byte, 0, 12)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b := c.PixelAt(x, y).Bytes()
			buf = buf[:0]
			if x > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, uint64(r), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(g), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(b), 10)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// SavePPM writes the canvas to path as plain PPM.
func (c *Canvas) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	if err := c.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("write ppm: %w", err)
	}
	return f.Close()
}

// LoadPPM reads a plain PPM file from disk.
func LoadPPM(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ppm: %w", err)
	}
	defer f.Close()
	return ReadPPM(f)
}

// ReadPPM parses plain PPM. Header fields may be split across lines or
// share one line, and '#' starts a comment that runs to the end of the line.
// Channels are rescaled from [0, maxval] to [0, 1].
func ReadPPM(r io.Reader) (*Canvas, error) {
	tok := newPPMTokenizer(r)

	magic, err := tok.next()
	if err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: magic %q", ErrBadMagic, magic)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		s, err := tok.next()
		if err != nil {
			return nil, fmt.Errorf("%w: missing %s: %w", ErrBadHeader, name, err)
		}
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrBadHeader, name, s)
		}
		header[i] = v
	}
	width, height, maxval := header[0], header[1], header[2]
	if maxval > 65535 {
		return nil, fmt.Errorf("%w: maxval %d", ErrBadHeader, maxval)
	}
	if width > MaxPPMSide || height > MaxPPMSide || width*height > MaxPPMPixels {
		return nil, fmt.Errorf("%w: size %dx%d exceeds %dx%d or %d pixels",
			ErrBadHeader, width, height, MaxPPMSide, MaxPPMSide, MaxPPMPixels)
	}

	canvas := NewCanvas(width, height)
	for i := range canvas.Pixels {
		var ch [3]float64
		for j := range ch {
			s, err := tok.next()
			if err != nil {
				return nil, fmt.Errorf("%w: pixel %d of %d: %w", ErrShortData, i, len(canvas.Pixels), err)
			}
			v, err := strconv.Atoi(s)
			if err != nil || v < 0 || v > maxval {
				return nil, fmt.Errorf("pixel %d: invalid channel value %q", i, s)
			}
			ch[j] = float64(v) / float64(maxval)
		}
		canvas.Pixels[i] = math3d.RGB(ch[0], ch[1], ch[2])
	}
	return canvas, nil
}

// ppmTokenizer yields whitespace separated fields, skipping comments.
type ppmTokenizer struct {
	scanner *bufio.Scanner
	fields  []string
}

func newPPMTokenizer(r io.Reader) *ppmTokenizer {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &ppmTokenizer{scanner: s}
}

func (t *ppmTokenizer) next() (string, error) {
	for len(t.fields) == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		line := t.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		t.fields = strings.Fields(line)
	}
	f := t.fields[0]
	t.fields = t.fields[1:]
	return f, nil
}
