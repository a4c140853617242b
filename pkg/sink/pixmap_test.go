package sink

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

func TestPixmap_HeaderAndPixelCount(t *testing.T) {
	pixel := func(x, y int) float32 { return 0.5 }

	var buf bytes.Buffer
	if err := NewPixmap(&buf).Write(800, 600, pixel); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}

	out := buf.String()
	header := "P2\n800 600 255\n"
	if !strings.HasPrefix(out, header) {
		t.Fatalf("Expected header %q, got %q", header, out[:min(len(out), 20)])
	}

	fields := strings.Fields(out[len(header):])
	if len(fields) != 800*600 {
		t.Fatalf("Expected %d pixel values, got %d", 800*600, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			t.Fatalf("Pixel %d is not an integer: %q", i, f)
		}
		if v < 0 || v > 255 {
			t.Fatalf("Pixel %d out of range: %d", i, v)
		}
	}
}

func TestPixmap_Quantization(t *testing.T) {
	tests := []struct {
		name  string
		color float32
		want  string
	}{
		{"black", 0, "0"},
		{"mid gray", 0.5, "127"},
		{"full", 1.0, "255"},
		{"overbright wraps", 1.2, "50"}, // floor(306) truncated to 8 bits
		{"NaN renders black", math32.NaN(), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pixel := func(x, y int) float32 { return tt.color }
			if err := NewPixmap(&buf).Write(1, 1, pixel); err != nil {
				t.Fatalf("Unexpected write error: %v", err)
			}

			want := "P2\n1 1 255\n" + tt.want + "\n"
			if got := buf.String(); got != want {
				t.Errorf("Expected %q, got %q", want, got)
			}
		})
	}
}

func TestPixmap_RowLayout(t *testing.T) {
	// Pixels are emitted row-major, one row per line.
	colors := [][]float32{
		{0.0, 1.0},
		{0.5, 0.0},
	}
	pixel := func(x, y int) float32 { return colors[y][x] }

	var buf bytes.Buffer
	if err := NewPixmap(&buf).Write(2, 2, pixel); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}

	want := "P2\n2 2 255\n0 255\n127 0\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPixmap_WriteError(t *testing.T) {
	pixel := func(x, y int) float32 { return 0.5 }

	if err := NewPixmap(failingWriter{}).Write(600, 600, pixel); err == nil {
		t.Error("Expected write error to surface, got nil")
	}
}
