package imagefile

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, src image.Image) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, src); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestDecodeEncodeRoundTripNRGBA(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "src.png")
	dstPath := filepath.Join(dir, "dst.png")

	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	colors := []color.NRGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
		{10, 20, 30, 255}, {0, 0, 0, 255}, {255, 255, 255, 255},
	}
	for i, c := range colors {
		src.SetNRGBA(i%3, i/3, c)
	}
	writePNG(t, srcPath, src)

	img, err := Decode(srcPath)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("bounds = %dx%d, want 3x2", img.Width, img.Height)
	}
	if img.Layout != LayoutNRGBA {
		t.Fatalf("layout = %v, want NRGBA", img.Layout)
	}

	if err := Encode(dstPath, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	round, err := Decode(dstPath)
	if err != nil {
		t.Fatalf("Decode of encoded file failed: %v", err)
	}
	for i := range img.Pix {
		if round.Pix[i] != img.Pix[i] {
			t.Fatalf("pix[%d] = %d, want %d", i, round.Pix[i], img.Pix[i])
		}
	}
}

func TestDecodeGray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")

	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []uint8{0, 85, 170, 255}
	writePNG(t, path, src)

	img, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Layout != LayoutGray {
		t.Fatalf("layout = %v, want gray", img.Layout)
	}
	want := []uint8{0, 85, 170, 255}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestDecodeRejectsSixteenBit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep.png")

	src := image.NewGray16(image.Rect(0, 0, 2, 2))
	writePNG(t, path, src)

	_, err := Decode(path)
	if !errors.Is(err, ErrUnsupportedPixelFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedPixelFormat", err)
	}
}

func TestEncodeRejectsUnknownExtension(t *testing.T) {
	img := &Image{Width: 1, Height: 1, Layout: LayoutGray, Pix: []uint8{0}}
	err := Encode(filepath.Join(t.TempDir(), "out.bmp"), img)
	if err == nil {
		t.Fatal("expected error for unknown extension")
	}
}

func TestEncodeLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	img := &Image{Width: 2, Height: 1, Layout: LayoutGray, Pix: []uint8{7, 9}}

	if err := Encode(path, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestColorSamplesSkipAlpha(t *testing.T) {
	img := &Image{
		Width: 2, Height: 1, Layout: LayoutNRGBA,
		Pix: []uint8{10, 20, 30, 128, 40, 50, 60, 64},
	}

	samples := img.ColorSamples()
	want := []uint8{10, 20, 30, 40, 50, 60}
	if len(samples) != len(want) {
		t.Fatalf("len = %d, want %d", len(samples), len(want))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want[i])
		}
	}

	replaced, err := img.WithColorSamples([]uint8{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("WithColorSamples failed: %v", err)
	}
	if replaced.Pix[3] != 128 || replaced.Pix[7] != 64 {
		t.Error("alpha channel not preserved")
	}
	if img.Pix[0] != 10 {
		t.Error("receiver was mutated")
	}
}

func TestWithColorSamplesLengthMismatch(t *testing.T) {
	img := &Image{Width: 1, Height: 1, Layout: LayoutGray, Pix: []uint8{0}}
	if _, err := img.WithColorSamples([]uint8{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
