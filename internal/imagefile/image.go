package imagefile

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPixelFormat indicates a decoded image does not carry plain
// 8-bit-per-channel samples. Such images are never widened or reinterpreted.
var ErrUnsupportedPixelFormat = errors.New("unsupported pixel format: 8-bit samples required")

// Layout identifies how samples are packed in an Image's Pix slice.
type Layout int

const (
	// LayoutGray stores one luma sample per pixel.
	LayoutGray Layout = iota
	// LayoutNRGBA stores four samples per pixel: R, G, B, straight alpha.
	LayoutNRGBA
)

// Image is a decoded 8-bit image as a flat sample plane.
type Image struct {
	Width  int
	Height int
	Layout Layout
	Pix    []uint8
}

func (img *Image) bytesPerPixel() int {
	if img.Layout == LayoutGray {
		return 1
	}
	return 4
}

// ColorSamples returns a copy of the color-carrying samples: every sample for
// gray images, the R/G/B bytes (alpha excluded) for NRGBA images.
func (img *Image) ColorSamples() []uint8 {
	if img.Layout == LayoutGray {
		return append([]uint8(nil), img.Pix...)
	}
	samples := make([]uint8, 0, len(img.Pix)/4*3)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		samples = append(samples, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	}
	return samples
}

// WithColorSamples builds a new image with the color samples replaced and any
// alpha channel carried over unchanged. The receiver is not modified.
func (img *Image) WithColorSamples(samples []uint8) (*Image, error) {
	out := &Image{
		Width:  img.Width,
		Height: img.Height,
		Layout: img.Layout,
		Pix:    make([]uint8, len(img.Pix)),
	}
	if img.Layout == LayoutGray {
		if len(samples) != len(img.Pix) {
			return nil, fmt.Errorf("sample count %d does not match plane size %d", len(samples), len(img.Pix))
		}
		copy(out.Pix, samples)
		return out, nil
	}
	if len(samples) != len(img.Pix)/4*3 {
		return nil, fmt.Errorf("sample count %d does not match plane size %d", len(samples), len(img.Pix)/4*3)
	}
	s := 0
	for i := 0; i+3 < len(img.Pix); i += 4 {
		out.Pix[i] = samples[s]
		out.Pix[i+1] = samples[s+1]
		out.Pix[i+2] = samples[s+2]
		out.Pix[i+3] = img.Pix[i+3]
		s += 3
	}
	return out, nil
}
