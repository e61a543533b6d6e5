package imagefile

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// jpegQuality matches the quality commonly used for archival conversions.
const jpegQuality = 95

// Decode reads and decodes the image at path into a flat 8-bit sample plane.
func Decode(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	img, err := fromStd(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to path, choosing the codec from the file extension.
// The file is written to a temporary sibling and renamed into place, so a
// failed encode leaves no partial destination.
func Encode(path string, img *Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return fmt.Errorf("unsupported file extension %q", ext)
	}

	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmpPath, err)
	}

	src := toStd(img)
	switch ext {
	case ".png":
		err = png.Encode(file, src)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, src, &jpeg.Options{Quality: jpegQuality})
	case ".tif", ".tiff":
		err = tiff.Encode(file, src, &tiff.Options{Compression: tiff.Deflate})
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func fromStd(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch typed := src.(type) {
	case *image.Gray:
		img := &Image{Width: width, Height: height, Layout: LayoutGray, Pix: make([]uint8, width*height)}
		for y := 0; y < height; y++ {
			row := typed.Pix[y*typed.Stride : y*typed.Stride+width]
			copy(img.Pix[y*width:], row)
		}
		return img, nil
	case *image.NRGBA:
		img := &Image{Width: width, Height: height, Layout: LayoutNRGBA, Pix: make([]uint8, width*height*4)}
		for y := 0; y < height; y++ {
			row := typed.Pix[y*typed.Stride : y*typed.Stride+width*4]
			copy(img.Pix[y*width*4:], row)
		}
		return img, nil
	case *image.RGBA, *image.YCbCr, *image.Paletted:
		// 8-bit layouts that need repacking; the color conversion (YCbCr to
		// RGB, palette lookup) is part of decoding, not a bit-depth change.
		nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
		return &Image{Width: width, Height: height, Layout: LayoutNRGBA, Pix: nrgba.Pix}, nil
	default:
		return nil, fmt.Errorf("%w: decoded as %T", ErrUnsupportedPixelFormat, src)
	}
}

func toStd(img *Image) image.Image {
	rect := image.Rect(0, 0, img.Width, img.Height)
	if img.Layout == LayoutGray {
		return &image.Gray{Pix: img.Pix, Stride: img.Width, Rect: rect}
	}
	return &image.NRGBA{Pix: img.Pix, Stride: img.Width * 4, Rect: rect}
}
