// Package imageio converts between encoded images, raw float32 volumes and
// [batch, channel, spatial...] tensors.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/born-ml/bilateral/internal/tensor"
)

// ErrUnsupportedFormat is returned for file extensions that cannot be encoded.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format names an encoding chosen from a file extension.
type Format string

// Encodable formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// FormatFromPath picks the output format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Decode reads an image in any registered format (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Decode(r io.Reader) (image.Image, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	return img, name, nil
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case GIF:
		err = gif.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// ToTensor converts img into a [1, C, H, W] float32 tensor with values in [0, 255].
// C is 1 for gray, 3 (RGB) otherwise. Alpha is dropped.
func ToTensor(img image.Image, gray bool) (*tensor.RawTensor, error) {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()

	if gray {
		g := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)

		raw, err := tensor.NewRaw(tensor.Shape{1, 1, h, w}, tensor.Float32, tensor.CPU)
		if err != nil {
			return nil, err
		}
		data := raw.AsFloat32()
		for y := 0; y < h; y++ {
			row := g.Pix[y*g.Stride : y*g.Stride+w]
			for x, v := range row {
				data[y*w+x] = float32(v)
			}
		}
		return raw, nil
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	raw, err := tensor.NewRaw(tensor.Shape{1, 3, h, w}, tensor.Float32, tensor.CPU)
	if err != nil {
		return nil, err
	}
	data := raw.AsFloat32()
	plane := h * w
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*w]
		for x := 0; x < w; x++ {
			i := y*w + x
			data[i] = float32(row[4*x])
			data[plane+i] = float32(row[4*x+1])
			data[2*plane+i] = float32(row[4*x+2])
		}
	}
	return raw, nil
}

// FromTensor converts batch b of a [B, C, H, W] tensor with C of 1 or 3 back to an
// image, rounding and clamping values to [0, 255].
func FromTensor(raw *tensor.RawTensor, b int) (image.Image, error) {
	desc, err := raw.Descriptor()
	if err != nil {
		return nil, err
	}
	if desc.SpatialRank() != 2 {
		return nil, fmt.Errorf("imageio: expected 2 spatial axes, got %d: %w", desc.SpatialRank(), tensor.ErrShapeMismatch)
	}
	if b < 0 || b >= desc.BatchCount {
		return nil, fmt.Errorf("imageio: batch %d out of range [0, %d): %w", b, desc.BatchCount, tensor.ErrShapeMismatch)
	}
	h, w := desc.SpatialSizes[0], desc.SpatialSizes[1]

	switch desc.ChannelCount {
	case 1:
		g := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.SetGray(x, y, color.Gray{Y: toByte(raw.At(b, 0, y, x))})
			}
		}
		return g, nil
	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, color.NRGBA{
					R: toByte(raw.At(b, 0, y, x)),
					G: toByte(raw.At(b, 1, y, x)),
					B: toByte(raw.At(b, 2, y, x)),
					A: 255,
				})
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("imageio: %d channels cannot be an image: %w", desc.ChannelCount, tensor.ErrShapeMismatch)
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(min(255, max(0, v))))
}
