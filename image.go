package texmod

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// Common errors for resource construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or the image byte size does not fit in an int.
	ErrInvalidDimensions = errors.New("texmod: invalid image dimensions")

	// ErrUnsupportedFormat is returned for texture formats other than
	// RGBA8Unorm, BGRA8Unorm and RGBA32Float.
	ErrUnsupportedFormat = errors.New("texmod: unsupported texture format")

	// ErrDataTooSmall is returned when the pixel slice is shorter than
	// width*height texels of the image format.
	ErrDataTooSmall = errors.New("texmod: pixel data too small")
)

// texelSize returns the bytes per texel of a supported format, or 0.
func texelSize(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4
	case gputypes.TextureFormatRGBA32Float:
		return 16
	}
	return 0
}

// Image is an immutable two-dimensional texture.
//
// Texels are stored in tightly packed rows (bytes per row is width times
// the texel size). 8-bit formats decode to [0, 1]; RGBA32Float texels are
// little-endian float32 channels and may hold any value, including values
// above one for HDR content. An Image never changes after construction, so
// any number of goroutines may sample it concurrently.
type Image struct {
	width  int
	height int
	format gputypes.TextureFormat
	stride int // bytes per texel
	pix    []byte
}

// NewImage creates an image from raw pixel data in the given format.
// The pixel slice is copied; the caller may reuse it afterwards.
//
// Supported formats are gputypes.TextureFormatRGBA8Unorm,
// gputypes.TextureFormatBGRA8Unorm and gputypes.TextureFormatRGBA32Float.
func NewImage(width, height int, format gputypes.TextureFormat, pixels []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	bpt := texelSize(format)
	if bpt == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if width > math.MaxInt/bpt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	size := width * height * bpt
	if len(pixels) < size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(pixels), size)
	}

	pix := make([]byte, size)
	copy(pix, pixels)

	componentLogger("image").Debug("texmod: image created",
		"width", width, "height", height, "format", format)

	return &Image{
		width:  width,
		height: height,
		format: format,
		stride: bpt,
		pix:    pix,
	}, nil
}

// NewImageFromColors creates an RGBA32Float image from row-major texels.
// Channel values are stored as given, without clamping.
func NewImageFromColors(width, height int, texels []Color4) (*Image, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/16/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(texels) < width*height {
		return nil, fmt.Errorf("%w: have %d texels, need %d", ErrDataTooSmall, len(texels), width*height)
	}

	pix := make([]byte, 0, width*height*16)
	for _, c := range texels[:width*height] {
		pix = binary.LittleEndian.AppendUint32(pix, math.Float32bits(c.R))
		pix = binary.LittleEndian.AppendUint32(pix, math.Float32bits(c.G))
		pix = binary.LittleEndian.AppendUint32(pix, math.Float32bits(c.B))
		pix = binary.LittleEndian.AppendUint32(pix, math.Float32bits(c.A))
	}
	return NewImage(width, height, gputypes.TextureFormatRGBA32Float, pix)
}

// ImageFromStd converts a standard library image into an RGBA8Unorm Image.
// Premultiplied sources are converted to straight alpha.
func ImageFromStd(src image.Image) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return NewImage(b.Dx(), b.Dy(), gputypes.TextureFormatRGBA8Unorm, dst.Pix)
}

// Width returns the image width in texels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in texels.
func (img *Image) Height() int { return img.height }

// Format returns the texture format the pixels were supplied in.
func (img *Image) Format() gputypes.TextureFormat { return img.format }

// Texel returns the decoded texel at integer coordinates (x, y).
// Coordinates must be inside the image; addressing of out-of-range
// coordinates is the sampler's job.
func (img *Image) Texel(x, y int) Color4 {
	i := (y*img.width + x) * img.stride
	p := img.pix[i : i+img.stride : i+img.stride]
	switch img.format {
	case gputypes.TextureFormatBGRA8Unorm:
		return Color4{R: unormf(p[2]), G: unormf(p[1]), B: unormf(p[0]), A: unormf(p[3])}
	case gputypes.TextureFormatRGBA32Float:
		return Color4{R: float32le(p[0:]), G: float32le(p[4:]), B: float32le(p[8:]), A: float32le(p[12:])}
	}
	return Color4{R: unormf(p[0]), G: unormf(p[1]), B: unormf(p[2]), A: unormf(p[3])}
}

func float32le(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// unormf decodes an 8-bit unsigned normalized channel.
func unormf(v uint8) float32 {
	return float32(v) / 255
}
