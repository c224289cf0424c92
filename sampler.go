package texmod

import (
	"math"

	"github.com/gogpu/gputypes"
)

// SamplerDescriptor describes how texture lookups filter and address
// coordinates. Field names and enums follow the WebGPU sampler descriptor.
//
// Address modes other than repeat and mirror-repeat behave as clamp-to-edge.
// Filter modes other than linear behave as nearest.
type SamplerDescriptor struct {
	Label string

	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	// AddressModeW is kept for parity with GPU samplers; 2-D lookups ignore it.
	AddressModeW gputypes.AddressMode

	MagFilter gputypes.FilterMode
	MinFilter gputypes.FilterMode
	// MipmapFilter is kept for parity with GPU samplers. Images carry a
	// single level, so it never changes a CPU lookup.
	MipmapFilter gputypes.FilterMode
}

// DefaultSamplerDescriptor returns clamp-to-edge addressing on every axis
// with linear filtering, the configuration used for UI texture atlases.
func DefaultSamplerDescriptor() SamplerDescriptor {
	return SamplerDescriptor{
		Label:        "texmod_default_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	}
}

// Sampler is an immutable filtering and addressing policy.
//
// A Sampler is independent of any image: the same image may be read through
// several samplers, and one sampler may serve many images.
type Sampler struct {
	desc SamplerDescriptor
}

// NewSampler creates a sampler from desc.
func NewSampler(desc SamplerDescriptor) *Sampler {
	componentLogger("sampler").Debug("texmod: sampler created",
		"label", desc.Label,
		"addressU", desc.AddressModeU, "addressV", desc.AddressModeV,
		"mag", desc.MagFilter, "min", desc.MinFilter)
	return &Sampler{desc: desc}
}

// Descriptor returns the descriptor the sampler was created from.
func (s *Sampler) Descriptor() SamplerDescriptor {
	return s.desc
}

// Sample returns the filtered texel of img at uv.
//
// Without derivatives the level of detail is zero, so the magnification
// filter applies. Coordinates outside [0, 1] are resolved per axis by the
// sampler's address modes.
//
// A nil sampler or nil image yields Transparent.
func (s *Sampler) Sample(img *Image, uv Coord2) Color4 {
	if s == nil || img == nil {
		return Transparent
	}
	return s.lookup(img, uv, s.desc.MagFilter)
}

// SampleGrad returns the filtered texel of img at uv using explicit
// screen-space derivatives of uv. A footprint larger than one texel selects
// the minification filter, anything else the magnification filter.
func (s *Sampler) SampleGrad(img *Image, uv, ddx, ddy Coord2) Color4 {
	if s == nil || img == nil {
		return Transparent
	}
	filter := s.desc.MagFilter
	if minifying(img, ddx, ddy) {
		filter = s.desc.MinFilter
	}
	return s.lookup(img, uv, filter)
}

func (s *Sampler) lookup(img *Image, uv Coord2, filter gputypes.FilterMode) Color4 {
	if filter == gputypes.FilterModeLinear {
		return s.linear(img, uv)
	}
	return s.nearest(img, uv)
}

func (s *Sampler) nearest(img *Image, uv Coord2) Color4 {
	x := texelIndex(float64(uv.U) * float64(img.width))
	y := texelIndex(float64(uv.V) * float64(img.height))
	return img.Texel(
		address(x, img.width, s.desc.AddressModeU),
		address(y, img.height, s.desc.AddressModeV),
	)
}

func (s *Sampler) linear(img *Image, uv Coord2) Color4 {
	// Texel centers sit at half-integer positions.
	fx := float64(uv.U)*float64(img.width) - 0.5
	fy := float64(uv.V)*float64(img.height) - 0.5

	x0 := texelIndex(fx)
	y0 := texelIndex(fy)
	tx := fraction(fx, x0)
	ty := fraction(fy, y0)

	xa := address(x0, img.width, s.desc.AddressModeU)
	xb := address(x0+1, img.width, s.desc.AddressModeU)
	ya := address(y0, img.height, s.desc.AddressModeV)
	yb := address(y0+1, img.height, s.desc.AddressModeV)

	top := img.Texel(xa, ya).Lerp(img.Texel(xb, ya), tx)
	bottom := img.Texel(xa, yb).Lerp(img.Texel(xb, yb), tx)
	return top.Lerp(bottom, ty)
}

// maxIndex bounds texel indices before integer conversion so that huge,
// infinite or NaN coordinates still address a valid texel.
const maxIndex = 1 << 30

// texelIndex returns floor(f) limited to [-maxIndex, maxIndex].
// NaN maps to zero.
func texelIndex(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= -maxIndex:
		return -maxIndex
	case f >= maxIndex:
		return maxIndex
	}
	return int(math.Floor(f))
}

// fraction returns the interpolation weight of f past texel i, in [0, 1].
func fraction(f float64, i int) float32 {
	t := f - float64(i)
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return float32(t)
}

// address maps an integer texel index onto [0, n) using mode.
func address(i, n int, mode gputypes.AddressMode) int {
	switch mode {
	case gputypes.AddressModeRepeat:
		m := i % n
		if m < 0 {
			m += n
		}
		return m
	case gputypes.AddressModeMirrorRepeat:
		period := 2 * n
		m := i % period
		if m < 0 {
			m += period
		}
		if m >= n {
			m = period - 1 - m
		}
		return m
	default:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// minifying reports whether the uv derivatives cover more than one texel.
func minifying(img *Image, ddx, ddy Coord2) bool {
	w, h := float64(img.width), float64(img.height)
	dx := math.Hypot(float64(ddx.U)*w, float64(ddx.V)*h)
	dy := math.Hypot(float64(ddy.U)*w, float64(ddy.V)*h)
	return math.Max(dx, dy) > 1
}
