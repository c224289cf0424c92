package texmod

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

// quadImage returns a 2x2 image: red, green on top; blue, white below.
func quadImage(t testing.TB) *Image {
	t.Helper()
	return newTestImage(t, 2, 2, red, green, blue, white)
}

func samplerWith(mode gputypes.AddressMode, filter gputypes.FilterMode) *Sampler {
	return NewSampler(SamplerDescriptor{
		AddressModeU: mode,
		AddressModeV: mode,
		AddressModeW: mode,
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapFilter: filter,
	})
}

func TestSampler_Nearest(t *testing.T) {
	img := quadImage(t)

	tests := []struct {
		name string
		mode gputypes.AddressMode
		uv   Coord2
		want color.NRGBA
	}{
		{"clamp top-left", gputypes.AddressModeClampToEdge, UV(0.25, 0.25), red},
		{"clamp top-right", gputypes.AddressModeClampToEdge, UV(0.75, 0.25), green},
		{"clamp bottom-left", gputypes.AddressModeClampToEdge, UV(0.25, 0.75), blue},
		{"clamp exact one", gputypes.AddressModeClampToEdge, UV(1, 1), white},
		{"clamp negative", gputypes.AddressModeClampToEdge, UV(-0.5, 0), red},
		{"clamp far positive", gputypes.AddressModeClampToEdge, UV(7, 0.25), green},
		{"repeat past one", gputypes.AddressModeRepeat, UV(1.25, 0.25), red},
		{"repeat negative", gputypes.AddressModeRepeat, UV(-0.25, 0.25), green},
		{"repeat both axes", gputypes.AddressModeRepeat, UV(-0.25, -0.25), white},
		{"mirror past one", gputypes.AddressModeMirrorRepeat, UV(1.25, 0.25), green},
		{"mirror second period", gputypes.AddressModeMirrorRepeat, UV(1.75, 0.25), red},
		{"mirror negative", gputypes.AddressModeMirrorRepeat, UV(-0.25, 0.25), red},
		{"mirror far negative", gputypes.AddressModeMirrorRepeat, UV(-0.75, 0.25), green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := samplerWith(tt.mode, gputypes.FilterModeNearest)
			if got := s.Sample(img, tt.uv).NRGBA(); got != tt.want {
				t.Errorf("Sample(%v) = %v, want %v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestSampler_Linear(t *testing.T) {
	img := quadImage(t)

	tests := []struct {
		name string
		mode gputypes.AddressMode
		uv   Coord2
		want Color4
	}{
		{"texel center is exact", gputypes.AddressModeClampToEdge, UV(0.25, 0.25), RGBA(1, 0, 0, 1)},
		{"image center averages four", gputypes.AddressModeClampToEdge, UV(0.5, 0.5), RGBA(0.5, 0.5, 0.5, 1)},
		{"clamp corner", gputypes.AddressModeClampToEdge, UV(0, 0), RGBA(1, 0, 0, 1)},
		{"horizontal midpoint", gputypes.AddressModeClampToEdge, UV(0.5, 0.25), RGBA(0.5, 0.5, 0, 1)},
		{"repeat blends across seam", gputypes.AddressModeRepeat, UV(0, 0.25), RGBA(0.5, 0.5, 0, 1)},
		{"mirror edge", gputypes.AddressModeMirrorRepeat, UV(0, 0.25), RGBA(1, 0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := samplerWith(tt.mode, gputypes.FilterModeLinear)
			if got := s.Sample(img, tt.uv); !colorsEqual(got, tt.want) {
				t.Errorf("Sample(%v) = %v, want %v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestSampler_LinearGradient(t *testing.T) {
	img := newTestImage(t, 2, 1, color.NRGBA{0, 0, 0, 255}, white)
	s := samplerWith(gputypes.AddressModeClampToEdge, gputypes.FilterModeLinear)

	prev := float32(-1)
	for i := 0; i <= 16; i++ {
		u := float32(i) / 16
		c := s.Sample(img, UV(u, 0.5))
		if c.R < prev {
			t.Errorf("gradient not monotonic at u=%v: %v < %v", u, c.R, prev)
		}
		prev = c.R
	}
	if c := s.Sample(img, UV(0.5, 0.5)); !nearlyEqual(c.R, 0.5) {
		t.Errorf("midpoint = %v, want 0.5", c.R)
	}
}

func TestSampler_SampleGrad(t *testing.T) {
	img := quadImage(t)
	s := NewSampler(SamplerDescriptor{
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeLinear,
	})

	mag := s.SampleGrad(img, UV(0.5, 0.5), UV(0.1, 0), UV(0, 0.1))
	if got := mag.NRGBA(); got != white {
		t.Errorf("magnified lookup = %v, want nearest texel %v", got, white)
	}

	minified := s.SampleGrad(img, UV(0.5, 0.5), UV(1, 0), UV(0, 1))
	if want := RGBA(0.5, 0.5, 0.5, 1); !colorsEqual(minified, want) {
		t.Errorf("minified lookup = %v, want linear %v", minified, want)
	}

	if got, want := s.SampleGrad(img, UV(0.5, 0.5), Coord2{}, Coord2{}), s.Sample(img, UV(0.5, 0.5)); got != want {
		t.Errorf("zero derivatives = %v, want Sample result %v", got, want)
	}
}

func TestSampler_NonFiniteCoordinates(t *testing.T) {
	img := quadImage(t)
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	for _, mode := range []gputypes.AddressMode{
		gputypes.AddressModeClampToEdge,
		gputypes.AddressModeRepeat,
		gputypes.AddressModeMirrorRepeat,
	} {
		for _, filter := range []gputypes.FilterMode{gputypes.FilterModeNearest, gputypes.FilterModeLinear} {
			s := samplerWith(mode, filter)
			for _, uv := range []Coord2{UV(nan, 0), UV(inf, -inf), UV(1e30, -1e30)} {
				// Must not panic; the value itself is unspecified.
				_ = s.Sample(img, uv)
			}
		}
	}
}

func TestSampler_Nil(t *testing.T) {
	var s *Sampler
	if got := s.Sample(quadImage(t), UV(0.5, 0.5)); got != Transparent {
		t.Errorf("nil sampler = %v, want Transparent", got)
	}
	s = NewSampler(DefaultSamplerDescriptor())
	if got := s.Sample(nil, UV(0.5, 0.5)); got != Transparent {
		t.Errorf("nil image = %v, want Transparent", got)
	}
}

func TestDefaultSamplerDescriptor(t *testing.T) {
	d := DefaultSamplerDescriptor()
	if d.AddressModeU != gputypes.AddressModeClampToEdge ||
		d.AddressModeV != gputypes.AddressModeClampToEdge ||
		d.AddressModeW != gputypes.AddressModeClampToEdge {
		t.Errorf("address modes = %v/%v/%v, want clamp-to-edge", d.AddressModeU, d.AddressModeV, d.AddressModeW)
	}
	if d.MagFilter != gputypes.FilterModeLinear || d.MinFilter != gputypes.FilterModeLinear {
		t.Errorf("filters = %v/%v, want linear", d.MagFilter, d.MinFilter)
	}
	if got := NewSampler(d).Descriptor(); got != d {
		t.Errorf("Descriptor() = %+v, want %+v", got, d)
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		i, n int
		mode gputypes.AddressMode
		want int
	}{
		{-1, 4, gputypes.AddressModeClampToEdge, 0},
		{4, 4, gputypes.AddressModeClampToEdge, 3},
		{5, 4, gputypes.AddressModeRepeat, 1},
		{-5, 4, gputypes.AddressModeRepeat, 3},
		{4, 4, gputypes.AddressModeMirrorRepeat, 3},
		{7, 4, gputypes.AddressModeMirrorRepeat, 0},
		{8, 4, gputypes.AddressModeMirrorRepeat, 0},
		{-1, 4, gputypes.AddressModeMirrorRepeat, 0},
		{-4, 4, gputypes.AddressModeMirrorRepeat, 3},
		{0, 1, gputypes.AddressModeMirrorRepeat, 0},
	}

	for _, tt := range tests {
		if got := address(tt.i, tt.n, tt.mode); got != tt.want {
			t.Errorf("address(%d, %d, %v) = %d, want %d", tt.i, tt.n, tt.mode, got, tt.want)
		}
	}
}

func BenchmarkSampler_Linear(b *testing.B) {
	img := quadImage(b)
	s := NewSampler(DefaultSamplerDescriptor())
	uv := UV(0.3, 0.7)

	b.ResetTimer()
	for b.Loop() {
		_ = s.Sample(img, uv)
	}
}
