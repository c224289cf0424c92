package texmod

import "github.com/gogpu/gputypes"

// Binding slots of the texture resources. The image and the sampler are
// separate bindings within one group so that a single image can be paired
// with differently configured samplers.
const (
	// TextureGroup is the bind group index holding the texture resources.
	TextureGroup = 1

	// ImageBinding is the binding index of the sampled image.
	ImageBinding = 0

	// SamplerBinding is the binding index of the sampler.
	SamplerBinding = 1
)

// BindGroup pairs an image with a sampler, mirroring the texture bind group
// of the GPU pipeline. Neither resource is owned by the bind group.
type BindGroup struct {
	Image   *Image
	Sampler *Sampler
}

// NewBindGroup returns a bind group for img and smp.
func NewBindGroup(img *Image, smp *Sampler) BindGroup {
	return BindGroup{Image: img, Sampler: smp}
}

// Shade shades one fragment with the bound resources.
func (bg BindGroup) Shade(vertexColor Color4, uv Coord2) Color4 {
	return Shade(vertexColor, uv, bg.Image, bg.Sampler)
}

// BindGroupLayoutEntries describes the texture bind group for GPU pipeline
// creation: a filterable 2-D float texture at ImageBinding and a filtering
// sampler at SamplerBinding, both visible to the fragment stage.
func BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    ImageBinding,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    SamplerBinding,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}
