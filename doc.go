// Package texmod implements the textured fragment stage of a rasterizer:
// the output color of a fragment is its interpolated vertex color multiplied
// channel by channel with a texel sampled from an image.
//
// # Overview
//
// The image and the sampler are separate resources combined at the call
// site, so one image can be read through several samplers:
//
//	img, err := texmod.NewImage(w, h, gputypes.TextureFormatRGBA8Unorm, pixels)
//	if err != nil {
//	    return err
//	}
//	smp := texmod.NewSampler(texmod.DefaultSamplerDescriptor())
//
//	out := texmod.Shade(vertexColor, texmod.UV(u, v), img, smp)
//
// Shade never clamps. Vertex colors above one yield output above one, and
// alpha is multiplied exactly like the color channels.
//
// # Sampling
//
// A [Sampler] is configured with a [SamplerDescriptor] using the WebGPU
// enums from github.com/gogpu/gputypes. Clamp-to-edge, repeat and
// mirror-repeat addressing and nearest and linear filtering are supported.
//
// # Batches
//
// [Compositor] shades slices of [Fragment] values on a worker pool. Results
// are identical to calling Shade for each fragment in turn.
//
// # GPU
//
// [ShaderSource] holds the same computation as a WGSL fragment shader with
// the image at @group(1) @binding(0) and the sampler at @group(1)
// @binding(1). [BindGroupLayoutEntries] describes those bindings and
// [CompileShader] produces SPIR-V through github.com/gogpu/naga.
// Pipeline creation and resource lifetime belong to the caller.
package texmod
