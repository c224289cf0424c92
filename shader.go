package texmod

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/textured.wgsl
var texturedShaderSource string

// FragmentEntryPoint is the entry point of the fragment stage in
// ShaderSource.
const FragmentEntryPoint = "fs_main"

// ShaderSource returns the WGSL source of the fragment stage. It computes
// the same function as Shade with the image at
// @group(TextureGroup) @binding(ImageBinding) and the sampler at
// @group(TextureGroup) @binding(SamplerBinding).
func ShaderSource() string {
	return texturedShaderSource
}

// CompileShader compiles ShaderSource to SPIR-V words.
func CompileShader() ([]uint32, error) {
	if texturedShaderSource == "" {
		return nil, errors.New("texmod: textured shader source is empty")
	}

	spirvBytes, err := naga.Compile(texturedShaderSource)
	if err != nil {
		componentLogger("shader").Warn("texmod: shader compilation failed", "err", err)
		return nil, fmt.Errorf("texmod: compile textured shader: %w", err)
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	componentLogger("shader").Debug("texmod: shader compiled", "words", len(code))
	return code, nil
}
