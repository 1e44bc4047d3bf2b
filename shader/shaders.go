package shader

import (
	_ "embed"

	"github.com/gogpu/colorfilter"
)

//go:embed shaders/common.wgsl
var commonShaderSource string

//go:embed shaders/blend.wgsl
var blendShaderSource string

//go:embed shaders/lighting.wgsl
var lightingShaderSource string

//go:embed shaders/matrix.wgsl
var matrixShaderSource string

// Entry points shared by every effect shader.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Source returns the complete WGSL source used for kind,
// or "" if kind is unknown.
func Source(kind colorfilter.Kind) string {
	var body string
	switch kind {
	case colorfilter.KindBlend:
		body = blendShaderSource
	case colorfilter.KindLighting:
		body = lightingShaderSource
	case colorfilter.KindColorMatrix:
		body = matrixShaderSource
	default:
		return ""
	}
	return commonShaderSource + "\n" + body
}
