// Package shader is a colorfilter.Engine that describes effects for a GPU
// pipeline without touching a device.
//
// Each effect carries the uniform block its fragment shader reads, the color
// target state for a premultiplied render target, and lazily compiled SPIR-V:
//
//	eng := shader.New()
//	eff := eng.Lighting(mul, add).(*shader.LightingEffect)
//	words, err := eff.Module()
//	uniforms := eff.Uniforms()
//	target := eff.ColorTarget(gputypes.TextureFormatBGRA8Unorm)
//
// The fragment stage samples the texture at binding 0 with the sampler at binding 1
// in group 0 and reads its parameters from a uniform at binding 2.
// Each kind is compiled at most once per Engine.
package shader
