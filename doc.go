// Package colorfilter caches engine-native color filter effects.
//
// # Overview
//
// A filter descriptor owns its parameters and asks a rendering [Engine]
// to build the native effect the first time a draw needs it. The effect is
// reused across draws and rebuilt exactly when a parameter changes.
//
// Three filter variants are provided:
//   - [BlendFilter]: blends a constant color using a [BlendMode]. Immutable.
//   - [LightingFilter]: per-channel multiply then add. [LightingFilter.SetMultiply]
//     and [LightingFilter.SetAdd] invalidate the cached effect.
//   - [ColorMatrixFilter]: a 4x5 [ColorMatrix]. [ColorMatrixFilter.SetMatrix]
//     invalidates the cached effect.
//
// # Quick Start
//
//	eng := software.New()
//	f := colorfilter.NewLightingFilter(eng, colorfilter.White, colorfilter.Black)
//
//	eff := f.Instance()           // built here
//	eff = f.Instance()            // same object
//	f.SetAdd(colorfilter.RGB(32, 0, 0))
//	eff = f.Instance()            // rebuilt with the new add color
//
// # Handles
//
// Runtimes that cannot hold Go pointers use a [Registry]. It hands out
// generation-checked integer handles; a handle used after [Registry.Release]
// fails with handle.ErrStale instead of reaching a recycled filter.
//
// # Engines
//
// Engines live in subpackages:
//   - software: CPU effects over premultiplied *image.RGBA.
//   - shader: WGSL/SPIR-V pipeline descriptors for a GPU renderer.
//
// # Concurrency
//
// Filters are not safe for concurrent use; drive each filter from one
// goroutine (normally the draw thread). The Registry handle table and both
// engines are safe for concurrent use.
//
// # Logging
//
// Logging is off by default. See [SetLogger].
package colorfilter
