// Package blend implements Porter-Duff compositing operators and the
// W3C separable and non-separable blend modes on premultiplied RGBA8.
//
// Mode ordinals follow the Skia enumeration so callers can convert a
// public blend mode with a plain integer conversion.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend
