// Package software is a CPU implementation of colorfilter.Engine.
//
// Effects built by this engine transform premultiplied RGBA8 pixels
// (the layout of *image.RGBA) and single colors:
//
//	e := software.New()
//	reg := colorfilter.NewRegistry(e)
//	h, _ := reg.NewLighting(colorfilter.White, 0xFF202020)
//	eff, _ := reg.Instance(h)
//	eff.(software.Effect).Apply(img, img.Bounds())
//
// Every factory call returns a new effect object. Lighting lookup tables
// are shared between effects with equal parameters.
package software
