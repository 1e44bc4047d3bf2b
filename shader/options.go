package shader

import "github.com/gogpu/naga"

// CompileFunc turns WGSL source into SPIR-V bytes.
type CompileFunc func(source string) ([]byte, error)

// Option configures an Engine.
type Option func(*options)

type options struct {
	compile CompileFunc
}

func defaultOptions() options {
	return options{
		compile: naga.Compile,
	}
}

// WithCompiler replaces the WGSL compiler. A nil fn keeps naga.
func WithCompiler(fn CompileFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.compile = fn
		}
	}
}
