package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/internal/cache"
)

// Errors returned by shader compilation.
var (
	ErrUnknownKind  = errors.New("shader: unknown effect kind")
	ErrEmptyModule  = errors.New("shader: compiler produced no output")
	ErrModuleLength = errors.New("shader: SPIR-V length is not a multiple of 4")
)

// Effect is an effect that can be drawn by a GPU pipeline.
type Effect interface {
	colorfilter.Effect

	// Uniforms returns the little-endian parameter block bound at
	// group 0, binding 2.
	Uniforms() []byte

	// ColorTarget returns the fragment target state for format.
	ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState

	// Constant returns the blend constant for the pass.
	Constant() gputypes.Color

	// Module returns the compiled SPIR-V words for the effect's shader.
	Module() ([]uint32, error)
}

type compiled struct {
	words []uint32
	err   error
}

// Engine builds GPU effect descriptors.
// Engine is safe for concurrent use.
type Engine struct {
	compile CompileFunc
	modules *cache.Cache[colorfilter.Kind, compiled]
}

var _ colorfilter.Engine = (*Engine)(nil)

// New creates a shader engine.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		compile: o.compile,
		modules: cache.New[colorfilter.Kind, compiled](4),
	}
}

// Blend returns a blend effect, or nil if mode is not a known blend mode.
func (e *Engine) Blend(color colorfilter.Color, mode colorfilter.BlendMode) colorfilter.Effect {
	if !mode.IsValid() {
		colorfilter.Logger().Warn("shader: unknown blend mode", "mode", mode)
		return nil
	}
	return &BlendEffect{base: base{engine: e, kind: colorfilter.KindBlend}, color: color, mode: mode}
}

// Lighting returns a lighting effect.
func (e *Engine) Lighting(mul, add colorfilter.Color) colorfilter.Effect {
	return &LightingEffect{base: base{engine: e, kind: colorfilter.KindLighting}, mul: mul, add: add}
}

// ColorMatrix returns a color matrix effect.
func (e *Engine) ColorMatrix(m colorfilter.ColorMatrix) colorfilter.Effect {
	return &MatrixEffect{base: base{engine: e, kind: colorfilter.KindColorMatrix}, matrix: m}
}

// Module returns the SPIR-V for kind, compiling it on first request.
// Compile failures are cached too.
func (e *Engine) Module(kind colorfilter.Kind) ([]uint32, error) {
	c := e.modules.GetOrCreate(kind, func() compiled {
		words, err := e.build(kind)
		return compiled{words: words, err: err}
	})
	return c.words, c.err
}

// CompiledModules returns the number of kinds compiled so far.
func (e *Engine) CompiledModules() int {
	return e.modules.Len()
}

func (e *Engine) build(kind colorfilter.Kind) ([]uint32, error) {
	src := Source(kind)
	if src == "" {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	spirv, err := e.compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %s: %w", kind, err)
	}
	words, err := toWords(spirv)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %s: %w", kind, err)
	}
	colorfilter.Logger().Debug("shader: module compiled", "kind", kind, "words", len(words))
	return words, nil
}

// toWords packs little-endian SPIR-V bytes into 32-bit words.
func toWords(b []byte) ([]uint32, error) {
	if len(b) == 0 {
		return nil, ErrEmptyModule
	}
	if len(b)%4 != 0 {
		return nil, ErrModuleLength
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words, nil
}
