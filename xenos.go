// Package xenos translates parsed Xenos GPU shader microcode to GLSL.
//
// xenos lowers the clause-structured microcode of the guest GPU into a
// GLSL 4.5 program that reproduces the guest shader's observable
// semantics against a renderer-supplied draw state buffer.
//
// The package sits between two external collaborators:
//
//   - An upstream microcode parser decodes the raw shader words into the
//     ucode instruction records this package consumes.
//   - A host graphics driver compiles the emitted source; the renderer
//     binds the StateData storage buffer the program reads.
//
// Example usage:
//
//	source, info, err := xenos.Translate(ucode.StagePixel, instrs, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For more control, use the glsl package directly:
//
//	t := glsl.NewTranslator(glsl.DefaultOptions())
//	t.Reset(ucode.StageVertex)
//	t.SetVertexBindings(bindings)
//	t.StartTranslation()
//	for _, instr := range instrs {
//	    t.Process(instr)
//	}
//	source := t.CompleteTranslation()
package xenos

import (
	"github.com/gogpu/xenos/glsl"
	"github.com/gogpu/xenos/ucode"
)

// Info contains metadata about a translation.
type Info struct {
	// Errors lists the translation errors recorded while lowering, in
	// emit order. The output is still usable when errors are present:
	// each errored instruction is replaced by a diagnostic comment, plus
	// a zero fallback for pv when the instruction produces a value.
	Errors []string
}

// Translate lowers a parsed instruction stream to GLSL source using
// default options.
//
// The instructions must be in source order. bindings supplies the vertex
// attribute bindings for vertex shaders and may be nil for pixel shaders.
func Translate(stage ucode.ShaderStage, instrs []ucode.Instruction, bindings []ucode.VertexBinding) ([]byte, Info, error) {
	return TranslateWithOptions(stage, instrs, bindings, glsl.DefaultOptions())
}

// TranslateWithOptions lowers a parsed instruction stream to GLSL source
// with custom options.
//
// The pipeline is:
//  1. Reset a translator for the stage
//  2. Emit the shader preamble
//  3. Lower each instruction in source order
//  4. Close the program and collect the source bytes
func TranslateWithOptions(stage ucode.ShaderStage, instrs []ucode.Instruction, bindings []ucode.VertexBinding, opts glsl.Options) ([]byte, Info, error) {
	t := glsl.NewTranslator(opts)
	t.Reset(stage)
	t.SetVertexBindings(bindings)

	t.StartTranslation()
	for _, instr := range instrs {
		t.Process(instr)
	}
	source := t.CompleteTranslation()

	return source, Info{Errors: t.Errors()}, nil
}
