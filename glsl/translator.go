// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/xenos/ucode"
)

const (
	maxInterpolators      = 16
	maxTemporaryRegisters = 64
)

// Translator lowers a parsed instruction stream to GLSL source.
//
// A Translator owns no locks and performs no I/O; callers serialize use of
// one instance and may run many instances in parallel. Instances are
// reusable: call Reset between shaders.
type Translator struct {
	options Options
	stage   ucode.ShaderStage

	vertexBindings []ucode.VertexBinding

	// Output buffer and current indent depth. Depth moves in steps of two
	// and every indent is paired with one unindent.
	source strings.Builder
	depth  int

	// Translation errors recorded so far, in emit order.
	errors []string
}

// NewTranslator creates a translator for the given options.
func NewTranslator(options Options) *Translator {
	return &Translator{
		options: options,
	}
}

// Reset clears all per-shader state and sets the stage for the next
// translation.
func (t *Translator) Reset(stage ucode.ShaderStage) {
	t.stage = stage
	t.vertexBindings = nil
	t.source.Reset()
	t.depth = 0
	t.errors = nil
}

// SetVertexBindings supplies the attribute bindings gathered by the parser.
// Must be called before StartTranslation for vertex shaders that fetch
// attributes.
func (t *Translator) SetVertexBindings(bindings []ucode.VertexBinding) {
	t.vertexBindings = bindings
}

// Errors returns the translation errors recorded since the last Reset.
func (t *Translator) Errors() []string {
	out := make([]string, len(t.errors))
	copy(out, t.errors)
	return out
}

// ErrorCount returns how many translation errors were recorded.
func (t *Translator) ErrorCount() int {
	return len(t.errors)
}

func (t *Translator) isVertexShader() bool { return t.stage == ucode.StageVertex }
func (t *Translator) isPixelShader() bool  { return t.stage == ucode.StagePixel }

// emit appends formatted text with no indentation.
//
//nolint:goprintffuncname
func (t *Translator) emit(format string, args ...any) {
	if len(args) == 0 {
		t.source.WriteString(format)
		return
	}
	fmt.Fprintf(&t.source, format, args...)
}

// emitDepth appends formatted text prefixed by the current indentation.
//
//nolint:goprintffuncname
func (t *Translator) emitDepth(format string, args ...any) {
	t.source.WriteString("  ")
	for i := 0; i < t.depth; i++ {
		t.source.WriteByte(' ')
	}
	t.emit(format, args...)
}

// indent pushes one nesting level.
func (t *Translator) indent() {
	t.depth += 2
}

// unindent pops one nesting level.
func (t *Translator) unindent() {
	if t.depth < 2 {
		panic("glsl: unbalanced indent")
	}
	t.depth -= 2
}

// EmitTranslationError records a recoverable translation error and writes
// its diagnostic comment into the output.
func (t *Translator) EmitTranslationError(message string) {
	t.errors = append(t.errors, message)
	t.emitDepth("// TRANSLATION ERROR: %s\n", message)
}

// EmitUnimplementedTranslationError records an unimplemented-instruction
// marker.
func (t *Translator) EmitUnimplementedTranslationError() {
	t.errors = append(t.errors, "unimplemented instruction")
	t.emitDepth("// UNIMPLEMENTED TRANSLATION\n")
}

// emitDisassembly writes the instruction's assembly rendering as a comment.
func (t *Translator) emitDisassembly(instr ucode.Instruction) {
	t.emit("// ")
	instr.Disassemble(&t.source)
}

// Process dispatches one parsed instruction to its handler. The dispatch
// is total over the ucode instruction set; anything else panics.
func (t *Translator) Process(instr ucode.Instruction) {
	switch i := instr.(type) {
	case *ucode.ExecBeginInstruction:
		t.ProcessExecInstructionBegin(i)
	case *ucode.ExecEndInstruction:
		t.ProcessExecInstructionEnd(i)
	case *ucode.AluInstruction:
		t.ProcessAluInstruction(i)
	case *ucode.VertexFetchInstruction:
		t.ProcessVertexFetchInstruction(i)
	case *ucode.TextureFetchInstruction:
		t.ProcessTextureFetchInstruction(i)
	case *ucode.LabelInstruction:
		t.ProcessLabel(i)
	case *ucode.ControlFlowNopInstruction:
		t.ProcessControlFlowNopInstruction(i)
	case *ucode.LoopStartInstruction:
		t.ProcessLoopStartInstruction(i)
	case *ucode.LoopEndInstruction:
		t.ProcessLoopEndInstruction(i)
	case *ucode.CallInstruction:
		t.ProcessCallInstruction(i)
	case *ucode.ReturnInstruction:
		t.ProcessReturnInstruction(i)
	case *ucode.JumpInstruction:
		t.ProcessJumpInstruction(i)
	case *ucode.AllocInstruction:
		t.ProcessAllocInstruction(i)
	default:
		panic(fmt.Sprintf("glsl: unknown instruction %T", instr))
	}
}

// ProcessLabel handles a control-flow label.
func (t *Translator) ProcessLabel(instr *ucode.LabelInstruction) {
	t.EmitUnimplementedTranslationError()
}

// ProcessControlFlowNopInstruction handles a control-flow nop.
func (t *Translator) ProcessControlFlowNopInstruction(instr *ucode.ControlFlowNopInstruction) {
	t.emit("//        cnop\n")
}

// ProcessExecInstructionBegin opens an exec block and its guard.
func (t *Translator) ProcessExecInstructionBegin(instr *ucode.ExecBeginInstruction) {
	t.emitDisassembly(instr)

	switch instr.Type {
	case ucode.ExecUnconditional:
		t.emitDepth("{\n")
	case ucode.ExecConditional:
		matchBit := '0'
		if instr.Condition {
			matchBit = '1'
		}
		t.emitDepth("if ((state.bool_consts[%d] & (1 << %d)) == %c) {\n",
			instr.BoolConstantIndex/32, instr.BoolConstantIndex%32, matchBit)
	case ucode.ExecPredicated:
		t.emitDepth("if (%cp0) {\n", predicateChar(instr.Condition))
	default:
		panic(fmt.Sprintf("glsl: unknown exec type %d", instr.Type))
	}
	t.indent()
}

// ProcessExecInstructionEnd closes the innermost exec block.
func (t *Translator) ProcessExecInstructionEnd(instr *ucode.ExecEndInstruction) {
	t.unindent()
	t.emitDepth("}\n")
}

// ProcessLoopStartInstruction handles a loop opener.
func (t *Translator) ProcessLoopStartInstruction(instr *ucode.LoopStartInstruction) {
	t.emitDisassembly(instr)
	t.EmitUnimplementedTranslationError()
}

// ProcessLoopEndInstruction handles a loop terminator.
func (t *Translator) ProcessLoopEndInstruction(instr *ucode.LoopEndInstruction) {
	t.emitDisassembly(instr)
	t.EmitUnimplementedTranslationError()
}

// ProcessCallInstruction handles a subroutine call.
func (t *Translator) ProcessCallInstruction(instr *ucode.CallInstruction) {
	t.emitDisassembly(instr)
	t.EmitUnimplementedTranslationError()
}

// ProcessReturnInstruction handles a subroutine return.
func (t *Translator) ProcessReturnInstruction(instr *ucode.ReturnInstruction) {
	t.emitDisassembly(instr)
	t.EmitUnimplementedTranslationError()
}

// ProcessJumpInstruction handles a jump.
func (t *Translator) ProcessJumpInstruction(instr *ucode.JumpInstruction) {
	t.emitDisassembly(instr)
	t.EmitUnimplementedTranslationError()
}

// ProcessAllocInstruction handles an export allocation. Allocations need
// no lowered code; only the disassembly comment is kept.
func (t *Translator) ProcessAllocInstruction(instr *ucode.AllocInstruction) {
	t.emitDisassembly(instr)
}

// predicateChar returns the guard prefix for a predication polarity:
// space for p0, '!' for !p0.
func predicateChar(condition bool) byte {
	if condition {
		return ' '
	}
	return '!'
}

// emitPredicationBegin opens a per-instruction predication guard.
func (t *Translator) emitPredicationBegin(condition bool) {
	t.emitDepth("if (%cp0) {\n", predicateChar(condition))
	t.indent()
}

// emitPredicationEnd closes a per-instruction predication guard.
func (t *Translator) emitPredicationEnd() {
	t.unindent()
	t.emitDepth("}\n")
}
