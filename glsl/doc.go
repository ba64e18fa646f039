// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl lowers parsed Xenos shader microcode to GLSL 4.5 source.
//
// The translator consumes pre-parsed instruction records in source order
// and emits a self-contained shader program: a fixed preamble (state
// buffer layout, helper functions, the stage entry point) followed by one
// lowered statement group per guest instruction.
//
// # Basic Usage
//
//	t := glsl.NewTranslator(glsl.DefaultOptions())
//	t.Reset(ucode.StagePixel)
//	t.StartTranslation()
//	for _, instr := range instrs {
//	    t.Process(instr)
//	}
//	source := t.CompleteTranslation()
//
// # Scratch Register Convention
//
// The emitted body threads values through a small set of scratch
// variables declared in the preamble: src0..src2 hold loaded operands,
// pv and ps carry the previous vector and scalar results between
// instructions, p0 is the predicate bit, and a0 the address register.
//
// # State Buffer Contract
//
// The emitted program reads a single std430 storage buffer bound at slot
// 0 holding a runtime array of StateData indexed by gl_DrawIDARB. Field
// order, element types, and array lengths are ABI; they must match the
// renderer that fills the buffer.
//
// # Error Handling
//
// Unsupported control flow (loops, calls, jumps, labels) and unhandled
// texture ops are recoverable: the translator writes a diagnostic comment
// into the output, records it, and keeps going. Query the record with
// Errors. Violations of internal invariants (an opcode outside the
// enumeration, an unbalanced indent) panic.
package glsl
