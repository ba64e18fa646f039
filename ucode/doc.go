// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ucode defines the parsed microcode instruction model for the
// Xenos shader translator.
//
// Instructions arrive pre-parsed from the guest microcode: the upstream
// parser decodes the raw clause words and hands the translator a stream of
// strongly-typed records in source order. This package holds those records:
//
//   - Instruction: the closed sum of all parsed instruction variants
//   - Operand / Result: source and destination descriptors with swizzle,
//     write-mask, addressing-mode, and modifier semantics
//   - VectorOpcode / ScalarOpcode / FetchOpcode: the full ALU and fetch
//     opcode enumerations of the guest ISA
//   - VertexFormat: fetch data formats and their host type mapping
//
// # Instruction Stream Shape
//
// A shader is a sequence of control-flow instructions. Exec blocks bracket
// straight-line runs of ALU and fetch instructions:
//
//	ExecBeginInstruction
//	  AluInstruction ...
//	  VertexFetchInstruction ...
//	ExecEndInstruction
//
// Every variant can render itself as a one-line disassembly, which the
// translator emits as a comment above the lowered statements.
package ucode
