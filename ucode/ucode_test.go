// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ucode

import (
	"strings"
	"testing"
)

// =============================================================================
// Vertex Format Tests
// =============================================================================

func TestVertexFormatComponentCount(t *testing.T) {
	tests := []struct {
		format VertexFormat
		want   int
	}{
		{Format32, 1},
		{Format32_FLOAT, 1},
		{Format16_16, 2},
		{Format32_32, 2},
		{Format16_16_FLOAT, 2},
		{Format32_32_FLOAT, 2},
		{Format10_11_11, 3},
		{Format11_11_10, 3},
		{Format32_32_32_FLOAT, 3},
		{Format8_8_8_8, 4},
		{Format2_10_10_10, 4},
		{Format16_16_16_16, 4},
		{Format32_32_32_32, 4},
		{Format16_16_16_16_FLOAT, 4},
		{Format32_32_32_32_FLOAT, 4},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.ComponentCount(); got != tt.want {
				t.Errorf("ComponentCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVertexFormatGLSLTypeName(t *testing.T) {
	tests := []struct {
		format VertexFormat
		want   string
	}{
		{Format32_FLOAT, "float"},
		{Format16_16, "vec2"},
		{Format32_32_32_FLOAT, "vec3"},
		{Format8_8_8_8, "vec4"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.GLSLTypeName(); got != tt.want {
				t.Errorf("GLSLTypeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Swizzle Tests
// =============================================================================

func TestSwizzleSourceChar(t *testing.T) {
	tests := []struct {
		source SwizzleSource
		want   byte
	}{
		{SwizzleX, 'x'},
		{SwizzleY, 'y'},
		{SwizzleZ, 'z'},
		{SwizzleW, 'w'},
		{Swizzle0, '0'},
		{Swizzle1, '1'},
	}

	for _, tt := range tests {
		if got := tt.source.Char(); got != tt.want {
			t.Errorf("Char(%d) = %c, want %c", tt.source, got, tt.want)
		}
	}
}

func TestOperandIsStandardSwizzle(t *testing.T) {
	op := Operand{
		ComponentCount: 4,
		Components:     [4]SwizzleSource{SwizzleX, SwizzleY, SwizzleZ, SwizzleW},
	}
	if !op.IsStandardSwizzle() {
		t.Error("identity xyzw not recognized as standard")
	}

	op.Components[3] = SwizzleX
	if op.IsStandardSwizzle() {
		t.Error("xyzx recognized as standard")
	}

	// A shorter identity prefix still emits a selector.
	op = Operand{
		ComponentCount: 2,
		Components:     [4]SwizzleSource{SwizzleX, SwizzleY},
	}
	if op.IsStandardSwizzle() {
		t.Error("two-component swizzle recognized as standard")
	}
}

func TestResultPredicates(t *testing.T) {
	full := Result{
		StorageTarget: StorageTargetRegister,
		WriteMask:     [4]bool{true, true, true, true},
		Components:    [4]SwizzleSource{SwizzleX, SwizzleY, SwizzleZ, SwizzleW},
	}
	if !full.HasAnyWrites() || !full.IsStandardSwizzle() || !full.StoresNonConstants() {
		t.Errorf("full result predicates wrong: %+v", full)
	}

	empty := Result{StorageTarget: StorageTargetRegister}
	if empty.HasAnyWrites() {
		t.Error("empty mask has writes")
	}

	discarded := full
	discarded.StorageTarget = StorageTargetNone
	if discarded.HasAnyWrites() {
		t.Error("no-target result has writes")
	}

	constOnly := full
	constOnly.Components = [4]SwizzleSource{Swizzle0, Swizzle1, Swizzle0, Swizzle1}
	if constOnly.StoresNonConstants() {
		t.Error("all-constant result stores non-constants")
	}
	if constOnly.IsStandardSwizzle() {
		t.Error("constant components recognized as standard swizzle")
	}

	partial := full
	partial.WriteMask[2] = false
	if partial.IsStandardSwizzle() {
		t.Error("partial mask recognized as standard swizzle")
	}
}

// =============================================================================
// Opcode Name Tests
// =============================================================================

func TestOpcodeNamesAreComplete(t *testing.T) {
	for op := VectorOpcode(0); op < VectorOpcodeCount; op++ {
		if op.String() == "" {
			t.Errorf("vector opcode %d has no name", op)
		}
	}
	for op := ScalarOpcode(0); op < ScalarOpcodeCount; op++ {
		if op.String() == "" {
			t.Errorf("scalar opcode %d has no name", op)
		}
	}
	for op := FetchOpcode(0); op < FetchOpcodeCount; op++ {
		if op.String() == "" {
			t.Errorf("fetch opcode %d has no name", op)
		}
	}
	for op := ControlFlowOpcode(0); op < ControlFlowOpcodeCount; op++ {
		if op.String() == "" {
			t.Errorf("control flow opcode %d has no name", op)
		}
	}
}

func TestOpcodeNamesAreUnique(t *testing.T) {
	seen := make(map[string]VectorOpcode)
	for op := VectorOpcode(0); op < VectorOpcodeCount; op++ {
		if prev, dup := seen[op.String()]; dup {
			t.Errorf("vector opcodes %d and %d share name %q", prev, op, op.String())
		}
		seen[op.String()] = op
	}
}

func TestOutOfRangeOpcodeNames(t *testing.T) {
	if got := VectorOpcode(200).String(); got != "v_unknown" {
		t.Errorf("out-of-range vector name = %q", got)
	}
	if got := ScalarOpcode(200).String(); got != "s_unknown" {
		t.Errorf("out-of-range scalar name = %q", got)
	}
}

// =============================================================================
// Disassembly Tests
// =============================================================================

func disassemble(instr Instruction) string {
	var sb strings.Builder
	instr.Disassemble(&sb)
	return sb.String()
}

func TestDisassembleExec(t *testing.T) {
	tests := []struct {
		name  string
		instr *ExecBeginInstruction
		want  string
	}{
		{
			"unconditional",
			&ExecBeginInstruction{Opcode: CfOpExec, Type: ExecUnconditional},
			"exec\n",
		},
		{
			"conditional",
			&ExecBeginInstruction{Opcode: CfOpCondExec, Type: ExecConditional, BoolConstantIndex: 12, Condition: true},
			"cexec b12\n",
		},
		{
			"conditional negative",
			&ExecBeginInstruction{Opcode: CfOpCondExec, Type: ExecConditional, BoolConstantIndex: 3, Condition: false},
			"cexec !b3\n",
		},
		{
			"predicated",
			&ExecBeginInstruction{Opcode: CfOpCondExecPred, Type: ExecPredicated, Condition: false},
			"cexec_pred !p0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := disassemble(tt.instr); got != tt.want {
				t.Errorf("Disassemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisassembleAlu(t *testing.T) {
	std := [4]SwizzleSource{SwizzleX, SwizzleY, SwizzleZ, SwizzleW}
	instr := &AluInstruction{
		Type:         AluVector,
		VectorOpcode: VectorOpMad,
		OperandCount: 3,
		Operands: [3]Operand{
			{StorageSource: StorageSourceRegister, StorageIndex: 0, ComponentCount: 4, Components: std},
			{StorageSource: StorageSourceConstantFloat, StorageIndex: 5, ComponentCount: 4, Components: std, IsNegated: true},
			{StorageSource: StorageSourceRegister, StorageIndex: 1, ComponentCount: 1, Components: [4]SwizzleSource{SwizzleW}, IsAbsoluteValue: true},
		},
		Result: Result{
			StorageTarget: StorageTargetRegister,
			StorageIndex:  2,
			WriteMask:     [4]bool{true, true, true, true},
			Components:    std,
		},
	}

	if got, want := disassemble(instr), "mad r2, r0, -c5, |r1|.w\n"; got != want {
		t.Errorf("Disassemble() = %q, want %q", got, want)
	}
}

func TestDisassemblePredicatedScalar(t *testing.T) {
	instr := &AluInstruction{
		Type:               AluScalar,
		ScalarOpcode:       ScalarOpRetainPrev,
		IsPredicated:       true,
		PredicateCondition: true,
		Result: Result{
			StorageTarget: StorageTargetRegister,
			StorageIndex:  7,
			WriteMask:     [4]bool{true, true, true, true},
			Components:    [4]SwizzleSource{SwizzleX, SwizzleY, SwizzleZ, SwizzleW},
		},
	}

	if got, want := disassemble(instr), "(p0) retain_prev r7\n"; got != want {
		t.Errorf("Disassemble() = %q, want %q", got, want)
	}
}

func TestDisassembleControlFlow(t *testing.T) {
	tests := []struct {
		instr Instruction
		want  string
	}{
		{&ControlFlowNopInstruction{}, "cnop\n"},
		{&LabelInstruction{Index: 4}, "label L4\n"},
		{&LoopStartInstruction{LoopConstantIndex: 2}, "loop i2\n"},
		{&LoopStartInstruction{LoopConstantIndex: 2, IsRepeat: true}, "rep i2\n"},
		{&LoopEndInstruction{LoopConstantIndex: 2}, "endloop i2\n"},
		{&CallInstruction{Target: 6}, "call L6\n"},
		{&ReturnInstruction{}, "ret\n"},
		{&JumpInstruction{Target: 8}, "jmp L8\n"},
		{&AllocInstruction{Type: AllocPixelShaderColors}, "alloc colors\n"},
		{&ExecEndInstruction{}, "exece\n"},
	}

	for _, tt := range tests {
		if got := disassemble(tt.instr); got != tt.want {
			t.Errorf("Disassemble(%T) = %q, want %q", tt.instr, got, tt.want)
		}
	}
}

func TestDisassembleFetch(t *testing.T) {
	vfetch := &VertexFetchInstruction{
		Opcode: FetchOpVertexFetch,
		Operands: [2]Operand{
			{StorageSource: StorageSourceRegister, StorageIndex: 0, ComponentCount: 1, Components: [4]SwizzleSource{SwizzleX}},
			{StorageSource: StorageSourceVertexFetchConstant, StorageIndex: 95},
		},
		OperandCount: 2,
		Attributes:   FetchAttributes{DataFormat: Format32_32_32_FLOAT, Offset: 12},
		Result: Result{
			StorageTarget: StorageTargetRegister,
			StorageIndex:  1,
			WriteMask:     [4]bool{true, true, true, true},
			Components:    [4]SwizzleSource{SwizzleX, SwizzleY, SwizzleZ, SwizzleW},
		},
	}
	want := "vfetch r1, r0.x, vf95 format=32_32_32_FLOAT offset=12\n"
	if got := disassemble(vfetch); got != want {
		t.Errorf("Disassemble() = %q, want %q", got, want)
	}

	tfetch := &TextureFetchInstruction{
		Opcode:    FetchOpTextureFetch,
		Dimension: Texture2D,
		Operands: [2]Operand{
			{StorageSource: StorageSourceRegister, StorageIndex: 0, ComponentCount: 2, Components: [4]SwizzleSource{SwizzleX, SwizzleY}},
			{StorageSource: StorageSourceTextureFetchConstant, StorageIndex: 3},
		},
		OperandCount: 2,
		Result: Result{
			StorageTarget: StorageTargetRegister,
			StorageIndex:  0,
			WriteMask:     [4]bool{true, true, true, true},
			Components:    [4]SwizzleSource{SwizzleX, SwizzleY, SwizzleZ, SwizzleW},
		},
	}
	want = "tfetch2D r0, r0.xy, tf3\n"
	if got := disassemble(tfetch); got != want {
		t.Errorf("Disassemble() = %q, want %q", got, want)
	}
}

// =============================================================================
// Stage Tests
// =============================================================================

func TestShaderStageString(t *testing.T) {
	if StageVertex.String() != "vertex" || StagePixel.String() != "pixel" {
		t.Errorf("stage names wrong: %s, %s", StageVertex, StagePixel)
	}
}
