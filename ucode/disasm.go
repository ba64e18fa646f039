// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ucode

import (
	"fmt"
	"strings"
)

// Disassembly output. Each instruction renders a single newline-terminated
// line; the translator places these above the lowered statements as
// comments. The rendering is informational only and is never parsed back.

// appendOperand renders an operand with its modifiers and swizzle.
func appendOperand(sb *strings.Builder, op *Operand) {
	if op.IsNegated {
		sb.WriteByte('-')
	}
	if op.IsAbsoluteValue {
		sb.WriteByte('|')
	}
	var root byte
	switch op.StorageSource {
	case StorageSourceRegister:
		root = 'r'
	case StorageSourceConstantFloat:
		root = 'c'
	case StorageSourceConstantInt:
		root = 'i'
	case StorageSourceConstantBool:
		root = 'b'
	case StorageSourceVertexFetchConstant:
		sb.WriteString("vf")
		root = 0
	case StorageSourceTextureFetchConstant:
		sb.WriteString("tf")
		root = 0
	}
	if root != 0 {
		sb.WriteByte(root)
	}
	switch op.StorageAddressingMode {
	case StorageAddressingModeStatic:
		fmt.Fprintf(sb, "%d", op.StorageIndex)
	case StorageAddressingModeAddressAbsolute:
		fmt.Fprintf(sb, "[%d+a0]", op.StorageIndex)
	case StorageAddressingModeAddressRelative:
		fmt.Fprintf(sb, "[%d+aL]", op.StorageIndex)
	}
	if op.IsAbsoluteValue {
		sb.WriteByte('|')
	}
	if op.ComponentCount > 0 && !op.IsStandardSwizzle() {
		sb.WriteByte('.')
		for i := 0; i < op.ComponentCount; i++ {
			sb.WriteByte(op.Components[i].Char())
		}
	}
}

// appendResult renders a destination with its write mask.
func appendResult(sb *strings.Builder, r *Result) {
	switch r.StorageTarget {
	case StorageTargetNone:
		sb.WriteByte('_')
		return
	case StorageTargetRegister:
		sb.WriteByte('r')
	case StorageTargetInterpolant:
		sb.WriteByte('o')
	case StorageTargetPosition:
		sb.WriteString("oPos")
	case StorageTargetPointSize:
		sb.WriteString("oPts")
	case StorageTargetColorTarget:
		sb.WriteString("oC")
	case StorageTargetDepth:
		sb.WriteString("oDepth")
	}
	switch r.StorageTarget {
	case StorageTargetRegister, StorageTargetInterpolant, StorageTargetColorTarget:
		switch r.StorageAddressingMode {
		case StorageAddressingModeStatic:
			fmt.Fprintf(sb, "%d", r.StorageIndex)
		case StorageAddressingModeAddressAbsolute:
			fmt.Fprintf(sb, "[%d+a0]", r.StorageIndex)
		case StorageAddressingModeAddressRelative:
			fmt.Fprintf(sb, "[%d+aL]", r.StorageIndex)
		}
	}
	if !r.IsStandardSwizzle() {
		sb.WriteByte('.')
		for i := 0; i < 4; i++ {
			if r.WriteMask[i] {
				sb.WriteByte(r.Components[i].Char())
			} else {
				sb.WriteByte('_')
			}
		}
	}
	if r.IsClamped {
		sb.WriteString(" [sat]")
	}
}

func appendPredication(sb *strings.Builder, predicated, condition bool) {
	if !predicated {
		return
	}
	if condition {
		sb.WriteString("(p0) ")
	} else {
		sb.WriteString("(!p0) ")
	}
}

// Disassemble renders the exec block header.
func (instr *ExecBeginInstruction) Disassemble(sb *strings.Builder) {
	sb.WriteString(instr.Opcode.String())
	switch instr.Type {
	case ExecConditional:
		if instr.Condition {
			fmt.Fprintf(sb, " b%d", instr.BoolConstantIndex)
		} else {
			fmt.Fprintf(sb, " !b%d", instr.BoolConstantIndex)
		}
	case ExecPredicated:
		if instr.Condition {
			sb.WriteString(" p0")
		} else {
			sb.WriteString(" !p0")
		}
	}
	sb.WriteByte('\n')
}

// Disassemble renders the exec block terminator.
func (instr *ExecEndInstruction) Disassemble(sb *strings.Builder) {
	sb.WriteString("exece\n")
}

// Disassemble renders the ALU instruction with destination and operands.
func (instr *AluInstruction) Disassemble(sb *strings.Builder) {
	appendPredication(sb, instr.IsPredicated, instr.PredicateCondition)
	switch instr.Type {
	case AluNop:
		sb.WriteString("nop\n")
		return
	case AluVector:
		sb.WriteString(instr.VectorOpcode.String())
	case AluScalar:
		sb.WriteString(instr.ScalarOpcode.String())
	}
	sb.WriteByte(' ')
	appendResult(sb, &instr.Result)
	for i := 0; i < instr.OperandCount; i++ {
		sb.WriteString(", ")
		appendOperand(sb, &instr.Operands[i])
	}
	sb.WriteByte('\n')
}

// Disassemble renders the vertex fetch with its format attributes.
func (instr *VertexFetchInstruction) Disassemble(sb *strings.Builder) {
	appendPredication(sb, instr.IsPredicated, instr.PredicateCondition)
	sb.WriteString(instr.Opcode.String())
	sb.WriteByte(' ')
	appendResult(sb, &instr.Result)
	for i := 0; i < instr.OperandCount; i++ {
		sb.WriteString(", ")
		appendOperand(sb, &instr.Operands[i])
	}
	fmt.Fprintf(sb, " format=%s offset=%d\n", instr.Attributes.DataFormat, instr.Attributes.Offset)
}

// Disassemble renders the texture fetch with its dimension.
func (instr *TextureFetchInstruction) Disassemble(sb *strings.Builder) {
	appendPredication(sb, instr.IsPredicated, instr.PredicateCondition)
	sb.WriteString(instr.Opcode.String())
	sb.WriteString(instr.Dimension.String())
	sb.WriteByte(' ')
	appendResult(sb, &instr.Result)
	for i := 0; i < instr.OperandCount; i++ {
		sb.WriteString(", ")
		appendOperand(sb, &instr.Operands[i])
	}
	sb.WriteByte('\n')
}

// Disassemble renders the label marker.
func (instr *LabelInstruction) Disassemble(sb *strings.Builder) {
	fmt.Fprintf(sb, "label L%d\n", instr.Index)
}

// Disassemble renders the control-flow nop.
func (instr *ControlFlowNopInstruction) Disassemble(sb *strings.Builder) {
	sb.WriteString("cnop\n")
}

// Disassemble renders the loop opener.
func (instr *LoopStartInstruction) Disassemble(sb *strings.Builder) {
	if instr.IsRepeat {
		fmt.Fprintf(sb, "rep i%d\n", instr.LoopConstantIndex)
	} else {
		fmt.Fprintf(sb, "loop i%d\n", instr.LoopConstantIndex)
	}
}

// Disassemble renders the loop terminator.
func (instr *LoopEndInstruction) Disassemble(sb *strings.Builder) {
	fmt.Fprintf(sb, "endloop i%d\n", instr.LoopConstantIndex)
}

// Disassemble renders the subroutine call.
func (instr *CallInstruction) Disassemble(sb *strings.Builder) {
	fmt.Fprintf(sb, "call L%d\n", instr.Target)
}

// Disassemble renders the subroutine return.
func (instr *ReturnInstruction) Disassemble(sb *strings.Builder) {
	sb.WriteString("ret\n")
}

// Disassemble renders the jump.
func (instr *JumpInstruction) Disassemble(sb *strings.Builder) {
	fmt.Fprintf(sb, "jmp L%d\n", instr.Target)
}

// Disassemble renders the alloc.
func (instr *AllocInstruction) Disassemble(sb *strings.Builder) {
	fmt.Fprintf(sb, "alloc %s\n", instr.Type)
}
