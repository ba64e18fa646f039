// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/xenos/ucode"
)

// emitLoadOperand assigns operand i's value to the matching srcN scratch.
//
// The emitted expression applies, outermost first: negation, the
// normalized four-lane swizzle, absolute value, and the storage root with
// its index expression.
func (t *Translator) emitLoadOperand(i int, op *ucode.Operand) {
	t.emitDepth("src%d = ", i)
	if op.IsNegated {
		t.emit("-")
	}
	if op.IsAbsoluteValue {
		t.emit("abs(")
	}
	storageIndexOffset := 0
	switch op.StorageSource {
	case ucode.StorageSourceRegister:
		t.emit("r")
	case ucode.StorageSourceConstantFloat:
		// The guest addresses two 256-entry banks; the state block
		// concatenates them, so the pixel stage indexes the upper bank.
		if t.isPixelShader() {
			storageIndexOffset = 256
		}
		t.emit("state.float_consts")
	case ucode.StorageSourceConstantInt:
		t.emit("state.loop_consts")
	case ucode.StorageSourceConstantBool:
		t.emit("state.bool_consts")
	default:
		panic(fmt.Sprintf("glsl: unhandled storage source %d", op.StorageSource))
	}
	switch op.StorageAddressingMode {
	case ucode.StorageAddressingModeStatic:
		if storageIndexOffset != 0 {
			t.emit("[%d+%d]", storageIndexOffset, op.StorageIndex)
		} else {
			t.emit("[%d]", op.StorageIndex)
		}
	case ucode.StorageAddressingModeAddressAbsolute:
		if storageIndexOffset != 0 {
			t.emit("[%d+%d+a0]", storageIndexOffset, op.StorageIndex)
		} else {
			t.emit("[%d+a0]", op.StorageIndex)
		}
	case ucode.StorageAddressingModeAddressRelative:
		if storageIndexOffset != 0 {
			t.emit("[%d+%d+aL]", storageIndexOffset, op.StorageIndex)
		} else {
			t.emit("[%d+aL]", op.StorageIndex)
		}
	default:
		panic(fmt.Sprintf("glsl: unhandled addressing mode %d", op.StorageAddressingMode))
	}
	if op.IsAbsoluteValue {
		t.emit(")")
	}
	if !op.IsStandardSwizzle() {
		t.emit(".")
		switch {
		case op.ComponentCount == 1:
			a := op.Components[0].Char()
			t.emit("%c%c%c%c", a, a, a, a)
		case op.ComponentCount == 2:
			a := op.Components[0].Char()
			b := op.Components[1].Char()
			t.emit("%c%c%c%c", a, b, b, b)
		default:
			for j := 0; j < op.ComponentCount; j++ {
				t.emit("%c", op.Components[j].Char())
			}
			// Pad to four lanes by repeating the last component.
			for j := op.ComponentCount; j < 4; j++ {
				t.emit("%c", op.Components[op.ComponentCount-1].Char())
			}
		}
	}
	t.emit(";\n")
}

// emitStoreVectorResult writes pv to the instruction's destination.
func (t *Translator) emitStoreVectorResult(result *ucode.Result) {
	t.emitStoreResult(result, "pv")
}

// emitStoreScalarResult broadcasts ps to the instruction's destination.
func (t *Translator) emitStoreScalarResult(result *ucode.Result) {
	t.emitStoreResult(result, "vec4(ps)")
}

// emitStoreResult assigns the given temp to the destination declared by
// result, honoring the write mask, output swizzle, and clamp flag. A
// result with no writes emits nothing.
func (t *Translator) emitStoreResult(result *ucode.Result, temp string) {
	if !result.HasAnyWrites() {
		return
	}
	usesStorageIndex := false
	switch result.StorageTarget {
	case ucode.StorageTargetRegister:
		t.emitDepth("r")
		usesStorageIndex = true
	case ucode.StorageTargetInterpolant:
		t.emitDepth("vtx.o")
		usesStorageIndex = true
	case ucode.StorageTargetPosition:
		t.emitDepth("gl_Position")
	case ucode.StorageTargetPointSize:
		t.emitDepth("gl_PointSize")
	case ucode.StorageTargetColorTarget:
		t.emitDepth("oC")
		usesStorageIndex = true
	case ucode.StorageTargetDepth:
		t.emitDepth("gl_FragDepth")
	default:
		panic(fmt.Sprintf("glsl: unhandled storage target %d", result.StorageTarget))
	}
	if usesStorageIndex {
		switch result.StorageAddressingMode {
		case ucode.StorageAddressingModeStatic:
			t.emit("[%d]", result.StorageIndex)
		case ucode.StorageAddressingModeAddressAbsolute:
			t.emit("[%d+a0]", result.StorageIndex)
		case ucode.StorageAddressingModeAddressRelative:
			t.emit("[%d+aL]", result.StorageIndex)
		default:
			panic(fmt.Sprintf("glsl: unhandled addressing mode %d", result.StorageAddressingMode))
		}
	}
	hasConstWrites := false
	componentWriteCount := 0
	if !result.IsStandardSwizzle() {
		t.emit(".")
		for j := 0; j < 4; j++ {
			if result.WriteMask[j] {
				if result.Components[j] == ucode.Swizzle0 ||
					result.Components[j] == ucode.Swizzle1 {
					hasConstWrites = true
				}
				componentWriteCount++
				t.emit("%c", ucode.SwizzleFromComponentIndex(j).Char())
			}
		}
	}
	t.emit(" = ")
	if result.IsClamped {
		t.emit("clamp(")
	}
	if hasConstWrites {
		t.emit("vec%d(", componentWriteCount)
		hasWritten := false
		for j := 0; j < 4; j++ {
			if !result.WriteMask[j] {
				continue
			}
			if hasWritten {
				t.emit(", ")
			}
			hasWritten = true
			switch result.Components[j] {
			case ucode.Swizzle0:
				t.emit("0.0")
			case ucode.Swizzle1:
				t.emit("1.0")
			default:
				t.emit("%s.%c", temp, result.Components[j].Char())
			}
		}
		t.emit(")")
	} else {
		t.emit(temp)
		if !result.IsStandardSwizzle() {
			t.emit(".")
			for j := 0; j < 4; j++ {
				if result.WriteMask[j] {
					t.emit("%c", result.Components[j].Char())
				}
			}
		}
	}
	if result.IsClamped {
		t.emit(", 0.0, 1.0)")
	}
	t.emit(";\n")
}
