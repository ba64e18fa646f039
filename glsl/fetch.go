// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/xenos/ucode"
)

// ProcessVertexFetchInstruction lowers a vertex fetch. The fetched value
// comes from a pre-declared attribute input named after the fetch constant
// and offset; only the format's component count is written into pv.
func (t *Translator) ProcessVertexFetchInstruction(instr *ucode.VertexFetchInstruction) {
	t.emitDisassembly(instr)

	if instr.IsPredicated {
		t.emitPredicationBegin(instr.PredicateCondition)
	}

	if instr.Result.StoresNonConstants() {
		for i := 0; i < instr.OperandCount; i++ {
			if instr.Operands[i].StorageSource != ucode.StorageSourceVertexFetchConstant {
				t.emitLoadOperand(i, &instr.Operands[i])
			}
		}

		switch instr.Opcode {
		case ucode.FetchOpVertexFetch:
			t.emitDepth("pv.")
			count := instr.Attributes.DataFormat.ComponentCount()
			for i := 0; i < count; i++ {
				t.emit("%c", ucode.SwizzleFromComponentIndex(i).Char())
			}
			t.emit(" = vf%d_%d;\n", instr.Operands[1].StorageIndex,
				instr.Attributes.Offset)
		default:
			panic(fmt.Sprintf("glsl: unhandled vertex fetch opcode %d", instr.Opcode))
		}
	}

	t.emitStoreVectorResult(&instr.Result)

	if instr.IsPredicated {
		t.emitPredicationEnd()
	}
}

// ProcessTextureFetchInstruction lowers a texture fetch. Samplers are
// bindless handles in the state block; a zero handle falls back to a
// deterministic passthrough of the coordinates so unbound textures stay
// visible instead of sampling garbage.
func (t *Translator) ProcessTextureFetchInstruction(instr *ucode.TextureFetchInstruction) {
	t.emitDisassembly(instr)

	if instr.IsPredicated {
		t.emitPredicationBegin(instr.PredicateCondition)
	}

	for i := 0; i < instr.OperandCount; i++ {
		if instr.Operands[i].StorageSource != ucode.StorageSourceTextureFetchConstant {
			t.emitLoadOperand(i, &instr.Operands[i])
		}
	}

	switch instr.Opcode {
	case ucode.FetchOpTextureFetch:
		samplerIndex := instr.Operands[1].StorageIndex
		switch instr.Dimension {
		case ucode.Texture1D:
			t.emitDepth("if (state.texture_samplers[%d] != 0) {\n", samplerIndex)
			t.emitDepth("  pv = texture(sampler1D(state.texture_samplers[%d]), src0.x);\n", samplerIndex)
			t.emitDepth("} else {\n")
			t.emitDepth("  pv = vec4(src0.x, 0.0, 0.0, 1.0);\n")
			t.emitDepth("}\n")
		case ucode.Texture2D:
			t.emitDepth("if (state.texture_samplers[%d] != 0) {\n", samplerIndex)
			t.emitDepth("  pv = texture(sampler2D(state.texture_samplers[%d]), src0.xy);\n", samplerIndex)
			t.emitDepth("} else {\n")
			t.emitDepth("  pv = vec4(src0.x, src0.y, 0.0, 1.0);\n")
			t.emitDepth("}\n")
		case ucode.Texture3D:
			t.emitDepth("if (state.texture_samplers[%d] != 0) {\n", samplerIndex)
			t.emitDepth("  pv = texture(sampler3D(state.texture_samplers[%d]), src0.xyz);\n", samplerIndex)
			t.emitDepth("} else {\n")
			t.emitDepth("  pv = vec4(src0.x, src0.y, src0.z, 1.0);\n")
			t.emitDepth("}\n")
		case ucode.TextureCube:
			// TODO(gogpu): undo the CUBEv remap on the coordinates (s,t,faceid).
			t.emitDepth("if (state.texture_samplers[%d] != 0) {\n", samplerIndex)
			t.emitDepth("  pv = texture(samplerCube(state.texture_samplers[%d]), src0.xyz);\n", samplerIndex)
			t.emitDepth("} else {\n")
			t.emitDepth("  pv = vec4(src0.x, src0.y, src0.z, 1.0);\n")
			t.emitDepth("}\n")
		default:
			panic(fmt.Sprintf("glsl: unknown texture dimension %d", instr.Dimension))
		}
	case ucode.FetchOpGetTextureBorderColorFrac:
		t.EmitUnimplementedTranslationError()
		t.emitDepth("pv = vec4(0.0);\n")
	case ucode.FetchOpGetTextureComputedLod:
		t.EmitUnimplementedTranslationError()
		t.emitDepth("pv = vec4(0.0);\n")
	case ucode.FetchOpGetTextureGradients:
		t.EmitUnimplementedTranslationError()
		t.emitDepth("pv = vec4(0.0);\n")
	case ucode.FetchOpGetTextureWeights:
		t.EmitUnimplementedTranslationError()
		t.emitDepth("pv = vec4(0.0);\n")
	case ucode.FetchOpSetTextureLod:
		t.EmitUnimplementedTranslationError()
	case ucode.FetchOpSetTextureGradientsHorz:
		t.EmitUnimplementedTranslationError()
	case ucode.FetchOpSetTextureGradientsVert:
		t.EmitUnimplementedTranslationError()
	case ucode.FetchOpUnknownTextureOp:
		t.EmitUnimplementedTranslationError()
		t.emitDepth("pv = vec4(0.0);\n")
	default:
		panic(fmt.Sprintf("glsl: unhandled texture fetch opcode %d", instr.Opcode))
	}

	t.emitStoreVectorResult(&instr.Result)

	if instr.IsPredicated {
		t.emitPredicationEnd()
	}
}
