// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/xenos/ucode"
)

// ALU lowering. Each opcode produces one or more statements over the
// scratch set: vector results land in pv, scalar results in ps, predicate
// updates in p0, and address updates in a0. The result emitter then moves
// pv/ps to the declared destination.

// ProcessAluInstruction lowers one ALU instruction.
func (t *Translator) ProcessAluInstruction(instr *ucode.AluInstruction) {
	t.emitDisassembly(instr)

	switch instr.Type {
	case ucode.AluNop:
		// Nothing to do.
	case ucode.AluVector:
		t.processVectorAluInstruction(instr)
	case ucode.AluScalar:
		t.processScalarAluInstruction(instr)
	default:
		panic(fmt.Sprintf("glsl: unknown ALU type %d", instr.Type))
	}
}

//nolint:gocyclo // The vector opcode table is a single exhaustive dispatch.
func (t *Translator) processVectorAluInstruction(instr *ucode.AluInstruction) {
	if instr.IsPredicated {
		t.emitPredicationBegin(instr.PredicateCondition)
	}

	for i := 0; i < instr.OperandCount; i++ {
		t.emitLoadOperand(i, &instr.Operands[i])
	}

	switch instr.VectorOpcode {
	// add dest, src0, src1
	case ucode.VectorOpAdd:
		t.emitDepth("pv = src0 + src1;\n")

	// mul dest, src0, src1
	case ucode.VectorOpMul:
		t.emitDepth("pv = src0 * src1;\n")

	// max dest, src0, src1
	case ucode.VectorOpMax:
		t.emitDepth("pv = max(src0, src1);\n")

	// min dest, src0, src1
	case ucode.VectorOpMin:
		t.emitDepth("pv = min(src0, src1);\n")

	// seq dest, src0, src1
	case ucode.VectorOpSeq:
		t.emitDepth("pv.x = src0.x == src1.x ? 1.0 : 0.0;\n")
		t.emitDepth("pv.y = src0.y == src1.y ? 1.0 : 0.0;\n")
		t.emitDepth("pv.z = src0.z == src1.z ? 1.0 : 0.0;\n")
		t.emitDepth("pv.w = src0.w == src1.w ? 1.0 : 0.0;\n")

	// sgt dest, src0, src1
	case ucode.VectorOpSgt:
		t.emitDepth("pv.x = src0.x > src1.x ? 1.0 : 0.0;\n")
		t.emitDepth("pv.y = src0.y > src1.y ? 1.0 : 0.0;\n")
		t.emitDepth("pv.z = src0.z > src1.z ? 1.0 : 0.0;\n")
		t.emitDepth("pv.w = src0.w > src1.w ? 1.0 : 0.0;\n")

	// sge dest, src0, src1
	case ucode.VectorOpSge:
		t.emitDepth("pv.x = src0.x >= src1.x ? 1.0 : 0.0;\n")
		t.emitDepth("pv.y = src0.y >= src1.y ? 1.0 : 0.0;\n")
		t.emitDepth("pv.z = src0.z >= src1.z ? 1.0 : 0.0;\n")
		t.emitDepth("pv.w = src0.w >= src1.w ? 1.0 : 0.0;\n")

	// sne dest, src0, src1
	case ucode.VectorOpSne:
		t.emitDepth("pv.x = src0.x != src1.x ? 1.0 : 0.0;\n")
		t.emitDepth("pv.y = src0.y != src1.y ? 1.0 : 0.0;\n")
		t.emitDepth("pv.z = src0.z != src1.z ? 1.0 : 0.0;\n")
		t.emitDepth("pv.w = src0.w != src1.w ? 1.0 : 0.0;\n")

	// frc dest, src0
	case ucode.VectorOpFrc:
		t.emitDepth("pv = fract(src0);\n")

	// trunc dest, src0
	case ucode.VectorOpTrunc:
		t.emitDepth("pv = trunc(src0);\n")

	// floor dest, src0
	case ucode.VectorOpFloor:
		t.emitDepth("pv = floor(src0);\n")

	// mad dest, src0, src1, src2
	case ucode.VectorOpMad:
		t.emitDepth("pv = (src0 * src1) + src2;\n")

	// cndeq dest, src0, src1, src2
	case ucode.VectorOpCndEq:
		t.emitDepth("pv.x = src0.x == 0.0 ? src1.x : src2.x;\n")
		t.emitDepth("pv.y = src0.y == 0.0 ? src1.y : src2.y;\n")
		t.emitDepth("pv.z = src0.z == 0.0 ? src1.z : src2.z;\n")
		t.emitDepth("pv.w = src0.w == 0.0 ? src1.w : src2.w;\n")

	// cndge dest, src0, src1, src2
	case ucode.VectorOpCndGe:
		t.emitDepth("pv.x = src0.x >= 0.0 ? src1.x : src2.x;\n")
		t.emitDepth("pv.y = src0.y >= 0.0 ? src1.y : src2.y;\n")
		t.emitDepth("pv.z = src0.z >= 0.0 ? src1.z : src2.z;\n")
		t.emitDepth("pv.w = src0.w >= 0.0 ? src1.w : src2.w;\n")

	// cndgt dest, src0, src1, src2
	case ucode.VectorOpCndGt:
		t.emitDepth("pv.x = src0.x > 0.0 ? src1.x : src2.x;\n")
		t.emitDepth("pv.y = src0.y > 0.0 ? src1.y : src2.y;\n")
		t.emitDepth("pv.z = src0.z > 0.0 ? src1.z : src2.z;\n")
		t.emitDepth("pv.w = src0.w > 0.0 ? src1.w : src2.w;\n")

	// dp4 dest, src0, src1
	case ucode.VectorOpDp4:
		t.emitDepth("pv = dot(src0, src1).xxxx;\n")

	// dp3 dest, src0, src1
	case ucode.VectorOpDp3:
		t.emitDepth("pv = dot(vec4(src0).xyz, vec4(src1).xyz).xxxx;\n")

	// dp2add dest, src0, src1, src2
	case ucode.VectorOpDp2Add:
		t.emitDepth("pv = vec4(src0.x * src1.x + src0.y * src1.y + src2.x).xxxx;\n")

	// cube dest, src0, src1
	case ucode.VectorOpCube:
		t.emitDepth("pv = cube(src0, src1);\n")

	// max4 dest, src0
	case ucode.VectorOpMax4:
		t.emitDepth("pv = max(src0.x, max(src0.y, max(src0.z, src0.w))).xxxx;\n")

	// setp_eq_push dest, src0, src1
	case ucode.VectorOpSetpEqPush:
		t.emitDepth("p0 = src0.w == 0.0 && src1.w == 0.0 ? true : false;\n")
		t.emitDepth("pv = vec4(src0.x == 0.0 && src1.x == 0.0 ? 0.0 : src0.x + 1.0);\n")

	// setp_ne_push dest, src0, src1
	case ucode.VectorOpSetpNePush:
		t.emitDepth("p0 = src0.w == 0.0 && src1.w != 0.0 ? true : false;\n")
		t.emitDepth("pv = vec4(src0.x == 0.0 && src1.x != 0.0 ? 0.0 : src0.x + 1.0);\n")

	// setp_gt_push dest, src0, src1
	case ucode.VectorOpSetpGtPush:
		t.emitDepth("p0 = src0.w == 0.0 && src1.w > 0.0 ? true : false;\n")
		t.emitDepth("pv = vec4(src0.x == 0.0 && src1.x > 0.0 ? 0.0 : src0.x + 1.0);\n")

	// setp_ge_push dest, src0, src1
	case ucode.VectorOpSetpGePush:
		t.emitDepth("p0 = src0.w == 0.0 && src1.w >= 0.0 ? true : false;\n")
		t.emitDepth("pv = vec4(src0.x == 0.0 && src1.x >= 0.0 ? 0.0 : src0.x + 1.0);\n")

	// kill_eq dest, src0, src1
	case ucode.VectorOpKillEq:
		t.emitDepth("if (src0.x == src1.x || src0.y == src1.y || src0.z == src1.z || src0.w == src1.w) {\n")
		t.emitDepth("  pv = vec4(1.0);\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  pv = vec4(0.0);\n")
		t.emitDepth("}\n")

	// kill_gt dest, src0, src1
	case ucode.VectorOpKillGt:
		t.emitDepth("if (src0.x > src1.x || src0.y > src1.y || src0.z > src1.z || src0.w > src1.w) {\n")
		t.emitDepth("  pv = vec4(1.0);\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  pv = vec4(0.0);\n")
		t.emitDepth("}\n")

	// kill_ge dest, src0, src1
	case ucode.VectorOpKillGe:
		t.emitDepth("if (src0.x >= src1.x || src0.y >= src1.y || src0.z >= src1.z || src0.w >= src1.w) {\n")
		t.emitDepth("  pv = vec4(1.0);\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  pv = vec4(0.0);\n")
		t.emitDepth("}\n")

	// kill_ne dest, src0, src1
	case ucode.VectorOpKillNe:
		t.emitDepth("if (src0.x != src1.x || src0.y != src1.y || src0.z != src1.z || src0.w != src1.w) {\n")
		t.emitDepth("  pv = vec4(1.0);\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  pv = vec4(0.0);\n")
		t.emitDepth("}\n")

	// dst dest, src0, src1
	case ucode.VectorOpDst:
		t.emitDepth("pv.x = 1.0;\n")
		t.emitDepth("pv.y = src0.y * src1.y;\n")
		t.emitDepth("pv.z = src0.z;\n")
		t.emitDepth("pv.w = src1.w;\n")

	// maxa dest, src0, src1
	case ucode.VectorOpMaxA:
		t.emitDepth("a0 = clamp(int(floor(src0.w + 0.5)), -256, 255);\n")
		t.emitDepth("pv = max(src0, src1);\n")

	default:
		panic(fmt.Sprintf("glsl: unhandled vector opcode %d", instr.VectorOpcode))
	}

	t.emitStoreVectorResult(&instr.Result)

	if instr.IsPredicated {
		t.emitPredicationEnd()
	}
}

//nolint:gocyclo // The scalar opcode table is a single exhaustive dispatch.
func (t *Translator) processScalarAluInstruction(instr *ucode.AluInstruction) {
	if instr.IsPredicated {
		t.emitPredicationBegin(instr.PredicateCondition)
	}

	for i := 0; i < instr.OperandCount; i++ {
		t.emitLoadOperand(i, &instr.Operands[i])
	}

	switch instr.ScalarOpcode {
	// adds dest, src0.ab
	case ucode.ScalarOpAdds:
		t.emitDepth("ps = src0.x + src0.y;\n")

	// adds_prev dest, src0.a
	case ucode.ScalarOpAddsPrev:
		t.emitDepth("ps = src0.x + ps;\n")

	// muls dest, src0.ab
	case ucode.ScalarOpMuls:
		t.emitDepth("ps = src0.x * src0.y;\n")

	// muls_prev dest, src0.a
	case ucode.ScalarOpMulsPrev:
		t.emitDepth("ps = src0.x * ps;\n")

	// muls_prev2 dest, src0.ab
	case ucode.ScalarOpMulsPrev2:
		t.emitDepth("ps = ps == -FLT_MAX || isinf(ps) || isnan(ps) || isnan(src0.y) || src0.y <= 0.0 ? -FLT_MAX : src0.x * ps;\n")

	// maxs dest, src0.ab
	case ucode.ScalarOpMaxs:
		t.emitDepth("ps = max(src0.x, src0.y);\n")

	// mins dest, src0.ab
	case ucode.ScalarOpMins:
		t.emitDepth("ps = min(src0.x, src0.y);\n")

	// seqs dest, src0.a
	case ucode.ScalarOpSeqs:
		t.emitDepth("ps = src0.x == 0.0 ? 1.0 : 0.0;\n")

	// sgts dest, src0.a
	case ucode.ScalarOpSgts:
		t.emitDepth("ps = src0.x > 0.0 ? 1.0 : 0.0;\n")

	// sges dest, src0.a
	case ucode.ScalarOpSges:
		t.emitDepth("ps = src0.x >= 0.0 ? 1.0 : 0.0;\n")

	// snes dest, src0.a
	case ucode.ScalarOpSnes:
		t.emitDepth("ps = src0.x != 0.0 ? 1.0 : 0.0;\n")

	// frcs dest, src0.a
	case ucode.ScalarOpFrcs:
		t.emitDepth("ps = fract(src0.x);\n")

	// truncs dest, src0.a
	case ucode.ScalarOpTruncs:
		t.emitDepth("ps = trunc(src0.x);\n")

	// floors dest, src0.a
	case ucode.ScalarOpFloors:
		t.emitDepth("ps = floor(src0.x);\n")

	// exp dest, src0.a
	case ucode.ScalarOpExp:
		t.emitDepth("ps = exp2(src0.x);\n")

	// logc dest, src0.a
	case ucode.ScalarOpLogc:
		t.emitDepth("ps = log2(src0.x);\n")
		t.emitDepth("ps = isinf(ps) ? -FLT_MAX : ps;\n")

	// log dest, src0.a
	case ucode.ScalarOpLog:
		t.emitDepth("ps = log2(src0.x);\n")

	// rcpc dest, src0.a
	case ucode.ScalarOpRcpc:
		t.emitDepth("ps = 1.0 / src0.x;\n")
		t.emitDepth("if (isinf(ps)) ps = FLT_MAX;\n")

	// rcpf dest, src0.a
	case ucode.ScalarOpRcpf:
		t.emitDepth("ps = 1.0 / src0.x;\n")
		t.emitDepth("if (isinf(ps)) ps = 0.0;\n")

	// rcp dest, src0.a
	case ucode.ScalarOpRcp:
		t.emitDepth("ps = 1.0 / src0.x;\n")

	// rsqc dest, src0.a
	case ucode.ScalarOpRsqc:
		t.emitDepth("ps = inversesqrt(src0.x);\n")
		t.emitDepth("if (isinf(ps)) ps = FLT_MAX;\n")

	// rsqf dest, src0.a
	case ucode.ScalarOpRsqf:
		t.emitDepth("ps = inversesqrt(src0.x);\n")
		t.emitDepth("if (isinf(ps)) ps = 0.0;\n")

	// rsq dest, src0.a
	case ucode.ScalarOpRsq:
		t.emitDepth("ps = inversesqrt(src0.x);\n")

	// maxas dest, src0.ab
	// movas dest, src0.aa
	case ucode.ScalarOpMaxAs:
		t.emitDepth("a0 = clamp(int(floor(src0.x + 0.5)), -256, 255);\n")
		t.emitDepth("ps = max(src0.x, src0.y);\n")

	// maxasf dest, src0.ab
	// movasf dest, src0.aa
	case ucode.ScalarOpMaxAsf:
		t.emitDepth("a0 = clamp(int(floor(src0.x)), -256, 255);\n")
		t.emitDepth("ps = max(src0.x, src0.y);\n")

	// subs dest, src0.ab
	case ucode.ScalarOpSubs:
		t.emitDepth("ps = src0.x - src0.y;\n")

	// subs_prev dest, src0.a
	case ucode.ScalarOpSubsPrev:
		t.emitDepth("ps = src0.x - ps;\n")

	// setp_eq dest, src0.a
	case ucode.ScalarOpSetpEq:
		t.emitDepth("if (src0.x == 0.0) {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("  p0 = true;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  p0 = false;\n")
		t.emitDepth("}\n")

	// setp_ne dest, src0.a
	case ucode.ScalarOpSetpNe:
		t.emitDepth("if (src0.x != 0.0) {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("  p0 = true;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  p0 = false;\n")
		t.emitDepth("}\n")

	// setp_gt dest, src0.a
	case ucode.ScalarOpSetpGt:
		t.emitDepth("if (src0.x > 0.0) {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("  p0 = true;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  p0 = false;\n")
		t.emitDepth("}\n")

	// setp_ge dest, src0.a
	case ucode.ScalarOpSetpGe:
		t.emitDepth("if (src0.x >= 0.0) {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("  p0 = true;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  p0 = false;\n")
		t.emitDepth("}\n")

	// setp_inv dest, src0.a
	case ucode.ScalarOpSetpInv:
		t.emitDepth("if (src0.x == 1.0) {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("  p0 = true;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = src0.x == 0.0 ? 1.0 : src0.x;\n")
		t.emitDepth("  p0 = false;\n")
		t.emitDepth("}\n")

	// setp_pop dest, src0.a
	case ucode.ScalarOpSetpPop:
		t.emitDepth("if (src0.x - 1.0 <= 0.0) {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("  p0 = true;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = src0.x - 1.0;\n")
		t.emitDepth("  p0 = false;\n")
		t.emitDepth("}\n")

	// setp_clr dest
	case ucode.ScalarOpSetpClr:
		t.emitDepth("ps = FLT_MAX;\n")
		t.emitDepth("p0 = false;\n")

	// setp_rstr dest, src0.a
	case ucode.ScalarOpSetpRstr:
		t.emitDepth("ps = src0.x;\n")
		t.emitDepth("p0 = src0.x == 0.0 ? true : false;\n")

	// kills_eq dest, src0.a
	case ucode.ScalarOpKillsEq:
		t.emitDepth("if (src0.x == 0.0) {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("}\n")

	// kills_gt dest, src0.a
	case ucode.ScalarOpKillsGt:
		t.emitDepth("if (src0.x > 0.0) {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("}\n")

	// kills_ge dest, src0.a
	case ucode.ScalarOpKillsGe:
		t.emitDepth("if (src0.x >= 0.0) {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("}\n")

	// kills_ne dest, src0.a
	case ucode.ScalarOpKillsNe:
		t.emitDepth("if (src0.x != 0.0) {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("}\n")

	// kills_one dest, src0.a
	case ucode.ScalarOpKillsOne:
		t.emitDepth("if (src0.x == 1.0) {\n")
		t.emitDepth("  ps = 1.0;\n")
		t.emitDepth("  discard;\n")
		t.emitDepth("} else {\n")
		t.emitDepth("  ps = 0.0;\n")
		t.emitDepth("}\n")

	// sqrt dest, src0.a
	case ucode.ScalarOpSqrt:
		t.emitDepth("ps = sqrt(src0.x);\n")

	// mulsc dest, src0.a, src1.a
	case ucode.ScalarOpMulsc0, ucode.ScalarOpMulsc1:
		t.emitDepth("ps = src0.x * src1.x;\n")

	// addsc dest, src0.a, src1.a
	case ucode.ScalarOpAddsc0, ucode.ScalarOpAddsc1:
		t.emitDepth("ps = src0.x + src1.x;\n")

	// subsc dest, src0.a, src1.a
	case ucode.ScalarOpSubsc0, ucode.ScalarOpSubsc1:
		t.emitDepth("ps = src0.x - src1.x;\n")

	// sin dest, src0.a
	case ucode.ScalarOpSin:
		t.emitDepth("ps = sin(src0.x);\n")

	// cos dest, src0.a
	case ucode.ScalarOpCos:
		t.emitDepth("ps = cos(src0.x);\n")

	// retain_prev dest
	case ucode.ScalarOpRetainPrev:
		// ps is reused.

	default:
		panic(fmt.Sprintf("glsl: unhandled scalar opcode %d", instr.ScalarOpcode))
	}

	t.emitStoreScalarResult(&instr.Result)

	if instr.IsPredicated {
		t.emitPredicationEnd()
	}
}
