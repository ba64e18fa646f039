// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ucode

// VectorOpcode enumerates the vector ALU operations of the guest ISA.
type VectorOpcode uint8

const (
	VectorOpAdd VectorOpcode = iota
	VectorOpMul
	VectorOpMax
	VectorOpMin
	VectorOpSeq
	VectorOpSgt
	VectorOpSge
	VectorOpSne
	VectorOpFrc
	VectorOpTrunc
	VectorOpFloor
	VectorOpMad
	VectorOpCndEq
	VectorOpCndGe
	VectorOpCndGt
	VectorOpDp4
	VectorOpDp3
	VectorOpDp2Add
	VectorOpCube
	VectorOpMax4
	VectorOpSetpEqPush
	VectorOpSetpNePush
	VectorOpSetpGtPush
	VectorOpSetpGePush
	VectorOpKillEq
	VectorOpKillGt
	VectorOpKillGe
	VectorOpKillNe
	VectorOpDst
	VectorOpMaxA

	// VectorOpcodeCount is the number of vector opcodes.
	VectorOpcodeCount
)

var vectorOpcodeNames = [VectorOpcodeCount]string{
	VectorOpAdd:        "add",
	VectorOpMul:        "mul",
	VectorOpMax:        "max",
	VectorOpMin:        "min",
	VectorOpSeq:        "seq",
	VectorOpSgt:        "sgt",
	VectorOpSge:        "sge",
	VectorOpSne:        "sne",
	VectorOpFrc:        "frc",
	VectorOpTrunc:      "trunc",
	VectorOpFloor:      "floor",
	VectorOpMad:        "mad",
	VectorOpCndEq:      "cndeq",
	VectorOpCndGe:      "cndge",
	VectorOpCndGt:      "cndgt",
	VectorOpDp4:        "dp4",
	VectorOpDp3:        "dp3",
	VectorOpDp2Add:     "dp2add",
	VectorOpCube:       "cube",
	VectorOpMax4:       "max4",
	VectorOpSetpEqPush: "setp_eq_push",
	VectorOpSetpNePush: "setp_ne_push",
	VectorOpSetpGtPush: "setp_gt_push",
	VectorOpSetpGePush: "setp_ge_push",
	VectorOpKillEq:     "kill_eq",
	VectorOpKillGt:     "kill_gt",
	VectorOpKillGe:     "kill_ge",
	VectorOpKillNe:     "kill_ne",
	VectorOpDst:        "dst",
	VectorOpMaxA:       "maxa",
}

// String returns the mnemonic.
func (op VectorOpcode) String() string {
	if op >= VectorOpcodeCount {
		return "v_unknown"
	}
	return vectorOpcodeNames[op]
}

// ScalarOpcode enumerates the scalar ALU operations of the guest ISA.
type ScalarOpcode uint8

const (
	ScalarOpAdds ScalarOpcode = iota
	ScalarOpAddsPrev
	ScalarOpMuls
	ScalarOpMulsPrev
	ScalarOpMulsPrev2
	ScalarOpMaxs
	ScalarOpMins
	ScalarOpSeqs
	ScalarOpSgts
	ScalarOpSges
	ScalarOpSnes
	ScalarOpFrcs
	ScalarOpTruncs
	ScalarOpFloors
	ScalarOpExp
	ScalarOpLogc
	ScalarOpLog
	ScalarOpRcpc
	ScalarOpRcpf
	ScalarOpRcp
	ScalarOpRsqc
	ScalarOpRsqf
	ScalarOpRsq
	ScalarOpMaxAs
	ScalarOpMaxAsf
	ScalarOpSubs
	ScalarOpSubsPrev
	ScalarOpSetpEq
	ScalarOpSetpNe
	ScalarOpSetpGt
	ScalarOpSetpGe
	ScalarOpSetpInv
	ScalarOpSetpPop
	ScalarOpSetpClr
	ScalarOpSetpRstr
	ScalarOpKillsEq
	ScalarOpKillsGt
	ScalarOpKillsGe
	ScalarOpKillsNe
	ScalarOpKillsOne
	ScalarOpSqrt
	ScalarOpMulsc0
	ScalarOpMulsc1
	ScalarOpAddsc0
	ScalarOpAddsc1
	ScalarOpSubsc0
	ScalarOpSubsc1
	ScalarOpSin
	ScalarOpCos
	ScalarOpRetainPrev

	// ScalarOpcodeCount is the number of scalar opcodes.
	ScalarOpcodeCount
)

var scalarOpcodeNames = [ScalarOpcodeCount]string{
	ScalarOpAdds:       "adds",
	ScalarOpAddsPrev:   "adds_prev",
	ScalarOpMuls:       "muls",
	ScalarOpMulsPrev:   "muls_prev",
	ScalarOpMulsPrev2:  "muls_prev2",
	ScalarOpMaxs:       "maxs",
	ScalarOpMins:       "mins",
	ScalarOpSeqs:       "seqs",
	ScalarOpSgts:       "sgts",
	ScalarOpSges:       "sges",
	ScalarOpSnes:       "snes",
	ScalarOpFrcs:       "frcs",
	ScalarOpTruncs:     "truncs",
	ScalarOpFloors:     "floors",
	ScalarOpExp:        "exp",
	ScalarOpLogc:       "logc",
	ScalarOpLog:        "log",
	ScalarOpRcpc:       "rcpc",
	ScalarOpRcpf:       "rcpf",
	ScalarOpRcp:        "rcp",
	ScalarOpRsqc:       "rsqc",
	ScalarOpRsqf:       "rsqf",
	ScalarOpRsq:        "rsq",
	ScalarOpMaxAs:      "maxas",
	ScalarOpMaxAsf:     "maxasf",
	ScalarOpSubs:       "subs",
	ScalarOpSubsPrev:   "subs_prev",
	ScalarOpSetpEq:     "setp_eq",
	ScalarOpSetpNe:     "setp_ne",
	ScalarOpSetpGt:     "setp_gt",
	ScalarOpSetpGe:     "setp_ge",
	ScalarOpSetpInv:    "setp_inv",
	ScalarOpSetpPop:    "setp_pop",
	ScalarOpSetpClr:    "setp_clr",
	ScalarOpSetpRstr:   "setp_rstr",
	ScalarOpKillsEq:    "kills_eq",
	ScalarOpKillsGt:    "kills_gt",
	ScalarOpKillsGe:    "kills_ge",
	ScalarOpKillsNe:    "kills_ne",
	ScalarOpKillsOne:   "kills_one",
	ScalarOpSqrt:       "sqrt",
	ScalarOpMulsc0:     "mulsc0",
	ScalarOpMulsc1:     "mulsc1",
	ScalarOpAddsc0:     "addsc0",
	ScalarOpAddsc1:     "addsc1",
	ScalarOpSubsc0:     "subsc0",
	ScalarOpSubsc1:     "subsc1",
	ScalarOpSin:        "sin",
	ScalarOpCos:        "cos",
	ScalarOpRetainPrev: "retain_prev",
}

// String returns the mnemonic.
func (op ScalarOpcode) String() string {
	if op >= ScalarOpcodeCount {
		return "s_unknown"
	}
	return scalarOpcodeNames[op]
}

// FetchOpcode enumerates vertex and texture fetch operations.
type FetchOpcode uint8

const (
	FetchOpVertexFetch FetchOpcode = iota
	FetchOpTextureFetch
	FetchOpGetTextureBorderColorFrac
	FetchOpGetTextureComputedLod
	FetchOpGetTextureGradients
	FetchOpGetTextureWeights
	FetchOpSetTextureLod
	FetchOpSetTextureGradientsHorz
	FetchOpSetTextureGradientsVert
	FetchOpUnknownTextureOp

	// FetchOpcodeCount is the number of fetch opcodes.
	FetchOpcodeCount
)

var fetchOpcodeNames = [FetchOpcodeCount]string{
	FetchOpVertexFetch:               "vfetch",
	FetchOpTextureFetch:              "tfetch",
	FetchOpGetTextureBorderColorFrac: "getBCF",
	FetchOpGetTextureComputedLod:     "getCompTexLOD",
	FetchOpGetTextureGradients:       "getGradients",
	FetchOpGetTextureWeights:         "getWeights",
	FetchOpSetTextureLod:             "setTexLOD",
	FetchOpSetTextureGradientsHorz:   "setGradientH",
	FetchOpSetTextureGradientsVert:   "setGradientV",
	FetchOpUnknownTextureOp:          "unknown_texture_op",
}

// String returns the mnemonic.
func (op FetchOpcode) String() string {
	if op >= FetchOpcodeCount {
		return "f_unknown"
	}
	return fetchOpcodeNames[op]
}

// ControlFlowOpcode names the control-flow instruction that opened an exec
// block; only used for disassembly.
type ControlFlowOpcode uint8

const (
	CfOpExec ControlFlowOpcode = iota
	CfOpExecEnd
	CfOpCondExec
	CfOpCondExecEnd
	CfOpCondExecPred
	CfOpCondExecPredEnd

	// ControlFlowOpcodeCount is the number of control-flow opcodes.
	ControlFlowOpcodeCount
)

var controlFlowOpcodeNames = [ControlFlowOpcodeCount]string{
	CfOpExec:            "exec",
	CfOpExecEnd:         "exece",
	CfOpCondExec:        "cexec",
	CfOpCondExecEnd:     "cexece",
	CfOpCondExecPred:    "cexec_pred",
	CfOpCondExecPredEnd: "cexec_pred_e",
}

// String returns the mnemonic.
func (op ControlFlowOpcode) String() string {
	if op >= ControlFlowOpcodeCount {
		return "cf_unknown"
	}
	return controlFlowOpcodeNames[op]
}
