// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package xenos

import (
	"strings"
	"testing"

	"github.com/gogpu/xenos/glsl"
	"github.com/gogpu/xenos/ucode"
)

func stdComponents() [4]ucode.SwizzleSource {
	return [4]ucode.SwizzleSource{
		ucode.SwizzleX, ucode.SwizzleY, ucode.SwizzleZ, ucode.SwizzleW,
	}
}

func regOperand(index uint32) ucode.Operand {
	return ucode.Operand{
		StorageSource:  ucode.StorageSourceRegister,
		StorageIndex:   index,
		ComponentCount: 4,
		Components:     stdComponents(),
	}
}

func addStream() []ucode.Instruction {
	return []ucode.Instruction{
		&ucode.ExecBeginInstruction{Type: ucode.ExecUnconditional},
		&ucode.AluInstruction{
			Type:         ucode.AluVector,
			VectorOpcode: ucode.VectorOpAdd,
			OperandCount: 2,
			Operands:     [3]ucode.Operand{regOperand(0), regOperand(1)},
			Result: ucode.Result{
				StorageTarget: ucode.StorageTargetRegister,
				StorageIndex:  2,
				WriteMask:     [4]bool{true, true, true, true},
				Components:    stdComponents(),
			},
		},
		&ucode.ExecEndInstruction{},
	}
}

func TestTranslate(t *testing.T) {
	source, info, err := Translate(ucode.StageVertex, addStream(), nil)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if len(info.Errors) != 0 {
		t.Errorf("unexpected translation errors: %v", info.Errors)
	}

	text := string(source)
	for _, want := range []string{
		"#version 450",
		"pv = src0 + src1;",
		"r[2] = pv;",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Count(text, "{") != strings.Count(text, "}") {
		t.Error("unbalanced braces")
	}
}

func TestTranslateRecordsErrors(t *testing.T) {
	instrs := []ucode.Instruction{
		&ucode.JumpInstruction{Target: 3},
	}
	source, info, err := Translate(ucode.StagePixel, instrs, nil)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if len(info.Errors) != 1 {
		t.Fatalf("Errors = %v, want one entry", info.Errors)
	}
	if !strings.Contains(string(source), "// UNIMPLEMENTED TRANSLATION") {
		t.Error("output missing unimplemented marker")
	}
}

func TestTranslateWithOptions(t *testing.T) {
	opts := glsl.Options{Dialect: glsl.DialectGL45}
	source, _, err := TranslateWithOptions(ucode.StagePixel, addStream(), nil, opts)
	if err != nil {
		t.Fatalf("TranslateWithOptions() error: %v", err)
	}
	if !strings.Contains(string(source), "void processFragment(const in StateData state) {") {
		t.Error("pixel stage entry point missing")
	}
}

func TestTranslateVertexBindings(t *testing.T) {
	bindings := []ucode.VertexBinding{
		{
			FetchConstant: 95,
			Attributes: []ucode.VertexAttribute{
				{AttribIndex: 0, Offset: 0, Format: ucode.Format32_32_32_FLOAT},
			},
		},
	}
	source, _, err := Translate(ucode.StageVertex, nil, bindings)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if !strings.Contains(string(source), "layout(location = 0) in vec3 vf95_0;") {
		t.Error("attribute declaration missing")
	}
}
