// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// Shared shader boilerplate. A large block of state is common between the
// vertex and pixel stages: the uniform/storage declarations and a few
// utility functions. The StateData layout is ABI with the renderer that
// fills the draw state buffer.
const sharedPreamble = `
#version 450
#extension all : warn
#extension GL_ARB_bindless_texture : require
#extension GL_ARB_explicit_uniform_location : require
#extension GL_ARB_shader_draw_parameters : require
#extension GL_ARB_shader_storage_buffer_object : require
#extension GL_ARB_shading_language_420pack : require
#extension GL_ARB_fragment_coord_conventions : require
#define FLT_MAX 3.402823466e+38
precision highp float;
precision highp int;
layout(std140, column_major) uniform;
layout(std430, column_major) buffer;

struct StateData {
  vec4 window_scale;
  vec4 vtx_fmt;
  vec4 alpha_test;
  uvec2 texture_samplers[32];
  vec4 float_consts[512];
  int bool_consts[8];
  int loop_consts[32];
};
layout(binding = 0) buffer State {
  StateData states[];
};

struct VertexData {
  vec4 o[16];
};
`

// The cube helper implements the guest CUBEv instruction.
//
// src0 = Rn.zzxy, src1 = Rn.yxzz
// dst.W = FaceId;
// dst.Z = 2.0f * MajorAxis;
// dst.Y = S cube coordinate;
// dst.X = T cube coordinate;
//
// Face selection and (sc, tc, ma) per major axis:
//
//	+rx  face 0   sc=-rz  tc=-ry  ma=rx
//	-rx  face 1   sc=+rz  tc=-ry  ma=rx
//	+ry  face 2   sc=+rx  tc=+rz  ma=ry
//	-ry  face 3   sc=+rx  tc=-rz  ma=ry
//	+rz  face 4   sc=+rx  tc=-ry  ma=rz
//	-rz  face 5   sc=-rx  tc=-ry  ma=rz
const cubePreamble = `
vec4 cube(vec4 src0, vec4 src1) {
  vec3 src = vec3(src1.y, src1.x, src1.z);
  vec3 abs_src = abs(src);
  int face_id;
  float sc;
  float tc;
  float ma;
  if (abs_src.x > abs_src.y && abs_src.x > abs_src.z) {
    if (src.x > 0.0) {
      face_id = 0; sc = -abs_src.z; tc = -abs_src.y; ma = abs_src.x;
    } else {
      face_id = 1; sc =  abs_src.z; tc = -abs_src.y; ma = abs_src.x;
    }
  } else if (abs_src.y > abs_src.x && abs_src.y > abs_src.z) {
    if (src.y > 0.0) {
      face_id = 2; sc =  abs_src.x; tc =  abs_src.z; ma = abs_src.y;
    } else {
      face_id = 3; sc =  abs_src.x; tc = -abs_src.z; ma = abs_src.y;
    }
  } else {
    if (src.z > 0.0) {
      face_id = 4; sc =  abs_src.x; tc = -abs_src.y; ma = abs_src.z;
    } else {
      face_id = 5; sc = -abs_src.x; tc = -abs_src.y; ma = abs_src.z;
    }
  }
  float s = (sc / ma + 1.0) / 2.0;
  float t = (tc / ma + 1.0) / 2.0;
  return vec4(t, s, 2.0 * ma, float(face_id));
};
`

// Vertex stage: outputs, the post-transform fixup, and main. The guest
// position may arrive pre-divided by W depending on vtx_fmt flags;
// applyTransform undoes that and applies the window scale.
const vertexPreamble = `
out gl_PerVertex {
  vec4 gl_Position;
  float gl_PointSize;
  float gl_ClipDistance[];
};
layout(location = 0) flat out uint draw_id;
layout(location = 1) out VertexData vtx;
vec4 applyTransform(const in StateData state, vec4 pos) {
  if (state.vtx_fmt.w == 0.0) {
    // w is 1/W0, so fix it.
    pos.w = 1.0 / pos.w;
  }
  if (state.vtx_fmt.x != 0.0) {
    // Already multiplied by 1/W0, so pull it out.
    pos.xy /= pos.w;
  }
  if (state.vtx_fmt.z != 0.0) {
    // Already multiplied by 1/W0, so pull it out.
    pos.z /= pos.w;
  }
  pos.xy *= state.window_scale.xy;
  return pos;
};
void processVertex(const in StateData state);
void main() {
  gl_Position = vec4(0.0, 0.0, 0.0, 1.0);
  gl_PointSize = 1.0;
  for (int i = 0; i < vtx.o.length(); ++i) {
    vtx.o[i] = vec4(0.0, 0.0, 0.0, 0.0);
  }
  const StateData state = states[gl_DrawIDARB];
  processVertex(state);
  gl_Position = applyTransform(state, gl_Position);
  draw_id = gl_DrawIDARB;
}
`

// Pixel stage: inputs, the alpha test, and main. Alpha compare functions
// 0..7 are never/less/equal/lequal/greater/notequal/gequal/always.
const pixelPreamble = `
layout(origin_upper_left, pixel_center_integer) in vec4 gl_FragCoord;
layout(location = 0) flat in uint draw_id;
layout(location = 1) in VertexData vtx;
layout(location = 0) out vec4 oC[4];
void applyAlphaTest(int alpha_func, float alpha_ref) {
  bool passes = false;
  switch (alpha_func) {
  case 0:                                          break;
  case 1: if (oC[0].a <  alpha_ref) passes = true; break;
  case 2: if (oC[0].a == alpha_ref) passes = true; break;
  case 3: if (oC[0].a <= alpha_ref) passes = true; break;
  case 4: if (oC[0].a >  alpha_ref) passes = true; break;
  case 5: if (oC[0].a != alpha_ref) passes = true; break;
  case 6: if (oC[0].a >= alpha_ref) passes = true; break;
  case 7:                           passes = true; break;
  };
  if (!passes) discard;
}
void processFragment(const in StateData state);
void main() {
  const StateData state = states[draw_id];
  processFragment(state);
  if (state.alpha_test.x != 0.0) {
    applyAlphaTest(int(state.alpha_test.y), state.alpha_test.z);
  }
}
`

// StartTranslation emits the preamble and opens the per-stage process
// function that the instruction stream is lowered into.
func (t *Translator) StartTranslation() {
	t.emit(sharedPreamble)
	t.emit(cubePreamble)

	if t.isVertexShader() {
		t.emit(vertexPreamble)
	} else {
		t.emit(pixelPreamble)
	}

	// Vertex shader input declarations, one per bound attribute.
	if t.isVertexShader() {
		for _, binding := range t.vertexBindings {
			for _, attrib := range binding.Attributes {
				t.emit("layout(location = %d) in %s vf%d_%d;\n",
					attrib.AttribIndex, attrib.Format.GLSLTypeName(),
					binding.FetchConstant, attrib.Offset)
			}
		}
	}

	// Enter the process function, where the whole shader lives.
	if t.isVertexShader() {
		t.emit("void processVertex(const in StateData state) {\n")

		// Temporary registers.
		t.emit("  vec4 r[%d];\n", maxTemporaryRegisters)
	} else {
		t.emit("void processFragment(const in StateData state) {\n")

		// Bring interpolants from the vertex shader into temporary
		// registers.
		t.emit("  vec4 r[%d];\n", maxTemporaryRegisters)
		for i := 0; i < maxInterpolators; i++ {
			t.emit("  r[%d] = vtx.o[%d];\n", i, i)
		}
	}

	// Previous vector result (used as a scratch).
	t.emit("  vec4 pv;\n")
	// Previous scalar result (used for retain_prev).
	t.emit("  float ps;\n")
	// Predicate temp, clause-local.
	t.emit("  bool p0 = false;\n")
	// Address register when using absolute addressing.
	t.emit("  int a0 = 0;\n")
	// Temps for source register values.
	t.emit("  vec4 src0;\n")
	t.emit("  vec4 src1;\n")
	t.emit("  vec4 src2;\n")
}

// CompleteTranslation closes the process function and returns the emitted
// source bytes. The buffer is not newline-terminated beyond the final
// closing brace line.
func (t *Translator) CompleteTranslation() []byte {
	// End of the process*() function.
	t.emit("}\n")

	return []byte(t.source.String())
}
